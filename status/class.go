package status

// Class is the band a status code belongs to.
type Class string

const (
	ClassInformational Class = "Informational" // 100-199
	ClassSuccess       Class = "Success"       // 200-299
	ClassRedirection   Class = "Redirection"   // 300-399
	ClassClientError   Class = "ClientError"   // 400-499
	ClassServerError   Class = "ServerError"   // 500-599
	ClassUnknown       Class = "Unknown"       // anything else
)

func (c Class) String() string { return string(c) }

// ClassOf returns the band of c by numeric range alone. Unregistered codes
// inside a band still belong to it: ClassOf(150) is ClassInformational.
func ClassOf(c Code) Class {
	switch {
	case c >= 100 && c <= 199:
		return ClassInformational
	case c >= 200 && c <= 299:
		return ClassSuccess
	case c >= 300 && c <= 399:
		return ClassRedirection
	case c >= 400 && c <= 499:
		return ClassClientError
	case c >= 500 && c <= 599:
		return ClassServerError
	default:
		return ClassUnknown
	}
}
