package status

import (
	"encoding/json"
	"testing"
)

func TestRegisteredCodesAreTotal(t *testing.T) {
	codes := Codes()
	if len(codes) != 61 {
		t.Fatalf("expected 61 registered codes, got %d", len(codes))
	}
	for i, c := range codes {
		if i > 0 && codes[i-1] >= c {
			t.Fatalf("codes not ascending at %d: %d >= %d", i, codes[i-1], c)
		}
		if !IsValid(int(c)) {
			t.Fatalf("%d should be valid", c)
		}
		if txt := Text(c); txt == "" || txt == UnknownText {
			t.Fatalf("%d has no label: %q", c, txt)
		}
		if d := Description(c); d == "" || d == UnknownText {
			t.Fatalf("%d has no description: %q", c, d)
		}
	}
}

func TestCodesReturnsCopy(t *testing.T) {
	first := Codes()
	first[0] = 999
	if Codes()[0] != Continue {
		t.Fatalf("registry mutated through Codes()")
	}
}

func TestUnregisteredCodes(t *testing.T) {
	for _, v := range []int{-1, 0, 1, 99, 150, 209, 306, 419, 420, 427, 430, 509, 512, 599, 600, 999, 1 << 20} {
		if IsValid(v) {
			t.Fatalf("%d should not be valid", v)
		}
		if _, ok := Parse(v); ok {
			t.Fatalf("Parse(%d) should fail", v)
		}
		if got := Text(Code(v)); got != UnknownText {
			t.Fatalf("Text(%d) = %q", v, got)
		}
		if got := Description(Code(v)); got != UnknownText {
			t.Fatalf("Description(%d) = %q", v, got)
		}
		if got := DocURL(Code(v)); got != "" {
			t.Fatalf("DocURL(%d) = %q", v, got)
		}
		if _, ok := Lookup(Code(v)); ok {
			t.Fatalf("Lookup(%d) should miss", v)
		}
	}
}

func TestClassOf(t *testing.T) {
	tests := []struct {
		code Code
		want Class
	}{
		{-1, ClassUnknown},
		{0, ClassUnknown},
		{99, ClassUnknown},
		{100, ClassInformational},
		{150, ClassInformational},
		{199, ClassInformational},
		{200, ClassSuccess},
		{299, ClassSuccess},
		{300, ClassRedirection},
		{399, ClassRedirection},
		{400, ClassClientError},
		{499, ClassClientError},
		{500, ClassServerError},
		{599, ClassServerError},
		{600, ClassUnknown},
		{999, ClassUnknown},
	}
	for _, tt := range tests {
		if got := ClassOf(tt.code); got != tt.want {
			t.Fatalf("ClassOf(%d) = %s, want %s", tt.code, got, tt.want)
		}
		if got := tt.code.Class(); got != tt.want {
			t.Fatalf("Code(%d).Class() = %s, want %s", tt.code, got, tt.want)
		}
	}
}

func TestScenarios(t *testing.T) {
	if Text(200) != "OK" || ClassOf(200) != ClassSuccess || !IsValid(200) {
		t.Fatalf("unexpected result for 200: %q %s %v", Text(200), ClassOf(200), IsValid(200))
	}
	if Text(Teapot) != "I'm a teapot" {
		t.Fatalf("unexpected label for 418: %q", Text(Teapot))
	}
	if Description(Teapot) != "Server refuses to brew coffee with a teapot." {
		t.Fatalf("unexpected description for 418: %q", Description(Teapot))
	}
	if Text(999) != UnknownText || ClassOf(999) != ClassUnknown || IsValid(999) {
		t.Fatalf("unexpected result for 999")
	}
	if Text(NotFound) != "Not Found" || Text(ContentTooLarge) != "Content Too Large" {
		t.Fatalf("unexpected labels: %q %q", Text(NotFound), Text(ContentTooLarge))
	}
}

func TestConstantValues(t *testing.T) {
	tests := map[Code]int{
		OK:                            200,
		NotFound:                      404,
		Teapot:                        418,
		InternalServerError:           500,
		IMUsed:                        226,
		PermanentRedirect:             308,
		RequestHeaderFieldsTooLarge:   431,
		NetworkAuthenticationRequired: 511,
	}
	for c, want := range tests {
		if int(c) != want {
			t.Fatalf("constant %s = %d, want %d", c, int(c), want)
		}
	}
}

func TestCodeMethods(t *testing.T) {
	if got := NotFound.String(); got != "404 Not Found" {
		t.Fatalf("String() = %q", got)
	}
	if got := Code(999).String(); got != "999 Unknown Status" {
		t.Fatalf("String() = %q", got)
	}
	if !NotFound.IsError() || !BadGateway.IsError() || OK.IsError() || Found.IsError() {
		t.Fatalf("unexpected IsError results")
	}
	if !Created.Valid() || Code(299).Valid() {
		t.Fatalf("unexpected Valid results")
	}
	if NoContent.Text() != Text(NoContent) || NoContent.Description() != Description(NoContent) {
		t.Fatalf("methods disagree with package functions")
	}
}

func TestLookupAndJSON(t *testing.T) {
	info, ok := Lookup(Teapot)
	if !ok {
		t.Fatalf("expected 418 to be registered")
	}
	if info.URL != "https://developer.mozilla.org/en-US/docs/Web/HTTP/Status/418" {
		t.Fatalf("unexpected url: %s", info.URL)
	}
	raw, err := json.Marshal(info)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out["code"] != float64(418) || out["class"] != "ClientError" || out["text"] != "I'm a teapot" {
		t.Fatalf("unexpected json: %s", raw)
	}

	all := All()
	if len(all) != len(Codes()) || all[0].Code != Continue || all[len(all)-1].Code != NetworkAuthenticationRequired {
		t.Fatalf("unexpected All(): %d entries", len(all))
	}
}

func TestIdempotent(t *testing.T) {
	for _, c := range []Code{OK, Teapot, 150, 999} {
		txt, desc, cl := Text(c), Description(c), ClassOf(c)
		for i := 0; i < 3; i++ {
			if Text(c) != txt || Description(c) != desc || ClassOf(c) != cl {
				t.Fatalf("non-deterministic result for %d", c)
			}
		}
	}
}

func TestRegistryTable(t *testing.T) {
	golden := []struct {
		code        int
		text        string
		description string
	}{
		{100, "Continue", "Client should continue the request or ignore if already finished."},
		{101, "Switching Protocols", "Server is switching protocols as requested by client."},
		{102, "Processing", "Request received, no status available (WebDAV, deprecated)."},
		{103, "Early Hints", "Allows preloading resources with Link header."},
		{200, "OK", "Request succeeded, result depends on HTTP method."},
		{201, "Created", "Request succeeded, new resource created."},
		{202, "Accepted", "Request received but not acted upon, noncommittal."},
		{203, "Non-Authoritative Information", "Metadata from local or third-party copy, not origin server."},
		{204, "No Content", "No content to send, headers may be useful."},
		{205, "Reset Content", "Tells user agent to reset the document."},
		{206, "Partial Content", "Response to a range request for part of a resource."},
		{207, "Multi-Status", "Conveys information about multiple resources (WebDAV)."},
		{208, "Already Reported", "Avoids enumerating bindings in WebDAV collections."},
		{226, "IM Used", "Result of instance-manipulations applied to resource."},
		{300, "Multiple Choices", "Multiple possible responses, client should choose one."},
		{301, "Moved Permanently", "Resource URL changed permanently, new URL given."},
		{302, "Found", "Resource URI changed temporarily."},
		{303, "See Other", "Directs client to get resource at another URI with GET."},
		{304, "Not Modified", "Response not modified, client can use cached version."},
		{305, "Use Proxy", "Response must be accessed by a proxy (deprecated)."},
		{307, "Temporary Redirect", "Redirect to another URI with same method as prior request."},
		{308, "Permanent Redirect", "Resource permanently at another URI, same method required."},
		{400, "Bad Request", "Server cannot process due to client error."},
		{401, "Unauthorized", "Client must authenticate to get response."},
		{402, "Payment Required", "Reserved for digital payment systems, rarely used."},
		{403, "Forbidden", "Client lacks access rights, server refuses resource."},
		{404, "Not Found", "Server cannot find requested resource."},
		{405, "Method Not Allowed", "Request method not supported by target resource."},
		{406, "Not Acceptable", "No content matches user agent criteria."},
		{407, "Proxy Authentication Required", "Authentication required by a proxy."},
		{408, "Request Timeout", "Server timed out on idle connection."},
		{409, "Conflict", "Request conflicts with current server state."},
		{410, "Gone", "Requested content permanently deleted."},
		{411, "Length Required", "Content-Length header required but not provided."},
		{412, "Precondition Failed", "Client preconditions in headers not met."},
		{413, "Content Too Large", "Request body exceeds server limits."},
		{414, "URI Too Long", "Requested URI too long for server to interpret."},
		{415, "Unsupported Media Type", "Media format of request data not supported."},
		{416, "Range Not Satisfiable", "Requested range cannot be fulfilled."},
		{417, "Expectation Failed", "Expectation in Expect header cannot be met."},
		{418, "I'm a teapot", "Server refuses to brew coffee with a teapot."},
		{421, "Misdirected Request", "Request directed to server unable to respond."},
		{422, "Unprocessable Content", "Request well-formed but has semantic errors (WebDAV)."},
		{423, "Locked", "Resource being accessed is locked (WebDAV)."},
		{424, "Failed Dependency", "Request failed due to failure of a previous request (WebDAV)."},
		{425, "Too Early", "Server unwilling to process potentially replayed request."},
		{426, "Upgrade Required", "Server requires client to upgrade protocol."},
		{428, "Precondition Required", "Server requires conditional request to prevent conflicts."},
		{429, "Too Many Requests", "Too many requests sent in a given time (rate limiting)."},
		{431, "Request Header Fields Too Large", "Request headers too large for server to process."},
		{500, "Internal Server Error", "Server encountered an unknown error."},
		{501, "Not Implemented", "Request method not supported by server."},
		{502, "Bad Gateway", "Server as gateway received invalid response."},
		{503, "Service Unavailable", "Server unavailable due to maintenance or overloading."},
		{504, "Gateway Timeout", "Server as gateway timed out."},
		{505, "HTTP Version Not Supported", "HTTP version in request not supported."},
		{506, "Variant Also Negotiates", "Content negotiation caused circular reference."},
		{507, "Insufficient Storage", "Server unable to store representation (WebDAV)."},
		{508, "Loop Detected", "Infinite loop detected in request processing (WebDAV)."},
		{510, "Not Extended", "HTTP extension not supported for request."},
		{511, "Network Authentication Required", "Client needs to authenticate for network access."},
	}
	codes := Codes()
	if len(codes) != len(golden) {
		t.Fatalf("expected %d registered codes, got %d", len(golden), len(codes))
	}
	for i, row := range golden {
		c, ok := Parse(row.code)
		if !ok {
			t.Fatalf("%d not registered", row.code)
		}
		if codes[i] != c {
			t.Fatalf("registry order: position %d holds %d, want %d", i, codes[i], row.code)
		}
		if got := Text(c); got != row.text {
			t.Fatalf("%d label: got %q, want %q", row.code, got, row.text)
		}
		if got := Description(c); got != row.description {
			t.Fatalf("%d description: got %q, want %q", row.code, got, row.description)
		}
	}
}
