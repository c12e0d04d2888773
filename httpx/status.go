package httpx

import "github.com/adeilh/rakh-status/status"

const (
	StatusOK                  = int(status.OK)                   // Successful request
	StatusCreated             = int(status.Created)              // Resource created
	StatusNoContent           = int(status.NoContent)            // Successful with no body
	StatusBadRequest          = int(status.BadRequest)           // Validation or malformed input
	StatusUnauthorized        = int(status.Unauthorized)         // Missing or invalid authentication
	StatusForbidden           = int(status.Forbidden)            // Authenticated but lacks permission
	StatusNotFound            = int(status.NotFound)             // Resource not found
	StatusConflict            = int(status.Conflict)             // Uniqueness or version conflict
	StatusGone                = int(status.Gone)                 // Resource permanently removed
	StatusUnprocessableEntity = int(status.UnprocessableContent) // Semantically invalid input
	StatusTeapot              = int(status.Teapot)               // Refuses to brew coffee
	StatusTooManyRequests     = int(status.TooManyRequests)      // Rate limiting or quotas
	StatusInternalError       = int(status.InternalServerError)  // Unexpected server error
	StatusBadGateway          = int(status.BadGateway)           // Invalid upstream response
	StatusServiceUnavailable  = int(status.ServiceUnavailable)   // Dependency failure or maintenance
)
