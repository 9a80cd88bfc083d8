package http

const (
	StatusContinue           uint16 = 100
	StatusSwitchingProtocols uint16 = 101

	StatusOK             uint16 = 200
	StatusCreated        uint16 = 201
	StatusAccepted       uint16 = 202
	StatusNoContent      uint16 = 204
	StatusPartialContent uint16 = 206

	StatusMovedPermanently  uint16 = 301
	StatusFound             uint16 = 302
	StatusSeeOther          uint16 = 303
	StatusNotModified       uint16 = 304
	StatusTemporaryRedirect uint16 = 307
	StatusPermanentRedirect uint16 = 308

	StatusBadRequest            uint16 = 400
	StatusUnauthorized          uint16 = 401
	StatusForbidden             uint16 = 403
	StatusNotFound              uint16 = 404
	StatusMethodNotAllowed      uint16 = 405
	StatusRequestTimeout        uint16 = 408
	StatusConflict              uint16 = 409
	StatusLengthRequired        uint16 = 411
	StatusRequestEntityTooLarge uint16 = 413
	StatusTooManyRequests       uint16 = 429

	StatusInternalServerError     uint16 = 500
	StatusNotImplemented          uint16 = 501
	StatusBadGateway              uint16 = 502
	StatusServiceUnavailable      uint16 = 503
	StatusGatewayTimeout          uint16 = 504
	StatusHTTPVersionNotSupported uint16 = 505
)

var statusText = map[uint16]string{
	StatusContinue:           "Continue",
	StatusSwitchingProtocols: "Switching Protocols",

	StatusOK:             "OK",
	StatusCreated:        "Created",
	StatusAccepted:       "Accepted",
	StatusNoContent:      "No Content",
	StatusPartialContent: "Partial Content",

	StatusMovedPermanently:  "Moved Permanently",
	StatusFound:             "Found",
	StatusSeeOther:          "See Other",
	StatusNotModified:       "Not Modified",
	StatusTemporaryRedirect: "Temporary Redirect",
	StatusPermanentRedirect: "Permanent Redirect",

	StatusBadRequest:            "Bad Request",
	StatusUnauthorized:          "Unauthorized",
	StatusForbidden:             "Forbidden",
	StatusNotFound:              "Not Found",
	StatusMethodNotAllowed:      "Method Not Allowed",
	StatusRequestTimeout:        "Request Timeout",
	StatusConflict:              "Conflict",
	StatusLengthRequired:        "Length Required",
	StatusRequestEntityTooLarge: "Request Entity Too Large",
	StatusTooManyRequests:       "Too Many Requests",

	StatusInternalServerError:     "Internal Server Error",
	StatusNotImplemented:          "Not Implemented",
	StatusBadGateway:              "Bad Gateway",
	StatusServiceUnavailable:      "Service Unavailable",
	StatusGatewayTimeout:          "Gateway Timeout",
	StatusHTTPVersionNotSupported: "HTTP Version Not Supported",
}

// StatusText returns the reason phrase for a status code, or the empty
// string for unknown codes.
func StatusText(code uint16) string {
	return statusText[code]
}
