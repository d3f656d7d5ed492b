package authresult

import "fmt"

// Status is the terminal outcome kind of an interactive authorization session.
type Status int

const (
	// StatusSuccess means the embedded browser reached the redirect URI.
	// The result carries the redirected URL as response data.
	StatusSuccess Status = iota + 1

	// StatusUserCancel means the user or the host abandoned the session.
	// Also emitted when the flow is handed off to the external browser.
	// Not an error: the result carries neither response data nor an error.
	StatusUserCancel

	// StatusErrorHTTP means a navigation violated the redirect policy or the
	// device auth challenge could not be answered.
	StatusErrorHTTP

	// StatusProtocolError means the embedded browser reported a URL that
	// could not be interpreted at all.
	StatusProtocolError

	// StatusUnknownError is reserved for failures with no better category.
	StatusUnknownError
)

var statusNames = map[Status]string{
	StatusSuccess:       "success",
	StatusUserCancel:    "user_cancel",
	StatusErrorHTTP:     "error_http",
	StatusProtocolError: "protocol_error",
	StatusUnknownError:  "unknown_error",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// IsError reports whether the status carries an error code.
func (s Status) IsError() bool {
	switch s {
	case StatusErrorHTTP, StatusProtocolError, StatusUnknownError:
		return true
	default:
		return false
	}
}

func (s Status) MarshalText() ([]byte, error) {
	if _, ok := statusNames[s]; !ok {
		return nil, fmt.Errorf("unknown authorization status %d", int(s))
	}
	return []byte(s.String()), nil
}
