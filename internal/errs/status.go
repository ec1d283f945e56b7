package errs

import "errors"

// Status is one variant of a domain error catalog.
type Status interface {
	HTTPStatus() int
	Code() string
	Message() string
}

// New converts a catalog variant into an HTTPError that is safe to show
// to clients.
func New(s Status) *HTTPError {
	return &HTTPError{
		Code:     s.Code(),
		Message:  s.Message(),
		Status:   s.HTTPStatus(),
		Override: true,
	}
}

// HasStatus reports whether err carries the given catalog variant.
func HasStatus(err error, s Status) bool {
	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		return false
	}
	return httpErr.Code == s.Code() && httpErr.Status == s.HTTPStatus()
}
