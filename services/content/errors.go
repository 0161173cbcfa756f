package content

import "fmt"

// ContentError carries a machine-checkable code alongside the detail.
type ContentError struct {
	Code    string
	Message string
}

func (e *ContentError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ErrPostNotFound is returned when no blog post carries the requested slug.
var ErrPostNotFound = &ContentError{Code: "not_found", Message: "Not found"}
