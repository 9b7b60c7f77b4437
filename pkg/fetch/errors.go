package fetch

import (
	"fmt"
	"net/http"
)

// StatusError reports an HTTP response with status >= 400.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf(
		"get %s: %d %s",
		e.URL, e.StatusCode, http.StatusText(e.StatusCode),
	)
}

// IntegrityError reports a payload whose digest never matched the
// expected one within the retry budget.
type IntegrityError struct {
	URL      string
	Want     string
	Got      string
	Attempts int
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf(
		"get %s: sha1 mismatch after %d attempts (want %s, got %s)",
		e.URL, e.Attempts, e.Want, e.Got,
	)
}
