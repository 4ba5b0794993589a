package backend

import "fmt"

// FetchError indicates the backend was unreachable or returned a
// non-2xx status.
type FetchError struct {
	Endpoint string
	Status   int // 0 when the request never completed
	Err      error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("backend %s returned %d", e.Endpoint, e.Status)
	}
	return fmt.Sprintf("backend %s unreachable: %v", e.Endpoint, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ValidationError indicates the backend responded with a malformed
// payload.
type ValidationError struct {
	Endpoint string
	Err      error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("backend %s returned malformed payload: %v", e.Endpoint, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }
