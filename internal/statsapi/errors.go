package statsapi

import "fmt"

// maxErrorBody limits how much of an upstream error body is echoed in Error().
// The full body stays available on the struct for callers that want it.
const maxErrorBody = 512

// StatusError is returned when the upstream API responds outside the 2xx range.
// Body holds the raw upstream response body, usually a JSON error document.
type StatusError struct {
	Status int
	Body   []byte
}

func (e *StatusError) Error() string {
	body := e.Body
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}
	if len(body) == 0 {
		return fmt.Sprintf("statsapi returned %d", e.Status)
	}
	return fmt.Sprintf("statsapi returned %d: %s", e.Status, body)
}

// DecodeError is returned when the upstream responds with a success status
// but a body that is not valid JSON.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("statsapi returned invalid JSON for %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
