package mcp

import "fmt"

// UnknownToolError is returned when a dispatch names a tool that was never
// registered. No upstream request is made.
type UnknownToolError struct {
	Name string
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("unknown tool %q", e.Name)
}

// ValidationError is returned when a tool call payload fails schema
// validation: a required field is missing or a value cannot be coerced to
// its declared type. Field names the offending parameter. No upstream
// request is made.
type ValidationError struct {
	Tool   string
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: invalid arguments: %s", e.Tool, e.Reason)
	}
	return fmt.Sprintf("%s: invalid argument %q: %s", e.Tool, e.Field, e.Reason)
}
