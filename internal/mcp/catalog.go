// Package mcp holds the MLB tool catalog and the dispatch machinery that
// turns a validated tool call into one upstream GET request.
package mcp

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ParamType is the semantic type of a tool parameter.
type ParamType string

const (
	TypeString ParamType = "string"
	TypeInt    ParamType = "integer"
	TypeBool   ParamType = "boolean"
)

// ParamIn says where a validated parameter ends up on the outbound request.
type ParamIn string

const (
	// InQuery parameters become query-string entries, under QueryKey if set.
	InQuery ParamIn = "query"
	// InPath parameters replace a {name} placeholder in the path template.
	InPath ParamIn = "path"
	// InNone parameters are validated but never forwarded upstream. Used for
	// compatibility fields the upstream ignores and for fields consumed by a
	// Finalize hook (e.g. the position -> stat group mapping).
	InNone ParamIn = "none"
)

// Param describes one tool parameter: its type, whether it is required, the
// default substituted when an optional field is absent (nil means no value,
// which omits the key from the query string entirely), and how it maps onto
// the outbound request.
type Param struct {
	Name        string
	Type        ParamType
	Description string
	Required    bool
	Default     any
	In          ParamIn
	QueryKey    string // query key rename; empty means Name
}

// Request is the resolved upstream call for one dispatch.
type Request struct {
	Path  string
	Query url.Values
}

// Args holds validated, type-coerced tool arguments.
type Args map[string]any

// String returns the named argument as a string, or "" when absent.
func (a Args) String(name string) string {
	if v, ok := a[name].(string); ok {
		return v
	}
	return ""
}

// Int returns the named argument as an int, or 0 when absent.
func (a Args) Int(name string) int {
	if v, ok := a[name].(int); ok {
		return v
	}
	return 0
}

// Bool returns the named argument as a bool, or false when absent.
func (a Args) Bool(name string) bool {
	if v, ok := a[name].(bool); ok {
		return v
	}
	return false
}

// Tool is one immutable catalog entry: a named MCP tool bound to an upstream
// endpoint. Static query values are always sent and override any dynamic
// entry with the same key.
type Tool struct {
	Name        string
	Description string
	Path        string            // path template, may contain {param} placeholders
	Static      map[string]string // fixed query values (e.g. sportId=1)
	Params      []Param
	// Finalize adjusts the resolved request after the mechanical mapping,
	// for the few bindings that need more than rename/omit logic.
	Finalize func(args Args, req *Request) error

	schema *gojsonschema.Schema
}

// placeholderPattern matches {param} placeholders in a path template.
var placeholderPattern = regexp.MustCompile(`\{([^{}]+)\}`)

// validate checks a tool definition for structural problems: empty fields,
// unknown param types or locations, and path placeholders without a backing
// path parameter (or vice versa).
func (t *Tool) validate() error {
	if t.Name == "" {
		return fmt.Errorf("tool has empty name")
	}
	if t.Description == "" {
		return fmt.Errorf("tool %q has empty description", t.Name)
	}
	if t.Path == "" || !strings.HasPrefix(t.Path, "/") {
		return fmt.Errorf("tool %q has invalid path %q", t.Name, t.Path)
	}

	pathParams := make(map[string]bool)
	seen := make(map[string]bool, len(t.Params))
	for _, p := range t.Params {
		if p.Name == "" {
			return fmt.Errorf("tool %q has a param with empty name", t.Name)
		}
		if seen[p.Name] {
			return fmt.Errorf("tool %q declares param %q twice", t.Name, p.Name)
		}
		seen[p.Name] = true
		switch p.Type {
		case TypeString, TypeInt, TypeBool:
		default:
			return fmt.Errorf("tool %q param %q has unknown type %q", t.Name, p.Name, p.Type)
		}
		switch p.In {
		case InQuery, InNone:
		case InPath:
			if !p.Required {
				return fmt.Errorf("tool %q param %q is in the path but not required", t.Name, p.Name)
			}
			pathParams[p.Name] = true
		default:
			return fmt.Errorf("tool %q param %q has unknown location %q", t.Name, p.Name, p.In)
		}
	}

	placeholders := placeholderPattern.FindAllStringSubmatch(t.Path, -1)
	matched := make(map[string]bool, len(placeholders))
	for _, m := range placeholders {
		if !pathParams[m[1]] {
			return fmt.Errorf("tool %q path placeholder {%s} has no path param", t.Name, m[1])
		}
		matched[m[1]] = true
	}
	for name := range pathParams {
		if !matched[name] {
			return fmt.Errorf("tool %q path param %q does not appear in path %q", t.Name, name, t.Path)
		}
	}

	return nil
}

// BuildRequest maps validated arguments onto the tool's endpoint binding:
// path placeholders are substituted URL-escaped, static query values are set,
// and each query param with a non-absent value is serialized under its
// (possibly renamed) key. Absent optionals stay off the query string.
func (t *Tool) BuildRequest(args Args) (*Request, error) {
	req := &Request{Path: t.Path, Query: url.Values{}}

	for _, p := range t.Params {
		v, ok := args[p.Name]
		if !ok {
			continue
		}
		switch p.In {
		case InPath:
			req.Path = strings.ReplaceAll(req.Path, "{"+p.Name+"}", url.PathEscape(queryString(v)))
		case InQuery:
			key := p.QueryKey
			if key == "" {
				key = p.Name
			}
			req.Query.Set(key, queryString(v))
		case InNone:
			// validated only, never serialized
		}
	}

	// Statics win over dynamic entries with the same key.
	for k, v := range t.Static {
		req.Query.Set(k, v)
	}

	if t.Finalize != nil {
		if err := t.Finalize(args, req); err != nil {
			return nil, err
		}
	}

	return req, nil
}

// queryString serializes a coerced argument value the way the upstream API
// expects it: decimal integers and lowercase booleans.
func queryString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprint(val)
	}
}

// Registry is the static tool table. It is populated once at startup and
// read-only afterward, so concurrent dispatches can look up entries without
// locking.
type Registry struct {
	tools map[string]*Tool
	order []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]*Tool)}
}

// Register adds one immutable tool entry. Duplicate names and malformed
// definitions are startup errors; callers fail fast rather than serving a
// partial catalog.
func (r *Registry) Register(t *Tool) error {
	if err := t.validate(); err != nil {
		return err
	}
	if _, exists := r.tools[t.Name]; exists {
		return fmt.Errorf("tool %q registered twice", t.Name)
	}
	if err := t.compileSchema(); err != nil {
		return fmt.Errorf("tool %q schema: %w", t.Name, err)
	}
	r.tools[t.Name] = t
	r.order = append(r.order, t.Name)
	return nil
}

// Lookup returns the tool registered under name.
func (r *Registry) Lookup(name string) (*Tool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

// Tools returns all entries in registration order.
func (r *Registry) Tools() []*Tool {
	out := make([]*Tool, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.tools[name])
	}
	return out
}

// Len returns the number of registered tools.
func (r *Registry) Len() int {
	return len(r.order)
}
