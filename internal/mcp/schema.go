package mcp

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// SchemaDoc builds the JSON-schema document describing the tool's
// parameters. The same document backs the schema advertised to MCP clients
// and the gojsonschema validation performed at dispatch time.
func (t *Tool) SchemaDoc() map[string]any {
	props := make(map[string]any, len(t.Params))
	var required []string
	for _, p := range t.Params {
		prop := map[string]any{"type": string(p.Type)}
		if p.Description != "" {
			prop["description"] = p.Description
		}
		if p.Default != nil {
			prop["default"] = p.Default
		}
		props[p.Name] = prop
		if p.Required {
			required = append(required, p.Name)
		}
	}
	doc := map[string]any{
		"type":       "object",
		"properties": props,
	}
	if len(required) > 0 {
		doc["required"] = required
	}
	return doc
}

// compileSchema compiles the tool's parameter schema once at registration.
// It also checks that every declared default coerces to its param type.
func (t *Tool) compileSchema() error {
	for _, p := range t.Params {
		if p.Default != nil {
			if _, err := coerceValue(p.Type, p.Default); err != nil {
				return fmt.Errorf("param %q default: %w", p.Name, err)
			}
		}
	}
	schema, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(t.SchemaDoc()))
	if err != nil {
		return err
	}
	t.schema = schema
	return nil
}

// ValidateArgs coerces the raw payload into typed values and validates the
// result against the tool's compiled schema. Missing required fields and
// uncoercible values fail with a ValidationError naming the field. Absent
// optionals take their declared default; a nil default leaves the key out
// of the result entirely, which later omits it from the query string.
func (t *Tool) ValidateArgs(raw map[string]any) (Args, error) {
	args := Args{}
	for _, p := range t.Params {
		v, ok := raw[p.Name]
		if !ok || v == nil {
			if p.Required {
				return nil, &ValidationError{Tool: t.Name, Field: p.Name, Reason: "required field is missing"}
			}
			if p.Default != nil {
				d, err := coerceValue(p.Type, p.Default)
				if err != nil {
					return nil, &ValidationError{Tool: t.Name, Field: p.Name, Reason: err.Error()}
				}
				args[p.Name] = d
			}
			continue
		}
		coerced, err := coerceValue(p.Type, v)
		if err != nil {
			return nil, &ValidationError{Tool: t.Name, Field: p.Name, Reason: err.Error()}
		}
		args[p.Name] = coerced
	}

	// Schema validation backstop over the coerced arguments.
	result, err := t.schema.Validate(gojsonschema.NewGoLoader(map[string]any(args)))
	if err != nil {
		return nil, &ValidationError{Tool: t.Name, Reason: err.Error()}
	}
	if !result.Valid() {
		first := result.Errors()[0]
		return nil, &ValidationError{Tool: t.Name, Field: first.Field(), Reason: first.Description()}
	}

	return args, nil
}

// coerceValue converts a raw JSON value to the param's semantic type,
// accepting the lax forms MCP clients actually send: numeric strings for
// integer fields, integral floats (every JSON number decodes as float64),
// numbers for string fields, and ParseBool-able strings for boolean fields.
func coerceValue(typ ParamType, v any) (any, error) {
	switch typ {
	case TypeString:
		switch val := v.(type) {
		case string:
			return val, nil
		case float64:
			return strconv.FormatFloat(val, 'f', -1, 64), nil
		case int:
			return strconv.Itoa(val), nil
		case bool:
			return strconv.FormatBool(val), nil
		}
		return nil, fmt.Errorf("expected string, got %T", v)
	case TypeInt:
		switch val := v.(type) {
		case int:
			return val, nil
		case float64:
			if val != math.Trunc(val) {
				return nil, fmt.Errorf("expected integer, got %v", val)
			}
			return int(val), nil
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(val))
			if err != nil {
				return nil, fmt.Errorf("expected integer, got %q", val)
			}
			return n, nil
		}
		return nil, fmt.Errorf("expected integer, got %T", v)
	case TypeBool:
		switch val := v.(type) {
		case bool:
			return val, nil
		case string:
			b, err := strconv.ParseBool(strings.TrimSpace(val))
			if err != nil {
				return nil, fmt.Errorf("expected boolean, got %q", val)
			}
			return b, nil
		}
		return nil, fmt.Errorf("expected boolean, got %T", v)
	}
	return nil, fmt.Errorf("unknown param type %q", typ)
}
