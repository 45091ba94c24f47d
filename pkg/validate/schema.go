package validate

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"
)

// Field describes one schema entry for map validation.
type Field struct {
	// Type is an expected-type argument in the AssertType forms; nil skips
	// the type check.
	Type any
	// Required makes the field's absence a failure.
	Required bool
	// Validator optionally transforms or rejects the value after the type
	// check; its error propagates unchanged.
	Validator func(any) (any, error)
	// Default is used when an optional field is absent. A nil Default means
	// the field is simply omitted from the result.
	Default any
}

// Schema maps field names to their expectations.
type Schema map[string]Field

// SchemaValidator validates loosely-typed string-keyed maps against a
// Schema using the engine's primitives.
type SchemaValidator struct {
	engine *Engine
}

// NewSchemaValidator binds a schema validator to an engine. A nil engine
// uses the package default.
func NewSchemaValidator(engine *Engine) *SchemaValidator {
	if engine == nil {
		engine = defaultEngine
	}
	return &SchemaValidator{engine: engine}
}

// ValidateMap checks data against schema and returns a fresh map holding
// the validated and defaulted values. Fields are processed in name order so
// the first reported failure is deterministic. With strict set, keys not
// named by the schema are rejected, all reported together.
func (s *SchemaValidator) ValidateMap(data any, schema Schema, strict bool) (map[string]any, error) {
	if _, err := s.engine.AssertMapping(data); err != nil {
		return nil, err
	}
	src, ok := stringKeyedMap(data)
	if !ok {
		return nil, s.schemaError(KindTypeMismatch, "schema validation requires a string-keyed map, got "+typeName(data))
	}

	result := make(map[string]any, len(schema))
	tv := s.engine.validators[KindType]

	for _, name := range slices.Sorted(maps.Keys(schema)) {
		field := schema[name]
		value, present := src[name]

		switch {
		case present:
			if field.Type != nil {
				c := constraints{types: typeSet(field.Type)}
				if !tv.validate(value, c) {
					if err := s.schemaError(KindTypeMismatch, tv.describeFailure(value, name, c)); err != nil {
						return nil, err
					}
				}
			}
			if field.Validator != nil {
				out, err := field.Validator(value)
				if err != nil {
					return nil, err
				}
				value = out
			}
			result[name] = value

		case field.Required:
			if err := s.schemaError(KindMissingKey, fmt.Sprintf("required field '%s' is missing", name)); err != nil {
				return nil, err
			}

		case field.Default != nil:
			result[name] = field.Default
		}
	}

	if strict {
		var extra []string
		for key := range src {
			if _, known := schema[key]; !known {
				extra = append(extra, key)
			}
		}
		if len(extra) > 0 {
			slices.Sort(extra)
			if err := s.schemaError(KindMissingKey, "unexpected keys found: '"+strings.Join(extra, "', '")+"'"); err != nil {
				return nil, err
			}
		}
	}

	return result, nil
}

// schemaError applies the engine's failure policy: lenient engines skip the
// failure instead of reporting it.
func (s *SchemaValidator) schemaError(kind FailureKind, msg string) error {
	if !s.engine.config.RaiseOnFailure {
		return nil
	}
	return s.engine.config.NewError(kind, msg)
}

func stringKeyedMap(data any) (map[string]any, bool) {
	if m, ok := data.(map[string]any); ok {
		return m, true
	}
	v := reflect.ValueOf(data)
	if !v.IsValid() || v.Kind() != reflect.Map || v.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	out := make(map[string]any, v.Len())
	for it := v.MapRange(); it.Next(); {
		out[it.Key().String()] = it.Value().Interface()
	}
	return out, true
}
