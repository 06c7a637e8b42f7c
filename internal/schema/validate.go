package schema

import (
	"fmt"
	"time"
)

// ValidateEnum checks a candidate value against an enumerated field's closed
// set. Matching is exact and case-sensitive; any non-string value is rejected
// regardless of content. The outcome depends only on the declared set, never
// on stored state.
func ValidateEnum(entity string, f Field, value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return &ValidationError{
			Entity: entity,
			Field:  f.Name,
			Reason: fmt.Sprintf("expected string, got %T", value),
		}
	}
	for _, member := range f.Enum {
		if s == member {
			return nil
		}
	}
	return &ValidationError{
		Entity: entity,
		Field:  f.Name,
		Reason: fmt.Sprintf("%q is not a member of the declared set", s),
	}
}

// ValidateValue checks a single present value against its field declaration.
// Absence is handled by ValidateRecord; a nil value here is always rejected
// since null is distinct from absence.
func ValidateValue(entity string, f Field, value interface{}) error {
	if value == nil {
		return &ValidationError{Entity: entity, Field: f.Name, Reason: "null is not a valid value; omit the field instead"}
	}
	if f.Enum != nil {
		return ValidateEnum(entity, f, value)
	}
	switch f.Type {
	case TypeString:
		if _, ok := value.(string); !ok {
			return typeMismatch(entity, f, "string", value)
		}
	case TypeBool:
		if _, ok := value.(bool); !ok {
			return typeMismatch(entity, f, "bool", value)
		}
	case TypeInt:
		switch value.(type) {
		case int, int32, int64, uint, uint32, uint64:
		case float64:
			// JSON decoding yields float64 for all numbers.
			if value.(float64) != float64(int64(value.(float64))) {
				return typeMismatch(entity, f, "integer", value)
			}
		default:
			return typeMismatch(entity, f, "integer", value)
		}
	case TypeFloat:
		switch value.(type) {
		case float32, float64, int, int64:
		default:
			return typeMismatch(entity, f, "number", value)
		}
	case TypeID:
		switch value.(type) {
		case uint, uint32, uint64, int, int64:
		case float64:
			if value.(float64) < 0 || value.(float64) != float64(uint64(value.(float64))) {
				return typeMismatch(entity, f, "id", value)
			}
		default:
			return typeMismatch(entity, f, "id", value)
		}
	case TypeTime:
		if _, ok := value.(time.Time); !ok {
			return typeMismatch(entity, f, "time", value)
		}
	case TypeObjectArray:
		switch value.(type) {
		case []interface{}, []map[string]interface{}:
		default:
			return typeMismatch(entity, f, "array of objects", value)
		}
	}
	return nil
}

// ValidateRecord checks a record expressed as a field→value map against an
// entity declaration: required fields must be present, present values must
// match their declared type, unknown fields are rejected. A key that is
// simply missing is fine when the field is optional; a key present with a
// nil value is not.
func ValidateRecord(entityName string, record map[string]interface{}) error {
	entity, ok := Lookup(entityName)
	if !ok {
		return &ValidationError{Entity: entityName, Field: "", Reason: "unknown entity"}
	}
	for _, f := range entity.Fields {
		value, present := record[f.Name]
		if !present {
			if f.Optional {
				continue
			}
			return &ValidationError{Entity: entityName, Field: f.Name, Reason: "required field is missing"}
		}
		if err := ValidateValue(entityName, f, value); err != nil {
			return err
		}
	}
	for name := range record {
		if _, declared := entity.Field(name); !declared {
			return &ValidationError{Entity: entityName, Field: name, Reason: "field is not declared on this entity"}
		}
	}
	return nil
}

func typeMismatch(entity string, f Field, want string, got interface{}) error {
	return &ValidationError{
		Entity: entity,
		Field:  f.Name,
		Reason: fmt.Sprintf("expected %s, got %T", want, got),
	}
}
