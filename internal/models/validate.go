package models

import "restaurant_platform/internal/schema"

// validateEnumField checks a model's enumerated field against the declared
// set in the schema registry. The registry is the single source of truth;
// the typed constants in this package exist for callers' convenience.
func validateEnumField(entity, field string, value interface{}) error {
	e, ok := schema.Lookup(entity)
	if !ok {
		return &schema.ValidationError{Entity: entity, Field: field, Reason: "unknown entity"}
	}
	f, ok := e.Field(field)
	if !ok {
		return &schema.ValidationError{Entity: entity, Field: field, Reason: "field is not declared on this entity"}
	}
	return schema.ValidateEnum(entity, f, value)
}

func enumMember(set []string, value string) bool {
	for _, member := range set {
		if value == member {
			return true
		}
	}
	return false
}
