package form

import "sort"

// Rules groups validators for a single field.
func Rules(validators ...Validator) []Validator {
	return validators
}

// Fields maps field names to their validators.
type Fields map[string][]Validator

// ValidateFields runs every field's validators against the matching value
// and returns all failures, sorted by field name. A field stops at its
// first failing validator.
func ValidateFields(values map[string]any, fields Fields) []ValidationError {
	var errs []ValidationError
	for name, validators := range fields {
		value := values[name]
		for _, v := range validators {
			if err := v.Validate(value); err != nil {
				ve, ok := err.(ValidationError)
				if !ok {
					ve = ValidationError{Message: err.Error()}
				}
				ve.Field = name
				errs = append(errs, ve)
				break
			}
		}
	}
	sort.Slice(errs, func(i, j int) bool { return errs[i].Field < errs[j].Field })
	return errs
}

// ValidateValue runs validators against a single value and returns the
// first failure, or nil.
func ValidateValue(value any, validators ...Validator) error {
	for _, v := range validators {
		if err := v.Validate(value); err != nil {
			return err
		}
	}
	return nil
}
