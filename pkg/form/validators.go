package form

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Validator checks a single field value.
type Validator interface {
	// Validate returns nil when the value is acceptable, or an error
	// carrying the message to display.
	Validate(value any) error
}

// ValidatorFunc is a function that implements Validator.
type ValidatorFunc func(value any) error

func (f ValidatorFunc) Validate(value any) error {
	return f(value)
}

// ValidationError represents a single validation failure.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	if e.Field != "" {
		return e.Field + ": " + e.Message
	}
	return e.Message
}

// Required validates that the value is non-empty.
func Required(msg string) Validator {
	if msg == "" {
		msg = "This field is required"
	}
	return ValidatorFunc(func(value any) error {
		if isEmpty(value) {
			return ValidationError{Message: msg}
		}
		return nil
	})
}

// MinLength validates that a string has at least n characters.
// Empty values pass; combine with Required to reject them.
func MinLength(n int, msg string) Validator {
	if msg == "" {
		msg = fmt.Sprintf("Must be at least %d characters", n)
	}
	return ValidatorFunc(func(value any) error {
		s := toString(value)
		if s == "" {
			return nil
		}
		if len([]rune(s)) < n {
			return ValidationError{Message: msg}
		}
		return nil
	})
}

// MaxLength validates that a string has at most n characters.
func MaxLength(n int, msg string) Validator {
	if msg == "" {
		msg = fmt.Sprintf("Must be at most %d characters", n)
	}
	return ValidatorFunc(func(value any) error {
		if len([]rune(toString(value))) > n {
			return ValidationError{Message: msg}
		}
		return nil
	})
}

// Pattern validates that a string matches the given regular expression.
func Pattern(pattern string, msg string) Validator {
	re := regexp.MustCompile(pattern)
	if msg == "" {
		msg = "Invalid format"
	}
	return ValidatorFunc(func(value any) error {
		s := toString(value)
		if s == "" {
			return nil
		}
		if !re.MatchString(s) {
			return ValidationError{Message: msg}
		}
		return nil
	})
}

// emailPattern is a pragmatic check: local part, @, dotted domain.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Email validates that the value is a plausible email address.
func Email(msg string) Validator {
	if msg == "" {
		msg = "Invalid email address"
	}
	return ValidatorFunc(func(value any) error {
		s := toString(value)
		if s == "" {
			return nil
		}
		if !emailPattern.MatchString(s) {
			return ValidationError{Message: msg}
		}
		return nil
	})
}

// URL validates that the value parses as an absolute URL.
func URL(msg string) Validator {
	if msg == "" {
		msg = "Invalid URL"
	}
	return ValidatorFunc(func(value any) error {
		s := toString(value)
		if s == "" {
			return nil
		}
		u, err := url.Parse(s)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return ValidationError{Message: msg}
		}
		return nil
	})
}

// Alpha validates that the value contains only letters.
func Alpha(msg string) Validator {
	if msg == "" {
		msg = "Must contain only letters"
	}
	return ValidatorFunc(func(value any) error {
		for _, r := range toString(value) {
			if !unicode.IsLetter(r) {
				return ValidationError{Message: msg}
			}
		}
		return nil
	})
}

// AlphaNumeric validates that the value contains only letters and digits.
func AlphaNumeric(msg string) Validator {
	if msg == "" {
		msg = "Must contain only letters and numbers"
	}
	return ValidatorFunc(func(value any) error {
		for _, r := range toString(value) {
			if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
				return ValidationError{Message: msg}
			}
		}
		return nil
	})
}

// Numeric validates that the value contains only digits.
func Numeric(msg string) Validator {
	if msg == "" {
		msg = "Must contain only numbers"
	}
	return ValidatorFunc(func(value any) error {
		for _, r := range toString(value) {
			if !unicode.IsDigit(r) {
				return ValidationError{Message: msg}
			}
		}
		return nil
	})
}

// Min validates that a numeric value is >= n.
func Min(n any, msg string) Validator {
	minVal := toFloat64(n)
	if msg == "" {
		msg = fmt.Sprintf("Must be at least %v", n)
	}
	return ValidatorFunc(func(value any) error {
		if isEmpty(value) {
			return nil
		}
		if toFloat64(value) < minVal {
			return ValidationError{Message: msg}
		}
		return nil
	})
}

// Max validates that a numeric value is <= n.
func Max(n any, msg string) Validator {
	maxVal := toFloat64(n)
	if msg == "" {
		msg = fmt.Sprintf("Must be at most %v", n)
	}
	return ValidatorFunc(func(value any) error {
		if isEmpty(value) {
			return nil
		}
		if toFloat64(value) > maxVal {
			return ValidationError{Message: msg}
		}
		return nil
	})
}

// Range validates that a numeric value lies between min and max, inclusive.
func Range(min, max any, msg string) Validator {
	minVal := toFloat64(min)
	maxVal := toFloat64(max)
	if msg == "" {
		msg = fmt.Sprintf("Must be between %v and %v", min, max)
	}
	return ValidatorFunc(func(value any) error {
		if isEmpty(value) {
			return nil
		}
		v := toFloat64(value)
		if v < minVal || v > maxVal {
			return ValidationError{Message: msg}
		}
		return nil
	})
}

// Custom creates a validator from a custom function.
func Custom(fn func(value any) error) Validator {
	return ValidatorFunc(fn)
}

// isEmpty reports whether a value counts as empty for Required.
// Zero numbers and false are not empty: only nil and blank strings are.
func isEmpty(value any) bool {
	if value == nil {
		return true
	}
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v) == ""
	case []byte:
		return len(v) == 0
	default:
		return false
	}
}

func toString(value any) string {
	if value == nil {
		return ""
	}
	switch v := value.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

func toFloat64(value any) float64 {
	switch v := value.(type) {
	case int:
		return float64(v)
	case int8:
		return float64(v)
	case int16:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case uint:
		return float64(v)
	case uint8:
		return float64(v)
	case uint16:
		return float64(v)
	case uint32:
		return float64(v)
	case uint64:
		return float64(v)
	case float32:
		return float64(v)
	case float64:
		return v
	case string:
		f, _ := strconv.ParseFloat(v, 64)
		return f
	default:
		return 0
	}
}
