package params

import (
	"fmt"
	"strconv"
	"strings"
)

// ValidationError is one per-key validation failure.
type ValidationError struct {
	Key     string
	Message string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Key, e.Message)
}

// Validate converts a raw key/string-value configuration into a typed,
// validated parameter set. All errors across all parameters are collected
// before returning; validation never short-circuits on the first bad field.
// The output contains only keys declared in the schema.
func Validate(schema []ParameterDef, raw map[string]string) (ValidatedParams, []ValidationError) {
	values := make(map[string]ParamValue, len(schema))

	var errs []ValidationError

	for _, def := range schema {
		rawValue, present := raw[def.Key]

		if !present {
			if def.Required {
				errs = append(errs, ValidationError{
					Key:     def.Key,
					Message: "required parameter is missing",
				})

				continue
			}

			if def.Default.IsNone() {
				// Optional without a default: omit the key entirely.
				continue
			}

			rawValue = def.Default.Unwrap()
		}

		value, err := parseValue(def, rawValue)
		if err != nil {
			errs = append(errs, ValidationError{Key: def.Key, Message: err.Error()})
			continue
		}

		values[def.Key] = value
	}

	if len(errs) > 0 {
		return ValidatedParams{}, errs
	}

	return ValidatedParams{values: values}, nil
}

func parseValue(def ParameterDef, raw string) (ParamValue, error) {
	switch def.Type {
	case TypeString:
		return StringValue{Value: raw}, nil

	case TypeInt:
		value, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("expected an integer, got %q", raw)
		}

		if err := checkBounds(def, float64(value)); err != nil {
			return nil, err
		}

		return IntValue{Value: value}, nil

	case TypeDecimal:
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("expected a decimal number, got %q", raw)
		}

		if err := checkBounds(def, value); err != nil {
			return nil, err
		}

		return DecimalValue{Value: value}, nil

	case TypeBool:
		switch raw {
		case "true":
			return BoolValue{Value: true}, nil
		case "false":
			return BoolValue{Value: false}, nil
		default:
			return nil, fmt.Errorf(`expected "true" or "false", got %q`, raw)
		}

	case TypeChoice:
		for _, option := range def.Options {
			if raw == option {
				return ChoiceValue{Value: raw}, nil
			}
		}

		return nil, fmt.Errorf("%q is not one of the allowed options", raw)

	case TypeMultiChoice:
		// Unrecognized entries are dropped silently; the field fails only
		// when none of the entries is a member of the option set.
		var selected []string

		for _, part := range strings.Split(raw, MultiChoiceSeparator) {
			candidate := strings.TrimSpace(part)
			for _, option := range def.Options {
				if candidate == option {
					selected = append(selected, candidate)
					break
				}
			}
		}

		if len(selected) == 0 {
			return nil, fmt.Errorf("no valid options in %q", raw)
		}

		return MultiChoiceValue{Values: selected}, nil

	default:
		return nil, fmt.Errorf("unknown parameter type %q", def.Type)
	}
}

// Bounds are inclusive on both ends.
func checkBounds(def ParameterDef, value float64) error {
	if def.Min.IsSome() && value < def.Min.Unwrap() {
		return fmt.Errorf("value %v is below the minimum %v", value, def.Min.Unwrap())
	}

	if def.Max.IsSome() && value > def.Max.Unwrap() {
		return fmt.Errorf("value %v is above the maximum %v", value, def.Max.Unwrap())
	}

	return nil
}
