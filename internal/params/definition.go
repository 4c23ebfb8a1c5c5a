// Package params declares the typed configuration a step kind accepts and
// converts raw string configuration into validated parameter sets.
package params

import "github.com/moznion/go-optional"

// ParameterType is the declared type of a step parameter.
type ParameterType string

const (
	TypeString      ParameterType = "STRING"
	TypeInt         ParameterType = "INT"
	TypeDecimal     ParameterType = "DECIMAL"
	TypeBool        ParameterType = "BOOL"
	TypeChoice      ParameterType = "CHOICE"
	TypeMultiChoice ParameterType = "MULTI_CHOICE"
)

// MultiChoiceSeparator joins multi-valued choices in their persisted string
// form.
const MultiChoiceSeparator = ","

// ParameterDef declares one configurable input of a step kind. Definitions
// are immutable and declared once per step kind.
type ParameterDef struct {
	// Key is the map key in the raw parameter configuration.
	Key         string
	Name        string
	Description string
	Type        ParameterType
	Required    bool
	// Default is the raw string form substituted when an optional parameter
	// is absent. It is parsed like user input.
	Default optional.Option[string]
	// Min and Max bound Int and Decimal parameters, inclusive.
	Min optional.Option[float64]
	Max optional.Option[float64]
	// Options is the allowed value set for Choice and MultiChoice.
	Options []string
	// Group is a UI grouping hint with no engine behavior.
	Group string
}

// String declares an unconstrained text parameter.
func String(key, name, description string) ParameterDef {
	return ParameterDef{Key: key, Name: name, Description: description, Type: TypeString}
}

// Int declares an integer parameter with inclusive bounds.
func Int(key, name, description string, min, max int) ParameterDef {
	return ParameterDef{
		Key:         key,
		Name:        name,
		Description: description,
		Type:        TypeInt,
		Min:         optional.Some(float64(min)),
		Max:         optional.Some(float64(max)),
	}
}

// Decimal declares a decimal parameter with inclusive bounds.
func Decimal(key, name, description string, min, max float64) ParameterDef {
	return ParameterDef{
		Key:         key,
		Name:        name,
		Description: description,
		Type:        TypeDecimal,
		Min:         optional.Some(min),
		Max:         optional.Some(max),
	}
}

// Bool declares a boolean parameter. The raw form must be exactly "true" or
// "false".
func Bool(key, name, description string) ParameterDef {
	return ParameterDef{Key: key, Name: name, Description: description, Type: TypeBool}
}

// Choice declares a single-choice parameter over the given options.
func Choice(key, name, description string, options ...string) ParameterDef {
	return ParameterDef{Key: key, Name: name, Description: description, Type: TypeChoice, Options: options}
}

// MultiChoice declares a multi-choice parameter over the given options.
func MultiChoice(key, name, description string, options ...string) ParameterDef {
	return ParameterDef{Key: key, Name: name, Description: description, Type: TypeMultiChoice, Options: options}
}

// WithRequired marks the parameter as required.
func (d ParameterDef) WithRequired() ParameterDef {
	d.Required = true
	return d
}

// WithDefault sets the raw default value substituted when absent.
func (d ParameterDef) WithDefault(raw string) ParameterDef {
	d.Default = optional.Some(raw)
	return d
}

// WithGroup sets the UI group hint.
func (d ParameterDef) WithGroup(group string) ParameterDef {
	d.Group = group
	return d
}
