package params

// ParamValue is a closed union over the concrete validated value of a
// parameter. Values are produced only by Validate, never constructed from
// untrusted input directly.
type ParamValue interface {
	paramValue()
}

// StringValue holds a validated string parameter.
type StringValue struct {
	Value string
}

// IntValue holds a validated integer parameter.
type IntValue struct {
	Value int
}

// DecimalValue holds a validated decimal parameter.
type DecimalValue struct {
	Value float64
}

// BoolValue holds a validated boolean parameter.
type BoolValue struct {
	Value bool
}

// ChoiceValue holds a validated single choice.
type ChoiceValue struct {
	Value string
}

// MultiChoiceValue holds the validated subset of a multi-choice selection.
type MultiChoiceValue struct {
	Values []string
}

func (StringValue) paramValue()      {}
func (IntValue) paramValue()         {}
func (DecimalValue) paramValue()     {}
func (BoolValue) paramValue()        {}
func (ChoiceValue) paramValue()      {}
func (MultiChoiceValue) paramValue() {}

// ValidatedParams maps parameter keys to validated values. It contains every
// required key and only keys declared in the schema. Immutable after
// validation; consumed through typed accessors that fall back to a
// caller-supplied default when the key is absent.
type ValidatedParams struct {
	values map[string]ParamValue
}

// Has reports whether the key holds a validated value.
func (p ValidatedParams) Has(key string) bool {
	_, ok := p.values[key]
	return ok
}

// GetString returns the string value for the key, or the fallback.
func (p ValidatedParams) GetString(key, fallback string) string {
	if v, ok := p.values[key].(StringValue); ok {
		return v.Value
	}

	return fallback
}

// GetInt returns the int value for the key, or the fallback.
func (p ValidatedParams) GetInt(key string, fallback int) int {
	if v, ok := p.values[key].(IntValue); ok {
		return v.Value
	}

	return fallback
}

// GetDecimal returns the decimal value for the key, or the fallback.
func (p ValidatedParams) GetDecimal(key string, fallback float64) float64 {
	if v, ok := p.values[key].(DecimalValue); ok {
		return v.Value
	}

	return fallback
}

// GetBool returns the bool value for the key, or the fallback.
func (p ValidatedParams) GetBool(key string, fallback bool) bool {
	if v, ok := p.values[key].(BoolValue); ok {
		return v.Value
	}

	return fallback
}

// GetChoice returns the chosen option for the key, or the fallback.
func (p ValidatedParams) GetChoice(key, fallback string) string {
	if v, ok := p.values[key].(ChoiceValue); ok {
		return v.Value
	}

	return fallback
}

// GetMultiChoice returns the chosen options for the key, or the fallback.
func (p ValidatedParams) GetMultiChoice(key string, fallback []string) []string {
	if v, ok := p.values[key].(MultiChoiceValue); ok {
		return v.Values
	}

	return fallback
}
