package params

import (
	"encoding/json"
	"strconv"

	"github.com/invopop/jsonschema"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// ToJSONSchema renders a parameter schema as a JSON Schema document so the
// dashboard can build configuration forms without knowing step internals.
func ToJSONSchema(title string, schema []ParameterDef) (string, error) {
	properties := orderedmap.New[string, *jsonschema.Schema]()

	var required []string

	for _, def := range schema {
		property := &jsonschema.Schema{
			Title:       def.Name,
			Description: def.Description,
		}

		switch def.Type {
		case TypeString:
			property.Type = "string"
		case TypeInt:
			property.Type = "integer"
			applyBounds(property, def)
		case TypeDecimal:
			property.Type = "number"
			applyBounds(property, def)
		case TypeBool:
			property.Type = "boolean"
		case TypeChoice:
			property.Type = "string"
			property.Enum = enumValues(def.Options)
		case TypeMultiChoice:
			property.Type = "array"
			property.Items = &jsonschema.Schema{
				Type: "string",
				Enum: enumValues(def.Options),
			}
		}

		if def.Default.IsSome() {
			property.Default = def.Default.Unwrap()
		}

		properties.Set(def.Key, property)

		if def.Required {
			required = append(required, def.Key)
		}
	}

	document := &jsonschema.Schema{
		Title:      title,
		Type:       "object",
		Properties: properties,
		Required:   required,
	}

	raw, err := json.Marshal(document)
	if err != nil {
		return "", err
	}

	return string(raw), nil
}

func applyBounds(property *jsonschema.Schema, def ParameterDef) {
	if def.Min.IsSome() {
		property.Minimum = json.Number(strconv.FormatFloat(def.Min.Unwrap(), 'f', -1, 64))
	}

	if def.Max.IsSome() {
		property.Maximum = json.Number(strconv.FormatFloat(def.Max.Unwrap(), 'f', -1, 64))
	}
}

func enumValues(options []string) []any {
	values := make([]any, len(options))
	for i, option := range options {
		values[i] = option
	}

	return values
}
