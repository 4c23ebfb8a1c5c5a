package params

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"
)

type JSONSchemaTestSuite struct {
	suite.Suite
}

func TestJSONSchemaSuite(t *testing.T) {
	suite.Run(t, new(JSONSchemaTestSuite))
}

func (suite *JSONSchemaTestSuite) TestToJSONSchema() {
	schema := []ParameterDef{
		Int("period", "Period", "lookback period", 2, 200).WithRequired().WithDefault("20"),
		Decimal("weight", "Signal Weight", "", 0, 1),
		Choice("timeframe", "Timeframe", "", "1m", "1h"),
		MultiChoice("confirm", "Confirmations", "", "volume", "breadth"),
		Bool("inverted", "Inverted", ""),
	}

	raw, err := ToJSONSchema("EMA Crossover", schema)
	suite.NoError(err)

	var decoded map[string]any
	suite.NoError(json.Unmarshal([]byte(raw), &decoded))

	suite.Equal("EMA Crossover", decoded["title"])
	suite.Equal("object", decoded["type"])

	properties, ok := decoded["properties"].(map[string]any)
	suite.True(ok)
	suite.Len(properties, 5)

	period, ok := properties["period"].(map[string]any)
	suite.True(ok)
	suite.Equal("integer", period["type"])
	suite.Equal(float64(2), period["minimum"])
	suite.Equal(float64(200), period["maximum"])
	suite.Equal("20", period["default"])

	timeframe, ok := properties["timeframe"].(map[string]any)
	suite.True(ok)
	suite.ElementsMatch([]any{"1m", "1h"}, timeframe["enum"])

	required, ok := decoded["required"].([]any)
	suite.True(ok)
	suite.Equal([]any{"period"}, required)
}
