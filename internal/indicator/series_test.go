package indicator

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type SeriesTestSuite struct {
	suite.Suite
}

func TestSeriesSuite(t *testing.T) {
	suite.Run(t, new(SeriesTestSuite))
}

func (suite *SeriesTestSuite) TestSMA() {
	result := SMA(3, []float64{1, 2, 3, 4, 5})
	suite.True(result.IsSome())
	suite.InDelta(4.0, result.Unwrap(), 1e-9)
}

func (suite *SeriesTestSuite) TestSMAShortSeries() {
	suite.True(SMA(3, []float64{1, 2}).IsNone())
	suite.True(SMA(0, []float64{1, 2}).IsNone())
}

func (suite *SeriesTestSuite) TestEMASeriesSeedAndSmoothing() {
	// Seed = mean(1,2,3) = 2, k = 2/4 = 0.5
	// next = 4*0.5 + 2*0.5 = 3; next = 5*0.5 + 3*0.5 = 4
	result := EMASeries(3, []float64{1, 2, 3, 4, 5})
	suite.Len(result, 3)
	suite.InDelta(2.0, result[0], 1e-9)
	suite.InDelta(3.0, result[1], 1e-9)
	suite.InDelta(4.0, result[2], 1e-9)
}

func (suite *SeriesTestSuite) TestEMASeriesShortSeries() {
	suite.Empty(EMASeries(5, []float64{1, 2, 3}))
}

func (suite *SeriesTestSuite) TestEMA() {
	result := EMA(3, []float64{1, 2, 3, 4, 5})
	suite.True(result.IsSome())
	suite.InDelta(4.0, result.Unwrap(), 1e-9)

	suite.True(EMA(10, []float64{1, 2}).IsNone())
}

func (suite *SeriesTestSuite) TestStdDevPopulation() {
	// Population std dev of {2,4,4,4,5,5,7,9} is exactly 2
	result := StdDev([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	suite.True(result.IsSome())
	suite.InDelta(2.0, result.Unwrap(), 1e-9)
}

func (suite *SeriesTestSuite) TestStdDevUndefinedForSmallSamples() {
	suite.True(StdDev(nil).IsNone())
	suite.True(StdDev([]float64{5}).IsNone())
}

func (suite *SeriesTestSuite) TestRollingStdDev() {
	result := RollingStdDev(2, []float64{1, 3, 5, 7})
	suite.Len(result, 3)
	// Each adjacent pair differs by 2, population std dev = 1
	for _, sd := range result {
		suite.InDelta(1.0, sd, 1e-9)
	}
}

func (suite *SeriesTestSuite) TestReturns() {
	result := Returns([]float64{100, 110, 99})
	suite.Len(result, 2)
	suite.InDelta(0.1, result[0], 1e-9)
	suite.InDelta(-0.1, result[1], 1e-9)
}

func (suite *SeriesTestSuite) TestReturnsZeroPrevious() {
	result := Returns([]float64{0, 5, 10})
	suite.Len(result, 2)
	suite.Equal(0.0, result[0])
	suite.InDelta(1.0, result[1], 1e-9)
}

func (suite *SeriesTestSuite) TestVWAP() {
	result := VWAP([]float64{10, 20}, []float64{1, 3})
	suite.True(result.IsSome())
	suite.InDelta(17.5, result.Unwrap(), 1e-9)
}

func (suite *SeriesTestSuite) TestVWAPZeroVolume() {
	// Zero total volume yields no value, not zero and not an error
	result := VWAP([]float64{10, 20}, []float64{0, 0})
	suite.True(result.IsNone())
}

func (suite *SeriesTestSuite) TestVWAPEmptyInput() {
	suite.True(VWAP(nil, nil).IsNone())
}

func (suite *SeriesTestSuite) TestMomentum() {
	result := Momentum(2, []float64{100, 105, 110})
	suite.True(result.IsSome())
	suite.InDelta(0.1, result.Unwrap(), 1e-9)
}

func (suite *SeriesTestSuite) TestMomentumInsufficientLength() {
	suite.True(Momentum(3, []float64{100, 105, 110}).IsNone())
}

func (suite *SeriesTestSuite) TestMomentumZeroReference() {
	suite.True(Momentum(2, []float64{0, 105, 110}).IsNone())
}

func (suite *SeriesTestSuite) TestClassifyStrictInequality() {
	suite.Equal(1, Classify(0.11, 0.1))
	suite.Equal(-1, Classify(-0.11, 0.1))
	// Boundary values are neutral
	suite.Equal(0, Classify(0.1, 0.1))
	suite.Equal(0, Classify(-0.1, 0.1))
	suite.Equal(0, Classify(0, 0.1))
}
