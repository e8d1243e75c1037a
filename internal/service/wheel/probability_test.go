package wheel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wheel_backend/internal/model"
)

func defaultSectors() []model.PrizeTier {
	return []model.PrizeTier{
		{Amount: 0, BaseProbability: 80, MaxProbability: 90},
		{Amount: 300, BaseProbability: 7, MaxProbability: 5},
		{Amount: 500, BaseProbability: 5, MaxProbability: 3},
		{Amount: 1000, BaseProbability: 4, MaxProbability: 1},
		{Amount: 2000, BaseProbability: 4, MaxProbability: 1},
	}
}

func TestCalculateProbabilities_SumIsOne(t *testing.T) {
	sectors := defaultSectors()

	for _, fraction := range []float64{0, 0.1, 0.25, 0.5, 0.75, 0.99, 1} {
		probs := CalculateProbabilities(sectors, fraction)
		require.Len(t, probs, len(sectors))

		sum := 0.0
		for _, p := range probs {
			assert.GreaterOrEqual(t, p, 0.0)
			sum += p
		}
		assert.InDelta(t, 1.0, sum, 1e-9, "fraction=%v", fraction)
	}
}

func TestCalculateProbabilities_FreshLimitMatchesBase(t *testing.T) {
	sectors := defaultSectors()

	probs := CalculateProbabilities(sectors, 0)

	// Базовые проценты в сумме дают 100, нормализация их не меняет
	for _, s := range sectors {
		assert.InDelta(t, s.BaseProbability/100.0, probs[s.Amount], 1e-9)
	}
}

func TestCalculateProbabilities_ExhaustedLimitMatchesMax(t *testing.T) {
	sectors := defaultSectors()

	probs := CalculateProbabilities(sectors, 1)

	for _, s := range sectors {
		assert.InDelta(t, s.MaxProbability/100.0, probs[s.Amount], 1e-9)
	}
}

func TestCalculateProbabilities_ZeroSectorGrowsWithSpending(t *testing.T) {
	sectors := defaultSectors()

	prevZero := -1.0
	prevBig := 2.0
	for _, fraction := range []float64{0, 0.25, 0.5, 0.75, 1} {
		probs := CalculateProbabilities(sectors, fraction)

		assert.Greater(t, probs[0], prevZero, "fraction=%v", fraction)
		assert.Less(t, probs[2000], prevBig, "fraction=%v", fraction)

		prevZero = probs[0]
		prevBig = probs[2000]
	}
}

func TestCalculateProbabilities_FractionClamped(t *testing.T) {
	sectors := defaultSectors()

	below := CalculateProbabilities(sectors, -0.5)
	atZero := CalculateProbabilities(sectors, 0)
	assert.Equal(t, atZero, below)

	above := CalculateProbabilities(sectors, 3.7)
	atOne := CalculateProbabilities(sectors, 1)
	assert.Equal(t, atOne, above)
}

func TestCalculateProbabilities_DegenerateSumFallsBackToBase(t *testing.T) {
	// При fraction=1 интерполированные веса нулевые, распределение
	// должно откатиться на нормализованные базовые
	sectors := []model.PrizeTier{
		{Amount: 0, BaseProbability: 30, MaxProbability: 0},
		{Amount: 100, BaseProbability: 10, MaxProbability: 0},
	}

	probs := CalculateProbabilities(sectors, 1)

	assert.InDelta(t, 0.75, probs[0], 1e-9)
	assert.InDelta(t, 0.25, probs[100], 1e-9)
}

func TestCalculateProbabilities_AllZeroWeightsUniform(t *testing.T) {
	sectors := []model.PrizeTier{
		{Amount: 0, BaseProbability: 0, MaxProbability: 0},
		{Amount: 100, BaseProbability: 0, MaxProbability: 0},
		{Amount: 200, BaseProbability: 0, MaxProbability: 0},
		{Amount: 300, BaseProbability: 0, MaxProbability: 0},
	}

	probs := CalculateProbabilities(sectors, 0.5)

	for _, s := range sectors {
		assert.InDelta(t, 0.25, probs[s.Amount], 1e-9)
	}
}
