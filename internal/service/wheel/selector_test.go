package wheel

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectWinningSector_CertainOutcome(t *testing.T) {
	probs := map[int]float64{0: 0, 300: 1, 500: 0}

	for _, r := range []float64{0, 0.3, 0.5, 0.999999} {
		got := SelectWinningSector(probs, func() float64 { return r })
		assert.Equal(t, 300, got, "rnd=%v", r)
	}
}

func TestSelectWinningSector_BoundariesFollowSortedOrder(t *testing.T) {
	// Сектора обходятся по возрастанию суммы: [0, 0.5) -> 0,
	// [0.5, 0.8) -> 100, [0.8, 1) -> 200
	probs := map[int]float64{0: 0.5, 100: 0.3, 200: 0.2}

	cases := []struct {
		rnd  float64
		want int
	}{
		{0, 0},
		{0.49, 0},
		{0.5, 100},
		{0.79, 100},
		{0.8, 200},
		{0.999, 200},
	}

	for _, tc := range cases {
		got := SelectWinningSector(probs, func() float64 { return tc.rnd })
		assert.Equal(t, tc.want, got, "rnd=%v", tc.rnd)
	}
}

func TestSelectWinningSector_RoundingRemainderGoesToLast(t *testing.T) {
	// Сумма весов чуть меньше 1 из-за округления - точка за последним
	// интервалом достается последнему сектору
	probs := map[int]float64{0: 0.3, 100: 0.3, 200: 0.3}

	got := SelectWinningSector(probs, func() float64 { return 0.99 })
	assert.Equal(t, 200, got)
}

func TestSelectWinningSector_FrequenciesMatchWeights(t *testing.T) {
	probs := CalculateProbabilities(defaultSectors(), 0)

	rnd := rand.New(rand.NewSource(42))
	const draws = 100000

	counts := make(map[int]int)
	for i := 0; i < draws; i++ {
		counts[SelectWinningSector(probs, rnd.Float64)]++
	}

	for amount, p := range probs {
		freq := float64(counts[amount]) / draws
		require.InDelta(t, p, freq, 0.01, "amount=%d", amount)
	}
}
