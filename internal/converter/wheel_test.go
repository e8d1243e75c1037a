package converter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dto "wheel_backend/internal/api/dto/wheel"
	"wheel_backend/internal/model"
)

func TestToSpinResponse(t *testing.T) {
	got := ToSpinResponse(model.SpinResult{
		Result:            500,
		Tickets:           2,
		TimeUntilNextSpin: "11:30",
	})

	assert.True(t, got.Success)
	require.NotNil(t, got.Result)
	assert.Equal(t, 500, *got.Result)
	assert.Equal(t, 2, got.Tickets)
	assert.Equal(t, "11:30", got.TimeUntilNextSpin)
	assert.Empty(t, got.Message)
}

func TestToNoTicketsResponse(t *testing.T) {
	got := ToNoTicketsResponse(model.TimerInfo{
		Tickets:           0,
		TimeUntilNextSpin: "05:12",
	})

	assert.False(t, got.Success)
	assert.Nil(t, got.Result)
	assert.Equal(t, "05:12", got.TimeUntilNextSpin)
	assert.NotEmpty(t, got.Message)
}

func TestToProbabilitiesResponse(t *testing.T) {
	got := ToProbabilitiesResponse(model.ProbabilitiesInfo{
		Stats:        model.DailyStats{TotalWins: 2500, SpinsCount: 40},
		DailyCap:     5000,
		FractionUsed: 0.5,
		Probabilities: map[int]float64{
			0:   0.85,
			300: 0.15,
		},
	})

	assert.Equal(t, int64(2500), got.DailyStats.TotalWins)
	assert.Equal(t, 5000, got.DailyStats.MaxWinPerDay)
	assert.Equal(t, "50.0%", got.DailyStats.PercentageUsed)
	assert.Equal(t, "85.0%", got.Probabilities["0"])
	assert.Equal(t, "15.0%", got.Probabilities["300"])
}

func TestToWheelConfig_SortsSectors(t *testing.T) {
	cfg, err := ToWheelConfig(dto.UpdateConfigRequest{
		DailyCap:         5000,
		FreeSpinInterval: "24h",
		Sectors: []dto.SectorConfig{
			{Amount: 500, BaseProbability: 5, MaxProbability: 3},
			{Amount: 0, BaseProbability: 80, MaxProbability: 90},
			{Amount: 300, BaseProbability: 15, MaxProbability: 7},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 24*time.Hour, cfg.FreeSpinInterval)
	require.Len(t, cfg.Sectors, 3)
	assert.Equal(t, 0, cfg.Sectors[0].Amount)
	assert.Equal(t, 300, cfg.Sectors[1].Amount)
	assert.Equal(t, 500, cfg.Sectors[2].Amount)
}

func TestToWheelConfig_BadInterval(t *testing.T) {
	_, err := ToWheelConfig(dto.UpdateConfigRequest{
		DailyCap:         5000,
		FreeSpinInterval: "daily",
	})
	require.Error(t, err)
}
