package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nravi/optionpulse/internal/contracts"
)

func TestScoreAdvanceDecline(t *testing.T) {
	tests := []struct {
		name          string
		advances      int
		declines      int
		wantPoints    float64
		wantDirection contracts.Direction
	}{
		{
			name:          "no counts entered",
			advances:      0,
			declines:      0,
			wantPoints:    10,
			wantDirection: contracts.DirectionNeutral,
		},
		{
			name:          "all advances",
			advances:      50,
			declines:      0,
			wantPoints:    20,
			wantDirection: contracts.DirectionBullish,
		},
		{
			name:          "all declines",
			advances:      0,
			declines:      50,
			wantPoints:    20,
			wantDirection: contracts.DirectionBearish,
		},
		{
			name:          "bullish breadth log scaled",
			advances:      30,
			declines:      20,
			wantPoints:    8.1,
			wantDirection: contracts.DirectionBullish,
		},
		{
			name:          "bearish breadth mirrors bullish",
			advances:      20,
			declines:      30,
			wantPoints:    8.1,
			wantDirection: contracts.DirectionBearish,
		},
		{
			name:          "scale invariance",
			advances:      3000,
			declines:      2000,
			wantPoints:    8.1,
			wantDirection: contracts.DirectionBullish,
		},
		{
			name:          "extreme ratio capped at max",
			advances:      1000,
			declines:      1,
			wantPoints:    20,
			wantDirection: contracts.DirectionBullish,
		},
		{
			name:          "neutral band discards computed strength",
			advances:      100,
			declines:      95,
			wantPoints:    10,
			wantDirection: contracts.DirectionNeutral,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreAdvanceDecline(tt.advances, tt.declines)

			assert.InDelta(t, tt.wantPoints, got.Points, 0.001)
			assert.Equal(t, tt.wantDirection, got.Direction)
			assert.LessOrEqual(t, got.Points, advDecMaxPoints)
		})
	}
}
