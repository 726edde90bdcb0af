package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nravi/optionpulse/internal/contracts"
)

func TestScoreOIRatio(t *testing.T) {
	tests := []struct {
		name          string
		ratio         *float64
		wantPoints    float64
		wantDirection contracts.Direction
	}{
		{
			name:          "missing ratio falls back to neutral",
			ratio:         nil,
			wantPoints:    15,
			wantDirection: contracts.DirectionNeutral,
		},
		{
			name:          "exactly one is neutral",
			ratio:         contracts.Float(1.0),
			wantPoints:    15,
			wantDirection: contracts.DirectionNeutral,
		},
		{
			name:          "mild put dominance",
			ratio:         contracts.Float(1.2),
			wantPoints:    21,
			wantDirection: contracts.DirectionBullish,
		},
		{
			name:          "heavy put dominance capped at max",
			ratio:         contracts.Float(2.0),
			wantPoints:    30,
			wantDirection: contracts.DirectionBullish,
		},
		{
			name:          "exactly at bearish threshold is neutral",
			ratio:         contracts.Float(0.7),
			wantPoints:    15,
			wantDirection: contracts.DirectionNeutral,
		},
		{
			name:          "mild call dominance",
			ratio:         contracts.Float(0.65),
			wantPoints:    25.5,
			wantDirection: contracts.DirectionBearish,
		},
		{
			name:          "heavy call dominance capped at max",
			ratio:         contracts.Float(0.2),
			wantPoints:    30,
			wantDirection: contracts.DirectionBearish,
		},
		{
			name:          "inside neutral band",
			ratio:         contracts.Float(0.85),
			wantPoints:    15,
			wantDirection: contracts.DirectionNeutral,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreOIRatio(tt.ratio)

			assert.InDelta(t, tt.wantPoints, got.Points, 0.001)
			assert.Equal(t, tt.wantDirection, got.Direction)
			assert.LessOrEqual(t, got.Points, oiMaxPoints)
		})
	}
}
