package history

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nravi/optionpulse/internal/contracts"
	"github.com/nravi/optionpulse/pkg/logger"
)

func testEntry(score float64) (contracts.IndicatorSnapshot, contracts.ScoreReport, contracts.TradeRecommendation) {
	snap := contracts.IndicatorSnapshot{
		VolatilityIndex: contracts.Float(13.5),
		PutCallRatio:    contracts.Float(1.1),
		BasketChanges:   map[string]*float64{"RELIANCE": contracts.Float(0.4)},
	}
	report := contracts.ScoreReport{FinalScore: score}
	rec := contracts.TradeRecommendation{
		Kind:      contracts.RecommendationFlat,
		DeltaBand: "10–20Δ both sides",
		Message:   fmt.Sprintf("run %.0f", score),
	}
	return snap, report, rec
}

func TestSession_AppendAndRows(t *testing.T) {
	session := NewSession(logger.NewNop())

	for i := 1; i <= 5; i++ {
		snap, report, rec := testEntry(float64(i * 10))
		session.Append(snap, report, rec)
	}

	assert.Equal(t, 5, session.Len())

	rows := session.Rows()
	require.Len(t, rows, 5)

	// Rows come back in append order
	for i, row := range rows {
		assert.Equal(t, float64((i+1)*10), row.FinalScore)
		assert.NotZero(t, row.Time)
		assert.NotEmpty(t, row.DeltaBand)
	}
}

func TestSession_Clear(t *testing.T) {
	session := NewSession(logger.NewNop())

	snap, report, rec := testEntry(50)
	session.Append(snap, report, rec)
	require.Equal(t, 1, session.Len())

	session.Clear()

	assert.Zero(t, session.Len())
	assert.Empty(t, session.Rows())
}

// Append clones the snapshot, so mutating the caller's copy afterwards must
// not rewrite history
func TestSession_AppendClonesSnapshot(t *testing.T) {
	session := NewSession(logger.NewNop())

	snap, report, rec := testEntry(50)
	session.Append(snap, report, rec)

	*snap.VolatilityIndex = 99
	snap.BasketChanges["RELIANCE"] = contracts.Float(-5)

	entries := session.Entries()
	require.Len(t, entries, 1)

	assert.Equal(t, 13.5, *entries[0].Snapshot.VolatilityIndex)
	assert.Equal(t, 0.4, *entries[0].Snapshot.BasketChanges["RELIANCE"])
}

func TestSession_EntriesCopy(t *testing.T) {
	session := NewSession(logger.NewNop())

	snap, report, rec := testEntry(50)
	session.Append(snap, report, rec)

	entries := session.Entries()
	entries[0].Report.FinalScore = 0

	assert.Equal(t, 50.0, session.Entries()[0].Report.FinalScore)
}
