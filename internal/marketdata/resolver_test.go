package marketdata

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nravi/optionpulse/internal/contracts"
	"github.com/nravi/optionpulse/pkg/logger"
)

// downResolver builds a resolver whose every live fetch fails, so only
// manual overrides can populate the snapshot
func downResolver(t *testing.T) *Resolver {
	t.Helper()
	svc := testService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	return NewResolver(svc, logger.NewNop())
}

// liveResolver builds a resolver whose charts always serve the given change
func liveResolver(t *testing.T) *Resolver {
	t.Helper()
	svc := testService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, chartJSON("100.0, 102.0"))
	}))
	return NewResolver(svc, logger.NewNop())
}

func TestOverrides_Validate(t *testing.T) {
	neg := -1
	pos := 5

	tests := []struct {
		name      string
		overrides Overrides
		wantErr   bool
	}{
		{"empty", Overrides{}, false},
		{"positive counts", Overrides{Advances: &pos, Declines: &pos}, false},
		{"zero counts", Overrides{Advances: new(int), Declines: new(int)}, false},
		{"negative advances", Overrides{Advances: &neg}, true},
		{"negative declines", Overrides{Declines: &neg}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.overrides.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestResolver_Resolve_RejectsInvalidInput(t *testing.T) {
	resolver := downResolver(t)
	neg := -3

	_, err := resolver.Resolve(context.Background(), Overrides{Declines: &neg})

	assert.Error(t, err)
}

func TestResolver_Resolve_OverridesWin(t *testing.T) {
	// Live fetch would resolve the VIX, the override must still win
	resolver := liveResolver(t)

	overrides := Overrides{
		VolatilityIndex: contracts.Float(18.5),
		PutCallRatio:    contracts.Float(1.33),
	}

	snap, err := resolver.Resolve(context.Background(), overrides)

	require.NoError(t, err)
	require.NotNil(t, snap.VolatilityIndex)
	assert.Equal(t, 18.5, *snap.VolatilityIndex)
	require.NotNil(t, snap.PutCallRatio)
	assert.Equal(t, 1.33, *snap.PutCallRatio)
}

func TestResolver_Resolve_ManualOnlyCountsDefaultZero(t *testing.T) {
	resolver := downResolver(t)

	snap, err := resolver.Resolve(context.Background(), Overrides{})

	require.NoError(t, err)
	assert.Zero(t, snap.Advances)
	assert.Zero(t, snap.Declines)
}

func TestResolver_Resolve_CountOverrides(t *testing.T) {
	resolver := downResolver(t)
	adv, dec := 320, 180

	snap, err := resolver.Resolve(context.Background(), Overrides{Advances: &adv, Declines: &dec})

	require.NoError(t, err)
	assert.Equal(t, 320, snap.Advances)
	assert.Equal(t, 180, snap.Declines)
}

func TestResolver_Resolve_AllKeysInvariant(t *testing.T) {
	resolver := downResolver(t)

	snap, err := resolver.Resolve(context.Background(), Overrides{})

	require.NoError(t, err)
	assert.Len(t, snap.BasketChanges, len(BasketSymbols))
	assert.Len(t, snap.SectorChanges, len(SectorIndices))
	for _, v := range snap.BasketChanges {
		assert.Nil(t, v)
	}
}

func TestResolver_Resolve_ChangeOverrides(t *testing.T) {
	resolver := downResolver(t)

	overrides := Overrides{
		BasketChanges: map[string]*float64{
			"RELIANCE": contracts.Float(1.8),
			"BOGUS":    contracts.Float(9.9), // unknown symbol, ignored
		},
		SectorChanges: map[string]*float64{
			"Bank": contracts.Float(-0.6),
		},
	}

	snap, err := resolver.Resolve(context.Background(), overrides)

	require.NoError(t, err)

	require.NotNil(t, snap.BasketChanges["RELIANCE"])
	assert.Equal(t, 1.8, *snap.BasketChanges["RELIANCE"])
	_, hasBogus := snap.BasketChanges["BOGUS"]
	assert.False(t, hasBogus)

	require.NotNil(t, snap.SectorChanges["Bank"])
	assert.Equal(t, -0.6, *snap.SectorChanges["Bank"])
}
