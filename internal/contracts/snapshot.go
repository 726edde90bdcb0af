package contracts

import "time"

// IndicatorSnapshot is the resolved input to one scoring run.
//
// Optional values are pointers: nil means the value could not be fetched and
// no manual override was supplied. Missing data is an explicit state, so the
// basket and sector maps always carry a key for every configured symbol even
// when the value is nil.
type IndicatorSnapshot struct {
	Timestamp time.Time `json:"timestamp"`

	// Implied-volatility index level (e.g. India VIX)
	VolatilityIndex *float64 `json:"volatility_index"`

	// Per-symbol percent change for the fixed large-cap basket
	BasketChanges map[string]*float64 `json:"basket_changes"`

	// Put OI / call OI for the nearest index-option expiry
	PutCallRatio *float64 `json:"put_call_ratio"`

	// Market-wide breadth counts, manually entered
	Advances int `json:"advances"`
	Declines int `json:"declines"`

	// Per-sector percent change for the fixed sector index set
	SectorChanges map[string]*float64 `json:"sector_changes"`
}

// Clone returns a deep copy of the snapshot
func (s IndicatorSnapshot) Clone() IndicatorSnapshot {
	out := s
	out.VolatilityIndex = cloneFloat(s.VolatilityIndex)
	out.PutCallRatio = cloneFloat(s.PutCallRatio)
	out.BasketChanges = cloneChanges(s.BasketChanges)
	out.SectorChanges = cloneChanges(s.SectorChanges)
	return out
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func cloneChanges(m map[string]*float64) map[string]*float64 {
	if m == nil {
		return nil
	}
	out := make(map[string]*float64, len(m))
	for k, v := range m {
		out[k] = cloneFloat(v)
	}
	return out
}

// Float returns a pointer to v. Convenience for building snapshots.
func Float(v float64) *float64 {
	return &v
}
