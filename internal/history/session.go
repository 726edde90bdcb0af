package history

import (
	"sync"
	"time"

	"github.com/nravi/optionpulse/internal/contracts"
	"github.com/nravi/optionpulse/pkg/logger"
)

// Entry is one completed scoring run retained for the session
type Entry struct {
	Time           time.Time                     `json:"time"`
	Snapshot       contracts.IndicatorSnapshot   `json:"snapshot"`
	Report         contracts.ScoreReport         `json:"report"`
	Recommendation contracts.TradeRecommendation `json:"recommendation"`
}

// Row is the flat tabular view of an entry for history display
type Row struct {
	Time            time.Time `json:"time"`
	VolatilityIndex *float64  `json:"volatility_index"`
	PutCallRatio    *float64  `json:"put_call_ratio"`
	FinalScore      float64   `json:"final_score"`
	Message         string    `json:"message"`
	DeltaBand       string    `json:"delta_band"`
}

// Session is the process-lifetime, append-only log of scoring runs. It is
// never persisted; clearing it or restarting the process starts fresh.
// Guarded by a mutex since API handlers run concurrently.
type Session struct {
	mu      sync.RWMutex
	entries []Entry
	logger  *logger.Logger
}

// NewSession creates an empty session log
func NewSession(log *logger.Logger) *Session {
	return &Session{logger: log}
}

// Append records a completed scoring run and returns the stored entry
func (s *Session) Append(snap contracts.IndicatorSnapshot, report contracts.ScoreReport, rec contracts.TradeRecommendation) Entry {
	entry := Entry{
		Time:           time.Now(),
		Snapshot:       snap.Clone(),
		Report:         report,
		Recommendation: rec,
	}

	s.mu.Lock()
	s.entries = append(s.entries, entry)
	count := len(s.entries)
	s.mu.Unlock()

	s.logger.WithFields(map[string]interface{}{
		"final_score": report.FinalScore,
		"kind":        rec.Kind,
		"entries":     count,
	}).Debug("Appended scoring run to session log")

	return entry
}

// Entries returns a copy of all entries in append order
func (s *Session) Entries() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Rows returns the tabular view of the log in append order
func (s *Session) Rows() []Row {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := make([]Row, 0, len(s.entries))
	for _, e := range s.entries {
		rows = append(rows, Row{
			Time:            e.Time,
			VolatilityIndex: e.Snapshot.VolatilityIndex,
			PutCallRatio:    e.Snapshot.PutCallRatio,
			FinalScore:      e.Report.FinalScore,
			Message:         e.Recommendation.Message,
			DeltaBand:       e.Recommendation.DeltaBand,
		})
	}
	return rows
}

// Clear empties the session log
func (s *Session) Clear() {
	s.mu.Lock()
	s.entries = nil
	s.mu.Unlock()

	s.logger.Info("Cleared session log")
}

// Len returns the number of recorded runs
func (s *Session) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.entries)
}
