package market

import (
	"fmt"
	"time"
)

// Phase classifies where the current time falls in the trading day
type Phase string

const (
	PhasePreOpen   Phase = "PRE_OPEN"   // before 09:15
	PhaseOpening   Phase = "OPENING"    // 09:15-09:30, price discovery
	PhaseOpen      Phase = "OPEN"       // 09:30-15:20
	PhaseSquareOff Phase = "SQUARE_OFF" // 15:20-15:30
	PhaseClosed    Phase = "CLOSED"     // after 15:30 or weekend
)

// Session boundaries in minutes from midnight, exchange local time
const (
	minuteExchangeOpen  = 9*60 + 15  // 09:15
	minuteSafeEntry     = 9*60 + 30  // 09:30
	minuteSquareOff     = 15*60 + 20 // 15:20
	minuteExchangeClose = 15*60 + 30 // 15:30
)

// Clock answers market-session questions in the exchange timezone (IST)
type Clock struct {
	loc *time.Location
}

// NewClock creates a clock pinned to the exchange timezone
func NewClock() (*Clock, error) {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		return nil, fmt.Errorf("load exchange timezone: %w", err)
	}
	return &Clock{loc: loc}, nil
}

// Now returns the current exchange-local time
func (c *Clock) Now() time.Time {
	return time.Now().In(c.loc)
}

// IsOpenAt reports whether t falls inside the tradeable window
// (weekday, 09:30 up to the 15:20 square-off, exchange time)
func (c *Clock) IsOpenAt(t time.Time) bool {
	t = t.In(c.loc)
	if isWeekend(t) {
		return false
	}
	m := minuteOfDay(t)
	return m >= minuteSafeEntry && m < minuteSquareOff
}

// IsOpen reports whether the market is tradeable right now
func (c *Clock) IsOpen() bool {
	return c.IsOpenAt(c.Now())
}

// PhaseAt classifies t and returns a human-readable warning for phases where
// entering new trades is unwise. The warning is empty while fully open.
func (c *Clock) PhaseAt(t time.Time) (Phase, string) {
	t = t.In(c.loc)

	if isWeekend(t) {
		return PhaseClosed, "market closed"
	}

	m := minuteOfDay(t)
	switch {
	case m < minuteExchangeOpen:
		return PhasePreOpen, "market not yet open, data shown is from previous close"
	case m < minuteSafeEntry:
		return PhaseOpening, "first 15 minutes, price discovery in progress, avoid entering trades now"
	case m < minuteSquareOff:
		return PhaseOpen, ""
	case m < minuteExchangeClose:
		return PhaseSquareOff, "square off all positions, do not enter new trades"
	default:
		return PhaseClosed, "market closed"
	}
}

// CurrentPhase classifies the current time
func (c *Clock) CurrentPhase() (Phase, string) {
	return c.PhaseAt(c.Now())
}

func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func minuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
