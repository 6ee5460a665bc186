package platform

import (
	"github.com/charmbracelet/log"
)

// Feedback is a haptic feedback device. Both calls are fire-and-forget.
type Feedback interface {
	// Prepare warms the device up so the next impact has minimal latency
	Prepare()
	// ImpactOccurred fires a single impact
	ImpactOccurred()
}

// NopFeedback ignores every call
type NopFeedback struct{}

// Prepare does nothing
func (NopFeedback) Prepare() {}

// ImpactOccurred does nothing
func (NopFeedback) ImpactOccurred() {}

// LogFeedback stands in for a haptic engine on platforms without one: it
// logs impacts at debug level and counts calls.
type LogFeedback struct {
	logger *log.Logger

	prepared int
	impacts  int
}

// NewLogFeedback creates a feedback device writing to logger
func NewLogFeedback(logger *log.Logger) *LogFeedback {
	return &LogFeedback{logger: logger}
}

// Prepare records a warm-up
func (f *LogFeedback) Prepare() {
	f.prepared++
}

// ImpactOccurred records and logs an impact
func (f *LogFeedback) ImpactOccurred() {
	f.impacts++
	if f.logger != nil {
		f.logger.Debug("haptic impact", "count", f.impacts)
	}
}

// Impacts returns the number of impacts fired so far
func (f *LogFeedback) Impacts() int {
	return f.impacts
}

// Prepared returns the number of warm-ups so far
func (f *LogFeedback) Prepared() int {
	return f.prepared
}
