package ui

import "time"

// UI-wide constants to avoid magic numbers scattered across the codebase.

// Generated button sizing
const (
	// ButtonImageSize is the edge of the square an action image is drawn in
	ButtonImageSize float32 = 24
	// ButtonTitleSize is the text size of action titles
	ButtonTitleSize float32 = 14
	// HighlightAlpha is the black overlay strength on a pressed button
	HighlightAlpha = 0.1
	// hiddenAlpha is the alpha below which content that cannot fade is hidden
	hiddenAlpha float32 = 0.01
)

// Swipe row behavior
const (
	RowHeight   float32 = 76
	RowMinWidth float32 = 320

	// OpenThresholdRatio is the share of the preferred width past which a
	// released drag snaps the actions open
	OpenThresholdRatio float32 = 0.5
	SnapDuration               = 250 * time.Millisecond
)

// Demo window
const (
	WindowWidth  float32 = 480
	WindowHeight float32 = 640
)
