package constants

import "time"

// Panel Layout Constants
const (
	// ButtonWidth is the outer width of a tool button, icon plus border
	ButtonWidth = 5

	// ButtonHeight is the outer height of a tool button
	ButtonHeight = 3

	// PanelWidth is the panel column width, button plus one cell gap on each side
	PanelWidth = ButtonWidth + 2
)

// Canvas Defaults
const (
	// DefaultColumns is the buffer width when no config or flag sets it
	DefaultColumns = 60

	// DefaultRows is the buffer height when no config or flag sets it
	DefaultRows = 20

	// MaxColumns bounds configured buffer width
	MaxColumns = 1000

	// MaxRows bounds configured buffer height
	MaxRows = 1000

	// DefaultBrushGlyph is used when the palette is empty
	DefaultBrushGlyph = '#'
)

// Shutdown Timing
const (
	// DrainPollInterval is the wait between pending input checks during teardown
	DrainPollInterval = 100 * time.Millisecond

	// DrainMaxPolls bounds the teardown drain loop
	DrainMaxPolls = 10

	// DrainBatchSize bounds the events discarded per poll interval
	DrainBatchSize = 256
)

// Status Line
const (
	// StatusMessageTimeout is how long a transient status message stays visible
	StatusMessageTimeout = 3 * time.Second

	// ConfigReloadDebounce coalesces bursts of file events from editors
	ConfigReloadDebounce = 150 * time.Millisecond
)
