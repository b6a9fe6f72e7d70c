package theme

import "charm.land/lipgloss/v2"

var (
	ColorBlack = lipgloss.Color("#000000")
	ColorWhite = lipgloss.Color("#FFFFFF")
	ColorDim   = lipgloss.Color("#666666")
)

var (
	ColorPulse        = lipgloss.Color("#FF2D55") // brand accent, cardio red
	ColorPoints       = lipgloss.Color("#FFB020") // point totals
	ColorActiveTime   = lipgloss.Color("#0093E7") // active-minute totals
	ColorConnected    = lipgloss.Color("#16EC06") // tracker linked
	ColorDisconnected = lipgloss.Color("#FF0026") // tracker not linked
)

var (
	ColorBgDark  = lipgloss.Color("#14100F") // darker end of gradient
	ColorBgLight = lipgloss.Color("#2E2421") // lighter end of gradient
)
