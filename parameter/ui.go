package parameter

// Layout & Margins
const (
	// TopMargin for status bar
	TopMargin = 1

	// BottomMargin for the selection panel and key hints
	BottomMargin = 2

	// CellAspect is cell height over width, projected rows are compressed by it
	CellAspect = 2.0
)

// Status Bar
const (
	// Level badge text
	LevelTextUniverse = " UNIVERSE "
	LevelTextGalaxy   = " GALAXY "
	LevelTextSystem   = " SYSTEM "

	AutopilotText = " AUTO "

	// ProgressBarWidth is the transition progress bar length in cells
	ProgressBarWidth = 12

	KeyHintText = "hjkl/arrows orbit  +/- zoom  [ ] pick  enter travel  backspace back  a autopilot  m mute  r reseed  q quit"
)

// Point glyphs by projected depth rank, nearest first
var PointGlyphs = []rune{'●', '•', '∙', '·'}
