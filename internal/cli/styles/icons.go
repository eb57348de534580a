package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconGlobe    = "\uf0ac" // browser/web
	IconCheck    = "\uf00c" // check
	IconX        = "\uf00d" // x
	IconWarning  = "\uf071" // warning
	IconInfo     = "\uf05a" // info
	IconCode     = "\uf121" // code
	IconConfig   = "\ue615" // config
	IconDatabase = "\uf1c0" // database
	IconFolder   = "\uf07b" // folder
	IconTrash    = "\uf1f8" // trash
	IconKey      = "\uf084" // key
	IconChat     = "\uf086" // comments
	IconPalette  = "\uf1fc" // paint brush
	IconCursor   = "\uf054" // chevron-right
	IconClock    = "\uf017" // clock
)
