package strnat

// Common string literals, exported so callers can avoid scattering the
// same one-character constants around their own code.
const (
	Empty      = ""
	Space      = " "
	Slash      = "/"
	Hashtag    = "#"
	Dot        = "."
	Comma      = ","
	Colon      = ":"
	Semicolon  = ";"
	Dash       = "-"
	Underscore = "_"
	Newline    = "\n"
)

// Unit-of-measure suffixes.
const (
	UnitByte     = "B"
	UnitKilobyte = "KB"
	UnitMegabyte = "MB"
	UnitGigabyte = "GB"
	UnitPercent  = "%"
)
