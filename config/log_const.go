package config

// Terminal colours used to tag component loggers.
const (
	ColorGreen   = "\033[32m"
	ColorMagenta = "\033[35m"
	ColorPurple  = ColorMagenta
	ColorCyan    = "\033[36m"
	ColorReset   = "\033[0m"
)
