package config

// Color constants for logging and rendering
const (
	ColorRed     = "\033[31m"
	ColorGreen   = "\033[32m"
	ColorYellow  = "\033[33m"
	ColorBlue    = "\033[34m"
	ColorMagenta = "\033[35m"
	ColorCyan    = "\033[36m"
	ColorReset   = "\033[0m"
)

// Background color constants used by the ASCII renderer
const (
	BgGreen   = "\033[42m"
	BgRed     = "\033[41m"
	BgYellow  = "\033[103m"
	BgMagenta = "\033[105m"
)
