// Package palette provides raw SGR attribute sequences for terminal styling.
package palette

import "strconv"

// SGR attribute toggles.
const (
	Reset         = "\x1b[0m"
	Bold          = "\x1b[1m"
	Italic        = "\x1b[3m"
	Underline     = "\x1b[4m"
	Strikethrough = "\x1b[9m"
)

// Fg returns the SGR sequence selecting a 256-palette foreground color.
func Fg(index uint8) string {
	return "\x1b[38;5;" + strconv.Itoa(int(index)) + "m"
}

// Bg returns the SGR sequence selecting a 256-palette background color.
func Bg(index uint8) string {
	return "\x1b[48;5;" + strconv.Itoa(int(index)) + "m"
}
