// Package colors generates preset terminal color and attribute escape
// values for easy use with standard print functions.
//
// ANSI 16 colors and basic style attributes only. All values are empty
// strings when the NO_COLOR environment variable is set or when the
// program is not running inside an interactive TTY, so colors switch
// off automatically during redirection or piping.
//
// Use InitAuto for the recommended default behaviour. InitOn and
// InitOff enforce a specific behaviour, e.g. to back a --color=on/off
// flag.
//
// Usage:
//
//	ansi := colors.InitAuto()
//	fmt.Printf("%sHello, 世界%s\n", ansi.Fg.BrightRed, ansi.Attr.Reset)
package colors

import (
	"os"

	"golang.org/x/term"
)

// Attributes holds terminal style attributes.
type Attributes struct {
	Blink     string
	Bold      string
	Italic    string
	Reset     string
	Reverse   string
	Underline string
}

// Palette holds the sixteen ANSI colors of one layer, foreground or
// background.
type Palette struct {
	Black   string
	Red     string
	Green   string
	Yellow  string
	Blue    string
	Magenta string
	Cyan    string
	White   string

	BrightBlack   string
	BrightRed     string
	BrightGreen   string
	BrightYellow  string
	BrightBlue    string
	BrightMagenta string
	BrightCyan    string
	BrightWhite   string
}

// Codes bundles all attribute and color values.
type Codes struct {
	Attr Attributes
	Bg   Palette
	Fg   Palette
}

// Init returns the escape table for the given terminal state: the full
// table on an interactive TTY with NO_COLOR unset, and empty strings
// otherwise. It is a pure function of its arguments.
func Init(isTTY, noColor bool) Codes {
	if isTTY && !noColor {
		return InitOn()
	}
	return InitOff()
}

// InitAuto detects the terminal state of standard output and returns
// the matching escape table. Setting NO_COLOR to any value, even the
// empty string, disables colors.
func InitAuto() Codes {
	_, noColor := os.LookupEnv("NO_COLOR")
	return Init(term.IsTerminal(int(os.Stdout.Fd())), noColor)
}

// InitOn returns the escape table with preset attribute and color values.
func InitOn() Codes {
	return Codes{
		Attr: Attributes{
			Reset:     "\033[0m",
			Bold:      "\033[1m",
			Italic:    "\033[3m",
			Underline: "\033[4m",
			Blink:     "\033[5m",
			Reverse:   "\033[7m",
		},
		Bg: Palette{
			Black:   "\033[40m",
			Red:     "\033[41m",
			Green:   "\033[42m",
			Yellow:  "\033[43m",
			Blue:    "\033[44m",
			Magenta: "\033[45m",
			Cyan:    "\033[46m",
			White:   "\033[47m",

			BrightBlack:   "\033[100m",
			BrightRed:     "\033[101m",
			BrightGreen:   "\033[102m",
			BrightYellow:  "\033[103m",
			BrightBlue:    "\033[104m",
			BrightMagenta: "\033[105m",
			BrightCyan:    "\033[106m",
			BrightWhite:   "\033[107m",
		},
		Fg: Palette{
			Black:   "\033[30m",
			Red:     "\033[31m",
			Green:   "\033[32m",
			Yellow:  "\033[33m",
			Blue:    "\033[34m",
			Magenta: "\033[35m",
			Cyan:    "\033[36m",
			White:   "\033[37m",

			BrightBlack:   "\033[90m",
			BrightRed:     "\033[91m",
			BrightGreen:   "\033[92m",
			BrightYellow:  "\033[93m",
			BrightBlue:    "\033[94m",
			BrightMagenta: "\033[95m",
			BrightCyan:    "\033[96m",
			BrightWhite:   "\033[97m",
		},
	}
}

// InitOff returns the escape table with empty attribute and color values.
func InitOff() Codes {
	// Zero values, i.e. empty strings.
	return Codes{}
}
