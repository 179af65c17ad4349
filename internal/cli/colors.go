package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"pytt/colors"
)

var colorsCmd = &cobra.Command{
	Use:   "colors",
	Short: "Show the terminal color and attribute table",
	Long: `Print every attribute, foreground and background escape the
toolkit knows, rendered with the current color mode. Useful to check
what a terminal supports and which mode is in effect.

Examples:
  pytt colors
  pytt --color on colors | less -R`,
	RunE: runColors,
}

func init() {
	rootCmd.AddCommand(colorsCmd)
}

type colorRow struct {
	name string
	code string
}

func runColors(cmd *cobra.Command, args []string) error {
	ansi := Colors()
	reset := ansi.Attr.Reset

	fmt.Println("attr")
	attrs := []colorRow{
		{"bold", ansi.Attr.Bold},
		{"italic", ansi.Attr.Italic},
		{"underline", ansi.Attr.Underline},
		{"blink", ansi.Attr.Blink},
		{"reverse", ansi.Attr.Reverse},
	}
	for _, row := range attrs {
		fmt.Printf("  %s%s%s\n", row.code, row.name, reset)
	}

	fmt.Println("\nfg")
	for _, row := range paletteRows(ansi.Fg) {
		fmt.Printf("  %s%s%s\n", row.code, row.name, reset)
	}

	fmt.Println("\nbg")
	for _, row := range paletteRows(ansi.Bg) {
		fmt.Printf("  %s%-14s%s\n", row.code, row.name, reset)
	}

	return nil
}

// paletteRows lists a palette in ANSI numeric order.
func paletteRows(p colors.Palette) []colorRow {
	return []colorRow{
		{"black", p.Black},
		{"red", p.Red},
		{"green", p.Green},
		{"yellow", p.Yellow},
		{"blue", p.Blue},
		{"magenta", p.Magenta},
		{"cyan", p.Cyan},
		{"white", p.White},
		{"bright_black", p.BrightBlack},
		{"bright_red", p.BrightRed},
		{"bright_green", p.BrightGreen},
		{"bright_yellow", p.BrightYellow},
		{"bright_blue", p.BrightBlue},
		{"bright_magenta", p.BrightMagenta},
		{"bright_cyan", p.BrightCyan},
		{"bright_white", p.BrightWhite},
	}
}
