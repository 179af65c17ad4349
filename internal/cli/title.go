package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"pytt/title"
)

var (
	titleEveryWord bool
	titleLower     []string
)

// maxLine caps one line read from standard input.
const maxLine = 1 << 20

var titleCmd = &cobra.Command{
	Use:   "title [text...]",
	Short: "Re-capitalize text following English title rules",
	Long: `Re-capitalize text following English title capitalization rules.

Arguments are joined with single spaces and transformed as one line.
Without arguments the command acts as a filter: every line read from
standard input is transformed on its own.

Examples:
  pytt title "anna von hausswolff - the truth"
  mpc current | pytt title
  pytt title -e "capitalize EVERY single word"`,
	RunE: runTitle,
}

func init() {
	rootCmd.AddCommand(titleCmd)
	titleCmd.Flags().BoolVarP(&titleEveryWord, "every-word", "e", false, "capitalize every word, minor words included")
	titleCmd.Flags().StringSliceVar(&titleLower, "lower", nil, "words to lowercase instead of the built-in list")
}

func runTitle(cmd *cobra.Command, args []string) error {
	transform := titleTransform()

	if len(args) > 0 {
		fmt.Println(transform(strings.Join(args, " ")))
		return nil
	}
	return transformLines(os.Stdin, os.Stdout, transform)
}

// transformLines applies transform to every line of r and writes the
// results to w. Lines up to maxLine bytes are accepted.
func transformLines(r io.Reader, w io.Writer, transform func(string) string) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLine)
	for scanner.Scan() {
		fmt.Fprintln(w, transform(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}

// titleTransform picks the transform for the current flags and config:
// --every-word beats everything, --lower beats the configured list, and
// the configured list beats the built-in one.
func titleTransform() func(string) string {
	if titleEveryWord {
		return title.Capitalize
	}

	lower := titleLower
	if lower == nil {
		lower = GetConfig().Title.Lowercase
	}
	if len(lower) == 0 {
		return title.Titleize
	}
	return func(text string) string {
		return title.TitleizeWith(text, lower)
	}
}
