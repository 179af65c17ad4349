package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"pytt/colors"
	"pytt/internal/gitcmd"
)

var (
	statusSubLevel bool
	statusNoCache  bool
	statusDirty    bool
)

var statusCmd = &cobra.Command{
	Use:   "status [root...]",
	Short: "Show working-tree status for every repository",
	Long: `Show branch, ahead/behind counts and uncommitted changes for
every Git repository found under the given roots.

Examples:
  pytt status ~/src
  pytt status --dirty ~/src`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().BoolVarP(&statusSubLevel, "sub-level", "s", false, "scan one directory level deeper")
	statusCmd.Flags().BoolVar(&statusNoCache, "no-cache", false, "rescan even when a fresh cached result exists")
	statusCmd.Flags().BoolVar(&statusDirty, "dirty", false, "show only repositories needing attention")
}

func runStatus(cmd *cobra.Command, args []string) error {
	roots, err := scanRoots(args)
	if err != nil {
		return err
	}

	repos, err := collectRepos(roots, subLevelSetting(cmd, statusSubLevel), statusNoCache)
	if err != nil {
		return err
	}
	if len(repos) == 0 {
		fmt.Println("No repositories found.")
		return nil
	}

	git := gitcmd.New()
	ansi := Colors()

	for _, repo := range repos {
		st, err := git.Status(repo)
		if err != nil {
			fmt.Printf("%s%s%s  %v\n", ansi.Fg.Red, filepath.Base(repo), ansi.Attr.Reset, err)
			continue
		}
		if statusDirty && st.Clean() && st.Ahead == 0 && st.Behind == 0 {
			continue
		}
		fmt.Println(statusLine(ansi, repo, st))
	}
	return nil
}

// statusLine renders one "name  branch  counts" summary.
func statusLine(ansi colors.Codes, repo string, st gitcmd.Status) string {
	var b strings.Builder

	b.WriteString(ansi.Attr.Bold)
	b.WriteString(filepath.Base(repo))
	b.WriteString(ansi.Attr.Reset)
	b.WriteString("  ")
	b.WriteString(ansi.Fg.Cyan)
	b.WriteString(st.Branch)
	b.WriteString(ansi.Attr.Reset)

	if st.Ahead > 0 {
		fmt.Fprintf(&b, "  %sahead %d%s", ansi.Fg.Yellow, st.Ahead, ansi.Attr.Reset)
	}
	if st.Behind > 0 {
		fmt.Fprintf(&b, "  %sbehind %d%s", ansi.Fg.Yellow, st.Behind, ansi.Attr.Reset)
	}

	if st.Clean() {
		fmt.Fprintf(&b, "  %sclean%s", ansi.Fg.Green, ansi.Attr.Reset)
	} else {
		fmt.Fprintf(&b, "  %s%s%s", ansi.Fg.Red, changeCount(st.Changes), ansi.Attr.Reset)
	}

	return b.String()
}

func changeCount(n int) string {
	if n == 1 {
		return "1 change"
	}
	return fmt.Sprintf("%d changes", n)
}
