package cli

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"pytt/internal/gitcmd"
)

var (
	pullSubLevel bool
	pullNoCache  bool
	pullJobs     int
)

var pullCmd = &cobra.Command{
	Use:   "pull [root...]",
	Short: "Pull every repository",
	Long: `Fast-forward pull every Git repository found under the given
roots. Pulls run in parallel; results are printed in repository order
once all of them have finished.

Examples:
  pytt pull ~/src
  pytt pull -j 8 --sub-level ~/src`,
	RunE: runPull,
}

func init() {
	rootCmd.AddCommand(pullCmd)
	pullCmd.Flags().BoolVarP(&pullSubLevel, "sub-level", "s", false, "scan one directory level deeper")
	pullCmd.Flags().BoolVar(&pullNoCache, "no-cache", false, "rescan even when a fresh cached result exists")
	pullCmd.Flags().IntVarP(&pullJobs, "jobs", "j", 0, "parallel pulls (default from config)")
}

func runPull(cmd *cobra.Command, args []string) error {
	roots, err := scanRoots(args)
	if err != nil {
		return err
	}

	repos, err := collectRepos(roots, subLevelSetting(cmd, pullSubLevel), pullNoCache)
	if err != nil {
		return err
	}
	if len(repos) == 0 {
		fmt.Println("No repositories found.")
		return nil
	}

	// Determine worker count
	jobs := GetConfig().Repos.Jobs
	if pullJobs > 0 {
		jobs = pullJobs
	}
	if jobs < 1 {
		jobs = 1
	}
	if jobs > len(repos) {
		jobs = len(repos)
	}

	bar := progressbar.NewOptions(len(repos),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowBytes(false),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetDescription("[cyan]Pulling[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			fmt.Println()
		}),
	)

	type outcome struct {
		updated bool
		err     error
	}
	outcomes := make([]outcome, len(repos))

	git := gitcmd.New()
	work := make(chan int)
	var barMu sync.Mutex
	var wg sync.WaitGroup

	wg.Add(jobs)
	for w := 0; w < jobs; w++ {
		go func() {
			defer wg.Done()
			for i := range work {
				updated, err := git.Pull(repos[i])
				outcomes[i] = outcome{updated: updated, err: err}

				barMu.Lock()
				bar.Add(1)
				barMu.Unlock()
			}
		}()
	}
	for i := range repos {
		work <- i
	}
	close(work)
	wg.Wait()

	// Print results in repository order
	ansi := Colors()
	updated, failed := 0, 0
	for i, repo := range repos {
		switch {
		case outcomes[i].err != nil:
			failed++
			fmt.Printf("%s%s%s  %v\n", ansi.Fg.Red, filepath.Base(repo), ansi.Attr.Reset, outcomes[i].err)
		case outcomes[i].updated:
			updated++
			fmt.Printf("%s%s%s  updated\n", ansi.Fg.Green, filepath.Base(repo), ansi.Attr.Reset)
		}
	}

	fmt.Printf("\n%d repositories: %d updated, %d up to date, %d failed\n",
		len(repos), updated, len(repos)-updated-failed, failed)

	if failed > 0 {
		return fmt.Errorf("%d of %d pulls failed", failed, len(repos))
	}
	return nil
}
