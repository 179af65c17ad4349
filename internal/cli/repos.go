package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"pytt/config"
	"pytt/gitfind"
	"pytt/internal/store"
)

var (
	reposSubLevel bool
	reposJSON     bool
	reposNoCache  bool
)

var reposCmd = &cobra.Command{
	Use:   "repos [root...]",
	Short: "List Git repositories under a directory",
	Long: `List every Git repository found under the given roots, or under
the configured roots, or under the working directory.

With --sub-level the children of each child directory are checked
instead of the children themselves, matching a checkout layout like
~/src/<host>/<repo>.

Examples:
  pytt repos ~/src
  pytt repos --sub-level --json ~/src ~/work`,
	RunE: runRepos,
}

func init() {
	rootCmd.AddCommand(reposCmd)
	reposCmd.Flags().BoolVarP(&reposSubLevel, "sub-level", "s", false, "scan one directory level deeper")
	reposCmd.Flags().BoolVar(&reposJSON, "json", false, "output as JSON")
	reposCmd.Flags().BoolVar(&reposNoCache, "no-cache", false, "rescan even when a fresh cached result exists")
}

func runRepos(cmd *cobra.Command, args []string) error {
	roots, err := scanRoots(args)
	if err != nil {
		return err
	}

	repos, err := collectRepos(roots, subLevelSetting(cmd, reposSubLevel), reposNoCache)
	if err != nil {
		return err
	}

	if reposJSON {
		output, _ := json.MarshalIndent(repos, "", "  ")
		fmt.Println(string(output))
		return nil
	}

	if len(repos) == 0 {
		fmt.Println("No repositories found.")
		return nil
	}
	for _, repo := range repos {
		fmt.Println(repo)
	}
	return nil
}

// scanRoots resolves the roots to scan: the command arguments, the
// configured roots, or the working directory, in that order.
func scanRoots(args []string) ([]string, error) {
	roots := args
	if len(roots) == 0 {
		roots = GetConfig().Repos.Roots
	}
	if len(roots) == 0 {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		roots = []string{wd}
	}

	abs := make([]string, len(roots))
	for i, root := range roots {
		path, err := filepath.Abs(root)
		if err != nil {
			return nil, fmt.Errorf("invalid root %s: %w", root, err)
		}
		abs[i] = path
	}
	return abs, nil
}

// subLevelSetting merges the config default with an explicit flag.
func subLevelSetting(cmd *cobra.Command, flagValue bool) bool {
	if cmd.Flags().Changed("sub-level") {
		return flagValue
	}
	return GetConfig().Repos.SubLevel
}

// collectRepos scans every root, through the scan cache when enabled,
// and returns the merged sorted repository list.
func collectRepos(roots []string, subLevel, noCache bool) ([]string, error) {
	cfg := GetConfig()
	finder := gitfind.NewFinder(cfg.Repos.Ignores)

	var cache *store.Cache
	if cfg.Repos.Cache {
		cache = openCache()
	}
	if cache != nil {
		defer cache.Close()
	}

	var all []string
	for _, root := range roots {
		if cache != nil && !noCache {
			if repos, ok := cache.Get(root, subLevel); ok {
				all = append(all, repos...)
				continue
			}
		}

		repos, err := finder.Find(root, subLevel)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", root, err)
		}
		if cache != nil {
			cache.Put(root, subLevel, repos)
		}
		all = append(all, repos...)
	}

	sort.Strings(all)
	return all, nil
}

// openCache opens the scan cache, or returns nil so scanning proceeds
// without one.
func openCache() *store.Cache {
	path, err := config.CachePath()
	if err != nil {
		return nil
	}
	cache, err := store.Open(path, GetConfig().CacheTTL())
	if err != nil {
		return nil
	}
	return cache
}
