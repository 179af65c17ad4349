// Package gitcmd runs git commands against local repositories.
package gitcmd

import (
	"os/exec"
	"strconv"
	"strings"
)

// Runner executes a git command in a directory and returns its combined
// output. It exists so tests can inject canned command results.
type Runner interface {
	Run(dir string, args ...string) (string, error)
}

// ExecRunner runs git through the binary on PATH.
type ExecRunner struct{}

func (ExecRunner) Run(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	return strings.TrimSpace(string(output)), err
}

// Client performs git operations on repositories.
type Client struct {
	runner Runner
}

// Option configures Client.
type Option func(*Client)

// WithRunner sets a custom command runner, primarily for testing.
func WithRunner(runner Runner) Option {
	return func(c *Client) {
		c.runner = runner
	}
}

// New creates a Client that runs git via the system binary unless
// overridden by options.
func New(opts ...Option) *Client {
	c := &Client{runner: ExecRunner{}}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Status summarizes the working-tree state of one repository.
type Status struct {
	Branch  string // Current branch, or "HEAD" when detached
	Ahead   int    // Commits ahead of upstream
	Behind  int    // Commits behind upstream
	Changes int    // Uncommitted changes, staged or not
}

// Clean reports whether the working tree has no uncommitted changes.
func (s Status) Clean() bool {
	return s.Changes == 0
}

// Status returns the branch and change counts for the repository.
func (c *Client) Status(repo string) (Status, error) {
	output, err := c.runner.Run(repo, "status", "--porcelain", "--branch")
	if err != nil {
		return Status{}, &Error{Op: "status", Repo: repo, Output: output, Err: classify(err, output)}
	}
	return parseStatus(output), nil
}

// Pull fast-forwards the repository from its upstream. The returned
// flag is false when the repository was already up to date.
func (c *Client) Pull(repo string) (bool, error) {
	output, err := c.runner.Run(repo, "pull", "--ff-only")
	if err != nil {
		return false, &Error{Op: "pull", Repo: repo, Output: output, Err: classify(err, output)}
	}
	return !upToDate(output), nil
}

// classify maps well-known git failure messages onto sentinel errors so
// callers can test with errors.Is.
func classify(err error, output string) error {
	if strings.Contains(output, "not a git repository") {
		return ErrNotRepo
	}
	return err
}

// upToDate matches both the current and the pre-2.17 git wording.
func upToDate(output string) bool {
	return strings.Contains(output, "Already up to date") ||
		strings.Contains(output, "Already up-to-date")
}

// parseStatus reads porcelain v1 output with a branch header line.
func parseStatus(output string) Status {
	var st Status
	for _, line := range strings.Split(output, "\n") {
		if line == "" {
			continue
		}
		if header, ok := strings.CutPrefix(line, "## "); ok {
			st.Branch, st.Ahead, st.Behind = parseBranchHeader(header)
			continue
		}
		st.Changes++
	}
	return st
}

// parseBranchHeader picks the branch name and ahead/behind counts out
// of a header like "main...origin/main [ahead 1, behind 2]". Detached
// heads and unborn branches get their plain name with zero counts.
func parseBranchHeader(header string) (branch string, ahead, behind int) {
	if rest, ok := strings.CutPrefix(header, "No commits yet on "); ok {
		return rest, 0, 0
	}
	if strings.HasPrefix(header, "HEAD (") {
		return "HEAD", 0, 0
	}

	if i := strings.Index(header, " ["); i >= 0 {
		counts := strings.Trim(header[i+1:], "[]")
		header = header[:i]
		for _, part := range strings.Split(counts, ", ") {
			if n, ok := strings.CutPrefix(part, "ahead "); ok {
				ahead, _ = strconv.Atoi(n)
			}
			if n, ok := strings.CutPrefix(part, "behind "); ok {
				behind, _ = strconv.Atoi(n)
			}
		}
	}
	if i := strings.Index(header, "..."); i >= 0 {
		header = header[:i]
	}
	return header, ahead, behind
}
