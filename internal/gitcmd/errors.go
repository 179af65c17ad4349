package gitcmd

import "errors"

// ErrNotRepo reports that the directory git ran in is not a repository.
var ErrNotRepo = errors.New("not a git repository")

// Error wraps a failed git command with context.
type Error struct {
	Op     string // Operation that failed, e.g. "status" or "pull"
	Repo   string // Repository the command ran in
	Output string // Combined stdout/stderr output
	Err    error  // Underlying error
}

func (e *Error) Error() string {
	if e.Output != "" {
		return e.Op + " " + e.Repo + ": " + e.Output
	}
	return e.Op + " " + e.Repo + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}
