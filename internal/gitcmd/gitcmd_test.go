package gitcmd

import (
	"errors"
	"os/exec"
	"reflect"
	"strings"
	"testing"
)

type fakeRunner struct {
	output  string
	err     error
	gotDir  string
	gotArgs []string
}

func (f *fakeRunner) Run(dir string, args ...string) (string, error) {
	f.gotDir = dir
	f.gotArgs = args
	return f.output, f.err
}

func TestStatusClean(t *testing.T) {
	runner := &fakeRunner{output: "## main...origin/main"}
	client := New(WithRunner(runner))

	st, err := client.Status("/src/repo")
	if err != nil {
		t.Fatalf("Status: %v", err)
	}

	if st.Branch != "main" {
		t.Errorf("Branch = %q, want %q", st.Branch, "main")
	}
	if st.Ahead != 0 || st.Behind != 0 || st.Changes != 0 {
		t.Errorf("expected clean status, got %+v", st)
	}
	if !st.Clean() {
		t.Error("Clean() = false, want true")
	}

	if runner.gotDir != "/src/repo" {
		t.Errorf("dir = %q, want %q", runner.gotDir, "/src/repo")
	}
	wantArgs := []string{"status", "--porcelain", "--branch"}
	if !reflect.DeepEqual(runner.gotArgs, wantArgs) {
		t.Errorf("args = %v, want %v", runner.gotArgs, wantArgs)
	}
}

func TestStatusDirty(t *testing.T) {
	output := strings.Join([]string{
		"## main...origin/main",
		" M cmd/pytt/main.go",
		"A  config/config.go",
		"?? notes.txt",
	}, "\n")
	client := New(WithRunner(&fakeRunner{output: output}))

	st, err := client.Status("/src/repo")
	if err != nil {
		t.Fatalf("Status: %v", err)
	}

	if st.Changes != 3 {
		t.Errorf("Changes = %d, want 3", st.Changes)
	}
	if st.Clean() {
		t.Error("Clean() = true, want false")
	}
}

func TestStatusAheadBehind(t *testing.T) {
	tests := []struct {
		name   string
		header string
		branch string
		ahead  int
		behind int
	}{
		{
			name:   "ahead and behind",
			header: "## main...origin/main [ahead 2, behind 1]",
			branch: "main",
			ahead:  2,
			behind: 1,
		},
		{
			name:   "ahead only",
			header: "## feature/x...origin/feature/x [ahead 3]",
			branch: "feature/x",
			ahead:  3,
		},
		{
			name:   "behind only",
			header: "## main...origin/main [behind 12]",
			branch: "main",
			behind: 12,
		},
		{
			name:   "no upstream",
			header: "## feature",
			branch: "feature",
		},
		{
			name:   "detached head",
			header: "## HEAD (no branch)",
			branch: "HEAD",
		},
		{
			name:   "no commits yet",
			header: "## No commits yet on main",
			branch: "main",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := New(WithRunner(&fakeRunner{output: tt.header}))

			st, err := client.Status("/src/repo")
			if err != nil {
				t.Fatalf("Status: %v", err)
			}
			if st.Branch != tt.branch {
				t.Errorf("Branch = %q, want %q", st.Branch, tt.branch)
			}
			if st.Ahead != tt.ahead || st.Behind != tt.behind {
				t.Errorf("ahead/behind = %d/%d, want %d/%d",
					st.Ahead, st.Behind, tt.ahead, tt.behind)
			}
		})
	}
}

func TestStatusError(t *testing.T) {
	runner := &fakeRunner{
		output: "fatal: not a git repository",
		err:    errors.New("exit status 128"),
	}
	client := New(WithRunner(runner))

	_, err := client.Status("/src/broken")
	if err == nil {
		t.Fatal("expected error")
	}

	var gitErr *Error
	if !errors.As(err, &gitErr) {
		t.Fatalf("error should be *Error, got %T", err)
	}
	if gitErr.Op != "status" || gitErr.Repo != "/src/broken" {
		t.Errorf("unexpected error fields: %+v", gitErr)
	}
	if !errors.Is(err, ErrNotRepo) {
		t.Error("expected ErrNotRepo")
	}
	if !strings.Contains(err.Error(), "not a git repository") {
		t.Errorf("error message should carry the git output, got %q", err)
	}
}

func TestPullUpdated(t *testing.T) {
	output := strings.Join([]string{
		"Updating 1a2b3c4..5d6e7f8",
		"Fast-forward",
		" main.go | 2 +-",
		" 1 file changed, 1 insertion(+), 1 deletion(-)",
	}, "\n")
	client := New(WithRunner(&fakeRunner{output: output}))

	updated, err := client.Pull("/src/repo")
	if err != nil {
		t.Fatalf("Pull: %v", err)
	}
	if !updated {
		t.Error("updated = false, want true")
	}
}

func TestPullUpToDate(t *testing.T) {
	outputs := []string{
		"Already up to date.",
		"From github.com:user/repo\nAlready up to date.",
		"Already up-to-date.",
	}
	for _, output := range outputs {
		client := New(WithRunner(&fakeRunner{output: output}))

		updated, err := client.Pull("/src/repo")
		if err != nil {
			t.Fatalf("Pull: %v", err)
		}
		if updated {
			t.Errorf("updated = true for %q, want false", output)
		}
	}
}

func TestPullError(t *testing.T) {
	runner := &fakeRunner{
		output: "fatal: Not possible to fast-forward, aborting.",
		err:    errors.New("exit status 128"),
	}
	client := New(WithRunner(runner))

	_, err := client.Pull("/src/repo")
	if err == nil {
		t.Fatal("expected error")
	}

	var gitErr *Error
	if !errors.As(err, &gitErr) {
		t.Fatalf("error should be *Error, got %T", err)
	}
	if gitErr.Op != "pull" {
		t.Errorf("Op = %q, want %q", gitErr.Op, "pull")
	}
	if !errors.Is(err, runner.err) {
		t.Error("expected wrapped runner error")
	}

	wantArgs := []string{"pull", "--ff-only"}
	if !reflect.DeepEqual(runner.gotArgs, wantArgs) {
		t.Errorf("args = %v, want %v", runner.gotArgs, wantArgs)
	}
}

func TestErrorMessage(t *testing.T) {
	withOutput := &Error{Op: "pull", Repo: "/src/repo", Output: "conflict", Err: errors.New("exit status 1")}
	if got := withOutput.Error(); got != "pull /src/repo: conflict" {
		t.Errorf("Error() = %q", got)
	}

	withoutOutput := &Error{Op: "status", Repo: "/src/repo", Err: errors.New("exit status 1")}
	if got := withoutOutput.Error(); got != "status /src/repo: exit status 1" {
		t.Errorf("Error() = %q", got)
	}
}

func TestExecRunner(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}

	output, err := ExecRunner{}.Run(t.TempDir(), "version")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.HasPrefix(output, "git version") {
		t.Errorf("output = %q, want git version string", output)
	}
}
