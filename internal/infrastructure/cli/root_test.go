package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func testConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	body := "shell:\n  color: never\nhistory:\n  enabled: true\n  backend: jsonl\n  path: " +
		filepath.Join(dir, "history.jsonl") + "\n"
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(context.Background(), Options{})
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRootRunsScriptArgument(t *testing.T) {
	cfg := testConfig(t)
	script := filepath.Join(t.TempDir(), "demo.u404")
	body := "uprint start\nif is_even 3\nuprint even\nelse\nuprint odd\nendif\n"
	if err := os.WriteFile(script, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "", "--config", cfg, script)
	if err != nil {
		t.Fatalf("execute error: %v", err)
	}
	if out != "start\nodd\n" {
		t.Fatalf("output = %q", out)
	}
}

func TestRootMissingScriptFails(t *testing.T) {
	cfg := testConfig(t)
	_, err := execute(t, "", "--config", cfg, filepath.Join(t.TempDir(), "absent.u404"))
	if err == nil {
		t.Fatal("expected error for missing script")
	}
}

func TestRootInteractiveAndHistoryList(t *testing.T) {
	cfg := testConfig(t)

	out, err := execute(t, "uprint hi there\nexit\n", "--config", cfg)
	if err != nil {
		t.Fatalf("interactive error: %v", err)
	}
	if out != "> hi there\n> " {
		t.Fatalf("interactive output = %q", out)
	}

	out, err = execute(t, "", "--config", cfg, "history", "list")
	if err != nil {
		t.Fatalf("history list error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("history list = %q", out)
	}
	if !strings.HasSuffix(lines[0], "| interactive | ok | exit") {
		t.Fatalf("newest entry = %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], "| uprint hi there") {
		t.Fatalf("oldest entry = %q", lines[1])
	}
}

func TestRootNoHistoryFlag(t *testing.T) {
	cfg := testConfig(t)

	if _, err := execute(t, "uprint quiet\n", "--config", cfg, "--no-history"); err != nil {
		t.Fatal(err)
	}
	out, err := execute(t, "", "--config", cfg, "history", "list")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != "No history recorded yet." {
		t.Fatalf("history list = %q", out)
	}
}

func TestHistorySearchRequiresQuery(t *testing.T) {
	cfg := testConfig(t)
	if _, err := execute(t, "", "--config", cfg, "history", "search"); err == nil {
		t.Fatal("expected --query error")
	}
}

func TestCloseAfterRunClosesOnError(t *testing.T) {
	failure := errors.New("boom")
	parent := &cobra.Command{Use: "parent", RunE: func(*cobra.Command, []string) error { return nil }}
	child := &cobra.Command{Use: "child", RunE: func(*cobra.Command, []string) error { return failure }}
	parent.AddCommand(child)

	closed := 0
	closeAfterRun(parent, func() error { closed++; return nil })
	parent.SetArgs([]string{"child"})
	parent.SilenceErrors = true
	parent.SilenceUsage = true

	if err := parent.Execute(); !errors.Is(err, failure) {
		t.Fatalf("Execute error = %v, want %v", err, failure)
	}
	if closed != 1 {
		t.Fatalf("close called %d times, want 1", closed)
	}
}

func TestRootClosesHistoryAfterFailedScript(t *testing.T) {
	dir := t.TempDir()
	body := "shell:\n  color: never\nhistory:\n  enabled: true\n  backend: sqlite\n  path: " +
		filepath.Join(dir, "history.db") + "\n"
	cfg := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(cfg, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	script := filepath.Join(dir, "fail.u404")
	if err := os.WriteFile(script, []byte("execute_script "+filepath.Join(dir, "absent.u404")+"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := execute(t, "", "--config", cfg, script); err == nil {
		t.Fatal("expected error from missing nested script")
	}
	out, err := execute(t, "", "--config", cfg, "history", "list")
	if err != nil {
		t.Fatalf("history list after failure: %v", err)
	}
	if !strings.Contains(out, "failed | execute_script") {
		t.Fatalf("failed command not recorded: %q", out)
	}
}
