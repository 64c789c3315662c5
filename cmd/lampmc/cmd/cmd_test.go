package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("lampmc %v failed: %v\n%v", strings.Join(args, " "), err, out.String())
	}
	return out.String()
}

func TestCheckCommand(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "lampmc.yaml")
	tree := filepath.Join(dir, "tree.nwk")
	if err := os.WriteFile(cfg, []byte("horizon: 10\nvariant: correct\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	out := execute(t, "check", "--config", cfg, "--variant", "skip-idle-entry-reset", "--export", tree)
	expected := "VIOLATION: C2\nfirst_bad_tick: k=4\ninputs[0..k]: TF,FF,TF,FF,TF\n"
	if !strings.HasPrefix(out, expected) {
		t.Errorf("Expected output to start with:\n%v\nGot:\n%v", expected, out)
	}

	data, err := os.ReadFile(tree)
	if err != nil {
		t.Fatalf("Search tree was not exported: %v", err)
	}
	if !strings.HasSuffix(strings.TrimSpace(string(data)), `"reset";`) {
		t.Errorf("Unexpected search tree: %v", string(data))
	}
}

func TestReplayCommand(t *testing.T) {
	out := execute(t, "replay", "TF,TF,FF")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 {
		t.Fatalf("Expected a header and three rows. Got:\n%v", out)
	}
	if strings.Contains(out, "VIOLATION") {
		t.Errorf("The correct controller should not break a property:\n%v", out)
	}
}
