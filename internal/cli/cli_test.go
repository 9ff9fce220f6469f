package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootRunsSimulation(t *testing.T) {
	out, err := runRoot(t,
		"--workers", "4",
		"--ops", "10",
		"--min-delay", "0s",
		"--max-delay", "1ms",
		"--seed", "1",
	)
	if err != nil {
		t.Fatalf("root command failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Final Balances") {
		t.Errorf("report missing balances section:\n%s", out)
	}
	if !strings.Contains(out, "Success: total balance matches net deposits") {
		t.Errorf("report missing conservation verdict:\n%s", out)
	}
}

func TestRootUsesConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.yaml")
	cfg := `
workers: 2
ops: 5
min_delay: 0s
max_delay: 1ms
seed: 3
accounts:
  - holder: Ada
    balance: 100
  - holder: Grace
    balance: 100
`
	if err := os.WriteFile(path, []byte(cfg), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	out, err := runRoot(t, "--config", path)
	if err != nil {
		t.Fatalf("root command failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Ada:") || !strings.Contains(out, "Grace:") {
		t.Errorf("report missing configured accounts:\n%s", out)
	}
}

func TestRootRejectsInvalidConfig(t *testing.T) {
	if _, err := runRoot(t, "--workers", "0"); err == nil {
		t.Errorf("root command accepted zero workers")
	}
	if _, err := runRoot(t, "--config", filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Errorf("root command accepted a missing config file")
	}
}
