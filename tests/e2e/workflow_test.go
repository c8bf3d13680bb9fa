package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const commandTimeout = 30 * time.Second

type status struct {
	CanDrink             bool   `json:"can_drink"`
	Remaining            string `json:"remaining"`
	DrinkCount           int    `json:"drink_count"`
	DelayMinutes         int    `json:"delay_minutes"`
	NotificationsEnabled bool   `json:"notifications_enabled"`
}

type harness struct {
	t      *testing.T
	cli    string
	env    []string
	dbPath string
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	binDir := os.Getenv("SIPWAIT_BIN_DIR")
	if binDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			t.Fatalf("Failed to get cwd: %v", err)
		}
		binDir = filepath.Join(cwd, "..", "..", "bin")
	}
	binDir, _ = filepath.Abs(binDir)

	cliPath := filepath.Join(binDir, "sipwait")
	if _, err := os.Stat(cliPath); os.IsNotExist(err) {
		t.Skipf("CLI binary not found at %s, build it first or set SIPWAIT_BIN_DIR", cliPath)
	}

	// Isolate config, logs and the database under a temp home
	tempDir := t.TempDir()
	var env []string
	for _, e := range os.Environ() {
		if strings.HasPrefix(e, "HOME=") || strings.HasPrefix(e, "XDG_CONFIG_HOME=") || strings.HasPrefix(e, "SIPWAIT_DB=") {
			continue
		}
		env = append(env, e)
	}
	dbPath := filepath.Join(tempDir, "sipwait", "sipwait.db")
	env = append(env,
		fmt.Sprintf("HOME=%s", tempDir),
		fmt.Sprintf("XDG_CONFIG_HOME=%s", tempDir),
		fmt.Sprintf("SIPWAIT_DB=%s", dbPath),
	)

	return &harness{t: t, cli: cliPath, env: env, dbPath: dbPath}
}

func (h *harness) run(args ...string) string {
	h.t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, h.cli, args...)
	cmd.Env = h.env
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		h.t.Fatalf("sipwait %s failed: %v\nstdout: %s\nstderr: %s",
			strings.Join(args, " "), err, stdout.String(), stderr.String())
	}
	return stdout.String()
}

func (h *harness) status() status {
	h.t.Helper()
	var s status
	out := h.run("status", "--json")
	if err := json.Unmarshal([]byte(out), &s); err != nil {
		h.t.Fatalf("failed to parse status output %q: %v", out, err)
	}
	return s
}

func TestEndToEndWorkflow(t *testing.T) {
	h := newHarness(t)

	h.run("init")
	if _, err := os.Stat(h.dbPath); err != nil {
		t.Fatalf("database not created: %v", err)
	}

	s := h.status()
	if !s.CanDrink || s.Remaining != "Ready!" || s.DelayMinutes != 60 {
		t.Errorf("fresh status = %+v", s)
	}

	// The tray companion is not running, so alerts stay off after asking.
	h.run("notifications", "off")
	h.run("delay", "30")
	h.run("drink")

	s = h.status()
	if s.CanDrink || s.DrinkCount != 1 || s.DelayMinutes != 30 {
		t.Errorf("status after drink = %+v", s)
	}
	if s.Remaining != "29m" && s.Remaining != "30m" {
		t.Errorf("Remaining = %q, want about 30m", s.Remaining)
	}

	if out := h.run("widget", "complication"); !strings.Contains(out, "m") {
		t.Errorf("complication output = %q", out)
	}
	if out := h.run("history"); !strings.Contains(out, "Last 1 drinks") {
		t.Errorf("history output = %q", out)
	}
	if out := h.run("notify", "--dry-run"); !strings.Contains(out, "No notifications due") {
		t.Errorf("notify dry run output = %q", out)
	}

	h.run("reset")
	s = h.status()
	if !s.CanDrink || s.DrinkCount != 1 {
		t.Errorf("status after reset = %+v", s)
	}

	h.run("reset-count")
	if s = h.status(); s.DrinkCount != 0 {
		t.Errorf("DrinkCount after reset-count = %d", s.DrinkCount)
	}
}
