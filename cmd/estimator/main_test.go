package main

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"ESTIMATOR_FORMAT", "ESTIMATOR_LOG_LEVEL", "ESTIMATOR_NO_COLOR"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	// nil args make cobra fall back to os.Args
	cmd.SetArgs(append([]string{}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCommandPlainOutput(t *testing.T) {
	clearEnv(t)

	stdout, stderr, err := execute(t)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if stderr != "" {
		t.Errorf("unexpected stderr: %q", stderr)
	}

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	want := []string{
		"xp maxima diaria: 291",
		"revenue: 81843750.0",
		"voluntarios: 49106250.0",
		"forzados: 32737500.0",
		"premium_ revenue 72714712.5",
		"revenue_total: 154558462.5",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(want), stdout)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i+1, lines[i], want[i])
		}
	}
}

func TestRootCommandVerboseLogsToStderr(t *testing.T) {
	clearEnv(t)

	stdout, stderr, err := execute(t, "--verbose", "--no-color")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !strings.Contains(stderr, "computed daily xp") {
		t.Errorf("stderr missing debug entry:\n%s", stderr)
	}
	if !strings.HasPrefix(stdout, "xp maxima diaria: 291\n") {
		t.Errorf("stdout polluted by logs:\n%s", stdout)
	}
}

func TestRootCommandTableFormat(t *testing.T) {
	clearEnv(t)

	stdout, _, err := execute(t, "--format", "table", "--no-color")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !strings.Contains(stdout, "revenue_total: 154558462.5") {
		t.Errorf("table output missing total:\n%s", stdout)
	}
}

func TestRootCommandFormatFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("ESTIMATOR_FORMAT", "table")
	t.Setenv("ESTIMATOR_NO_COLOR", "true")

	stdout, _, err := execute(t)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !strings.Contains(stdout, "Monthly Revenue") {
		t.Errorf("expected table output from env config:\n%s", stdout)
	}
}

func TestRootCommandRejectsBadFormat(t *testing.T) {
	clearEnv(t)

	if _, _, err := execute(t, "--format", "xml"); err == nil {
		t.Error("Execute() succeeded with unknown format")
	}
}

func TestRootCommandRejectsArgs(t *testing.T) {
	clearEnv(t)

	if _, _, err := execute(t, "extra"); err == nil {
		t.Error("Execute() succeeded with positional args")
	}
}
