package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mmynk/secretsanta/internal/assignment"
)

func writeRoster(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

const sampleRoster = "Smith: Alice, Bob\nJones: Carol, Dave\nErin\n"

func TestDraw_Text(t *testing.T) {
	path := writeRoster(t, "roster.txt", sampleRoster)

	out, err := run(t, "draw", path, "--seed", "7")
	if err != nil {
		t.Fatalf("draw failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "Alice") || !strings.Contains(lines[0], "->") {
		t.Errorf("unexpected first line %q", lines[0])
	}
}

func TestDraw_JSON(t *testing.T) {
	path := writeRoster(t, "roster.yaml", "families:\n  - members: [Alice, Bob]\n  - members: [Carol]\n  - members: [Dave]\n")

	out, err := run(t, "draw", path, "--format", "json", "--prune")
	if err != nil {
		t.Fatalf("draw failed: %v", err)
	}

	var got struct {
		Attempts int `json:"attempts"`
		Pairs    []struct {
			Giver    string `json:"giver"`
			Receiver string `json:"receiver"`
		} `json:"pairs"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if len(got.Pairs) != 4 {
		t.Fatalf("got %d pairs, want 4", len(got.Pairs))
	}
	for _, p := range got.Pairs {
		if p.Giver == p.Receiver {
			t.Errorf("%s gives to themselves", p.Giver)
		}
		if (p.Giver == "Alice" && p.Receiver == "Bob") || (p.Giver == "Bob" && p.Receiver == "Alice") {
			t.Errorf("%s gives inside their family", p.Giver)
		}
	}
}

func TestDraw_Errors(t *testing.T) {
	infeasible := writeRoster(t, "bad.txt", "Alice, Bob, Carol\nDave\n")
	if _, err := run(t, "draw", infeasible); !errors.Is(err, assignment.ErrInfeasibleInput) {
		t.Errorf("expected ErrInfeasibleInput, got %v", err)
	}

	ok := writeRoster(t, "ok.txt", sampleRoster)
	if _, err := run(t, "draw", ok, "--format", "xml"); err == nil {
		t.Error("expected error for unknown format")
	}
	if _, err := run(t, "draw"); err == nil {
		t.Error("expected error without a roster argument")
	}
}

func TestCheck(t *testing.T) {
	path := writeRoster(t, "roster.txt", sampleRoster)

	out, err := run(t, "check", path)
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	want := "ok: 5 people in 3 families (largest family: 2)\n"
	if out != want {
		t.Errorf("check output = %q, want %q", out, want)
	}

	single := writeRoster(t, "single.txt", "Alice\n")
	if _, err := run(t, "check", single); !errors.Is(err, assignment.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}
