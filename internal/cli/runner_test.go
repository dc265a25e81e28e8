package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/idilsaglam/dragsort/internal/shared"
	"github.com/idilsaglam/dragsort/internal/tui"
)

type harness struct {
	out, errOut *bytes.Buffer
	copied      string
	model       *tui.Model
	runner      *Runner
	config      string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		out:    &bytes.Buffer{},
		errOut: &bytes.Buffer{},
		config: filepath.Join(t.TempDir(), "dragsort.toml"),
	}
	h.runner = NewRunner(RunnerOpts{
		Output:    h.out,
		ErrOutput: h.errOut,
		Clipboard: func(s string) error { h.copied = s; return nil },
		RunTUI: func(_ context.Context, m tui.Model) error {
			h.model = &m
			return nil
		},
	})
	return h
}

func (h *harness) run(args ...string) error {
	// Flags go before positional arguments.
	full := []string{"dragsort"}
	if len(args) > 0 {
		full = append(full, args[0])
		args = args[1:]
	}
	full = append(full, "--config", h.config, "--theme", "mono")
	full = append(full, args...)
	return h.runner.Command().Run(context.Background(), full)
}

// runRoot places the global flags before the subcommand name.
func (h *harness) runRoot(args ...string) error {
	full := append([]string{"dragsort", "--config", h.config, "--theme", "mono"}, args...)
	return h.runner.Command().Run(context.Background(), full)
}

func TestRunnerGlobalFlags(t *testing.T) {
	t.Run("config before mv", func(t *testing.T) {
		h := newHarness(t)
		if err := os.WriteFile(h.config, []byte("[list]\nitems = [\"a\", \"b\", \"c\"]\n"), 0644); err != nil {
			t.Fatalf("write config: %v", err)
		}
		if err := h.runRoot("mv", "2", "0"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if h.out.String() != "c\na\nb\n\n" {
			t.Errorf("expected the configured seed to move, got %q", h.out.String())
		}
	})

	t.Run("config before ls", func(t *testing.T) {
		h := newHarness(t)
		if err := os.WriteFile(h.config, []byte("[list]\nitems = [\"red\", \"green\"]\n"), 0644); err != nil {
			t.Fatalf("write config: %v", err)
		}
		if err := h.runRoot("ls"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out := h.out.String(); !strings.Contains(out, "1 = green") || strings.Contains(out, "one") {
			t.Errorf("expected the configured seed in output:\n%s", out)
		}
	})

	t.Run("log before tui", func(t *testing.T) {
		h := newHarness(t)
		logPath := filepath.Join(t.TempDir(), "dragsort.log")
		h.runner.runTUI = func(_ context.Context, m tui.Model) error {
			for _, msg := range dragMsgs(4, 0) {
				next, _ := m.Update(msg)
				m = next.(tui.Model)
			}
			return nil
		}
		if err := h.runner.Command().Run(context.Background(), []string{"dragsort", "--config", h.config, "--log", logPath, "tui"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		data, err := os.ReadFile(logPath)
		if err != nil {
			t.Fatalf("read log: %v", err)
		}
		if !strings.Contains(string(data), "five\none\ntwo\nthree\nfour\n\n") {
			t.Errorf("expected reorder listing in log:\n%s", data)
		}
	})

	t.Run("log file from config", func(t *testing.T) {
		h := newHarness(t)
		logPath := filepath.Join(t.TempDir(), "from-config.log")
		if err := os.WriteFile(h.config, []byte("[log]\nfile = \""+filepath.ToSlash(logPath)+"\"\n"), 0644); err != nil {
			t.Fatalf("write config: %v", err)
		}
		if err := h.runRoot(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := os.Stat(logPath); err != nil {
			t.Errorf("expected the configured log file to be created: %v", err)
		}
	})

	t.Run("no-drag before tui", func(t *testing.T) {
		h := newHarness(t)
		if err := h.runRoot("--no-drag", "tui"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if h.model == nil || !strings.Contains(h.model.View(), "drag disabled") {
			t.Error("expected drag to be disabled")
		}
	})
}

func TestRunner(t *testing.T) {
	t.Run("NewRunner defaults", func(t *testing.T) {
		r := NewRunner(RunnerOpts{})
		if r.output != os.Stdout || r.errOutput != os.Stderr {
			t.Error("expected process outputs")
		}
		if r.clipboard == nil || r.runTUI == nil {
			t.Error("expected clipboard and tui runner")
		}
	})

	t.Run("mv prints the diagnostic listing", func(t *testing.T) {
		tests := []struct {
			args []string
			want string
		}{
			{[]string{"0", "2"}, "two\nthree\none\nfour\nfive\n\n"},
			{[]string{"4", "0"}, "five\none\ntwo\nthree\nfour\n\n"},
			{[]string{"2", "2"}, ""},
		}
		for _, tt := range tests {
			t.Run(strings.Join(tt.args, "->"), func(t *testing.T) {
				h := newHarness(t)
				if err := h.run(append([]string{"mv"}, tt.args...)...); err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if h.out.String() != tt.want {
					t.Errorf("expected %q, got %q", tt.want, h.out.String())
				}
			})
		}
	})

	t.Run("mv rejects bad rows", func(t *testing.T) {
		tests := []struct {
			name string
			args []string
			want error
		}{
			{"missing", []string{"mv", "1"}, shared.ErrMissingArgument},
			{"not a number", []string{"mv", "x", "1"}, shared.ErrInvalidArgument},
			{"out of range", []string{"mv", "0", "5"}, shared.ErrInvalidArgument},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				h := newHarness(t)
				err := h.run(tt.args...)
				if !errors.Is(err, tt.want) {
					t.Errorf("expected %v, got %v", tt.want, err)
				}
				if h.out.Len() != 0 {
					t.Errorf("expected no output, got %q", h.out.String())
				}
			})
		}
	})

	t.Run("mv uses the configured seed", func(t *testing.T) {
		h := newHarness(t)
		if err := os.WriteFile(h.config, []byte("[list]\nitems = [\"a\", \"b\", \"c\"]\n"), 0644); err != nil {
			t.Fatalf("write config: %v", err)
		}
		if err := h.run("mv", "2", "0"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if h.out.String() != "c\na\nb\n\n" {
			t.Errorf("unexpected output %q", h.out.String())
		}
	})

	t.Run("invalid config", func(t *testing.T) {
		h := newHarness(t)
		if err := os.WriteFile(h.config, []byte("[list]\nitems = []\n"), 0644); err != nil {
			t.Fatalf("write config: %v", err)
		}
		if err := h.run("ls"); !errors.Is(err, shared.ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig, got %v", err)
		}
	})

	t.Run("ls", func(t *testing.T) {
		h := newHarness(t)
		if err := h.run("ls"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		out := h.out.String()
		for _, line := range []string{"0 = one", "4 = five", "Items"} {
			if !strings.Contains(out, line) {
				t.Errorf("expected %q in output:\n%s", line, out)
			}
		}
	})

	t.Run("drag", func(t *testing.T) {
		h := newHarness(t)
		if err := h.run("drag", "--copy", "3"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if h.out.String() != "text/plain\tfour\n" {
			t.Errorf("unexpected output %q", h.out.String())
		}
		if h.copied != "four" {
			t.Errorf("expected four on clipboard, got %q", h.copied)
		}
	})

	t.Run("drag without copy leaves the clipboard alone", func(t *testing.T) {
		h := newHarness(t)
		if err := h.run("drag", "0"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if h.copied != "" {
			t.Errorf("expected empty clipboard, got %q", h.copied)
		}
	})

	t.Run("init", func(t *testing.T) {
		h := newHarness(t)
		if err := h.run("init"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := shared.LoadConfig(h.config); err != nil {
			t.Errorf("expected a loadable config: %v", err)
		}
		if err := h.run("init"); !errors.Is(err, shared.ErrConfigExists) {
			t.Errorf("expected ErrConfigExists, got %v", err)
		}
	})

	t.Run("root runs the tui", func(t *testing.T) {
		h := newHarness(t)
		if err := h.run(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if h.model == nil {
			t.Fatal("expected the tui to run")
		}
		if !strings.Contains(h.model.View(), "three") {
			t.Error("expected the model to render the seed list")
		}
	})

	t.Run("tui writes diagnostics to the log file", func(t *testing.T) {
		h := newHarness(t)
		logPath := filepath.Join(t.TempDir(), "dragsort.log")
		h.runner.runTUI = func(_ context.Context, m tui.Model) error {
			for _, msg := range dragMsgs(0, 1) {
				next, _ := m.Update(msg)
				m = next.(tui.Model)
			}
			return nil
		}
		if err := h.run("tui", "--log", logPath); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		data, err := os.ReadFile(logPath)
		if err != nil {
			t.Fatalf("read log: %v", err)
		}
		if !strings.Contains(string(data), "two\none\nthree\nfour\nfive\n\n") {
			t.Errorf("expected reorder listing in log:\n%s", data)
		}
		if h.out.Len() != 0 {
			t.Errorf("expected nothing on stdout, got %q", h.out.String())
		}
	})

	t.Run("no-drag disables the interaction", func(t *testing.T) {
		h := newHarness(t)
		if err := h.run("tui", "--no-drag"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(h.model.View(), "drag disabled") {
			t.Error("expected drag to be disabled")
		}
	})
}
