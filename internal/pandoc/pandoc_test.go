// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pandoc

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

// mockExecutor records calls and returns configured responses.
type mockExecutor struct {
	availableBins map[string]bool
	runFunc       func(name string, args []string, dir string, output io.Writer) error

	// recorded by Run
	gotName string
	gotArgs []string
	gotDir  string
	runs    int
}

func (m *mockExecutor) LookPath(file string) (string, error) {
	if m.availableBins[file] {
		return "/usr/bin/" + file, nil
	}
	return "", errors.New("not found: " + file)
}

func (m *mockExecutor) Run(name string, args []string, dir string, output io.Writer) error {
	m.runs++
	m.gotName = name
	m.gotArgs = args
	m.gotDir = dir
	if m.runFunc != nil {
		return m.runFunc(name, args, dir, output)
	}
	return nil
}

func TestOutputFileName(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"/docs/Design Review.docx", "Design-Review.md"},
		{"/docs/notes.docx", "notes.md"},
		{"My Long  Report.docx", "My-Long--Report.md"},
		{"/tmp/archive.tar.docx", "archive.tar.md"},
	}
	for _, tt := range tests {
		if got := OutputFileName(tt.source); got != tt.want {
			t.Errorf("OutputFileName(%q) = %q, want %q", tt.source, got, tt.want)
		}
	}
}

func TestConvert_CommandLine(t *testing.T) {
	exec := &mockExecutor{}
	r := &Runner{bin: "/opt/pandoc/pandoc", exec: exec}

	var log bytes.Buffer
	err := r.Convert("/docs/Design Review.docx", "/wiki/.attachments", "/out", &log)
	if err != nil {
		t.Fatalf("Convert returned error: %v", err)
	}

	wantArgs := []string{
		"/docs/Design Review.docx",
		"-t", "markdown",
		"--extract-media", "/wiki/.attachments",
		"-o", "Design-Review.md",
	}
	if strings.Join(exec.gotArgs, "|") != strings.Join(wantArgs, "|") {
		t.Errorf("args = %v, want %v", exec.gotArgs, wantArgs)
	}
	if exec.gotDir != "/out" {
		t.Errorf("working dir = %q, want %q", exec.gotDir, "/out")
	}
	if exec.gotName != "/opt/pandoc/pandoc" {
		t.Errorf("binary = %q, want %q", exec.gotName, "/opt/pandoc/pandoc")
	}
	if !strings.Contains(log.String(), "Running command:") {
		t.Errorf("log %q missing command echo", log.String())
	}
}

func TestConvert_ForwardsConverterOutput(t *testing.T) {
	exec := &mockExecutor{
		runFunc: func(name string, args []string, dir string, output io.Writer) error {
			io.WriteString(output, "[WARNING] Could not convert image\n")
			return nil
		},
	}
	r := &Runner{bin: "pandoc", exec: exec}

	var log bytes.Buffer
	if err := r.Convert("a.docx", "/wiki/.attachments", "/out", &log); err != nil {
		t.Fatalf("Convert returned error: %v", err)
	}
	if !strings.Contains(log.String(), "[WARNING] Could not convert image") {
		t.Errorf("converter output not forwarded to sink: %q", log.String())
	}
}

func TestConvert_LaunchFailure(t *testing.T) {
	exec := &mockExecutor{
		runFunc: func(name string, args []string, dir string, output io.Writer) error {
			return errors.New("exec: no such file")
		},
	}
	r := &Runner{bin: "missing-pandoc", exec: exec}

	err := r.Convert("a.docx", "/wiki/.attachments", "/out", io.Discard)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "launching pandoc") {
		t.Errorf("error = %v, want launch failure", err)
	}
}

func TestAvailable(t *testing.T) {
	exec := &mockExecutor{availableBins: map[string]bool{"pandoc": true}}

	r := &Runner{bin: "pandoc", exec: exec}
	if !r.Available() {
		t.Error("pandoc on PATH should be available")
	}

	r = &Runner{bin: "pandoc-3.2", exec: exec}
	if r.Available() {
		t.Error("missing binary should not be available")
	}
}
