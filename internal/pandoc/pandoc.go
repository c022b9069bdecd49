// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pandoc invokes the external pandoc executable to turn a binary
// document (DOCX and friends) into Markdown with extracted media.
package pandoc

import (
	"errors"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"
	"strings"
)

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	Run(name string, args []string, dir string, output io.Writer) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) Run(name string, args []string, dir string, output io.Writer) error {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stdout = output
	cmd.Stderr = output
	return cmd.Run()
}

var defaultExec executor = &osExecutor{}

// Runner runs pandoc conversions through a fixed executable path.
type Runner struct {
	bin  string
	exec executor
}

// NewRunner creates a Runner for the pandoc binary at bin. The path is not
// verified here; use Available to probe it.
func NewRunner(bin string) *Runner {
	return &Runner{bin: bin, exec: defaultExec}
}

// Available reports whether the configured pandoc binary can be found.
// LookPath resolves bare names against PATH and checks explicit paths
// directly.
func (r *Runner) Available() bool {
	_, err := r.exec.LookPath(r.bin)
	return err == nil
}

// OutputFileName returns the Markdown file name pandoc is told to write:
// the source base name without extension, spaces replaced by hyphens,
// with a .md suffix.
func OutputFileName(sourcePath string) string {
	stem := strings.TrimSuffix(filepath.Base(sourcePath), filepath.Ext(sourcePath))
	return strings.ReplaceAll(stem, " ", "-") + ".md"
}

// args builds the pandoc command line for one conversion. The output file
// name is relative because pandoc runs with its working directory set to
// the output directory.
func args(sourcePath, attachmentsPath, outputFileName string) []string {
	return []string{
		sourcePath,
		"-t", "markdown",
		"--extract-media", attachmentsPath,
		"-o", outputFileName,
	}
}

// Convert runs pandoc on sourcePath with outputDir as the working
// directory, directing extracted media into attachmentsPath. Pandoc's
// stdout and stderr are forwarded verbatim to sink. A non-zero exit or a
// launch failure is returned as an error; there is no retry.
func (r *Runner) Convert(sourcePath, attachmentsPath, outputDir string, sink io.Writer) error {
	out := OutputFileName(sourcePath)
	cmdArgs := args(sourcePath, attachmentsPath, out)

	fmt.Fprintf(sink, "Working directory: %s\n", outputDir)
	fmt.Fprintf(sink, "Running command: %s %s\n", r.bin, strings.Join(cmdArgs, " "))

	if err := r.exec.Run(r.bin, cmdArgs, outputDir, sink); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("pandoc exited with status %d", exitErr.ExitCode())
		}
		return fmt.Errorf("launching pandoc: %w", err)
	}
	return nil
}
