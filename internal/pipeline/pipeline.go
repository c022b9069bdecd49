// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline orchestrates one document conversion: pandoc
// invocation, media relocation, link rewriting, and the optional remote
// rewrite. Stages run strictly in that order; the first failure skips
// everything after it.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pdiddy/docwiki/internal/media"
	"github.com/pdiddy/docwiki/internal/pandoc"
	"github.com/pdiddy/docwiki/internal/polish"
	"github.com/pdiddy/docwiki/internal/rewrite"
	"github.com/pdiddy/docwiki/pkg/types"
)

// Invoker runs the external converter for one document. pandoc.Runner is
// the production implementation; tests substitute fakes.
type Invoker interface {
	Convert(sourcePath, attachmentsPath, outputDir string, sink io.Writer) error
}

// Pipeline wires the stages together. The constructor fields exist so
// tests can substitute the process-spawning and network-calling pieces;
// production callers use New and never touch them.
type Pipeline struct {
	// NewInvoker builds the converter invoker for a request's pandoc path.
	NewInvoker func(pandocPath string) Invoker

	// NewBackend builds the remote rewrite backend for a request's
	// service parameters.
	NewBackend func(p types.RemoteRewriteParams) polish.Backend
}

// New returns a Pipeline using the real pandoc runner and the Azure
// OpenAI rewrite backend.
func New() *Pipeline {
	return &Pipeline{
		NewInvoker: func(pandocPath string) Invoker {
			return pandoc.NewRunner(pandocPath)
		},
		NewBackend: func(p types.RemoteRewriteParams) polish.Backend {
			return polish.NewAzureBackend(p.Endpoint, p.Credential, p.DeploymentID)
		},
	}
}

// Run executes the full pipeline for one request, writing progress to
// sink, and returns the terminal result. It blocks until the run reaches
// Done or Failed; there is no cancellation mid-stage and no retry.
//
// A request that fails validation produces a failed result with an empty
// FailureStage and causes no side effect at all.
func (p *Pipeline) Run(ctx context.Context, req types.ConversionRequest, sink io.Writer) types.ConversionResult {
	if err := req.Validate(); err != nil {
		fmt.Fprintf(sink, "--- Invalid conversion request: %v ---\n", err)
		return types.ConversionResult{ErrorDetail: err.Error()}
	}

	attachmentsPath := filepath.Join(req.WikiRoot, req.AttachmentsDir)
	outputPath := filepath.Join(req.OutputDir, pandoc.OutputFileName(req.SourcePath))
	result := types.ConversionResult{OutputPath: outputPath}

	// Invoke
	fmt.Fprintln(sink, "Preparing for pandoc conversion...")
	if err := ensureDirs(req.OutputDir, attachmentsPath); err != nil {
		return fail(sink, result, types.StageInvoke, err)
	}
	if err := p.NewInvoker(req.PandocPath).Convert(req.SourcePath, attachmentsPath, req.OutputDir, sink); err != nil {
		return fail(sink, result, types.StageInvoke, err)
	}
	fmt.Fprintln(sink, "Pandoc conversion successful.")

	// Relocate
	fmt.Fprintln(sink, "Flattening extracted media...")
	if err := media.Flatten(attachmentsPath); err != nil {
		return fail(sink, result, types.StageRelocate, err)
	}
	fmt.Fprintln(sink, "Media folder flattened.")

	// Rewrite
	fmt.Fprintln(sink, "Rewriting attachment links...")
	if err := rewrite.New(attachmentsPath, req.AttachmentsDir).File(outputPath); err != nil {
		return fail(sink, result, types.StageRewrite, err)
	}
	fmt.Fprintln(sink, "Markdown cleanup complete.")

	// RemoteRewrite
	if req.RemoteRewrite {
		fmt.Fprintln(sink, "Starting AI post-processing...")
		backend := p.NewBackend(req.Remote)
		if err := polish.File(ctx, backend, outputPath, req.Remote.Prompt); err != nil {
			return fail(sink, result, types.StageRemoteRewrite, err)
		}
		fmt.Fprintln(sink, "AI post-processing completed successfully.")
	}

	fmt.Fprintln(sink, "--- Conversion completed successfully ---")
	result.Succeeded = true
	return result
}

// Start runs the pipeline on its own goroutine so the caller's surface
// stays responsive. It returns an ordered stream of log lines and a
// channel delivering the single result after the line stream closes.
// The producer side is a single goroutine, so line order matches emission
// order.
func (p *Pipeline) Start(ctx context.Context, req types.ConversionRequest) (<-chan string, <-chan types.ConversionResult) {
	lines := make(chan string, 64)
	done := make(chan types.ConversionResult, 1)

	go func() {
		sink := &lineWriter{lines: lines}
		res := p.Run(ctx, req, sink)
		sink.flush()
		close(lines)
		done <- res
		close(done)
	}()

	return lines, done
}

func ensureDirs(dirs ...string) error {
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}
	return nil
}

// fail writes the failure banner and fills in the terminal result.
func fail(sink io.Writer, result types.ConversionResult, stage types.Stage, err error) types.ConversionResult {
	fmt.Fprintf(sink, "--- %s stage failed: %v ---\n", stage, err)
	result.Succeeded = false
	result.FailureStage = stage
	result.ErrorDetail = err.Error()
	return result
}
