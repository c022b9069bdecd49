// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data model for the docwiki conversion
// pipeline: the request a caller assembles, the result a run produces, and
// the persisted configuration record.
package types

import "fmt"

// Stage identifies a pipeline stage for progress and failure reporting.
type Stage string

const (
	StageInvoke        Stage = "invoke"
	StageRelocate      Stage = "relocate"
	StageRewrite       Stage = "rewrite"
	StageRemoteRewrite Stage = "remote-rewrite"
)

// RemoteRewriteParams holds everything the optional remote rewrite stage
// needs. All fields are opaque strings to the pipeline; Credential must
// never appear in log output.
type RemoteRewriteParams struct {
	// Endpoint is the base URL of the Azure OpenAI-compatible service.
	Endpoint string `json:"endpoint" yaml:"endpoint"`

	// Credential is the API key authenticating requests to Endpoint.
	Credential string `json:"-" yaml:"-"`

	// DeploymentID is the model deployment to target.
	DeploymentID string `json:"deployment_id" yaml:"deployment_id"`

	// Prompt is the user-supplied editing instruction sent with the Markdown.
	Prompt string `json:"prompt" yaml:"prompt"`
}

// Complete reports whether every field needed for a remote rewrite is set.
func (p RemoteRewriteParams) Complete() bool {
	return p.Endpoint != "" && p.Credential != "" && p.DeploymentID != "" && p.Prompt != ""
}

// ConversionRequest describes one document conversion. The caller owns the
// value and passes it into the pipeline for the duration of a single run;
// the pipeline does not retain it.
type ConversionRequest struct {
	// PandocPath is the path to the pandoc executable.
	PandocPath string `json:"pandoc_path" yaml:"pandoc_path"`

	// SourcePath is the document to convert (DOCX or anything pandoc reads).
	SourcePath string `json:"source_path" yaml:"source_path"`

	// OutputDir is where the Markdown file is written.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// WikiRoot is the root of the wiki working tree; the attachments folder
	// lives directly beneath it.
	WikiRoot string `json:"wiki_root" yaml:"wiki_root"`

	// AttachmentsDir is the attachments folder name (e.g. ".attachments"),
	// not a path.
	AttachmentsDir string `json:"attachments_dir" yaml:"attachments_dir"`

	// RemoteRewrite enables the optional AI rewrite stage.
	RemoteRewrite bool `json:"remote_rewrite" yaml:"remote_rewrite"`

	// Remote configures the rewrite stage; required when RemoteRewrite is set.
	Remote RemoteRewriteParams `json:"remote" yaml:"remote"`
}

// Validate checks request completeness before any side effect. It returns
// an error naming the first missing field.
func (r ConversionRequest) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"pandoc executable path", r.PandocPath},
		{"source file path", r.SourcePath},
		{"output directory", r.OutputDir},
		{"wiki root directory", r.WikiRoot},
		{"attachments folder name", r.AttachmentsDir},
	}
	for _, f := range required {
		if f.value == "" {
			return fmt.Errorf("missing %s", f.name)
		}
	}
	if r.RemoteRewrite && !r.Remote.Complete() {
		return fmt.Errorf("remote rewrite enabled but endpoint, credential, deployment, and prompt are not all set")
	}
	return nil
}

// ConversionResult is the terminal outcome of one pipeline run.
type ConversionResult struct {
	// OutputPath is the Markdown file the run produced (or attempted to).
	OutputPath string `json:"output_path" yaml:"output_path"`

	// Succeeded reports whether every stage completed.
	Succeeded bool `json:"succeeded" yaml:"succeeded"`

	// FailureStage names the stage that failed; empty on success.
	FailureStage Stage `json:"failure_stage,omitempty" yaml:"failure_stage,omitempty"`

	// ErrorDetail carries the underlying error text; empty on success.
	ErrorDetail string `json:"error_detail,omitempty" yaml:"error_detail,omitempty"`
}
