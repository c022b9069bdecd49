// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"strings"
	"testing"
)

func validRequest() ConversionRequest {
	return ConversionRequest{
		PandocPath:     "pandoc",
		SourcePath:     "/docs/report.docx",
		OutputDir:      "/out",
		WikiRoot:       "/wiki",
		AttachmentsDir: ".attachments",
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ConversionRequest)
		wantErr string
	}{
		{
			name:   "complete request",
			mutate: func(r *ConversionRequest) {},
		},
		{
			name:    "missing source",
			mutate:  func(r *ConversionRequest) { r.SourcePath = "" },
			wantErr: "source file path",
		},
		{
			name:    "missing pandoc",
			mutate:  func(r *ConversionRequest) { r.PandocPath = "" },
			wantErr: "pandoc executable path",
		},
		{
			name:    "missing wiki root",
			mutate:  func(r *ConversionRequest) { r.WikiRoot = "" },
			wantErr: "wiki root directory",
		},
		{
			name:    "missing attachments folder name",
			mutate:  func(r *ConversionRequest) { r.AttachmentsDir = "" },
			wantErr: "attachments folder name",
		},
		{
			name: "remote rewrite without params",
			mutate: func(r *ConversionRequest) {
				r.RemoteRewrite = true
				r.Remote = RemoteRewriteParams{Endpoint: "https://e"}
			},
			wantErr: "remote rewrite enabled",
		},
		{
			name: "remote rewrite fully configured",
			mutate: func(r *ConversionRequest) {
				r.RemoteRewrite = true
				r.Remote = RemoteRewriteParams{
					Endpoint:     "https://e",
					Credential:   "k",
					DeploymentID: "d",
					Prompt:       "p",
				}
			},
		},
		{
			name: "remote params ignored when rewrite disabled",
			mutate: func(r *ConversionRequest) {
				r.Remote = RemoteRewriteParams{}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			err := req.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}
