// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package polish sends converted Markdown through a remote chat-completion
// service for a prompt-guided editing pass.
package polish

import (
	"context"
	"fmt"
	"os"
)

// systemInstruction is the fixed system role sent with every rewrite.
const systemInstruction = "You are an expert markdown editor. Apply the user's instructions " +
	"to the markdown document and return only the complete edited markdown, with no commentary."

// Backend abstracts the remote completion service so tests can supply a
// mock. One call handles the whole document; there is no streaming and no
// retry.
type Backend interface {
	Rewrite(ctx context.Context, prompt, markdown string) (string, error)
}

// userMessage concatenates the user prompt and the Markdown body into the
// single user-role message the service receives.
func userMessage(prompt, markdown string) string {
	return fmt.Sprintf("PROMPT:\n---\n%s\n---\n\nMARKDOWN:\n---\n%s", prompt, markdown)
}

// File reads the Markdown at path, submits it to the backend with the
// given prompt, and on success replaces the file's contents with the
// response verbatim. On any failure the file on disk is left exactly as
// it was.
func File(ctx context.Context, b Backend, path, prompt string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading markdown %s: %w", path, err)
	}

	edited, err := b.Rewrite(ctx, prompt, string(data))
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, []byte(edited), 0o644); err != nil {
		return fmt.Errorf("writing rewritten markdown %s: %w", path, err)
	}
	return nil
}
