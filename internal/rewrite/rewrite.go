// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rewrite normalizes the links in pandoc-emitted Markdown to the
// wiki's attachments convention.
//
// Three substitution passes run over the whole file content, in a fixed
// order that must not be changed:
//
//  1. references into the attachments directory by its full path become
//     wiki-relative (../<folder>/<file>),
//  2. references already relative to the attachments folder name are
//     normalized the same way,
//  3. trailing brace-delimited attribute blocks ({width=...} and similar)
//     after an image construct are stripped, across line breaks.
//
// Pass 2 can re-match text produced by pass 1 when the folder name occurs
// as a substring of another path segment. That matches the historical
// behavior and downstream wikis depend on the output, so the ordering is
// kept as is.
package rewrite

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

// Rewriter holds the compiled passes for one conversion's attachment paths.
type Rewriter struct {
	absPass  *regexp.Regexp
	relPass  *regexp.Regexp
	attrPass *regexp.Regexp

	replacement string
}

// New compiles the three passes for the given attachments directory path
// and attachments folder name. The path is matched in slash form so output
// is identical regardless of the separator style pandoc used.
func New(attachmentsPath, folderName string) *Rewriter {
	slashPath := filepath.ToSlash(attachmentsPath)
	return &Rewriter{
		absPass:     regexp.MustCompile(`(\!\[.*?\]\()` + regexp.QuoteMeta(slashPath) + `/(.*?)\)`),
		relPass:     regexp.MustCompile(`(\!\[.*?\]\()` + regexp.QuoteMeta(folderName) + `/(.*?)\)`),
		attrPass:    regexp.MustCompile(`(?s)(\!\[.*?\]\(.*?\))\{.*?\}`),
		replacement: `![](../` + folderName + `/${2})`,
	}
}

// Apply runs the three passes over content and returns the result. Content
// without matching references passes through unchanged, and applying the
// passes a second time is a no-op.
func (r *Rewriter) Apply(content string) string {
	content = r.absPass.ReplaceAllString(content, r.replacement)
	content = r.relPass.ReplaceAllString(content, r.replacement)
	content = r.attrPass.ReplaceAllString(content, "${1}")
	return content
}

// File rewrites the Markdown file at path in place, truncating any
// leftover bytes.
func (r *Rewriter) File(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading markdown %s: %w", path, err)
	}
	rewritten := r.Apply(string(data))
	if err := os.WriteFile(path, []byte(rewritten), 0o644); err != nil {
		return fmt.Errorf("writing markdown %s: %w", path, err)
	}
	return nil
}
