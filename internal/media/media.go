// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package media flattens pandoc's extracted-media layout into the wiki's
// attachments folder.
package media

import (
	"fmt"
	"os"
	"path/filepath"
)

// subfolder is the fixed directory name pandoc nests extracted media under
// when given --extract-media.
const subfolder = "media"

// Flatten moves every entry of attachmentsPath/media/ up into
// attachmentsPath and removes the emptied media directory. When the media
// directory does not exist the call is a no-op, so an already-flattened
// folder is handled idempotently.
//
// A failed move aborts immediately; entries moved before the failure stay
// where they are. Best-effort by design: there is no rollback.
func Flatten(attachmentsPath string) error {
	mediaDir := filepath.Join(attachmentsPath, subfolder)

	info, err := os.Stat(mediaDir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("checking media subfolder %s: %w", mediaDir, err)
	}
	if !info.IsDir() {
		return nil
	}

	entries, err := os.ReadDir(mediaDir)
	if err != nil {
		return fmt.Errorf("reading media subfolder %s: %w", mediaDir, err)
	}

	for _, entry := range entries {
		src := filepath.Join(mediaDir, entry.Name())
		dst := filepath.Join(attachmentsPath, entry.Name())
		if _, err := os.Stat(dst); err == nil {
			return fmt.Errorf("moving %s: destination %s already exists", src, dst)
		}
		if err := os.Rename(src, dst); err != nil {
			return fmt.Errorf("moving %s to %s: %w", src, dst, err)
		}
	}

	if err := os.Remove(mediaDir); err != nil {
		return fmt.Errorf("removing emptied media subfolder %s: %w", mediaDir, err)
	}
	return nil
}
