// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the docwiki CLI, which converts
// binary documents into wiki-ready Markdown.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the docwiki CLI.
var rootCmd = &cobra.Command{
	Use:   "docwiki",
	Short: "Convert documents to Markdown for a file-based wiki",
	Long: `docwiki runs a document (DOCX and anything else pandoc reads) through a
conversion pipeline that produces wiki-ready Markdown: pandoc conversion,
relocation of extracted media into the shared attachments folder, and
rewriting of embedded links to the wiki's relative-path convention. An
optional stage sends the result through a remote AI editor guided by a
saved prompt.

Connection settings and the service credential live in a small persistent
config; the credential is encrypted at rest with a locally stored key.`,
}

func init() {
	rootCmd.PersistentFlags().String("config-dir", "", "directory holding the docwiki config, key, and history files (default: user config dir)")
	viper.BindPFlag("config_dir", rootCmd.PersistentFlags().Lookup("config-dir"))

	viper.SetEnvPrefix("DOCWIKI")
	viper.AutomaticEnv()
}

// configDir resolves the directory for the config, key, and history
// files: the --config-dir flag or DOCWIKI_CONFIG_DIR, falling back to
// the per-user config directory.
func configDir() (string, error) {
	if dir := viper.GetString("config_dir"); dir != "" {
		return dir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving user config directory: %w", err)
	}
	return filepath.Join(base, "docwiki"), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
