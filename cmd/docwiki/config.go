// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/docwiki/internal/settings"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and edit the persisted docwiki configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the saved configuration",
	Long: `Show prints every saved setting. The service credential is reported
only as present or absent; it is never printed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := configDir()
		if err != nil {
			return err
		}
		store := settings.NewStore(dir)
		record, credential, err := store.Load()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "config file:          %s\n", store.Path())
		fmt.Fprintf(out, "pandoc path:          %s\n", record.PandocPath)
		fmt.Fprintf(out, "last wiki root:       %s\n", record.LastWikiRoot)
		fmt.Fprintf(out, "remote endpoint:      %s\n", record.RemoteEndpoint)
		fmt.Fprintf(out, "deployment:           %s\n", record.DeploymentID)
		fmt.Fprintf(out, "remote rewrite:       %v\n", record.RemoteRewriteEnabled)
		fmt.Fprintf(out, "prompt:               %s\n", record.Prompt)
		if credential != "" {
			fmt.Fprintln(out, "credential:           (set, encrypted at rest)")
		} else {
			fmt.Fprintln(out, "credential:           (not set)")
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update saved configuration fields",
	Long: `Set updates the given fields and leaves the rest untouched. The
credential is encrypted with the local key file before it is written;
every other field is stored as plain text.`,
	RunE: runConfigSet,
}

func init() {
	configSetCmd.Flags().String("pandoc", "", "pandoc executable path")
	configSetCmd.Flags().String("wiki-root", "", "default wiki root directory")
	configSetCmd.Flags().String("endpoint", "", "Azure OpenAI-compatible endpoint")
	configSetCmd.Flags().String("deployment", "", "model deployment identifier")
	configSetCmd.Flags().String("prompt", "", "default editing instruction for the AI rewrite")
	configSetCmd.Flags().Bool("remote-rewrite", false, "enable the AI rewrite stage by default")
	configSetCmd.Flags().String("credential", "", "service API key (stored encrypted)")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	dir, err := configDir()
	if err != nil {
		return err
	}
	store := settings.NewStore(dir)
	record, credential, err := store.Load()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("pandoc") {
		record.PandocPath, _ = flags.GetString("pandoc")
	}
	if flags.Changed("wiki-root") {
		record.LastWikiRoot, _ = flags.GetString("wiki-root")
	}
	if flags.Changed("endpoint") {
		record.RemoteEndpoint, _ = flags.GetString("endpoint")
	}
	if flags.Changed("deployment") {
		record.DeploymentID, _ = flags.GetString("deployment")
	}
	if flags.Changed("prompt") {
		record.Prompt, _ = flags.GetString("prompt")
	}
	if flags.Changed("remote-rewrite") {
		record.RemoteRewriteEnabled, _ = flags.GetBool("remote-rewrite")
	}
	if flags.Changed("credential") {
		credential, _ = flags.GetString("credential")
	}

	if err := store.Save(record, credential); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Configuration saved to %s\n", store.Path())
	return nil
}
