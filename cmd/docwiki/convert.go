// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/docwiki/internal/history"
	"github.com/pdiddy/docwiki/internal/pipeline"
	"github.com/pdiddy/docwiki/internal/settings"
	"github.com/pdiddy/docwiki/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert <document>",
	Short: "Convert a document to wiki Markdown",
	Long: `Convert runs one document through the pipeline: pandoc writes Markdown
and extracts media into the wiki's attachments folder, the media layout is
flattened, and attachment links are rewritten to the ../<folder>/ form the
wiki expects.

With --polish the finished Markdown is additionally rewritten by the
configured remote AI editor. The credential comes from the saved config or
the DOCWIKI_API_KEY environment variable, never from a flag.

Flag defaults come from the saved config (see "docwiki config").`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runConvert,
}

func init() {
	convertCmd.Flags().String("pandoc", "", "pandoc executable path")
	convertCmd.Flags().String("output-dir", "", "directory for the Markdown output (default: current directory)")
	convertCmd.Flags().String("wiki-root", "", "wiki root directory; attachments live directly beneath it")
	convertCmd.Flags().String("attachments-dir", ".attachments", "attachments folder name under the wiki root")
	convertCmd.Flags().Bool("polish", false, "rewrite the result through the remote AI editor")
	convertCmd.Flags().String("prompt", "", "editing instruction for the AI rewrite")
	convertCmd.Flags().String("endpoint", "", "Azure OpenAI-compatible endpoint for the AI rewrite")
	convertCmd.Flags().String("deployment", "", "model deployment for the AI rewrite")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	dir, err := configDir()
	if err != nil {
		return err
	}
	record, credential, err := settings.NewStore(dir).Load()
	if err != nil {
		return err
	}

	req, err := buildRequest(cmd, args[0], record, credential)
	if err != nil {
		return err
	}

	lines, done := pipeline.New().Start(cmd.Context(), req)
	for line := range lines {
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
	result := <-done

	// Rejected requests never started a run, so they are not journaled.
	if result.Succeeded || result.FailureStage != "" {
		recordRun(dir, req, result)
	}

	if !result.Succeeded {
		if result.FailureStage != "" {
			return fmt.Errorf("conversion failed at the %s stage: %s", result.FailureStage, result.ErrorDetail)
		}
		return fmt.Errorf("conversion rejected: %s", result.ErrorDetail)
	}
	return nil
}

// buildRequest assembles the conversion request from flags, the saved
// config, and the environment. Flags win over saved values.
func buildRequest(cmd *cobra.Command, source string, record types.ConfigRecord, credential string) (types.ConversionRequest, error) {
	flags := cmd.Flags()

	pandocPath, _ := flags.GetString("pandoc")
	if pandocPath == "" {
		pandocPath = record.PandocPath
	}
	if pandocPath == "" {
		pandocPath = "pandoc"
	}

	wikiRoot, _ := flags.GetString("wiki-root")
	if wikiRoot == "" {
		wikiRoot = record.LastWikiRoot
	}

	outputDir, _ := flags.GetString("output-dir")
	if outputDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return types.ConversionRequest{}, fmt.Errorf("resolving working directory: %w", err)
		}
		outputDir = wd
	}

	attachmentsDir, _ := flags.GetString("attachments-dir")

	polish := record.RemoteRewriteEnabled
	if flags.Changed("polish") {
		polish, _ = flags.GetBool("polish")
	}

	endpoint, _ := flags.GetString("endpoint")
	if endpoint == "" {
		endpoint = record.RemoteEndpoint
	}
	deployment, _ := flags.GetString("deployment")
	if deployment == "" {
		deployment = record.DeploymentID
	}
	prompt, _ := flags.GetString("prompt")
	if prompt == "" {
		prompt = record.Prompt
	}
	if env := viper.GetString("api_key"); env != "" {
		credential = env
	}

	return types.ConversionRequest{
		PandocPath:     pandocPath,
		SourcePath:     source,
		OutputDir:      outputDir,
		WikiRoot:       wikiRoot,
		AttachmentsDir: attachmentsDir,
		RemoteRewrite:  polish,
		Remote: types.RemoteRewriteParams{
			Endpoint:     endpoint,
			Credential:   credential,
			DeploymentID: deployment,
			Prompt:       prompt,
		},
	}, nil
}

// recordRun journals the outcome. Journal problems are warnings only;
// they never change the conversion's result.
func recordRun(dir string, req types.ConversionRequest, res types.ConversionResult) {
	store, err := history.NewStore(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not open conversion journal: %v\n", err)
		return
	}
	defer store.Close()
	if err := store.Record(req, res); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not journal conversion: %v\n", err)
	}
}
