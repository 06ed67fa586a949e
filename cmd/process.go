package cmd

import (
	"context"
	"fmt"

	itemrender "github.com/bnema/video-transcriber/internal/adapters/render/item"
	"github.com/bnema/video-transcriber/internal/application"
	"github.com/bnema/video-transcriber/internal/domain"
	"github.com/spf13/cobra"
)

const transcriptPreviewRunes = 600

func newProcessCmd(app *app) *cobra.Command {
	var provider string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "process <url>",
		Short: "Download, transcribe and summarize a video",
		Long: "process runs every stage that has not completed yet for the given URL. " +
			"Completed stages are skipped, so re-running after a failure resumes where it stopped.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("provider") {
				provider = app.cfg.Summary.Provider
			}

			runCmd := application.RunCommand{
				URL:      args[0],
				BasePath: app.cfg.Vault.Path,
				Provider: provider,
			}

			var item domain.Item
			run := func(ctx context.Context, onStage func(domain.Stage)) error {
				runCmd.OnStage = onStage
				var err error
				item, err = app.pipeline.Run(ctx, runCmd)
				return err
			}

			var err error
			if !asJSON && app.interactive(cmd.ErrOrStderr()) {
				err = runWithProgress(cmd.Context(), cmd.ErrOrStderr(), args[0], run)
			} else {
				err = run(cmd.Context(), nil)
			}
			if err != nil {
				return err
			}

			status := application.StatusOf(item)
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), toItemJSON(status))
			}

			output, err := itemrender.Render(status, itemrender.RenderOptions{
				Now:               app.now(),
				TranscriptPreview: transcriptPreviewRunes,
			})
			if err != nil {
				return fmt.Errorf("render item: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), output)
			return err
		},
	}

	cmd.Flags().StringVar(&provider, "provider", "", "Summarization provider (openai|deepseek; default from config)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the final record as JSON")

	return cmd
}
