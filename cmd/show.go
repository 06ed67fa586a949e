package cmd

import (
	"fmt"

	itemrender "github.com/bnema/video-transcriber/internal/adapters/render/item"
	"github.com/spf13/cobra"
)

func newShowCmd(app *app) *cobra.Command {
	var asJSON bool
	var full bool

	cmd := &cobra.Command{
		Use:   "show <id|url>",
		Short: "Show one item, by id or source URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := app.library.Show(cmd.Context(), app.cfg.Vault.Path, args[0])
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), toItemJSON(status))
			}

			opts := itemrender.RenderOptions{Now: app.now(), TranscriptPreview: transcriptPreviewRunes}
			if full {
				opts.TranscriptPreview = 0
			}

			output, err := itemrender.Render(status, opts)
			if err != nil {
				return fmt.Errorf("render item: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), output)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the record as JSON")
	cmd.Flags().BoolVar(&full, "full", false, "Print the whole transcript")

	return cmd
}
