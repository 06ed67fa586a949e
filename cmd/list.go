package cmd

import (
	"fmt"

	itemrender "github.com/bnema/video-transcriber/internal/adapters/render/item"
	"github.com/spf13/cobra"
)

func newListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every item in the vault",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			statuses, err := app.library.List(cmd.Context(), app.cfg.Vault.Path)
			if err != nil {
				return err
			}

			if asJSON {
				items := make([]itemJSON, 0, len(statuses))
				for _, status := range statuses {
					items = append(items, toItemJSON(status))
				}
				return writeJSON(cmd.OutOrStdout(), items)
			}

			if len(statuses) == 0 {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "vault %s is empty\n", app.library.Layout(app.cfg.Vault.Path).Root)
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), itemrender.RenderTable(statuses, app.now()))
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print records as JSON")

	return cmd
}
