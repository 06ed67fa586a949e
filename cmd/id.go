package cmd

import (
	"fmt"
	"strings"

	"github.com/bnema/video-transcriber/internal/domain"
	"github.com/spf13/cobra"
)

func newIDCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "id <url>",
		Short: "Print the vault id derived from a URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), domain.DeriveID(strings.TrimSpace(args[0])))
			return err
		},
		PersistentPreRunE: skipWiring,
	}
}
