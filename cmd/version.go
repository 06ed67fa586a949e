package cmd

import (
	"fmt"
	"runtime"

	"github.com/bnema/video-transcriber/internal/version"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "vt %s (%s %s/%s)\n", version.Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
			return err
		},
		PersistentPreRunE: skipWiring,
	}
}

func skipWiring(*cobra.Command, []string) error {
	return nil
}
