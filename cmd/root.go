package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

func Execute(ctx context.Context) error {
	return newRootCmd(wireOverrides{}).ExecuteContext(ctx)
}

func newRootCmd(overrides wireOverrides) *cobra.Command {
	app := &app{}

	rootCmd := &cobra.Command{
		Use:   "vt",
		Short: "Video transcriber (vt): download, transcribe and summarize videos",
		Long: "vt downloads the audio of a video URL, transcribes it with a local speech-to-text tool and summarizes the transcript. " +
			"Progress is kept in a vault on disk so an interrupted run resumes at the stage where it stopped.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			wired, err := wireApp(cmd, overrides)
			if err != nil {
				return err
			}
			*app = *wired
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Config file (default $HOME/.config/video-transcriber/config.toml)")
	flags.String("path", "", "Directory holding the vault (default: OS temp dir)")
	flags.String("log-level", "", "Log level (debug|info|warn|error)")
	flags.String("log-format", "", "Log format (console|json)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newProcessCmd(app),
		newListCmd(app),
		newShowCmd(app),
		newIDCmd(),
		newAuthCmd(app),
	)

	return rootCmd
}
