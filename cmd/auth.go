package cmd

import (
	"fmt"

	"github.com/bnema/video-transcriber/internal/application"
	"github.com/spf13/cobra"
)

func newAuthCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage summarization provider API keys",
	}

	cmd.AddCommand(newAuthSetCmd(app), newAuthRemoveCmd(app))

	return cmd
}

func newAuthSetCmd(app *app) *cobra.Command {
	var provider string
	var apiKey string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Store a provider API key in the secret store",
		RunE: func(cmd *cobra.Command, _ []string) error {
			parsed, err := application.ParseProvider(provider)
			if err != nil {
				return err
			}

			if err := app.credentials.SetAPIKey(cmd.Context(), application.SetAPIKeyCommand{
				Provider: parsed,
				APIKey:   apiKey,
			}); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "stored %s api key\n", parsed)
			return err
		},
	}

	cmd.Flags().StringVar(&provider, "provider", "", "Provider (openai|deepseek)")
	cmd.Flags().StringVar(&apiKey, "api-key", "", "API key")
	_ = cmd.MarkFlagRequired("provider")
	_ = cmd.MarkFlagRequired("api-key")

	return cmd
}

func newAuthRemoveCmd(app *app) *cobra.Command {
	var provider string

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove a provider API key from the secret store",
		RunE: func(cmd *cobra.Command, _ []string) error {
			parsed, err := application.ParseProvider(provider)
			if err != nil {
				return err
			}

			if err := app.credentials.RemoveAPIKey(cmd.Context(), application.RemoveAPIKeyCommand{Provider: parsed}); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "removed %s api key\n", parsed)
			return err
		},
	}

	cmd.Flags().StringVar(&provider, "provider", "", "Provider (openai|deepseek)")
	_ = cmd.MarkFlagRequired("provider")

	return cmd
}
