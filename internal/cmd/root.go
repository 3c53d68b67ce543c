package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Diyorbek-2226/marhumlarniEslap/pkg/client"
	"github.com/Diyorbek-2226/marhumlarniEslap/pkg/config"
	"github.com/Diyorbek-2226/marhumlarniEslap/pkg/credentials"
	"github.com/Diyorbek-2226/marhumlarniEslap/pkg/logger"
)

var (
	verbose    bool
	configPath string
	outputFmt  string
)

var rootCmd = &cobra.Command{
	Use:   "yodim-cli",
	Short: "Yodim CLI - Memorial posts for the Yodimdasiz service",
	Long: `Yodim CLI is a command-line interface for the Yodimdasiz memorial
service. Browse memorial posts, follow likes and comments live,
and manage your own memorials directly from the terminal.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Initialize config and logger
		if err := config.Init(configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
			os.Exit(1)
		}

		logger.Init(verbose)

		// Save output format to config
		config.SetString("output.format", outputFmt)

		// Restore the session token so every command starts
		// authenticated when credentials exist
		if creds, err := credentials.Load(); err == nil && creds.IsValid() {
			client.SetAuthToken(creds.Token)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: ~/.config/yodimdasiz/cli/config.toml)")
	rootCmd.PersistentFlags().StringVar(&outputFmt, "output", "text", "Output format: text, json, table")

	// Add subcommands
	rootCmd.AddCommand(authCmd)
	rootCmd.AddCommand(feedCmd)
	rootCmd.AddCommand(postCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(versionCmd)
}
