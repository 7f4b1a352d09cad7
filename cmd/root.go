package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/voxcast/voxcast-api/pkg/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "voxcast-api",
	Short: "Voxcast Studio API server",
	Long: `Voxcast Studio API - turn document collections into generated podcasts.

The server indexes uploaded documents (plain text, markdown, PDF, DOCX)
into semantic chunks, then drives a multi-persona generation pipeline:
concept extraction, conversation outlining, dialogue drafting, and audio
synthesis with source citations.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd creates a new root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	cobra.OnInitialize(loadConfig)
}

// loadConfig loads the configuration when a command needs it.
// Version and help output must work without a config file present.
func loadConfig() {
	cmd, _, _ := rootCmd.Find(os.Args[1:])
	if cmd != nil && (cmd.Name() == "version" || cmd.Name() == "help") {
		return
	}

	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}
}
