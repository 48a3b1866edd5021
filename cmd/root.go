package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the docs-mcp application
var rootCmd = &cobra.Command{
	Use:   "docs-mcp",
	Short: "MCP server for Google Docs",
	Long: `docs-mcp is an MCP (Model Context Protocol) server that exposes Google
Docs operations as tools for AI assistants: listing, reading, creating,
editing, exporting and trashing documents.

Authentication uses a pre-obtained Google OAuth access token from the
GOOGLE_ACCESS_TOKEN environment variable.`,
	SilenceUsage: true,
}

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "docs-mcp version %s\n" .Version}}`)

	// If no subcommand is provided, run the serve command by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "serve")
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newVersionCmd())
}
