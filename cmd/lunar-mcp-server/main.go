package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/AngusHsu/lunar-mcp-server/mcp"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "lunar-mcp-server",
		Short: "Traditional lunar calendar tools over the Model Context Protocol",
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server (stdio or streamable HTTP, auto-detected)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := mcp.Run(); err != nil {
				log.Error().Err(err).Msg("MCP server exited with error")
				return err
			}
			return nil
		},
	}
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(newDemoCmd())

	// Bare invocation serves, so hosts can launch the binary directly.
	rootCmd.RunE = serveCmd.RunE

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
