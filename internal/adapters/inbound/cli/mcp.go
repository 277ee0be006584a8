package cli

import (
	mcpadapter "github.com/abdidvp/smartreview/internal/adapters/inbound/mcp"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newMCPCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the smartreview MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd(a))
	return cmd
}

func newMCPServeCmd(a *app) *cobra.Command {
	var projectPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start smartreview MCP server (stdio)",
		Long:  "Start the smartreview MCP server using stdio transport. This allows AI coding assistants to review snippets and project files.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if projectPath == "" {
				projectPath = "."
			}
			cfg, err := a.settings(projectPath)
			if err != nil {
				return err
			}
			svc, err := a.newService(cfg)
			if err != nil {
				return err
			}
			s := mcpadapter.NewSmartReviewMCPServer(projectPath, svc, cfg.ExcludePaths, version)
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&projectPath, "path", "", "Project path (defaults to current working directory)")

	return cmd
}
