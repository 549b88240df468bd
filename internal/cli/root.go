// Package cli implements the graphson command-line interface.
//
// The commands decode, encode, and inspect GraphSON documents using the
// codec in pkg/graphson. The CLI is built using cobra and logs through
// charmbracelet/log.
//
// # Commands
//
//   - decode: Decode GraphSON and print the resulting values
//   - encode: Turn plain JSON into typed GraphSON
//   - bytecode: Build a traversal program from TOML and print its GraphSON
//   - tags: List the registered wire tags and serializable types
//   - dot: Draw the vertices and edges in a GraphSON document
//   - serve: Expose the codec over HTTP for debugging
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/graphson/pkg/buildinfo"
)

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "graphson encodes and decodes GraphSON 2.0 documents",
		Long:         `graphson is a CLI for inspecting the typed JSON exchanged between graph traversal clients and servers.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default ~/.config/graphson/graphson.toml)")

	root.AddCommand(c.decodeCommand())
	root.AddCommand(c.encodeCommand())
	root.AddCommand(c.bytecodeCommand())
	root.AddCommand(c.tagsCommand())
	root.AddCommand(c.dotCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}
