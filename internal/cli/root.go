// Package cli implements the wireframe command-line interface.
//
// # Commands
//
//   - render: run a scene and save the picture
//   - print: run a scene and dump the final edge matrix
//   - version: print build information
//
// Every command accepts --verbose (-v) for debug-level logging. The logger
// travels in the command context.
package cli

import (
	"context"
	"io"
	"log/slog"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/wireframe/internal/buildinfo"
	"github.com/katalvlaran/wireframe/render"
)

// NewRootCommand builds the command tree. Logs go to logw; command output
// goes to cobra's OutOrStdout.
func NewRootCommand(logw io.Writer) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "wireframe",
		Short:         "wireframe renders transformed edge lists to images",
		Long:          `wireframe builds 3D edge lists from a TOML scene, animates them with homogeneous 4×4 transforms and rasterizes every frame onto one image.`,
		Version:       buildinfo.ResolvedVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(logw, level)
			if verbose {
				render.SetLogger(slog.New(logger))
			} else {
				render.SetLogger(nil)
			}
			cmd.SetContext(withLogger(cmd.Context(), logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newPrintCmd())
	root.AddCommand(newVersionCmd())

	return root
}

// Execute runs the CLI with os.Args, logging to logw.
func Execute(ctx context.Context, logw io.Writer) error {
	return NewRootCommand(logw).ExecuteContext(ctx)
}
