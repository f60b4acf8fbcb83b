package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/wireframe/internal/scene"
	"github.com/katalvlaran/wireframe/matrix"
)

var (
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))
	styleDim   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func newPrintCmd() *cobra.Command {
	var scenePath string

	cmd := &cobra.Command{
		Use:   "print",
		Short: "Run a scene and print the final edge matrix",
		Long: `Run a scene without saving an image and print the resulting 4×N edge
matrix, one row per line: x, y, z and w.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadScene(scenePath)
			if err != nil {
				return err
			}
			r := scene.NewRunner(s, loggerFromContext(cmd.Context()))
			defer r.Release()

			if _, err := r.Run(cmd.Context()); err != nil {
				return err
			}
			m := r.Edges().Matrix()
			w := cmd.OutOrStdout()
			header := styleDim.Render(fmt.Sprintf("%d×%d, %d segments", m.Rows(), m.Cols(), r.Edges().Len()))
			if _, err := fmt.Fprintln(w, styleTitle.Render("edge matrix"), header); err != nil {
				return err
			}
			return matrix.Fprint(w, m)
		},
	}

	cmd.Flags().StringVarP(&scenePath, "scene", "s", "", "scene file (TOML); built-in scene when empty")
	return cmd
}
