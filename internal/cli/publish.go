package cli

import (
	"errors"
	"strings"

	"kanban-cli/internal/publish"

	"github.com/spf13/cobra"
)

func newBoardPublishCmd(app *App) *cobra.Command {
	var (
		toDir     string
		title     string
		withTasks bool
		overwrite bool
	)

	cmd := &cobra.Command{
		Use:   "publish --to <dir>",
		Short: "Write the board as Markdown (index.md, plus tasks/<id>.md with --tasks)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			toDir = strings.TrimSpace(toDir)
			if toDir == "" {
				return writeErr(cmd, errors.New("missing --to"))
			}
			s, err := openBoard(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer s.Close()

			res, err := publish.WriteBoard(s.ctrl.State().Snapshot(), toDir, publish.WriteOptions{
				Title:     title,
				Overwrite: overwrite,
				Tasks:     withTasks,
			})
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, res)
		},
	}

	cmd.Flags().StringVar(&toDir, "to", "", "Output directory")
	cmd.Flags().StringVar(&title, "title", "", "Index page title (default: Board)")
	cmd.Flags().BoolVar(&withTasks, "tasks", false, "Also write one page per task")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing files")
	return cmd
}
