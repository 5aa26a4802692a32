package cli

import (
	"strings"

	"kanban-cli/internal/board"
	"kanban-cli/internal/model"

	"github.com/spf13/cobra"
)

func newColumnsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "columns",
		Aliases: []string{"column", "cols"},
		Short:   "Column commands",
	}
	cmd.AddCommand(newColumnsListCmd(app))
	cmd.AddCommand(newColumnsAddCmd(app))
	cmd.AddCommand(newColumnsRmCmd(app))
	cmd.AddCommand(newColumnsRenameCmd(app))
	cmd.AddCommand(newColumnsMoveCmd(app))
	return cmd
}

func newColumnsListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List columns in board order, with task counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openBoard(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer s.Close()
			return writeOut(cmd, app, columnViews(s.ctrl.State().Snapshot()))
		},
	}
}

func newColumnsAddCmd(app *App) *cobra.Command {
	var title string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Append a column (titled \"Column N\" unless --title is given)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openBoard(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer s.Close()

			st := s.ctrl.CreateColumn()
			col := st.Columns[len(st.Columns)-1]
			if cmd.Flags().Changed("title") {
				st = s.ctrl.UpdateColumn(col.ID, title)
				col, _ = st.Column(col.ID)
			}
			if err := s.checkPersisted(); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, columnView{Column: col})
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "Column title")
	return cmd
}

func newColumnsRmCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <column-id>",
		Aliases: []string{"delete"},
		Short:   "Delete a column and every task in it",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openBoard(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer s.Close()

			id := model.ID(strings.TrimSpace(args[0]))
			col, ok := s.ctrl.State().Column(id)
			if !ok {
				return writeErr(cmd, errNotFound("column", string(id)))
			}
			removed := len(s.ctrl.TasksIn(id))
			s.ctrl.DeleteColumn(id)
			if err := s.checkPersisted(); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"deleted": col, "deletedTasks": removed})
		},
	}
}

func newColumnsRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <column-id> <title>",
		Short: "Set a column's title",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openBoard(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer s.Close()

			id := model.ID(strings.TrimSpace(args[0]))
			if _, ok := s.ctrl.State().Column(id); !ok {
				return writeErr(cmd, errNotFound("column", string(id)))
			}
			st := s.ctrl.UpdateColumn(id, args[1])
			if err := s.checkPersisted(); err != nil {
				return writeErr(cmd, err)
			}
			col, _ := st.Column(id)
			return writeOut(cmd, app, columnView{Column: col, Tasks: len(st.TasksIn(id))})
		},
	}
}

func newColumnsMoveCmd(app *App) *cobra.Command {
	var over string
	cmd := &cobra.Command{
		Use:   "move <column-id> --over <column-id>",
		Short: "Move a column to another column's position (a scripted drag and drop)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			overID := model.ID(strings.TrimSpace(over))
			if overID.Empty() {
				return writeErr(cmd, errMissingOver)
			}

			s, err := openBoard(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer s.Close()

			st := s.ctrl.State()
			id := model.ID(strings.TrimSpace(args[0]))
			col, ok := st.Column(id)
			if !ok {
				return writeErr(cmd, errNotFound("column", string(id)))
			}
			target, ok := st.Column(overID)
			if !ok {
				return writeErr(cmd, errNotFound("column", string(overID)))
			}

			st = runGesture(s, board.ColumnItem(col), board.ColumnItem(target))
			if err := s.checkPersisted(); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, columnViews(st.Snapshot()))
		},
	}
	cmd.Flags().StringVar(&over, "over", "", "Column whose position the moved column takes")
	return cmd
}

// runGesture replays a complete drag: start on active, one hover over the
// target, and a drop on it.
func runGesture(s *session, active, over board.DragItem) board.State {
	s.ctrl.DragStart(board.DragEvent{Active: active})
	s.ctrl.DragOver(board.DragEvent{Active: active, Over: &over})
	return s.ctrl.DragEnd(board.DragEvent{Active: active, Over: &over})
}
