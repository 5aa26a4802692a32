package cli

import (
	"fmt"
	"strings"

	"kanban-cli/internal/board"
	"kanban-cli/internal/model"

	"github.com/spf13/cobra"
)

func newTasksCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tasks",
		Aliases: []string{"task"},
		Short:   "Task commands",
	}
	cmd.AddCommand(newTasksListCmd(app))
	cmd.AddCommand(newTasksShowCmd(app))
	cmd.AddCommand(newTasksAddCmd(app))
	cmd.AddCommand(newTasksRmCmd(app))
	cmd.AddCommand(newTasksEditCmd(app))
	cmd.AddCommand(newTasksMoveCmd(app))
	return cmd
}

func newTasksListCmd(app *App) *cobra.Command {
	var columnID string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks in board order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openBoard(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer s.Close()

			st := s.ctrl.State()
			if columnID == "" {
				return writeOut(cmd, app, tasksView(st.Snapshot().Tasks))
			}
			id := model.ID(strings.TrimSpace(columnID))
			if _, ok := st.Column(id); !ok {
				return writeErr(cmd, errNotFound("column", string(id)))
			}
			return writeOut(cmd, app, tasksView(s.ctrl.TasksIn(id)))
		},
	}
	cmd.Flags().StringVar(&columnID, "column", "", "Only tasks in this column")
	return cmd
}

func newTasksShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <task-id>",
		Short: "Show one task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openBoard(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer s.Close()

			id := model.ID(strings.TrimSpace(args[0]))
			t, ok := s.ctrl.State().Task(id)
			if !ok {
				return writeErr(cmd, errNotFound("task", string(id)))
			}
			return writeOut(cmd, app, taskView{Task: t})
		},
	}
}

func newTasksAddCmd(app *App) *cobra.Command {
	var content string
	cmd := &cobra.Command{
		Use:   "add <column-id>",
		Short: "Append a task to a column (\"Task N\" unless --content is given)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openBoard(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer s.Close()

			colID := model.ID(strings.TrimSpace(args[0]))
			if _, ok := s.ctrl.State().Column(colID); !ok {
				return writeErr(cmd, errNotFound("column", string(colID)))
			}
			st := s.ctrl.CreateTask(colID)
			t := st.Tasks[len(st.Tasks)-1]
			if cmd.Flags().Changed("content") {
				st = s.ctrl.UpdateTask(t.ID, content)
				t, _ = st.Task(t.ID)
			}
			if err := s.checkPersisted(); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, taskView{Task: t})
		},
	}
	cmd.Flags().StringVar(&content, "content", "", "Task content (markdown)")
	return cmd
}

func newTasksRmCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <task-id>",
		Aliases: []string{"delete"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openBoard(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer s.Close()

			id := model.ID(strings.TrimSpace(args[0]))
			t, ok := s.ctrl.State().Task(id)
			if !ok {
				return writeErr(cmd, errNotFound("task", string(id)))
			}
			s.ctrl.DeleteTask(id)
			if err := s.checkPersisted(); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"deleted": t})
		},
	}
}

func newTasksEditCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <task-id> <content>",
		Short: "Replace a task's content",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openBoard(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer s.Close()

			id := model.ID(strings.TrimSpace(args[0]))
			if _, ok := s.ctrl.State().Task(id); !ok {
				return writeErr(cmd, errNotFound("task", string(id)))
			}
			st := s.ctrl.UpdateTask(id, args[1])
			if err := s.checkPersisted(); err != nil {
				return writeErr(cmd, err)
			}
			t, _ := st.Task(id)
			return writeOut(cmd, app, taskView{Task: t})
		},
	}
}

func newTasksMoveCmd(app *App) *cobra.Command {
	var over, overKind string
	cmd := &cobra.Command{
		Use:   "move <task-id> --over <task-or-column-id>",
		Short: "Move a task onto another task's position or into a column (a scripted drag and drop)",
		Long: strings.TrimSpace(`
Over a task: the moved task joins that task's column and takes its position.
Over a column: the moved task joins the column and keeps its place in the
global task order.

--over-kind picks how --over is read when an id could be either; by default
tasks are tried first.
`),
		Args: cobra.ExactArgs(1),
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
			t, ok := st.Task(id)
			if !ok {
				return writeErr(cmd, errNotFound("task", string(id)))
			}
			target, err := resolveOver(st, overID, overKind)
			if err != nil {
				return writeErr(cmd, err)
			}

			st = runGesture(s, board.TaskItem(t), target)
			if err := s.checkPersisted(); err != nil {
				return writeErr(cmd, err)
			}
			moved, _ := st.Task(id)
			return writeOut(cmd, app, taskView{Task: moved})
		},
	}
	cmd.Flags().StringVar(&over, "over", "", "Task or column to drop onto")
	cmd.Flags().StringVar(&overKind, "over-kind", "", "How to read --over: task|column (default: task, then column)")
	return cmd
}

func resolveOver(st board.State, id model.ID, kind string) (board.DragItem, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "":
		if t, ok := st.Task(id); ok {
			return board.TaskItem(t), nil
		}
		if c, ok := st.Column(id); ok {
			return board.ColumnItem(c), nil
		}
		return board.DragItem{}, errNotFound("task or column", string(id))
	case "task":
		t, ok := st.Task(id)
		if !ok {
			return board.DragItem{}, errNotFound("task", string(id))
		}
		return board.TaskItem(t), nil
	case "column":
		c, ok := st.Column(id)
		if !ok {
			return board.DragItem{}, errNotFound("column", string(id))
		}
		return board.ColumnItem(c), nil
	default:
		return board.DragItem{}, fmt.Errorf("invalid --over-kind %q (want task|column)", kind)
	}
}
