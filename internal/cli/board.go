package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"kanban-cli/internal/kv"
	"kanban-cli/internal/model"

	"github.com/spf13/cobra"
)

func newBoardCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Whole-board commands (show, export, import, reset, publish)",
	}
	cmd.AddCommand(newBoardShowCmd(app))
	cmd.AddCommand(newBoardExportCmd(app))
	cmd.AddCommand(newBoardImportCmd(app))
	cmd.AddCommand(newBoardResetCmd(app))
	cmd.AddCommand(newBoardPublishCmd(app))
	return cmd
}

func newBoardShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the board (columns and tasks, in order)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openBoard(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer s.Close()
			return writeOut(cmd, app, boardView{Snapshot: s.ctrl.State().Snapshot()})
		},
	}
}

func newBoardExportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Write the stored snapshot as JSON (stdout when no file is given)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openBoard(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer s.Close()

			b, err := kv.EncodeSnapshot(s.ctrl.State().Snapshot())
			if err != nil {
				return writeErr(cmd, err)
			}
			if app.PrettyJSON {
				var buf bytes.Buffer
				if err := json.Indent(&buf, b, "", "  "); err != nil {
					return writeErr(cmd, err)
				}
				b = buf.Bytes()
			}
			b = append(b, '\n')

			if len(args) == 0 || args[0] == "-" {
				_, err := cmd.OutOrStdout().Write(b)
				return err
			}
			if err := os.WriteFile(args[0], b, 0o644); err != nil {
				return writeErr(cmd, fmt.Errorf("writing %s: %w", args[0], err))
			}
			return nil
		},
	}
}

func newBoardImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the board with a JSON snapshot (use - for stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				raw []byte
				err error
			)
			if args[0] == "-" {
				raw, err = io.ReadAll(cmd.InOrStdin())
			} else {
				raw, err = os.ReadFile(args[0])
			}
			if err != nil {
				return writeErr(cmd, fmt.Errorf("reading snapshot: %w", err))
			}
			// Unlike loading at startup, a bad import is an error, not an empty board.
			snap, err := kv.DecodeSnapshot(bytes.TrimSpace(raw))
			if err != nil {
				return writeErr(cmd, fmt.Errorf("invalid snapshot: %w", err))
			}
			if err := validateSnapshot(snap); err != nil {
				return writeErr(cmd, err)
			}

			s, err := openBoard(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer s.Close()

			st := s.ctrl.Import(snap)
			if err := s.checkPersisted(); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, boardView{Snapshot: st.Snapshot()})
		},
	}
}

func newBoardResetCmd(app *App) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete the stored board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return writeErr(cmd, errors.New("refusing to delete the board without --yes"))
			}
			s, err := openBoard(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer s.Close()

			before := s.ctrl.State()
			if err := s.ctrl.Reset(commandContext(cmd)); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{
				"key":            s.cfg.Key,
				"deletedColumns": len(before.Columns),
				"deletedTasks":   len(before.Tasks),
			})
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm deleting the board")
	return cmd
}

// validateSnapshot rejects what the board itself never produces: duplicate
// or empty ids, and tasks whose column does not exist.
func validateSnapshot(snap model.Snapshot) error {
	columns := make(map[model.ID]bool, len(snap.Columns))
	for _, c := range snap.Columns {
		if c.ID.Empty() {
			return fmt.Errorf("invalid snapshot: column with empty id (title %q)", c.Title)
		}
		if columns[c.ID] {
			return fmt.Errorf("invalid snapshot: duplicate column id %s", c.ID)
		}
		columns[c.ID] = true
	}
	tasks := make(map[model.ID]bool, len(snap.Tasks))
	for _, t := range snap.Tasks {
		if t.ID.Empty() {
			return fmt.Errorf("invalid snapshot: task with empty id in column %s", t.ColumnID)
		}
		if tasks[t.ID] {
			return fmt.Errorf("invalid snapshot: duplicate task id %s", t.ID)
		}
		if !columns[t.ColumnID] {
			return fmt.Errorf("invalid snapshot: task %s names unknown column %q", t.ID, t.ColumnID)
		}
		tasks[t.ID] = true
	}
	return nil
}
