package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"kanban-cli/internal/board"
	"kanban-cli/internal/config"
	"kanban-cli/internal/controller"
	"kanban-cli/internal/format"
	"kanban-cli/internal/kv"
	"kanban-cli/internal/tui"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type App struct {
	ConfigFile string
	DataDir    string
	Backend    string
	Key        string
	IDs        string
	RedisAddr  string
	LogLevel   string
	PrettyJSON bool
	Format     string
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "kanban",
		Short:        "Local-first kanban board (TUI + scriptable CLI)",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive board
  kanban

  # Scriptable commands
  kanban columns add --title Todo
  kanban tasks add col-x7k2m9qa --content "write the release notes"
  kanban tasks move task-4hd8w2pn --over col-b3n6t1ze

  # Direct task lookup (shortcut for: kanban tasks show <task-id>)
  kanban task-4hd8w2pn
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(cmd, app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.ConfigFile, "config", "", "Path to config.yaml (default: $KANBAN_CONFIG_DIR/config.yaml or ~/.kanban/config.yaml)")
	cmd.PersistentFlags().StringVar(&app.DataDir, "data-dir", "", "Directory for the board store and log (default: the config dir)")
	cmd.PersistentFlags().StringVar(&app.Backend, "backend", "", "Store backend (sqlite|file|redis|memory)")
	cmd.PersistentFlags().StringVar(&app.Key, "key", "", "Store key holding the board (default: kanbanItems)")
	cmd.PersistentFlags().StringVar(&app.IDs, "ids", "", "Id generator for new columns/tasks (random|uuid|seq)")
	cmd.PersistentFlags().StringVar(&app.RedisAddr, "redis-addr", "", "Redis address or redis:// URL (redis backend)")
	cmd.PersistentFlags().StringVar(&app.LogLevel, "log-level", "", "Log level (debug|info|warn|error)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("KANBAN_FORMAT", "json"), "Output format (json|yaml|text)")

	cmd.AddCommand(newBoardCmd(app))
	cmd.AddCommand(newColumnsCmd(app))
	cmd.AddCommand(newTasksCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

// session is one opened board: config resolved, logging set up, store open,
// controller loaded.
type session struct {
	cfg   *config.Config
	store kv.KV
	ctrl  *controller.Controller
	logs  io.Closer
}

func (s *session) Close() error {
	err := s.store.Close()
	if s.logs != nil {
		_ = s.logs.Close()
	}
	return err
}

// checkPersisted turns swallowed write failures into a command error: the
// TUI can live with them, a script needs to know.
func (s *session) checkPersisted() error {
	if n := s.ctrl.WriteFailures(); n > 0 {
		return fmt.Errorf("board change not saved (%d failed writes; see %s)", n, s.cfg.LogFile)
	}
	return nil
}

func openBoard(cmd *cobra.Command, app *App) (*session, error) {
	cfg, err := config.Load(app.ConfigFile, cmd.Flags())
	if err != nil {
		return nil, err
	}
	logs, err := config.SetupLogging(cfg)
	if err != nil {
		return nil, fmt.Errorf("setting up log file: %w", err)
	}
	ids, err := board.GeneratorByName(cfg.IDs)
	if err != nil {
		_ = logs.Close()
		return nil, err
	}

	ctx := commandContext(cmd)
	store, err := kv.Open(ctx, cfg.KVOptions())
	if err != nil {
		_ = logs.Close()
		return nil, fmt.Errorf("opening %s store: %w", cfg.Backend, err)
	}

	ctrl := controller.New(store,
		controller.WithKey(cfg.Key),
		controller.WithIDs(ids),
		controller.WithLogger(log.WithFields(log.Fields{"component": "controller", "backend": cfg.Backend})),
	)
	if err := ctrl.Load(ctx); err != nil {
		_ = store.Close()
		_ = logs.Close()
		return nil, fmt.Errorf("loading board: %w", err)
	}
	log.WithFields(log.Fields{"command": cmd.CommandPath(), "backend": cfg.Backend, "key": cfg.Key}).Debug("board opened")
	return &session{cfg: cfg, store: store, ctrl: ctrl, logs: logs}, nil
}

func runTUI(cmd *cobra.Command, app *App) error {
	s, err := openBoard(cmd, app)
	if err != nil {
		return writeErr(cmd, err)
	}
	defer s.Close()
	return tui.Run(s.ctrl, tui.Options{StoreLabel: storeLabel(s.cfg)})
}

func storeLabel(cfg *config.Config) string {
	switch cfg.Backend {
	case kv.BackendRedis:
		return "redis " + cfg.Redis.Addr
	case kv.BackendMemory:
		return "memory (not saved)"
	default:
		return string(cfg.Backend) + " " + cfg.DataDir
	}
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func envOr(k, d string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return d
}

// writeOut wraps v in the {"data": ...} envelope, except for text output
// which prints v's own rendering.
func writeOut(cmd *cobra.Command, app *App, v any) error {
	if strings.EqualFold(strings.TrimSpace(app.Format), "text") {
		return format.Write(cmd.OutOrStdout(), v, "text", false)
	}
	return format.Write(cmd.OutOrStdout(), map[string]any{"data": v}, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}

var errMissingOver = errors.New("missing --over (the column or task to move onto)")
