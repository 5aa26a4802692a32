package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"kanban-cli/internal/cli"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// isTaskID accepts generated ids (task-…) and the bare integers older boards
// were saved with.
func isTaskID(s string) bool {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "task-") {
		return len(s) > len("task-")
	}
	_, err := strconv.ParseUint(s, 10, 64)
	return err == nil
}

// rootFlagArity reports, for each persistent root flag spelling, whether it
// consumes the following argv token as its value.
func rootFlagArity(root *cobra.Command) map[string]bool {
	takesValue := map[string]bool{}
	root.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		v := f.NoOptDefVal == ""
		takesValue["--"+f.Name] = v
		if f.Shorthand != "" {
			takesValue["-"+f.Shorthand] = v
		}
	})
	return takesValue
}

// rewriteDirectTaskLookupArgs makes `kanban <task-id>` work like
// `kanban tasks show <task-id>`. Cobra reads the first positional token as a
// subcommand, so argv is rewritten before parsing; root flags may come first.
func rewriteDirectTaskLookupArgs(root *cobra.Command, argv []string) []string {
	if len(argv) < 2 {
		return argv
	}
	takesValue := rootFlagArity(root)

	rewrite := func(i int) []string {
		out := make([]string, 0, len(argv)+2)
		out = append(out, argv[:i]...)
		out = append(out, "tasks", "show")
		return append(out, argv[i:]...)
	}

	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		switch {
		case a == "":
			continue
		case a == "--":
			if i+1 < len(argv) && isTaskID(argv[i+1]) {
				return rewrite(i + 1)
			}
			return argv
		case strings.HasPrefix(a, "-"):
			// Unknown flags never consume a value, so an id is not swallowed.
			if !strings.Contains(a, "=") && takesValue[a] {
				i++
			}
		case isTaskID(a):
			return rewrite(i)
		default:
			return argv
		}
	}
	return argv
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := cli.NewRootCmd()
	cmd.SetArgs(rewriteDirectTaskLookupArgs(cmd, os.Args)[1:])
	if err := cmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
