// Package controller owns the board's lifecycle: it seeds the reducer from
// the persistent store, routes intents and drag events through it, and
// mirrors columns/tasks back to the store after every change.
//
// A Controller is not safe for concurrent use. The TUI drives it from the
// bubbletea update loop; CLI commands drive it from a single goroutine.
package controller

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"kanban-cli/internal/board"
	"kanban-cli/internal/kv"
	"kanban-cli/internal/model"
)

type Controller struct {
	store   kv.KV
	key     string
	reducer board.Reducer
	timeout time.Duration
	logger  *log.Entry

	state     board.State
	listeners []func(board.State)

	writeFailures int
}

type Option func(*Controller)

func WithKey(key string) Option {
	return func(c *Controller) {
		if key != "" {
			c.key = key
		}
	}
}

func WithIDs(ids board.IDGenerator) Option {
	return func(c *Controller) { c.reducer = board.NewReducer(ids) }
}

// WithWriteTimeout bounds each persistence write (default 2s).
func WithWriteTimeout(d time.Duration) Option {
	return func(c *Controller) { c.timeout = d }
}

func WithLogger(l *log.Entry) Option {
	return func(c *Controller) { c.logger = l }
}

func New(store kv.KV, opts ...Option) *Controller {
	c := &Controller{
		store:   store,
		key:     kv.DefaultKey,
		reducer: board.NewReducer(board.RandomIDs{}),
		timeout: 2 * time.Second,
		logger:  log.WithField("component", "controller"),
		state:   board.State{Columns: []model.Column{}, Tasks: []model.Task{}},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Load seeds the board from the persisted snapshot. Drag state always starts
// empty. Backend failures are returned; an absent or malformed snapshot loads
// as an empty board.
func (c *Controller) Load(ctx context.Context) error {
	snap, err := kv.LoadSnapshot(ctx, c.store, c.key)
	if err != nil {
		return err
	}
	c.state = c.reducer.Reduce(board.State{}, board.LoadFromStorage{Columns: snap.Columns, Tasks: snap.Tasks})
	c.logger.WithFields(log.Fields{"columns": len(snap.Columns), "tasks": len(snap.Tasks)}).Debug("board loaded")
	c.notify()
	return nil
}

// OnChange registers fn to be called with the new state after every dispatch
// that changed anything (including drag state).
func (c *Controller) OnChange(fn func(board.State)) {
	if fn != nil {
		c.listeners = append(c.listeners, fn)
	}
}

func (c *Controller) State() board.State { return c.state }

func (c *Controller) ColumnIDs() []model.ID { return c.state.ColumnIDs() }

func (c *Controller) TasksIn(columnID model.ID) []model.Task { return c.state.TasksIn(columnID) }

// WriteFailures counts persistence writes that failed since New.
func (c *Controller) WriteFailures() int { return c.writeFailures }

// Dispatch applies a, installs the result, and persists columns/tasks when
// they changed. Persistence failures are logged and never surface: the
// in-memory board stays the source of truth for the session.
func (c *Controller) Dispatch(a board.Action) board.State {
	prev := c.state
	next := c.reducer.Reduce(prev, a)
	c.state = next

	itemsChanged := !board.SameItems(prev, next)
	if itemsChanged {
		c.persist(a)
	}
	if itemsChanged || prev.ActiveColumn != next.ActiveColumn || prev.ActiveTask != next.ActiveTask {
		c.notify()
	}
	return next
}

func (c *Controller) persist(a board.Action) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()
	if err := kv.SaveSnapshot(ctx, c.store, c.key, c.state.Snapshot()); err != nil {
		c.writeFailures++
		c.logger.WithError(err).WithField("action", a.Name()).Warn("persist board failed")
	}
}

func (c *Controller) notify() {
	for _, fn := range c.listeners {
		fn(c.state)
	}
}

// Reset deletes the persisted board and starts over with an empty one.
func (c *Controller) Reset(ctx context.Context) error {
	if err := c.store.Delete(ctx, c.key); err != nil {
		return err
	}
	c.state = board.State{Columns: []model.Column{}, Tasks: []model.Task{}}
	c.notify()
	return nil
}

func (c *Controller) CreateColumn() board.State { return c.Dispatch(board.CreateColumn{}) }

func (c *Controller) DeleteColumn(id model.ID) board.State {
	return c.Dispatch(board.DeleteColumn{ID: id})
}

func (c *Controller) UpdateColumn(id model.ID, title string) board.State {
	return c.Dispatch(board.UpdateColumn{ID: id, Title: title})
}

func (c *Controller) CreateTask(columnID model.ID) board.State {
	return c.Dispatch(board.CreateTask{ColumnID: columnID})
}

func (c *Controller) DeleteTask(id model.ID) board.State {
	return c.Dispatch(board.DeleteTask{ID: id})
}

func (c *Controller) UpdateTask(id model.ID, content string) board.State {
	return c.Dispatch(board.UpdateTask{ID: id, Content: content})
}

func (c *Controller) DragStart(ev board.DragEvent) board.State {
	return c.Dispatch(board.DragStart{Event: ev})
}

func (c *Controller) DragOver(ev board.DragEvent) board.State {
	return c.Dispatch(board.DragOver{Event: ev})
}

func (c *Controller) DragEnd(ev board.DragEvent) board.State {
	return c.Dispatch(board.DragEnd{Event: ev})
}

// Import replaces the board with snap (as LoadFromStorage) and persists it.
func (c *Controller) Import(snap model.Snapshot) board.State {
	snap = snap.Normalized()
	return c.Dispatch(board.LoadFromStorage{Columns: snap.Columns, Tasks: snap.Tasks})
}
