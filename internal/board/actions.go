package board

import "kanban-cli/internal/model"

// Action is one of the closed set of board mutations. The unexported marker
// keeps the set closed to this package.
type Action interface {
	action()
	Name() string
}

type (
	LoadFromStorage struct {
		Columns []model.Column
		Tasks   []model.Task
	}
	CreateColumn struct{}
	DeleteColumn struct{ ID model.ID }
	UpdateColumn struct {
		ID    model.ID
		Title string
	}
	CreateTask struct{ ColumnID model.ID }
	DeleteTask struct{ ID model.ID }
	UpdateTask struct {
		ID      model.ID
		Content string
	}
	DragStart struct{ Event DragEvent }
	DragOver  struct{ Event DragEvent }
	DragEnd   struct{ Event DragEvent }
)

func (LoadFromStorage) action() {}
func (CreateColumn) action()    {}
func (DeleteColumn) action()    {}
func (UpdateColumn) action()    {}
func (CreateTask) action()      {}
func (DeleteTask) action()      {}
func (UpdateTask) action()      {}
func (DragStart) action()       {}
func (DragOver) action()        {}
func (DragEnd) action()         {}

func (LoadFromStorage) Name() string { return "load_from_storage" }
func (CreateColumn) Name() string    { return "create_column" }
func (DeleteColumn) Name() string    { return "delete_column" }
func (UpdateColumn) Name() string    { return "update_column" }
func (CreateTask) Name() string      { return "create_task" }
func (DeleteTask) Name() string      { return "delete_task" }
func (UpdateTask) Name() string      { return "update_task" }
func (DragStart) Name() string       { return "drag_start" }
func (DragOver) Name() string        { return "drag_over" }
func (DragEnd) Name() string         { return "drag_end" }
