package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ID names a column or task. Generated ids are strings ("col-..."/"task-..."),
// but boards written by older builds used integers; both decode to ID.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id: expected string or number, got %s", string(b))
	}
	if _, err := strconv.ParseInt(n.String(), 10, 64); err != nil {
		return fmt.Errorf("id: non-integer number %s", n.String())
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string { return string(id) }

func (id ID) Empty() bool { return strings.TrimSpace(string(id)) == "" }

type Column struct {
	ID    ID     `json:"id" yaml:"id"`
	Title string `json:"title" yaml:"title"`
}

type Task struct {
	ID       ID     `json:"id" yaml:"id"`
	ColumnID ID     `json:"columnId" yaml:"columnId"`
	Content  string `json:"content" yaml:"content"`
}

// Snapshot is the persisted slice of a board: columns and tasks, in order.
type Snapshot struct {
	Columns []Column `json:"columns" yaml:"columns"`
	Tasks   []Task   `json:"tasks" yaml:"tasks"`
}

// Normalized returns a copy with nil slices replaced by empty ones, so the
// wire form is always `[]` rather than `null`.
func (s Snapshot) Normalized() Snapshot {
	out := Snapshot{
		Columns: make([]Column, len(s.Columns)),
		Tasks:   make([]Task, len(s.Tasks)),
	}
	copy(out.Columns, s.Columns)
	copy(out.Tasks, s.Tasks)
	return out
}

func (s Snapshot) Empty() bool { return len(s.Columns) == 0 && len(s.Tasks) == 0 }
