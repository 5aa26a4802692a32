// Package publish writes a board out as plain markdown files: an index page
// and, optionally, one page per task.
package publish

import (
	"errors"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"kanban-cli/internal/model"
)

type WriteOptions struct {
	Title     string
	Overwrite bool
	// Tasks also writes tasks/<id>.md and links them from the index.
	Tasks bool
}

type WriteResult struct {
	Written []string `json:"written" yaml:"written"`
}

func WriteBoard(snap model.Snapshot, toDir string, opt WriteOptions) (WriteResult, error) {
	toDir = strings.TrimSpace(toDir)
	if toDir == "" {
		return WriteResult{}, errors.New("missing --to")
	}
	toDir = filepath.Clean(toDir)
	if err := os.MkdirAll(toDir, 0o755); err != nil {
		return WriteResult{}, err
	}

	indexMD := RenderBoardMarkdown(snap, RenderOptions{Title: opt.Title, LinkTasks: opt.Tasks})
	indexPath := filepath.Join(toDir, "index.md")
	if err := writeFile(indexPath, []byte(indexMD), opt.Overwrite); err != nil {
		return WriteResult{}, err
	}
	written := []string{indexPath}
	if !opt.Tasks || len(snap.Tasks) == 0 {
		return WriteResult{Written: written}, nil
	}

	tasksDir := filepath.Join(toDir, "tasks")
	if err := os.MkdirAll(tasksDir, 0o755); err != nil {
		return WriteResult{}, err
	}
	// Stop on the first error; pages written so far stay.
	for _, t := range snap.Tasks {
		md, err := RenderTaskMarkdown(snap, t.ID)
		if err != nil {
			return WriteResult{}, err
		}
		p := filepath.Join(tasksDir, pageName(t.ID))
		if err := writeFile(p, []byte(md), opt.Overwrite); err != nil {
			return WriteResult{}, err
		}
		written = append(written, p)
	}
	return WriteResult{Written: written}, nil
}

// pageName maps an id to a file name inside the tasks directory. Escaping is
// injective, so distinct ids never share a page.
func pageName(id model.ID) string {
	return url.PathEscape(id.String()) + ".md"
}

func writeFile(path string, b []byte, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return errors.New("file exists (use --overwrite): " + path)
		}
	}
	return os.WriteFile(path, b, 0o644)
}
