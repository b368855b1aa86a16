// Package walker discovers the paths a run operates on: a sequential
// depth-first traversal of the argument paths, or a newline-separated list
// read from an io.Reader. Discovered entries are handed to a Dispatcher one
// at a time; the walker alone decides whether to recurse.
package walker

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Dispatcher receives each discovered entry, classified as file or
// directory, plus traversal diagnostics.
//
//go:generate counterfeiter . Dispatcher
type Dispatcher interface {
	ChangeFile(path string)
	ChangeDirectory(path string)
	RecordError(message string)
	RecordInfo(message string)
}

type Walker struct {
	Dispatcher Dispatcher
	Recursive  bool
}

// Walk classifies path and dispatches it, recursing into directories when
// Recursive is set. Traversal errors are reported and never stop the walk
// of sibling entries.
func (w *Walker) Walk(path string) {
	info, err := os.Stat(path)
	if err != nil {
		w.Dispatcher.RecordError(accessError(path, err))
		return
	}

	if !info.IsDir() {
		w.Dispatcher.RecordInfo(path)
		w.Dispatcher.ChangeFile(path)
		return
	}

	w.Dispatcher.RecordInfo(path + string(os.PathSeparator))
	w.Dispatcher.ChangeDirectory(path)

	if !w.Recursive {
		return
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		w.Dispatcher.RecordError(accessError(path, err))
		return
	}

	for _, entry := range entries {
		w.Walk(filepath.Join(path, entry.Name()))
	}
}

// WalkList walks each non-empty newline-separated path read from r, used
// when the operator passes "-" to read a path list from standard input.
func (w *Walker) WalkList(r io.Reader) {
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		path := scanner.Text()
		if path == "" {
			continue
		}

		w.Walk(path)
	}

	if err := scanner.Err(); err != nil {
		w.Dispatcher.RecordError(fmt.Sprintf("reading path list: %s", err))
	}
}

// accessError maps platform errors onto a small closed taxonomy instead of
// leaking raw errno text for the common cases.
func accessError(path string, err error) string {
	switch {
	case os.IsNotExist(err):
		return fmt.Sprintf("cannot access '%s': no such file or directory", path)
	case os.IsPermission(err):
		return fmt.Sprintf("cannot access '%s': permission denied", path)
	default:
		return fmt.Sprintf("cannot access '%s': %s", path, err)
	}
}
