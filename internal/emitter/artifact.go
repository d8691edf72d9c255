package emitter

import (
	"bufio"
	"fmt"
	"os"

	"github.com/google/uuid"
)

// artifact is one output file under construction. In atomic mode the
// content is written to a uniquely named temporary sibling and renamed onto
// the target path only after a clean flush and close; otherwise the target
// is written in place and a failure leaves a partial file behind, matching
// the original converter's behavior.
type artifact struct {
	path     string
	workPath string
	file     *os.File
	w        *bufio.Writer
}

// createArtifact opens the output file for path, overwriting any existing
// file without confirmation.
func createArtifact(path string, atomic bool) (*artifact, error) {
	workPath := path
	if atomic {
		workPath = fmt.Sprintf("%s.%s.tmp", path, uuid.NewString())
	}

	file, err := os.Create(workPath)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}

	return &artifact{
		path:     path,
		workPath: workPath,
		file:     file,
		w:        bufio.NewWriter(file),
	}, nil
}

// finish flushes and closes the artifact on every path, then either renames
// the temporary file onto the target (atomic mode, success) or removes it
// (atomic mode, failure). emitErr is the error state of the writes that
// preceded finish; the first error wins and later clean-up errors do not
// mask it.
func (a *artifact) finish(emitErr error) error {
	if ferr := a.w.Flush(); ferr != nil && emitErr == nil {
		emitErr = &FlushError{Path: a.path, Err: ferr}
	}
	if cerr := a.file.Close(); cerr != nil && emitErr == nil {
		emitErr = &CloseError{Path: a.path, Err: cerr}
	}

	if a.workPath == a.path {
		return emitErr
	}
	if emitErr != nil {
		os.Remove(a.workPath)
		return emitErr
	}
	if rerr := os.Rename(a.workPath, a.path); rerr != nil {
		return &CloseError{Path: a.path, Err: rerr}
	}
	return nil
}
