package emitter

import "fmt"

// OpenError indicates an output artifact could not be created.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("open %s: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}

// WriteError indicates a write to an output artifact failed.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// FlushError indicates buffered artifact content could not be flushed. A
// flush failure means content may not have reached durable storage, so it
// is surfaced even when every preceding write succeeded.
type FlushError struct {
	Path string
	Err  error
}

func (e *FlushError) Error() string {
	return fmt.Sprintf("flush %s: %v", e.Path, e.Err)
}

func (e *FlushError) Unwrap() error {
	return e.Err
}

// CloseError indicates an output artifact could not be closed cleanly.
type CloseError struct {
	Path string
	Err  error
}

func (e *CloseError) Error() string {
	return fmt.Sprintf("close %s: %v", e.Path, e.Err)
}

func (e *CloseError) Unwrap() error {
	return e.Err
}
