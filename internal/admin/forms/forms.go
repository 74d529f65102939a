// Package forms holds the edit-session state machines behind the admin
// screens. A form moves between idle, editing and submitting; staged file
// handles are released on every path that leaves the edit session.
package forms

import "errors"

// Mode is the lifecycle phase of a form.
type Mode int

const (
	// ModeIdle means no edit session is open.
	ModeIdle Mode = iota
	// ModeEditing means fields are being mutated, either for a new document
	// or an existing one.
	ModeEditing
	// ModeSubmitting means a submit is in flight; mutations are rejected.
	ModeSubmitting
)

var (
	// ErrNotEditing is returned when an operation requires an open edit session.
	ErrNotEditing = errors.New("forms: no edit session is open")
	// ErrSubmitInFlight is returned when a submit overlaps another.
	ErrSubmitInFlight = errors.New("forms: submit already in flight")
)

// StagedFile is a pending upload held by a form until submit. Release frees
// the underlying handle (an object URL, a temp file) exactly once.
type StagedFile struct {
	Name        string
	ContentType string
	Data        []byte

	release  func()
	released bool
}

// NewStagedFile wraps a pending upload. release may be nil.
func NewStagedFile(name, contentType string, data []byte, release func()) *StagedFile {
	return &StagedFile{Name: name, ContentType: contentType, Data: data, release: release}
}

// Release frees the handle. Safe to call more than once.
func (f *StagedFile) Release() {
	if f == nil || f.released {
		return
	}
	f.released = true
	if f.release != nil {
		f.release()
	}
}

// Released reports whether the handle has been freed.
func (f *StagedFile) Released() bool {
	return f == nil || f.released
}
