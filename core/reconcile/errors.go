package reconcile

import (
	"errors"
	"fmt"
)

// Sentinel errors for diff entry failures. The typed errors below match them
// through errors.Is.
var (
	// ErrMissingTeam indicates a diff entry without a team reference.
	ErrMissingTeam = errors.New("missing team")

	// ErrInvalidIdentity indicates a diff entry whose id is not an integer.
	ErrInvalidIdentity = errors.New("invalid player identity")

	// ErrUnsupportedDiffShape indicates a diff payload that is neither a list
	// nor a team-keyed mapping, or an entry that is not an object.
	ErrUnsupportedDiffShape = errors.New("unsupported diff shape")
)

// MissingTeamError reports a diff entry with neither team key set.
type MissingTeamError struct {
	Index int
}

// Error implements the error interface
func (e *MissingTeamError) Error() string {
	return fmt.Sprintf("entry %d: no team under \"equipo\" or \"team\"", e.Index)
}

// Is implements errors.Is support
func (e *MissingTeamError) Is(target error) bool {
	return target == ErrMissingTeam
}

// InvalidIdentityError reports a diff entry whose id cannot be converted to an integer.
type InvalidIdentityError struct {
	Index int
	Value any
	Err   error
}

// Error implements the error interface
func (e *InvalidIdentityError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("entry %d: missing player id", e.Index)
	}
	return fmt.Sprintf("entry %d: invalid player id %v", e.Index, e.Value)
}

// Unwrap implements errors.Unwrap
func (e *InvalidIdentityError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *InvalidIdentityError) Is(target error) bool {
	return target == ErrInvalidIdentity
}

// UnsupportedDiffShapeError reports a payload or entry of the wrong JSON kind.
// Index is -1 when the whole payload is rejected.
type UnsupportedDiffShapeError struct {
	Index  int
	Detail string
}

// Error implements the error interface
func (e *UnsupportedDiffShapeError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("unsupported diff shape: %s", e.Detail)
	}
	return fmt.Sprintf("entry %d: unsupported diff shape: %s", e.Index, e.Detail)
}

// Is implements errors.Is support
func (e *UnsupportedDiffShapeError) Is(target error) bool {
	return target == ErrUnsupportedDiffShape
}

// EntryFailure is the recorded outcome of an entry that failed normalization.
type EntryFailure struct {
	Index int    `json:"index"`
	Error string `json:"error"`
	Err   error  `json:"-"`
}

func newEntryFailure(err error, index int) EntryFailure {
	return EntryFailure{Index: index, Error: err.Error(), Err: err}
}
