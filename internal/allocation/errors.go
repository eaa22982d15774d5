// Package allocation implements the table-allocation and
// availability engine: interval-based conflict detection against
// existing bookings, single-table and group-possibility search,
// validated booking moves and meal-period resolution. The engine is
// storage-agnostic; persistence is reached only through the Gateway
// interfaces defined in gateway.go.
package allocation

import (
    "errors"
    "fmt"
)

// Kind classifies an engine failure so callers can branch without
// matching message strings.
type Kind int

const (
    // KindInvalid marks malformed input such as a zero party size
    // or an end time before the start time.
    KindInvalid Kind = iota + 1
    // KindNotFound marks a missing or inactive referenced entity.
    KindNotFound
    // KindConflict marks a business outcome: nothing available, or
    // a move target already occupied. Conflicts are never retried
    // by the engine.
    KindConflict
    // KindDuplicate marks an attempt to define a group possibility
    // whose member set already exists.
    KindDuplicate
)

// Stable machine-readable codes carried on conflict and duplicate
// errors. Callers surface these to the UI for re-selection.
const (
    CodeTimeslotsFull     = "BOOKING_TIMESLOTS_FULL"
    CodeInvalidMove       = "INVALID_MOVE"
    CodePossibilityExists = "POSSIBILITY_ALREADY_EXISTS"
)

// Error is the structured error type returned by every engine
// operation for failures the engine itself raises. Storage errors
// propagate unchanged.
type Error struct {
    Kind    Kind
    Code    string
    Message string
}

func (e *Error) Error() string {
    if e.Code != "" {
        return fmt.Sprintf("%s: %s", e.Code, e.Message)
    }
    return e.Message
}

// As unwraps err into an *Error when the failure originated in the
// engine.
func As(err error) (*Error, bool) {
    var e *Error
    if errors.As(err, &e) {
        return e, true
    }
    return nil, false
}

func invalidf(format string, args ...interface{}) *Error {
    return &Error{Kind: KindInvalid, Message: fmt.Sprintf(format, args...)}
}

func notFoundf(format string, args ...interface{}) *Error {
    return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func conflict(code, message string) *Error {
    return &Error{Kind: KindConflict, Code: code, Message: message}
}

func duplicate(code, message string) *Error {
    return &Error{Kind: KindDuplicate, Code: code, Message: message}
}
