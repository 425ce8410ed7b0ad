// Package apperr defines the application error taxonomy: a tagged error
// value carrying a kind and a client-safe message, plus the mapping from
// kind to HTTP status.
package apperr

import "net/http"

type Kind int

const (
	KindInvalidInput Kind = iota
	KindNotFound
	KindUnexpected
)

var statusByKind = map[Kind]int{
	KindInvalidInput: http.StatusBadRequest,
	KindNotFound:     http.StatusNotFound,
	KindUnexpected:   http.StatusInternalServerError,
}

type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

// Status returns the HTTP status code for the error's kind.
func (e *Error) Status() int {
	if status, ok := statusByKind[e.Kind]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// BadRequest builds an InvalidInput error for malformed or missing client data.
func BadRequest(msg string) *Error {
	return &Error{Kind: KindInvalidInput, Msg: msg}
}

// NotFound builds a NotFound error for an absent referenced entity.
func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Msg: msg}
}
