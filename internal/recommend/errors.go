package recommend

import "github.com/rotisserie/eris"

// ErrInvalidInput marks requests rejected before any scoring happened.
var ErrInvalidInput = eris.New("recommend: invalid input")

// ClassifierError wraps a classifier backend failure. Unlike dataset
// problems, which degrade to defaults, a classifier failure aborts the
// prediction.
type ClassifierError struct {
	Err error
}

func (e *ClassifierError) Error() string {
	return "recommend: classifier failure: " + e.Err.Error()
}

func (e *ClassifierError) Unwrap() error { return e.Err }
