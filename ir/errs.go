package ir

import "errors"

var (
	ErrParse       = errors.New("parse error")
	ErrNotMapping  = errors.New("not a mapping")
	ErrNotSequence = errors.New("not a sequence")
)
