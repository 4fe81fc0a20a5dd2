package core

import (
	"errors"
)

var (
	// ErrIndexOutOfRange is returned by row, column and element accessors
	// when the index is outside [0, size).
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrInvalidArgument is returned for unsupported argument combinations.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrBufferTooSmall is returned when a buffer cannot hold the requested
	// elements at the given offset.
	ErrBufferTooSmall = errors.New("buffer too small")
	ErrUnknown        = errors.New("unknown")
)
