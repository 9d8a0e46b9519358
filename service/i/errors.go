package i

import "errors"

var (
	ErrMazeNotFound       = errors.New("maze not found")
	ErrCacheMiss          = errors.New("maze not cached")
	ErrInvalidReplayToken = errors.New("invalid replay token")
	ErrInvalidBatch       = errors.New("invalid batch size")
)
