package util

import "errors"

var (
	ErrFilenameMismatch = errors.New("url filename does not match image id")
	ErrSplitNotFound    = errors.New("image id not found in train/val/test")
	ErrMissingField     = errors.New("missing required field")
	ErrUnknownSplit     = errors.New("unknown split")
)
