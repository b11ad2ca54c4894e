package domain

import "errors"

var (
	ErrDirectoryExists  = errors.New("directory already exists")
	ErrSelectionAborted = errors.New("selection aborted")
)
