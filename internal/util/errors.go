package util

import "errors"

var (
	ErrExamNotFound   = errors.New("exam not found")
	ErrInvalidExamID  = errors.New("invalid exam id")
	ErrMissingPath    = errors.New("path is required")
	ErrPathNotAllowed = errors.New("path is outside the configured ingest directories")
)
