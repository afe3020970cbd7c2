package storage

import "errors"

var (
	ErrInvalidConfig           = errors.New("invalid storage configuration")
	ErrFailedToLoadConfig      = errors.New("failed to load AWS config")
	ErrFailedToGetAbsolutePath = errors.New("failed to get absolute path")
	ErrNotDirectory            = errors.New("path is not a directory")
	ErrDirectoryNotFound       = errors.New("directory not found")

	ErrBucketNotFound     = errors.New("bucket not found")
	ErrAccessDenied       = errors.New("access denied")
	ErrRequestTimeout     = errors.New("request timed out")
	ErrServiceUnavailable = errors.New("service temporarily unavailable")

	ErrOperationTimeout  = errors.New("operation timed out")
	ErrOperationCanceled = errors.New("operation canceled")
)
