// Package parser loads timing datasets and projects them into axis series.
package parser

import "errors"

// ErrFileNotFound indicates the dataset file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the dataset file is not a valid JSON array.
var ErrInvalidFormat = errors.New("invalid dataset format")

// ErrIndexOutOfRange indicates the dataset is too short for the diagnostic sample.
var ErrIndexOutOfRange = errors.New("index out of range")
