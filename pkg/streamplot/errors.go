package streamplot

import (
	"fmt"

	"github.com/ukaji3/streamplot-go/pkg/streamplot/models"
	"github.com/ukaji3/streamplot-go/pkg/streamplot/parser"
)

// ErrFileNotFound indicates the dataset file does not exist.
var ErrFileNotFound = parser.ErrFileNotFound

// ErrInvalidFormat indicates the dataset file is not valid JSON of the expected form.
var ErrInvalidFormat = parser.ErrInvalidFormat

// ErrInvalidShape indicates an entry that is not a pair of numbers.
var ErrInvalidShape = models.ErrInvalidShape

// ErrIndexOutOfRange indicates fewer samples than the diagnostic access needs.
var ErrIndexOutOfRange = parser.ErrIndexOutOfRange

// Stage names a step of the plot pipeline.
type Stage string

const (
	StageLoad    Stage = "load"
	StageExtract Stage = "extract"
	StageRender  Stage = "render"
	StageDisplay Stage = "display"
)

// StageError represents an error during a pipeline stage.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// NewStageError creates a new StageError.
func NewStageError(stage Stage, err error) *StageError {
	return &StageError{
		Stage: stage,
		Err:   err,
	}
}
