package etl

import (
	"fmt"
)

// Stage names one of the three pipeline stages.
type Stage string

const (
	StageExtract   Stage = "extract"
	StageTransform Stage = "transform"
	StageLoad      Stage = "load"
)

// StageError tags a per-file failure with the pipeline stage it occurred
// in. The driver maps any StageError to "log and skip the file";
// errors.As/Is reach the underlying cause.
type StageError struct {
	Stage Stage
	File  string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s failed for file %s: %v", e.Stage, e.File, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

func stageErr(stage Stage, file string, err error) *StageError {
	return &StageError{Stage: stage, File: file, Err: err}
}
