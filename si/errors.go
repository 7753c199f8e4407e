package si

import (
	"errors"
	"fmt"

	"github.com/sartorproj/gospei/dist"
)

var (
	// ErrInvalidInput is returned for empty series, malformed timestamps and
	// values the configured distribution cannot model.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDegenerateSample is returned when a group cannot support a fit.
	ErrDegenerateSample = dist.ErrDegenerateSample

	// ErrUnfittedGroup is returned when a transform is requested for a
	// group without a fitted distribution.
	ErrUnfittedGroup = errors.New("unfitted group")
)

// GroupError reports a failure for one period group.
type GroupError struct {
	Group int
	Err   error
}

func (e *GroupError) Error() string {
	return fmt.Sprintf("group %d: %v", e.Group, e.Err)
}

func (e *GroupError) Unwrap() error {
	return e.Err
}
