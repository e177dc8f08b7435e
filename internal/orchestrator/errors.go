package orchestrator

import (
	"errors"
	"fmt"
	"strings"
)

// ErrAppNotFound is returned by Status for an unknown app id.
var ErrAppNotFound = errors.New("app not found")

// PlanningError reports that a requirement failed validation during planning.
// The same messages are also accumulated on the tracked context.
type PlanningError struct {
	AppID    string
	Messages []string
}

func (e *PlanningError) Error() string {
	return fmt.Sprintf("planning failed: %s", strings.Join(e.Messages, "; "))
}

// GenerationError reports that one of the domain generators failed. The other
// generators in the sequence never ran.
type GenerationError struct {
	Stage string
	Err   error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s generation failed: %v", e.Stage, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// DeploymentError reports that one of the deployment steps failed. Earlier
// steps are not rolled back.
type DeploymentError struct {
	Step string
	Err  error
}

func (e *DeploymentError) Error() string {
	return fmt.Sprintf("deployment step %q failed: %v", e.Step, e.Err)
}

func (e *DeploymentError) Unwrap() error { return e.Err }
