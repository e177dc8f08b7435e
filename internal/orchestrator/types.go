// Package orchestrator sequences planning, generation and deployment of an
// application requirement across the domain generators and the provider
// registry, and tracks one context per attempt.
package orchestrator

import (
	"time"

	"github.com/appforge/appforge/internal/generator"
	"github.com/appforge/appforge/internal/spec"
)

// Phase is the coarse progress marker of an orchestration context. It only
// ever advances.
type Phase string

const (
	PhasePlanning   Phase = "planning"
	PhaseGenerating Phase = "generating"
	PhaseDeploying  Phase = "deploying"
)

// phaseRank orders phases for the monotonic-advance rule.
var phaseRank = map[Phase]int{
	PhasePlanning:   1,
	PhaseGenerating: 2,
	PhaseDeploying:  3,
}

// AppStatus is the GeneratedApp's own progress marker. It transitions forward
// only.
type AppStatus string

const (
	StatusPlanning   AppStatus = "planning"
	StatusGenerating AppStatus = "generating"
	StatusGenerated  AppStatus = "generated"
	StatusDeploying  AppStatus = "deploying"
	StatusDeployed   AppStatus = "deployed"
	StatusFailed     AppStatus = "failed"
)

// Deployment records where a generated app was (synthetically) deployed.
type Deployment struct {
	RepoURL string `json:"repoUrl,omitempty"`
	Branch  string `json:"branch,omitempty"`
}

// GeneratedApp is the aggregate result of one successful generation run.
type GeneratedApp struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Requirement *spec.AppRequirement `json:"requirement"`
	Frontend    generator.Bundle     `json:"frontend"`
	Backend     generator.Bundle     `json:"backend"`
	Database    generator.Bundle     `json:"database"`
	Deployment  Deployment           `json:"deployment"`
	CreatedAt   time.Time            `json:"createdAt"`
	Status      AppStatus            `json:"status"`
}

// OrchestrationContext is the tracked record of one app-generation attempt.
// It lives in the coordinator's store for the life of the process, or until
// cancelled; there is no persistence.
type OrchestrationContext struct {
	AppID        string               `json:"appId"`
	Requirement  *spec.AppRequirement `json:"requirement"`
	Phase        Phase                `json:"phase"`
	Errors       []string             `json:"errors"`
	GeneratedApp *GeneratedApp        `json:"generatedApp,omitempty"`
}

// advance moves the context to a later phase. A regressing phase is ignored;
// the phase field is monotonic.
func (c *OrchestrationContext) advance(p Phase) {
	if phaseRank[p] > phaseRank[c.Phase] {
		c.Phase = p
	}
}

// appendError records a failure message on the context.
func (c *OrchestrationContext) appendError(msg string) {
	c.Errors = append(c.Errors, msg)
}
