package triage

import (
	"strings"

	"github.com/spec-kit/helpdesk-core/domain"
)

// Agent is an assignment candidate with its current ticket load.
type Agent struct {
	ID          string
	CurrentLoad int
}

// Triage classifies ticket severity and selects assignees. The service
// consumes it as a capability; Keyword is the stock implementation.
type Triage interface {
	Classify(title, description string) domain.Severity
	Assign(agents []Agent) (Agent, bool)
}

// keywordGroups is scanned in order; the first group with a match wins
// even when a lower-severity keyword also appears.
var keywordGroups = []struct {
	severity domain.Severity
	words    []string
}{
	{domain.SeverityCritical, []string{"outage", "data loss", "breach"}},
	{domain.SeverityHigh, []string{"failure", "crash", "error"}},
	{domain.SeverityMedium, []string{"latency", "slow", "timeout"}},
}

// Keyword is a keyword-table triage: severity from substring matches,
// assignment by minimum load.
type Keyword struct {
	weights map[string]int
}

// NewKeyword builds a Keyword triage with the given per-severity priority
// weights.
func NewKeyword(weights map[string]int) *Keyword {
	return &Keyword{weights: weights}
}

// Classify scans title and description, case-insensitively, against the
// ordered keyword groups and returns the first matching severity,
// defaulting to low.
func (k *Keyword) Classify(title, description string) domain.Severity {
	haystack := strings.ToLower(title + " " + description)
	for _, group := range keywordGroups {
		for _, word := range group.words {
			if strings.Contains(haystack, word) {
				return group.severity
			}
		}
	}
	return domain.SeverityLow
}

// Assign picks the agent with the minimum current load. Ties go to the
// first minimum in the supplied order, so callers wanting determinism must
// supply a deterministic ordering. Returns false for an empty candidate
// set.
func (k *Keyword) Assign(agents []Agent) (Agent, bool) {
	if len(agents) == 0 {
		return Agent{}, false
	}
	best := agents[0]
	for _, a := range agents[1:] {
		if a.CurrentLoad < best.CurrentLoad {
			best = a
		}
	}
	return best, true
}

// PriorityScore combines the configured severity weight with ticket age:
// weight + ageHours/24. Unknown severities weigh 1.
func (k *Keyword) PriorityScore(severity domain.Severity, ageHours float64) float64 {
	weight, ok := k.weights[string(severity)]
	if !ok {
		weight = 1
	}
	return float64(weight) + ageHours/24.0
}
