package triage

import (
	"testing"

	"github.com/spec-kit/helpdesk-core/domain"
)

func testWeights() map[string]int {
	return map[string]int{"low": 1, "medium": 2, "high": 3, "critical": 5}
}

func TestClassify(t *testing.T) {
	k := NewKeyword(testWeights())

	cases := []struct {
		title       string
		description string
		want        domain.Severity
	}{
		{"Data loss incident", "", domain.SeverityCritical},
		{"slow response", "", domain.SeverityMedium},
		{"", "", domain.SeverityLow},
		{"Outage causing slow dashboards", "", domain.SeverityCritical},
		{"", "intermittent CRASH on login", domain.SeverityHigh},
		{"routine question", "how do I reset my password", domain.SeverityLow},
	}

	for _, tc := range cases {
		if got := k.Classify(tc.title, tc.description); got != tc.want {
			t.Fatalf("Classify(%q, %q)=%s, want %s", tc.title, tc.description, got, tc.want)
		}
	}
}

func TestAssignPicksMinimumLoad(t *testing.T) {
	k := NewKeyword(testWeights())

	agent, ok := k.Assign([]Agent{{ID: "a1", CurrentLoad: 3}, {ID: "a2", CurrentLoad: 1}, {ID: "a3", CurrentLoad: 5}})
	if !ok {
		t.Fatalf("expected an assignment")
	}
	if agent.ID != "a2" {
		t.Fatalf("expected a2 (minimum load), got %s", agent.ID)
	}
}

func TestAssignTieGoesToFirstCandidate(t *testing.T) {
	k := NewKeyword(testWeights())

	agent, ok := k.Assign([]Agent{{ID: "a1", CurrentLoad: 2}, {ID: "a2", CurrentLoad: 2}})
	if !ok || agent.ID != "a1" {
		t.Fatalf("expected first minimum a1, got %v ok=%v", agent, ok)
	}
}

func TestAssignEmptyCandidates(t *testing.T) {
	k := NewKeyword(testWeights())

	if _, ok := k.Assign(nil); ok {
		t.Fatalf("expected no assignment for empty candidate set")
	}
}

func TestPriorityScore(t *testing.T) {
	k := NewKeyword(testWeights())

	if got := k.PriorityScore(domain.SeverityCritical, 24); got != 6 {
		t.Fatalf("critical at 24h: got %v, want 6", got)
	}
	if got := k.PriorityScore(domain.SeverityLow, 0); got != 1 {
		t.Fatalf("low at 0h: got %v, want 1", got)
	}
	if got := k.PriorityScore(domain.Severity("mystery"), 0); got != 1 {
		t.Fatalf("unknown severity should weigh 1, got %v", got)
	}
}
