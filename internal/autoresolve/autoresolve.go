package autoresolve

import (
	"strings"

	"imgresolve/internal/config"
	"imgresolve/internal/probe"
)

// Rule decides whether a path comes from a lower-priority source, such as a
// sync folder that only ever holds copies.
type Rule interface {
	Name() string
	LowPriority(path string) bool
}

// PathContains marks paths containing Marker as lower priority.
type PathContains struct {
	Label  string
	Marker string
}

func (r PathContains) Name() string { return r.Label }

func (r PathContains) LowPriority(path string) bool {
	return r.Marker != "" && strings.Contains(path, r.Marker)
}

// RulesFromConfig builds PathContains rules from configuration.
func RulesFromConfig(rules []config.PriorityRule) []Rule {
	out := make([]Rule, 0, len(rules))
	for _, r := range rules {
		out = append(out, PathContains{Label: r.Name, Marker: r.Marker})
	}
	return out
}

// Proposal names the member to delete and the one to keep.
type Proposal struct {
	Delete int
	Keep   int
	Rule   string
}

// Resolver proposes deletions for two-file groups.
type Resolver struct {
	rules []Rule
}

// New returns a resolver evaluating rules in order.
func New(rules ...Rule) *Resolver {
	return &Resolver{rules: rules}
}

// Propose returns a deletion proposal when the group has exactly two members,
// both decoded with the same non-empty capture time, and exactly one of them
// matches a rule.
func (r *Resolver) Propose(group []string, meta map[string]probe.FileMetadata) (Proposal, bool) {
	if r == nil || len(r.rules) == 0 || len(group) != 2 {
		return Proposal{}, false
	}
	first, ok1 := meta[group[0]]
	second, ok2 := meta[group[1]]
	if !ok1 || !ok2 || !first.Structured || !second.Structured {
		return Proposal{}, false
	}
	if first.Captured == "" || first.Captured != second.Captured {
		return Proposal{}, false
	}

	rule0, low0 := r.match(group[0])
	rule1, low1 := r.match(group[1])
	switch {
	case low0 && !low1:
		return Proposal{Delete: 0, Keep: 1, Rule: rule0}, true
	case low1 && !low0:
		return Proposal{Delete: 1, Keep: 0, Rule: rule1}, true
	default:
		return Proposal{}, false
	}
}

func (r *Resolver) match(path string) (string, bool) {
	for _, rule := range r.rules {
		if rule.LowPriority(path) {
			return rule.Name(), true
		}
	}
	return "", false
}
