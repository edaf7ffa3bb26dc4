package hierarchy

import (
	"fmt"
	"sort"
)

// IssueLevel grades a hierarchy diagnostic.
type IssueLevel string

const (
	// LevelError marks structural defects.
	LevelError IssueLevel = "error"

	// LevelWarning marks shape concerns worth reviewing.
	LevelWarning IssueLevel = "warning"
)

// Issue is one hierarchy diagnostic.
type Issue struct {
	Level   IssueLevel `json:"level"`
	Message string     `json:"message"`
	Nodes   []string   `json:"nodes,omitempty"`
}

// Report inspects a built forest for structural problems: cycles (which the
// edge guard should have made unreachable, but are checked defensively),
// weakly placed low-confidence leaves, excessive depth, and excessive
// branching.
func (b *Builder) Report(forest *Forest) []Issue {
	var issues []Issue

	if cycle := findCycle(forest); len(cycle) > 0 {
		issues = append(issues, Issue{
			Level:   LevelError,
			Message: "hierarchy contains a parent cycle",
			Nodes:   cycle,
		})
	}

	var weak []string
	for _, node := range forest.Nodes() {
		if node.Synthetic || len(node.Children) > 0 {
			continue
		}
		parent := forest.Node(node.Parent)
		if parent == nil || !parent.Synthetic {
			continue
		}
		if node.Confidence < b.cfg.OrphanConfidence {
			weak = append(weak, node.Name)
		}
	}
	if len(weak) > 0 {
		sort.Strings(weak)
		issues = append(issues, Issue{
			Level:   LevelWarning,
			Message: fmt.Sprintf("%d low-confidence leaves attached only to kind parents", len(weak)),
			Nodes:   weak,
		})
	}

	if depth := forest.MaxDepth(); depth > b.cfg.MaxDepth {
		issues = append(issues, Issue{
			Level:   LevelWarning,
			Message: fmt.Sprintf("hierarchy depth %d exceeds %d; likely over-categorisation", depth, b.cfg.MaxDepth),
		})
	}

	if branching := forest.AverageBranching(); branching > b.cfg.MaxBranching {
		issues = append(issues, Issue{
			Level:   LevelWarning,
			Message: fmt.Sprintf("average branching factor %.1f exceeds %.0f; likely under-categorisation", branching, b.cfg.MaxBranching),
		})
	}

	return issues
}

// findCycle walks every node's parent chain looking for a revisit.
func findCycle(forest *Forest) []string {
	for _, node := range forest.Nodes() {
		seen := make(map[string]int)
		var chain []string
		for cur := node.Name; cur != ""; {
			if at, dup := seen[cur]; dup {
				return append(chain[at:], cur)
			}
			seen[cur] = len(chain)
			chain = append(chain, cur)
			next := forest.Node(cur)
			if next == nil {
				break
			}
			cur = next.Parent
		}
	}
	return nil
}
