package ontology

import (
	"fmt"
	"sort"
)

// HierarchyView is a nested tree rendering of the class hierarchy.
type HierarchyView struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Children []*HierarchyView `json:"children,omitempty"`
}

// GetClassHierarchy returns a nested view rooted at rootID, or, when rootID
// is empty, a virtual root covering every class without a super-class.
// Shared subclasses (the relation is a DAG) appear under each parent; the
// visited set only guards the current path.
func (s *Store) GetClassHierarchy(rootID string) (*HierarchyView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if rootID != "" {
		c, ok := s.classes[rootID]
		if !ok {
			return nil, fmt.Errorf("%w: class %q", ErrMissingReference, rootID)
		}
		return s.buildViewLocked(c, map[string]struct{}{}), nil
	}

	root := &HierarchyView{ID: "", Name: "root"}
	for _, id := range s.rootIDsLocked() {
		root.Children = append(root.Children, s.buildViewLocked(s.classes[id], map[string]struct{}{}))
	}
	return root, nil
}

func (s *Store) buildViewLocked(c *Class, path map[string]struct{}) *HierarchyView {
	view := &HierarchyView{ID: c.ID, Name: c.Name}
	path[c.ID] = struct{}{}
	defer delete(path, c.ID)

	for _, subID := range c.SubClasses {
		if _, onPath := path[subID]; onPath {
			continue
		}
		if sub, ok := s.classes[subID]; ok {
			view.Children = append(view.Children, s.buildViewLocked(sub, path))
		}
	}
	return view
}

func (s *Store) rootIDsLocked() []string {
	var roots []string
	for id, c := range s.classes {
		if len(c.SuperClasses) == 0 {
			roots = append(roots, id)
		}
	}
	sort.Strings(roots)
	return roots
}

// Statistics summarises the store contents.
func (s *Store) Statistics() Statistics {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := Statistics{
		Classes:       len(s.classes),
		Properties:    len(s.properties),
		Relationships: len(s.relationships),
		Domains:       len(s.domains),
	}

	roots := s.rootIDsLocked()
	stats.Roots = len(roots)

	var maxDepth func(id string, path map[string]struct{}) int
	maxDepth = func(id string, path map[string]struct{}) int {
		c, ok := s.classes[id]
		if !ok {
			return 0
		}
		path[id] = struct{}{}
		defer delete(path, id)
		deepest := 0
		for _, sub := range c.SubClasses {
			if _, onPath := path[sub]; onPath {
				continue
			}
			if d := maxDepth(sub, path) + 1; d > deepest {
				deepest = d
			}
		}
		return deepest
	}
	for _, root := range roots {
		if d := maxDepth(root, map[string]struct{}{}); d > stats.MaxDepth {
			stats.MaxDepth = d
		}
	}

	var parents, children int
	for _, c := range s.classes {
		if len(c.SubClasses) > 0 {
			parents++
			children += len(c.SubClasses)
		}
	}
	if parents > 0 {
		stats.AvgBranching = float64(children) / float64(parents)
	}
	return stats
}

// Snapshot is a read-only copy of store contents handed to the validator.
type Snapshot struct {
	Classes       map[string]Class
	Properties    map[string]Property
	Relationships map[string]Relationship
	Domains       map[string]Domain
}

// Snapshot copies the current store contents.
func (s *Store) Snapshot() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := &Snapshot{
		Classes:       make(map[string]Class, len(s.classes)),
		Properties:    make(map[string]Property, len(s.properties)),
		Relationships: make(map[string]Relationship, len(s.relationships)),
		Domains:       make(map[string]Domain, len(s.domains)),
	}
	for id, c := range s.classes {
		snap.Classes[id] = copyClass(c)
	}
	for id, p := range s.properties {
		snap.Properties[id] = copyProperty(p)
	}
	for id, r := range s.relationships {
		snap.Relationships[id] = copyRelationship(r)
	}
	for id, d := range s.domains {
		snap.Domains[id] = *d
	}
	return snap
}
