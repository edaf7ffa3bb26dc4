package ontology

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"
)

// Mutation errors. All are rejections: the store is left unchanged.
var (
	// ErrCircularDependency is returned when a mutation would make the
	// super/sub-class relation cyclic.
	ErrCircularDependency = errors.New("circular dependency")

	// ErrMissingReference is returned when a mutation names an element the
	// store does not hold.
	ErrMissingReference = errors.New("missing reference")

	// ErrInvalidElement is returned for structurally invalid input.
	ErrInvalidElement = errors.New("invalid element")
)

// Store is the in-memory ontology repository. All mutations preserve two
// invariants: the super/sub-class relation stays acyclic, and SubClasses is
// always the exact inverse of SuperClasses references.
type Store struct {
	mu            sync.RWMutex
	classes       map[string]*Class
	properties    map[string]*Property
	relationships map[string]*Relationship
	domains       map[string]*Domain

	now func() time.Time
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		classes:       make(map[string]*Class),
		properties:    make(map[string]*Property),
		relationships: make(map[string]*Relationship),
		domains:       make(map[string]*Domain),
		now:           time.Now,
	}
}

// AddClass inserts or overwrites a class by id and maintains the inverse
// sub-class links of every referenced super-class. A class whose declared
// super-classes would close a cycle is rejected without mutating the store.
func (s *Store) AddClass(c Class) error {
	if c.Name == "" {
		return fmt.Errorf("%w: class name is required", ErrInvalidElement)
	}
	if c.ID == "" {
		c.ID = Slugify(c.Name)
	}

	c.SuperClasses = dedupe(c.SuperClasses)
	for _, super := range c.SuperClasses {
		if super == c.ID {
			return fmt.Errorf("%w: class %q cannot be its own superclass", ErrCircularDependency, c.ID)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, super := range c.SuperClasses {
		if s.reachesLocked(super, c.ID) {
			return fmt.Errorf("%w: %s is already an ancestor of %s", ErrCircularDependency, c.ID, super)
		}
	}

	now := s.now()
	if existing, ok := s.classes[c.ID]; ok {
		// Replacing: detach the old super links first.
		for _, super := range existing.SuperClasses {
			if sc, ok := s.classes[super]; ok {
				sc.SubClasses = removeFromSet(sc.SubClasses, c.ID)
			}
		}
		c.Metadata.Created = existing.Metadata.Created
	} else {
		c.Metadata.Created = now
	}
	c.Metadata.Modified = now

	// SubClasses is derived, never trusted from the caller.
	c.SubClasses = nil
	for id, other := range s.classes {
		if id == c.ID {
			continue
		}
		if containsString(other.SuperClasses, c.ID) {
			c.SubClasses = addToSet(c.SubClasses, id)
		}
	}

	s.classes[c.ID] = &c
	for _, super := range c.SuperClasses {
		if sc, ok := s.classes[super]; ok {
			sc.SubClasses = addToSet(sc.SubClasses, c.ID)
		}
	}
	return nil
}

// AddSuperClass adds a single super-class edge, rejecting cycles.
func (s *Store) AddSuperClass(classID, superID string) error {
	if classID == superID {
		return fmt.Errorf("%w: class %q cannot be its own superclass", ErrCircularDependency, classID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.classes[classID]
	if !ok {
		return fmt.Errorf("%w: class %q", ErrMissingReference, classID)
	}
	if containsString(c.SuperClasses, superID) {
		return nil
	}
	if s.reachesLocked(superID, classID) {
		return fmt.Errorf("%w: %s is already an ancestor of %s", ErrCircularDependency, classID, superID)
	}

	c.SuperClasses = addToSet(c.SuperClasses, superID)
	c.Metadata.Modified = s.now()
	if super, ok := s.classes[superID]; ok {
		super.SubClasses = addToSet(super.SubClasses, classID)
	}
	return nil
}

// RemoveSuperClass removes a super-class edge and its inverse link.
func (s *Store) RemoveSuperClass(classID, superID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.classes[classID]
	if !ok {
		return fmt.Errorf("%w: class %q", ErrMissingReference, classID)
	}
	c.SuperClasses = removeFromSet(c.SuperClasses, superID)
	c.Metadata.Modified = s.now()
	if super, ok := s.classes[superID]; ok {
		super.SubClasses = removeFromSet(super.SubClasses, classID)
	}
	return nil
}

// DeleteClass detaches the class from all super/sub links, removes every
// relationship referencing it, then removes the class itself.
func (s *Store) DeleteClass(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.classes[id]
	if !ok {
		return fmt.Errorf("%w: class %q", ErrMissingReference, id)
	}

	for _, super := range c.SuperClasses {
		if sc, ok := s.classes[super]; ok {
			sc.SubClasses = removeFromSet(sc.SubClasses, id)
		}
	}
	for _, sub := range c.SubClasses {
		if sc, ok := s.classes[sub]; ok {
			sc.SuperClasses = removeFromSet(sc.SuperClasses, id)
			sc.Metadata.Modified = s.now()
		}
	}
	for relID, rel := range s.relationships {
		if rel.Source == id || rel.Target == id {
			delete(s.relationships, relID)
		}
	}

	delete(s.classes, id)
	return nil
}

// GetClass returns a copy of the class.
func (s *Store) GetClass(id string) (Class, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.classes[id]
	if !ok {
		return Class{}, false
	}
	return copyClass(c), true
}

// ListClasses returns copies of all classes sorted by id.
func (s *Store) ListClasses() []Class {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Class, 0, len(s.classes))
	for _, c := range s.classes {
		out = append(out, copyClass(c))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// AddProperty inserts or overwrites a property definition.
func (s *Store) AddProperty(p Property) error {
	if p.Name == "" {
		return fmt.Errorf("%w: property name is required", ErrInvalidElement)
	}
	if p.ID == "" {
		p.ID = Slugify(p.Name)
	}
	if p.Cardinality.Min < 0 {
		return fmt.Errorf("%w: property %q cardinality min must be >= 0", ErrInvalidElement, p.ID)
	}
	if p.Cardinality.Max != nil && *p.Cardinality.Max < p.Cardinality.Min {
		return fmt.Errorf("%w: property %q cardinality max %d below min %d",
			ErrInvalidElement, p.ID, *p.Cardinality.Max, p.Cardinality.Min)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if existing, ok := s.properties[p.ID]; ok {
		p.Metadata.Created = existing.Metadata.Created
	} else {
		p.Metadata.Created = now
	}
	p.Metadata.Modified = now
	s.properties[p.ID] = &p
	return nil
}

// GetProperty returns a copy of the property.
func (s *Store) GetProperty(id string) (Property, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.properties[id]
	if !ok {
		return Property{}, false
	}
	return copyProperty(p), true
}

// ListProperties returns copies of all properties sorted by id.
func (s *Store) ListProperties() []Property {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Property, 0, len(s.properties))
	for _, p := range s.properties {
		out = append(out, copyProperty(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// AddRelationship inserts a relationship. Bidirectional relationships get a
// mirror under the deterministic id target-type-source unless one exists.
func (s *Store) AddRelationship(r Relationship) error {
	if r.Source == "" || r.Target == "" || r.Type == "" {
		return fmt.Errorf("%w: relationship requires type, source, and target", ErrInvalidElement)
	}
	if r.ID == "" {
		r.ID = relationshipID(r.Source, r.Type, r.Target)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if existing, ok := s.relationships[r.ID]; ok {
		r.Metadata.Created = existing.Metadata.Created
	} else {
		r.Metadata.Created = now
	}
	r.Metadata.Modified = now
	s.relationships[r.ID] = &r

	if r.Bidirectional {
		mirrorID := relationshipID(r.Target, r.Type, r.Source)
		if _, ok := s.relationships[mirrorID]; !ok {
			mirror := r
			mirror.ID = mirrorID
			mirror.Source, mirror.Target = r.Target, r.Source
			mirror.Metadata.Created = now
			mirror.Metadata.Modified = now
			s.relationships[mirrorID] = &mirror
		}
	}
	return nil
}

// DeleteRelationship removes a relationship by id.
func (s *Store) DeleteRelationship(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.relationships[id]; !ok {
		return fmt.Errorf("%w: relationship %q", ErrMissingReference, id)
	}
	delete(s.relationships, id)
	return nil
}

// ListRelationships returns copies of all relationships sorted by id.
func (s *Store) ListRelationships() []Relationship {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Relationship, 0, len(s.relationships))
	for _, r := range s.relationships {
		out = append(out, copyRelationship(r))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// AddDomain inserts or overwrites a domain.
func (s *Store) AddDomain(d Domain) error {
	if d.Name == "" {
		return fmt.Errorf("%w: domain name is required", ErrInvalidElement)
	}
	if d.ID == "" {
		d.ID = Slugify(d.Name)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.domains[d.ID] = &d
	return nil
}

// ListDomains returns copies of all domains sorted by id.
func (s *Store) ListDomains() []Domain {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Domain, 0, len(s.domains))
	for _, d := range s.domains {
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// reachesLocked reports whether target is reachable from start by walking
// super-class edges. Callers hold the lock.
func (s *Store) reachesLocked(start, target string) bool {
	if start == target {
		return true
	}
	seen := make(map[string]struct{})
	stack := []string{start}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur == target {
			return true
		}
		if _, dup := seen[cur]; dup {
			continue
		}
		seen[cur] = struct{}{}
		if c, ok := s.classes[cur]; ok {
			stack = append(stack, c.SuperClasses...)
		}
	}
	return false
}

// relationshipID builds the deterministic relationship id.
func relationshipID(source, relType, target string) string {
	return source + "-" + relType + "-" + target
}

func copyClass(c *Class) Class {
	out := *c
	out.SuperClasses = append([]string(nil), c.SuperClasses...)
	out.SubClasses = append([]string(nil), c.SubClasses...)
	out.Properties = append([]string(nil), c.Properties...)
	out.Constraints = append([]Constraint(nil), c.Constraints...)
	out.Instances = append([]string(nil), c.Instances...)
	return out
}

func copyProperty(p *Property) Property {
	out := *p
	out.Domain = append([]string(nil), p.Domain...)
	out.Range = append([]string(nil), p.Range...)
	out.Constraints = append([]Constraint(nil), p.Constraints...)
	return out
}

func copyRelationship(r *Relationship) Relationship {
	out := *r
	if r.Properties != nil {
		out.Properties = make(map[string]string, len(r.Properties))
		for k, v := range r.Properties {
			out.Properties[k] = v
		}
	}
	return out
}

func addToSet(set []string, v string) []string {
	if containsString(set, v) {
		return set
	}
	set = append(set, v)
	sort.Strings(set)
	return set
}

func removeFromSet(set []string, v string) []string {
	out := set[:0]
	for _, s := range set {
		if s != v {
			out = append(out, s)
		}
	}
	return out
}

func containsString(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func dedupe(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(in))
	var out []string
	for _, v := range in {
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
