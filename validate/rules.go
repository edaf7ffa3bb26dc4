package validate

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/c360studio/ontograph/ontology"
)

// rule is one independent check over a read-only snapshot.
type rule struct {
	name  string
	check func(v *Validator, snap *ontology.Snapshot, report *ruleReport)
}

// defaultRules is the fixed battery, in evaluation order.
func defaultRules() []rule {
	return []rule{
		{name: "circular-dependency", check: checkCircularDependencies},
		{name: "missing-superclass", check: checkMissingSuperclasses},
		{name: "property-domain-range", check: checkPropertyDomainRange},
		{name: "relationship-contradiction", check: checkRelationshipContradictions},
		{name: "orphaned-classes", check: checkOrphanedClasses},
		{name: "naming-convention", check: checkNamingConventions},
		{name: "hierarchy-shape", check: checkHierarchyShape},
		{name: "class-constraints", check: checkClassConstraints},
	}
}

// checkCircularDependencies walks every class's superclass chains
// depth-first; a revisit within the active recursion stack is a cycle.
func checkCircularDependencies(_ *Validator, snap *ontology.Snapshot, report *ruleReport) {
	const (
		unvisited = iota
		inStack
		done
	)
	state := make(map[string]int, len(snap.Classes))

	var walk func(id string, path []string) []string
	walk = func(id string, path []string) []string {
		state[id] = inStack
		path = append(path, id)

		c := snap.Classes[id]
		for _, super := range c.SuperClasses {
			if _, exists := snap.Classes[super]; !exists {
				continue
			}
			switch state[super] {
			case inStack:
				// Trim the path down to the cycle entry point.
				at := 0
				for i, p := range path {
					if p == super {
						at = i
						break
					}
				}
				return append(append([]string{}, path[at:]...), super)
			case unvisited:
				if cycle := walk(super, path); cycle != nil {
					return cycle
				}
			}
		}
		state[id] = done
		return nil
	}

	for _, id := range sortedClassIDs(snap) {
		if state[id] != unvisited {
			continue
		}
		if cycle := walk(id, nil); cycle != nil {
			report.addError(Issue{
				Type:     TypeCircularDependency,
				Severity: SeverityCritical,
				Message:  "superclass chain forms a cycle: " + strings.Join(cycle, " -> "),
				Elements: cycle[:len(cycle)-1],
				Remediation: fmt.Sprintf("remove the superclass edge %s -> %s",
					cycle[len(cycle)-2], cycle[len(cycle)-1]),
			})
		}
	}
}

// checkMissingSuperclasses flags superclass ids absent from the store.
func checkMissingSuperclasses(_ *Validator, snap *ontology.Snapshot, report *ruleReport) {
	for _, id := range sortedClassIDs(snap) {
		c := snap.Classes[id]
		for _, super := range c.SuperClasses {
			if _, ok := snap.Classes[super]; !ok {
				report.addError(Issue{
					Type:        TypeMissingReference,
					Severity:    SeverityMajor,
					Message:     fmt.Sprintf("class %q references missing superclass %q", id, super),
					Elements:    []string{id, super},
					Remediation: fmt.Sprintf("define class %q or drop the reference", super),
				})
			}
		}
	}
}

// checkPropertyDomainRange verifies that property domains and, for object
// properties, ranges resolve to existing classes and that cardinality is
// sane.
func checkPropertyDomainRange(_ *Validator, snap *ontology.Snapshot, report *ruleReport) {
	ids := make([]string, 0, len(snap.Properties))
	for id := range snap.Properties {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		p := snap.Properties[id]
		for _, d := range p.Domain {
			if _, ok := snap.Classes[d]; !ok {
				report.addError(Issue{
					Type:     TypeMissingReference,
					Severity: SeverityMajor,
					Message:  fmt.Sprintf("property %q domain references missing class %q", id, d),
					Elements: []string{id, d},
				})
			}
		}
		if p.Type == ontology.PropertyObject {
			for _, r := range p.Range {
				if _, ok := snap.Classes[r]; !ok {
					report.addError(Issue{
						Type:     TypeMissingReference,
						Severity: SeverityMajor,
						Message:  fmt.Sprintf("property %q range references missing class %q", id, r),
						Elements: []string{id, r},
					})
				}
			}
		}
		if p.Cardinality.Min < 0 {
			report.addError(Issue{
				Type:     TypeConstraintViolation,
				Severity: SeverityMajor,
				Message:  fmt.Sprintf("property %q cardinality min %d is negative", id, p.Cardinality.Min),
				Elements: []string{id},
			})
		}
		if p.Cardinality.Max != nil && *p.Cardinality.Max < p.Cardinality.Min {
			report.addError(Issue{
				Type:     TypeConstraintViolation,
				Severity: SeverityMajor,
				Message: fmt.Sprintf("property %q cardinality max %d below min %d",
					id, *p.Cardinality.Max, p.Cardinality.Min),
				Elements: []string{id},
			})
		}
	}
}

// checkRelationshipContradictions flags relationship pairs over the same
// (source, target) whose types are mutually exclusive, and bidirectional
// relationships missing their mirror.
func checkRelationshipContradictions(v *Validator, snap *ontology.Snapshot, report *ruleReport) {
	contradicts := make(map[string]string, len(v.cfg.ContradictoryPairs)*2)
	for _, pair := range v.cfg.ContradictoryPairs {
		contradicts[pair.A+"\x00"+pair.B] = ""
		contradicts[pair.B+"\x00"+pair.A] = ""
	}

	ids := make([]string, 0, len(snap.Relationships))
	byPair := make(map[string][]ontology.Relationship)
	for id, rel := range snap.Relationships {
		ids = append(ids, id)
		key := rel.Source + "\x00" + rel.Target
		byPair[key] = append(byPair[key], rel)
	}
	sort.Strings(ids)

	pairKeys := make([]string, 0, len(byPair))
	for key := range byPair {
		pairKeys = append(pairKeys, key)
	}
	sort.Strings(pairKeys)

	for _, key := range pairKeys {
		rels := byPair[key]
		sort.Slice(rels, func(i, j int) bool { return rels[i].ID < rels[j].ID })
		for i := 0; i < len(rels); i++ {
			for j := i + 1; j < len(rels); j++ {
				if _, bad := contradicts[rels[i].Type+"\x00"+rels[j].Type]; bad {
					report.addError(Issue{
						Type:     TypeLogicalInconsistency,
						Severity: SeverityMajor,
						Message: fmt.Sprintf("relationships %q and %q assert contradictory types %s and %s",
							rels[i].ID, rels[j].ID, rels[i].Type, rels[j].Type),
						Elements:    []string{rels[i].ID, rels[j].ID},
						Remediation: "remove one of the contradictory relationships",
					})
				}
			}
		}
	}

	for _, id := range ids {
		rel := snap.Relationships[id]
		if !rel.Bidirectional {
			continue
		}
		mirror := rel.Target + "-" + rel.Type + "-" + rel.Source
		if _, ok := snap.Relationships[mirror]; !ok {
			report.addWarning(Issue{
				Type:        TypeLogicalInconsistency,
				Severity:    SeverityMinor,
				Message:     fmt.Sprintf("bidirectional relationship %q has no mirror %q", id, mirror),
				Elements:    []string{id},
				Remediation: "re-add the relationship through the store to synthesise its mirror",
			})
		}
	}
}

// checkOrphanedClasses flags classes with no hierarchy edges and no
// relationships, and suggests merges for similar orphan pairs.
func checkOrphanedClasses(v *Validator, snap *ontology.Snapshot, report *ruleReport) {
	referenced := make(map[string]struct{})
	for _, rel := range snap.Relationships {
		referenced[rel.Source] = struct{}{}
		referenced[rel.Target] = struct{}{}
	}

	var orphans []string
	for _, id := range sortedClassIDs(snap) {
		c := snap.Classes[id]
		if len(c.SuperClasses) > 0 || len(c.SubClasses) > 0 {
			continue
		}
		if _, ok := referenced[id]; ok {
			continue
		}
		orphans = append(orphans, id)
		report.addWarning(Issue{
			Type:        TypeOrphanedClass,
			Severity:    SeverityMinor,
			Message:     fmt.Sprintf("class %q has no hierarchy links and no relationships", id),
			Elements:    []string{id},
			Remediation: "connect the class to the hierarchy or remove it",
		})
	}

	for i := 0; i < len(orphans); i++ {
		for j := i + 1; j < len(orphans); j++ {
			a, b := snap.Classes[orphans[i]], snap.Classes[orphans[j]]
			if sim := classSimilarity(a, b); sim > v.cfg.SimilarityThreshold {
				report.addSuggestion(Issue{
					Type:     TypeOrphanedClass,
					Severity: SeverityMinor,
					Message: fmt.Sprintf("orphaned classes %q and %q look similar (%.2f)",
						a.ID, b.ID, sim),
					Elements:    []string{a.ID, b.ID},
					Remediation: "consider merging the classes or connecting them",
				})
			}
		}
	}
}

// classSimilarity weighs name, description, and shared-instance overlap.
func classSimilarity(a, b ontology.Class) float64 {
	name := tokenJaccard(a.Name, b.Name)
	desc := tokenJaccard(a.Description, b.Description)
	instances := sharedRatio(a.Instances, b.Instances)
	return 0.4*name + 0.3*desc + 0.3*instances
}

func tokenJaccard(a, b string) float64 {
	as := tokenSet(a)
	bs := tokenSet(b)
	if len(as) == 0 || len(bs) == 0 {
		return 0
	}
	shared := 0
	for t := range as {
		if _, ok := bs[t]; ok {
			shared++
		}
	}
	union := len(as) + len(bs) - shared
	return float64(shared) / float64(union)
}

func tokenSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, f := range strings.Fields(strings.ToLower(s)) {
		set[f] = struct{}{}
	}
	return set
}

func sharedRatio(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	set := make(map[string]struct{}, len(a))
	for _, v := range a {
		set[v] = struct{}{}
	}
	shared := 0
	for _, v := range b {
		if _, ok := set[v]; ok {
			shared++
		}
	}
	smaller := len(a)
	if len(b) < smaller {
		smaller = len(b)
	}
	return float64(shared) / float64(smaller)
}

// checkNamingConventions expects class names to lead with a letter and use
// word casing, property names to be lowerCamel. Mismatches are warnings
// only, never errors.
func checkNamingConventions(_ *Validator, snap *ontology.Snapshot, report *ruleReport) {
	for _, id := range sortedClassIDs(snap) {
		c := snap.Classes[id]
		if c.Name == "" {
			continue
		}
		if strings.ContainsAny(c.Name, "_") || leadsWithDigit(c.Name) {
			report.addWarning(Issue{
				Type:        TypeNamingConvention,
				Severity:    SeverityMinor,
				Message:     fmt.Sprintf("class name %q does not follow word-case convention", c.Name),
				Elements:    []string{id},
				Remediation: "rename using space-separated words",
			})
		}
	}

	ids := make([]string, 0, len(snap.Properties))
	for id := range snap.Properties {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		p := snap.Properties[id]
		if p.Name == "" {
			continue
		}
		first := []rune(p.Name)[0]
		if unicode.IsUpper(first) || strings.ContainsAny(p.Name, " _-") {
			report.addWarning(Issue{
				Type:        TypeNamingConvention,
				Severity:    SeverityMinor,
				Message:     fmt.Sprintf("property name %q is not lowerCamel", p.Name),
				Elements:    []string{id},
				Remediation: "rename the property to lowerCamel",
			})
		}
	}
}

func leadsWithDigit(s string) bool {
	for _, r := range s {
		return unicode.IsDigit(r)
	}
	return false
}

// checkHierarchyShape warns on excessive depth or branching and suggests
// intermediate categories when there are too many roots.
func checkHierarchyShape(v *Validator, snap *ontology.Snapshot, report *ruleReport) {
	roots := 0
	for _, c := range snap.Classes {
		if len(c.SuperClasses) == 0 {
			roots++
		}
	}

	maxDepth := snapshotMaxDepth(snap)
	if maxDepth > v.cfg.MaxDepth {
		report.addWarning(Issue{
			Type:     TypeHierarchyShape,
			Severity: SeverityMinor,
			Message:  fmt.Sprintf("hierarchy depth %d exceeds %d", maxDepth, v.cfg.MaxDepth),
		})
	}

	var parents, children int
	for _, c := range snap.Classes {
		if len(c.SubClasses) > 0 {
			parents++
			children += len(c.SubClasses)
		}
	}
	if parents > 0 {
		if branching := float64(children) / float64(parents); branching > v.cfg.MaxBranching {
			report.addWarning(Issue{
				Type:     TypeHierarchyShape,
				Severity: SeverityMinor,
				Message: fmt.Sprintf("average branching factor %.1f exceeds %.0f",
					branching, v.cfg.MaxBranching),
			})
		}
	}

	if roots > v.cfg.MaxRoots {
		report.addSuggestion(Issue{
			Type:        TypeHierarchyShape,
			Severity:    SeverityMinor,
			Message:     fmt.Sprintf("%d root classes exceed %d", roots, v.cfg.MaxRoots),
			Remediation: "introduce intermediate categories to group the roots",
		})
	}
}

func snapshotMaxDepth(snap *ontology.Snapshot) int {
	var depth func(id string, path map[string]struct{}) int
	depth = func(id string, path map[string]struct{}) int {
		c, ok := snap.Classes[id]
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
			if d := depth(sub, path) + 1; d > deepest {
				deepest = d
			}
		}
		return deepest
	}

	max := 0
	for id, c := range snap.Classes {
		if len(c.SuperClasses) != 0 {
			continue
		}
		if d := depth(id, map[string]struct{}{}); d > max {
			max = d
		}
	}
	return max
}

// checkClassConstraints evaluates class-level constraints: cardinality
// bounds natively, value and logical constraints through CEL. Failures
// route to errors or warnings per the constraint's declared severity;
// unevaluable expressions degrade to warnings.
func checkClassConstraints(v *Validator, snap *ontology.Snapshot, report *ruleReport) {
	for _, id := range sortedClassIDs(snap) {
		c := snap.Classes[id]
		for _, constraint := range c.Constraints {
			switch constraint.Type {
			case ontology.ConstraintCardinality:
				count := len(c.Instances)
				ok := count >= constraint.MinInstances &&
					(constraint.MaxInstances == nil || count <= *constraint.MaxInstances)
				if !ok {
					routeConstraint(report, constraint, id, fmt.Sprintf(
						"class %q has %d instances outside the declared bounds", id, count))
				}
			case ontology.ConstraintValue, ontology.ConstraintLogical:
				if v.constraints == nil || constraint.Expression == "" {
					continue
				}
				satisfied, err := v.constraints.Evaluate(constraint.Expression, c)
				if err != nil {
					report.addWarning(Issue{
						Type:     TypeConstraintViolation,
						Severity: SeverityMinor,
						Message: fmt.Sprintf("constraint %q on class %q could not be evaluated: %v",
							constraint.ID, id, err),
						Elements: []string{id},
					})
					continue
				}
				if !satisfied {
					message := constraint.Message
					if message == "" {
						message = fmt.Sprintf("class %q violates constraint %q", id, constraint.ID)
					}
					routeConstraint(report, constraint, id, message)
				}
			}
		}
	}
}

func routeConstraint(report *ruleReport, constraint ontology.Constraint, classID, message string) {
	issue := Issue{
		Type:     TypeConstraintViolation,
		Message:  message,
		Elements: []string{classID},
	}
	if constraint.Severity == ontology.ConstraintError {
		issue.Severity = SeverityMajor
		report.addError(issue)
	} else {
		issue.Severity = SeverityMinor
		report.addWarning(issue)
	}
}

func sortedClassIDs(snap *ontology.Snapshot) []string {
	ids := make([]string, 0, len(snap.Classes))
	for id := range snap.Classes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
