package ontology

import (
	"sort"
	"strings"
)

// InferProperties derives formal object-property definitions from the
// relationship types present in the store. Each distinct type becomes one
// property whose domain collects the source classes and whose range the
// target classes, with open 0..unbounded cardinality. Inferred properties
// are registered on the store and attached to their domain classes.
func (s *Store) InferProperties() ([]Property, error) {
	type accum struct {
		domain map[string]struct{}
		rng    map[string]struct{}
	}

	s.mu.RLock()
	byType := make(map[string]*accum)
	for _, rel := range s.relationships {
		a, ok := byType[rel.Type]
		if !ok {
			a = &accum{domain: make(map[string]struct{}), rng: make(map[string]struct{})}
			byType[rel.Type] = a
		}
		if _, ok := s.classes[rel.Source]; ok {
			a.domain[rel.Source] = struct{}{}
		}
		if _, ok := s.classes[rel.Target]; ok {
			a.rng[rel.Target] = struct{}{}
		}
	}
	s.mu.RUnlock()

	types := make([]string, 0, len(byType))
	for t := range byType {
		types = append(types, t)
	}
	sort.Strings(types)

	var inferred []Property
	for _, relType := range types {
		a := byType[relType]
		prop := Property{
			ID:          Slugify(relType),
			Name:        propertyNameFromType(relType),
			Description: "Object property inferred from " + relType + " relationships",
			Domain:      setToSlice(a.domain),
			Range:       setToSlice(a.rng),
			Type:        PropertyObject,
			Cardinality: Cardinality{Min: 0, Max: nil},
			Metadata:    Metadata{Confidence: 0.7, Provenance: ProvenanceInferred},
		}
		if err := s.AddProperty(prop); err != nil {
			return inferred, err
		}
		inferred = append(inferred, prop)

		s.mu.Lock()
		for classID := range a.domain {
			if c, ok := s.classes[classID]; ok {
				c.Properties = addToSet(c.Properties, prop.ID)
			}
		}
		s.mu.Unlock()
	}
	return inferred, nil
}

// propertyNameFromType turns a relation tag into a lowerCamel property
// name: "depends-on" becomes "dependsOn".
func propertyNameFromType(relType string) string {
	parts := strings.Split(relType, "-")
	for i := 1; i < len(parts); i++ {
		if parts[i] == "" {
			continue
		}
		parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
	}
	return strings.Join(parts, "")
}

func setToSlice(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
