package extract

import (
	"sort"
	"strings"
)

// DomainClusterer groups concepts into coherence-scored thematic domains
// using the injected domain keyword table. Concepts matching no domain fall
// into a residual "general" domain so every concept is accounted for.
type DomainClusterer struct {
	tables Tables
}

// NewDomainClusterer creates a domain clusterer.
func NewDomainClusterer(tables Tables) *DomainClusterer {
	return &DomainClusterer{tables: tables}
}

// Cluster assigns each concept to the first domain whose keyword list it
// matches and scores coverage and coherence per domain.
func (d *DomainClusterer) Cluster(concepts []Concept) []Domain {
	if len(concepts) == 0 {
		return nil
	}

	domainNames := make([]string, 0, len(d.tables.DomainKeywords))
	for name := range d.tables.DomainKeywords {
		domainNames = append(domainNames, name)
	}
	sort.Strings(domainNames)

	members := make(map[string][]Concept)
	for _, concept := range concepts {
		assigned := false
		for _, name := range domainNames {
			if matchesDomain(concept.Name, d.tables.DomainKeywords[name]) {
				members[name] = append(members[name], concept)
				assigned = true
				break
			}
		}
		if !assigned {
			members["general"] = append(members["general"], concept)
		}
	}

	order := append([]string{}, domainNames...)
	order = append(order, "general")

	domains := make([]Domain, 0, len(members))
	for _, name := range order {
		group := members[name]
		if len(group) == 0 {
			continue
		}

		conceptNames := make([]string, len(group))
		contexts := make([][]string, len(group))
		for i, c := range group {
			conceptNames[i] = c.Name
			contexts[i] = c.Contexts
		}
		sort.Strings(conceptNames)

		scope := "Concepts related to " + name
		if name == "general" {
			scope = "Concepts not covered by a thematic domain"
		}

		domains = append(domains, Domain{
			ID:       name,
			Name:     strings.ToUpper(name[:1]) + name[1:],
			Scope:    scope,
			Concepts: conceptNames,
			Coverage: float64(len(group)) / float64(len(concepts)),
			Coherence: Coherence(contexts),
		})
	}
	return domains
}

func matchesDomain(name string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(name, kw) {
			return true
		}
	}
	return false
}
