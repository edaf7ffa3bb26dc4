package export

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/c360studio/ontograph/ontology"
	"github.com/c360studio/ontograph/vocabulary/onto"
)

// Format specifies the output serialization format.
type Format string

const (
	// FormatTurtle produces Turtle (.ttl) output.
	FormatTurtle Format = "turtle"

	// FormatNTriples produces N-Triples (.nt) output.
	FormatNTriples Format = "ntriples"

	// FormatJSONLD produces JSON-LD (.jsonld) output.
	FormatJSONLD Format = "jsonld"

	// FormatOWLFunctional produces OWL 2 functional syntax (.ofn) output.
	FormatOWLFunctional Format = "owl-functional"
)

// Version identifies the export document schema.
const Version = "1.0.0"

// Triple represents a semantic triple for export. Predicates may be dotted
// internal predicates or full IRIs; dotted forms are translated at write
// time.
type Triple struct {
	Subject   string
	Predicate string
	Object    any
}

// Entity represents an exportable subject with its types and triples.
type Entity struct {
	ID      string
	Kind    onto.Kind
	Types   []string
	Triples []Triple
}

// Metadata describes an exported document.
type Metadata struct {
	Classes       int       `json:"classes"`
	Properties    int       `json:"properties"`
	Relationships int       `json:"relationships"`
	Domains       int       `json:"domains"`
	Format        Format    `json:"format"`
	Profile       Profile   `json:"profile"`
	Version       string    `json:"version"`
	RunID         string    `json:"run_id"`
	GeneratedAt   time.Time `json:"generated_at"`
}

// Document is a serialized ontology with its metadata.
type Document struct {
	Content  string   `json:"content"`
	Metadata Metadata `json:"metadata"`
}

// RDFExporter exports ontology snapshots to RDF with configurable ontology
// profiles.
type RDFExporter struct {
	profile  Profile
	entities []Entity
	prefixes map[string]string
	snap     *ontology.Snapshot
}

// NewRDFExporter creates a new RDF exporter with the specified profile.
func NewRDFExporter(profile Profile) *RDFExporter {
	return &RDFExporter{
		profile:  profile,
		entities: make([]Entity, 0),
		prefixes: defaultPrefixes(),
	}
}

// defaultPrefixes returns the standard namespace prefixes for RDF export.
func defaultPrefixes() map[string]string {
	return map[string]string{
		"rdf":    "http://www.w3.org/1999/02/22-rdf-syntax-ns#",
		"rdfs":   "http://www.w3.org/2000/01/rdf-schema#",
		"owl":    "http://www.w3.org/2002/07/owl#",
		"xsd":    "http://www.w3.org/2001/XMLSchema#",
		"dc":     "http://purl.org/dc/terms/",
		"skos":   "http://www.w3.org/2004/02/skos/core#",
		"prov":   "http://www.w3.org/ns/prov#",
		"bfo":    "http://purl.obolibrary.org/obo/",
		"onto":   onto.Namespace,
		"entity": onto.EntityNamespace,
	}
}

// AddEntity adds an entity to be exported.
func (e *RDFExporter) AddEntity(entity Entity) {
	e.entities = append(e.entities, entity)
}

// AddSnapshot converts a store snapshot into exportable entities: one per
// class with label, kind, confidence, provenance, and broader links; one
// per property; one per domain with member links. Relationships attach to
// their source class using the standard IRI for the relation type.
func (e *RDFExporter) AddSnapshot(snap *ontology.Snapshot) {
	e.snap = snap

	relsBySource := make(map[string][]ontology.Relationship)
	for _, rel := range snap.Relationships {
		relsBySource[rel.Source] = append(relsBySource[rel.Source], rel)
	}

	for _, id := range sortedKeys(snap.Classes) {
		c := snap.Classes[id]
		entity := Entity{ID: id, Kind: onto.Kind(c.Kind)}

		entity.Triples = append(entity.Triples, Triple{
			Subject: id, Predicate: onto.ClassLabel, Object: c.Name,
		})
		if c.Description != "" {
			entity.Triples = append(entity.Triples, Triple{
				Subject: id, Predicate: onto.ClassDescription, Object: c.Description,
			})
		}
		if c.Kind != "" {
			entity.Triples = append(entity.Triples, Triple{
				Subject: id, Predicate: onto.PredicateClassKind, Object: c.Kind,
			})
		}
		entity.Triples = append(entity.Triples, Triple{
			Subject: id, Predicate: onto.ClassConfidence, Object: c.Metadata.Confidence,
		})
		if c.Metadata.Provenance != "" {
			entity.Triples = append(entity.Triples, Triple{
				Subject: id, Predicate: onto.ClassProvenance, Object: string(c.Metadata.Provenance),
			})
		}
		for _, super := range c.SuperClasses {
			entity.Triples = append(entity.Triples, Triple{
				Subject: id, Predicate: onto.ClassBroader, Object: entityIDToIRI(super),
			})
		}

		rels := relsBySource[id]
		sort.Slice(rels, func(i, j int) bool { return rels[i].ID < rels[j].ID })
		for _, rel := range rels {
			entity.Triples = append(entity.Triples, Triple{
				Subject:   id,
				Predicate: onto.GetRelationIRI(rel.Type),
				Object:    entityIDToIRI(rel.Target),
			})
		}

		e.AddEntity(entity)
	}

	for _, id := range sortedKeys(snap.Properties) {
		p := snap.Properties[id]
		entity := Entity{ID: id}
		entity.Triples = append(entity.Triples, Triple{
			Subject: id, Predicate: "http://www.w3.org/2000/01/rdf-schema#label", Object: p.Name,
		})
		for _, d := range p.Domain {
			entity.Triples = append(entity.Triples, Triple{
				Subject: id, Predicate: "http://www.w3.org/2000/01/rdf-schema#domain", Object: entityIDToIRI(d),
			})
		}
		for _, r := range p.Range {
			if _, ok := snap.Classes[r]; !ok {
				continue
			}
			entity.Triples = append(entity.Triples, Triple{
				Subject: id, Predicate: "http://www.w3.org/2000/01/rdf-schema#range", Object: entityIDToIRI(r),
			})
		}
		e.AddEntity(entity)
	}

	for _, id := range sortedKeys(snap.Domains) {
		d := snap.Domains[id]
		entity := Entity{ID: id, Types: []string{onto.ClassDomainType}}
		entity.Triples = append(entity.Triples, Triple{
			Subject: id, Predicate: onto.DomainName, Object: d.Name,
		})
		if d.Scope != "" {
			entity.Triples = append(entity.Triples, Triple{
				Subject: id, Predicate: onto.DomainScope, Object: d.Scope,
			})
		}
		entity.Triples = append(entity.Triples, Triple{
			Subject: id, Predicate: onto.DomainCoverage, Object: d.Coverage,
		})
		entity.Triples = append(entity.Triples, Triple{
			Subject: id, Predicate: onto.DomainCoherence, Object: d.Coherence,
		})
		for _, member := range d.Classes {
			entity.Triples = append(entity.Triples, Triple{
				Subject: id, Predicate: onto.DomainMember, Object: entityIDToIRI(member),
			})
		}
		e.AddEntity(entity)
	}
}

// Export serializes all entities to the specified format.
func (e *RDFExporter) Export(format Format) (string, error) {
	switch format {
	case FormatTurtle:
		return e.toTurtle(), nil
	case FormatNTriples:
		return e.toNTriples(), nil
	case FormatJSONLD:
		return e.toJSONLD(), nil
	case FormatOWLFunctional:
		return e.toOWLFunctional()
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

// ExportSnapshot builds a document for a snapshot in one call.
func ExportSnapshot(snap *ontology.Snapshot, format Format, profile Profile) (*Document, error) {
	exporter := NewRDFExporter(profile)
	exporter.AddSnapshot(snap)

	content, err := exporter.Export(format)
	if err != nil {
		return nil, err
	}

	return &Document{
		Content: content,
		Metadata: Metadata{
			Classes:       len(snap.Classes),
			Properties:    len(snap.Properties),
			Relationships: len(snap.Relationships),
			Domains:       len(snap.Domains),
			Format:        format,
			Profile:       profile,
			Version:       Version,
			RunID:         uuid.NewString(),
			GeneratedAt:   time.Now().UTC(),
		},
	}, nil
}

// typeIRIs merges kind-derived type assertions with explicit extra types.
func (e *RDFExporter) typeIRIs(entity Entity) []string {
	types := make([]string, 0, 4)
	if entity.Kind != "" {
		types = append(types, NewTypeAsserter(e.profile).GetTypeIRIs(entity.Kind)...)
	}
	types = append(types, entity.Types...)
	return types
}

// toTurtle serializes to Turtle format.
func (e *RDFExporter) toTurtle() string {
	var sb strings.Builder

	prefixKeys := make([]string, 0, len(e.prefixes))
	for k := range e.prefixes {
		prefixKeys = append(prefixKeys, k)
	}
	sort.Strings(prefixKeys)
	for _, prefix := range prefixKeys {
		sb.WriteString(fmt.Sprintf("@prefix %s: <%s> .\n", prefix, e.prefixes[prefix]))
	}
	sb.WriteString("\n")

	for _, entity := range e.entities {
		e.writeEntityTurtle(&sb, entity)
		sb.WriteString("\n")
	}

	return sb.String()
}

// writeEntityTurtle writes a single entity in Turtle format.
func (e *RDFExporter) writeEntityTurtle(sb *strings.Builder, entity Entity) {
	types := e.typeIRIs(entity)
	if len(types) == 0 && len(entity.Triples) == 0 {
		return
	}

	iri := entityIDToIRI(entity.ID)
	sb.WriteString(fmt.Sprintf("<%s>\n", iri))

	for i, typeIRI := range types {
		sb.WriteString(fmt.Sprintf("    a <%s>", typeIRI))
		if i < len(types)-1 || len(entity.Triples) > 0 {
			sb.WriteString(" ;\n")
		} else {
			sb.WriteString(" .\n")
		}
	}

	for i, triple := range entity.Triples {
		sb.WriteString(fmt.Sprintf("    <%s> %s", predicateIRI(triple.Predicate), formatObject(triple.Object)))
		if i < len(entity.Triples)-1 {
			sb.WriteString(" ;\n")
		} else {
			sb.WriteString(" .\n")
		}
	}
}

// toNTriples serializes to N-Triples format.
func (e *RDFExporter) toNTriples() string {
	var sb strings.Builder

	rdfType := "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"

	for _, entity := range e.entities {
		iri := entityIDToIRI(entity.ID)

		for _, typeIRI := range e.typeIRIs(entity) {
			sb.WriteString(fmt.Sprintf("<%s> <%s> <%s> .\n", iri, rdfType, typeIRI))
		}

		for _, triple := range entity.Triples {
			sb.WriteString(fmt.Sprintf("<%s> <%s> %s .\n",
				iri, predicateIRI(triple.Predicate), formatObjectNTriples(triple.Object)))
		}
	}

	return sb.String()
}

// toJSONLD serializes to JSON-LD format.
func (e *RDFExporter) toJSONLD() string {
	writer := NewJSONLDWriter()
	writer.SetContext(e.prefixes)

	for _, entity := range e.entities {
		properties := make(map[string]any)
		for _, triple := range entity.Triples {
			key := predicateIRI(triple.Predicate)
			value := jsonldValue(triple.Object)
			switch existing := properties[key].(type) {
			case nil:
				properties[key] = value
			case []any:
				properties[key] = append(existing, value)
			default:
				properties[key] = []any{existing, value}
			}
		}
		writer.AddNode(entityIDToIRI(entity.ID), e.typeIRIs(entity), properties)
	}

	return writer.String()
}

// entityIDToIRI converts a slug identifier to an entity IRI.
func entityIDToIRI(id string) string {
	return onto.EntityNamespace + id
}

// predicateIRI translates dotted predicates to standard IRIs, passing full
// IRIs through untouched.
func predicateIRI(predicate string) string {
	if strings.Contains(predicate, "://") {
		return predicate
	}
	return onto.GetPredicateIRI(predicate)
}

// formatObject formats an object value for Turtle output.
func formatObject(obj any) string {
	switch v := obj.(type) {
	case string:
		if strings.HasPrefix(v, "http://") || strings.HasPrefix(v, "https://") {
			return fmt.Sprintf("<%s>", v)
		}
		if _, err := time.Parse(time.RFC3339, v); err == nil {
			return fmt.Sprintf("\"%s\"^^xsd:dateTime", v)
		}
		return fmt.Sprintf("\"%s\"", escapeString(v))
	case int, int32, int64:
		return fmt.Sprintf("\"%d\"^^xsd:integer", v)
	case float32, float64:
		return fmt.Sprintf("\"%f\"^^xsd:decimal", v)
	case bool:
		return fmt.Sprintf("\"%t\"^^xsd:boolean", v)
	default:
		return fmt.Sprintf("\"%v\"", v)
	}
}

// formatObjectNTriples formats an object value for N-Triples output.
func formatObjectNTriples(obj any) string {
	switch v := obj.(type) {
	case string:
		if strings.HasPrefix(v, "http://") || strings.HasPrefix(v, "https://") {
			return fmt.Sprintf("<%s>", v)
		}
		if _, err := time.Parse(time.RFC3339, v); err == nil {
			return fmt.Sprintf("\"%s\"^^<http://www.w3.org/2001/XMLSchema#dateTime>", v)
		}
		return fmt.Sprintf("\"%s\"", escapeString(v))
	case int, int32, int64:
		return fmt.Sprintf("\"%d\"^^<http://www.w3.org/2001/XMLSchema#integer>", v)
	case float32, float64:
		return fmt.Sprintf("\"%f\"^^<http://www.w3.org/2001/XMLSchema#decimal>", v)
	case bool:
		return fmt.Sprintf("\"%t\"^^<http://www.w3.org/2001/XMLSchema#boolean>", v)
	default:
		return fmt.Sprintf("\"%v\"", v)
	}
}

// jsonldValue converts an object value for JSON-LD serialization.
func jsonldValue(obj any) any {
	if v, ok := obj.(string); ok {
		if strings.HasPrefix(v, "http://") || strings.HasPrefix(v, "https://") {
			return map[string]any{"@id": v}
		}
		if _, err := time.Parse(time.RFC3339, v); err == nil {
			return map[string]any{"@value": v, "@type": "xsd:dateTime"}
		}
	}
	return obj
}

// escapeString escapes special characters in strings for RDF serialization.
func escapeString(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\r")
	s = strings.ReplaceAll(s, "\t", "\\t")
	return s
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
