// Package engine orchestrates the full ontology construction pipeline:
// corpus snapshot, concept and relationship extraction, domain clustering,
// hierarchy building, store population, property inference, and validation.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/c360studio/ontograph/config"
	"github.com/c360studio/ontograph/corpus"
	"github.com/c360studio/ontograph/export"
	"github.com/c360studio/ontograph/extract"
	"github.com/c360studio/ontograph/hierarchy"
	"github.com/c360studio/ontograph/ontology"
	"github.com/c360studio/ontograph/validate"
)

// Engine wires the pipeline stages around a shared ontology store.
type Engine struct {
	cfg     *config.Config
	logger  *slog.Logger
	reg     prometheus.Registerer
	metrics *Metrics

	store     *ontology.Store
	validator *validate.Validator

	concepts      *extract.ConceptExtractor
	relationships *extract.RelationshipExtractor
	domains       *extract.DomainClusterer
	builder       *hierarchy.Builder
}

// Option customizes engine construction.
type Option func(*Engine)

// WithLogger sets the engine logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// WithMetricsRegistry registers the engine's collectors with reg.
func WithMetricsRegistry(reg prometheus.Registerer) Option {
	return func(e *Engine) { e.reg = reg }
}

// New creates an engine from the given configuration. A nil config uses
// defaults.
func New(cfg *config.Config, opts ...Option) (*Engine, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid engine config: %w", err)
	}

	e := &Engine{
		cfg:    cfg,
		logger: slog.Default(),
		store:  ontology.NewStore(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.metrics = NewMetrics(e.reg)

	tables := extract.DefaultTables()
	e.concepts = extract.NewConceptExtractor(cfg.Extraction, tables)
	e.relationships = extract.NewRelationshipExtractor(cfg.Extraction, tables)
	e.domains = extract.NewDomainClusterer(tables)
	e.builder = hierarchy.NewBuilder(cfg.Hierarchy)

	validator, err := validate.NewValidator(cfg.Validation, e.logger)
	if err != nil {
		return nil, fmt.Errorf("create validator: %w", err)
	}
	e.validator = validator

	return e, nil
}

// Store exposes the underlying ontology store for direct authoring.
func (e *Engine) Store() *ontology.Store {
	return e.store
}

// Result carries everything one analysis run produced.
type Result struct {
	Concepts        []extract.Concept
	Relationships   []extract.Relationship
	Domains         []extract.Domain
	Forest          *hierarchy.Forest
	HierarchyIssues []hierarchy.Issue
	Validation      validate.Result
	Statistics      ontology.Statistics
}

// ExtractConcepts runs concept extraction over a corpus snapshot.
func (e *Engine) ExtractConcepts(c corpus.Corpus) []extract.Concept {
	return e.concepts.Extract(c)
}

// ExtractRelationships runs relationship extraction over a corpus snapshot.
func (e *Engine) ExtractRelationships(c corpus.Corpus, concepts []extract.Concept) []extract.Relationship {
	return e.relationships.Extract(c, concepts)
}

// BuildHierarchy assembles the taxonomy forest for extracted concepts.
func (e *Engine) BuildHierarchy(concepts []extract.Concept, relationships []extract.Relationship) *hierarchy.Forest {
	return e.builder.Build(concepts, relationships)
}

// Analyze runs the full pipeline against a corpus source and populates the
// store with the outcome. Analysis replaces nothing: repeated runs upsert
// classes by id, so calling Analyze on a grown corpus refines the ontology
// in place.
func (e *Engine) Analyze(ctx context.Context, src corpus.Source) (*Result, error) {
	start := time.Now()

	snap, err := corpus.Snapshot(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("snapshot corpus: %w", err)
	}
	e.metrics.DocumentsProcessed.Add(float64(snap.Len()))

	for _, doc := range snap.Documents {
		if doc.Empty() {
			e.logger.Warn("skipping document with no usable text", "document", doc.Name)
		}
	}

	concepts := e.ExtractConcepts(snap)
	relationships := e.ExtractRelationships(snap, concepts)
	domains := e.domains.Cluster(concepts)
	forest := e.BuildHierarchy(concepts, relationships)

	e.metrics.ConceptsExtracted.Add(float64(len(concepts)))
	e.metrics.RelationshipsExtracted.Add(float64(len(relationships)))

	if err := e.populateStore(concepts, relationships, domains, forest); err != nil {
		return nil, fmt.Errorf("populate store: %w", err)
	}
	if _, err := e.store.InferProperties(); err != nil {
		return nil, fmt.Errorf("infer properties: %w", err)
	}

	validation := e.ValidateOntology()

	e.metrics.AnalyzeDuration.Observe(time.Since(start).Seconds())
	e.logger.Info("analysis complete",
		"documents", snap.Len(),
		"concepts", len(concepts),
		"relationships", len(relationships),
		"domains", len(domains),
		"valid", validation.Valid)

	return &Result{
		Concepts:        concepts,
		Relationships:   relationships,
		Domains:         domains,
		Forest:          forest,
		HierarchyIssues: e.builder.Report(forest),
		Validation:      validation,
		Statistics:      e.store.Statistics(),
	}, nil
}

// populateStore translates extraction output into store elements: one class
// per forest node, superclass edges from forest parents, typed
// relationships, and thematic domains.
func (e *Engine) populateStore(
	concepts []extract.Concept,
	relationships []extract.Relationship,
	domains []extract.Domain,
	forest *hierarchy.Forest,
) error {
	byName := make(map[string]extract.Concept, len(concepts))
	for _, c := range concepts {
		byName[c.Name] = c
	}

	for _, node := range forest.Nodes() {
		class := ontology.Class{
			ID:   ontology.Slugify(node.Name),
			Name: displayName(node.Name),
		}
		if node.Parent != "" {
			class.SuperClasses = []string{ontology.Slugify(node.Parent)}
		}

		if concept, ok := byName[node.Name]; ok {
			class.Kind = string(concept.Kind)
			class.Instances = concept.Contexts
			class.Metadata.Confidence = concept.Confidence
			class.Metadata.Provenance = ontology.ProvenanceExtracted
		} else {
			// Synthetic kind parent.
			class.Kind = node.Name
			class.Description = "Synthesized parent grouping " + node.Name + " concepts"
			class.Metadata.Confidence = 0.5
			class.Metadata.Provenance = ontology.ProvenanceInferred
		}

		if err := e.store.AddClass(class); err != nil {
			return fmt.Errorf("add class %q: %w", class.ID, err)
		}
	}

	for _, rel := range relationships {
		r := ontology.Relationship{
			Type:          rel.Type,
			Source:        ontology.Slugify(rel.Source),
			Target:        ontology.Slugify(rel.Target),
			Confidence:    rel.Strength,
			Bidirectional: rel.Bidirectional,
			Metadata: ontology.Metadata{
				Confidence: rel.Strength,
				Provenance: ontology.ProvenanceExtracted,
			},
		}
		if err := e.store.AddRelationship(r); err != nil {
			return fmt.Errorf("add relationship %s-%s-%s: %w", r.Source, rel.Type, r.Target, err)
		}
	}

	for _, d := range domains {
		classes := make([]string, len(d.Concepts))
		for i, name := range d.Concepts {
			classes[i] = ontology.Slugify(name)
		}
		domain := ontology.Domain{
			ID:        d.ID,
			Name:      d.Name,
			Scope:     d.Scope,
			Concepts:  d.Concepts,
			Classes:   classes,
			Coverage:  d.Coverage,
			Coherence: d.Coherence,
		}
		if err := e.store.AddDomain(domain); err != nil {
			return fmt.Errorf("add domain %q: %w", domain.ID, err)
		}
	}

	return nil
}

// ValidateOntology runs the full rule battery against the current store.
func (e *Engine) ValidateOntology() validate.Result {
	result := e.validator.Validate(e.store.Snapshot())
	e.metrics.ValidationIssues.WithLabelValues("errors").Set(float64(len(result.Errors)))
	e.metrics.ValidationIssues.WithLabelValues("warnings").Set(float64(len(result.Warnings)))
	e.metrics.ValidationIssues.WithLabelValues("suggestions").Set(float64(len(result.Suggestions)))
	return result
}

// Export serializes the current store. Empty format or profile fall back to
// the configured defaults.
func (e *Engine) Export(format export.Format, profile export.Profile) (*export.Document, error) {
	if format == "" {
		format = e.cfg.Export.Format
	}
	if profile == "" {
		profile = e.cfg.Export.Profile
	}

	doc, err := export.ExportSnapshot(e.store.Snapshot(), format, profile)
	if err != nil {
		return nil, err
	}
	e.metrics.ExportsTotal.WithLabelValues(string(format)).Inc()
	return doc, nil
}

// displayName capitalizes the first rune of a concept name for use as a
// class display name.
func displayName(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
