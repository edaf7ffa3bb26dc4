package ontology_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/ontograph/ontology"
)

func TestAddClass_DerivesIDFromName(t *testing.T) {
	s := ontology.NewStore()

	require.NoError(t, s.AddClass(ontology.Class{Name: "Water Tank"}))

	c, ok := s.GetClass("water-tank")
	require.True(t, ok)
	assert.Equal(t, "Water Tank", c.Name)
	assert.False(t, c.Metadata.Created.IsZero())
}

func TestAddClass_RequiresName(t *testing.T) {
	s := ontology.NewStore()

	err := s.AddClass(ontology.Class{})
	assert.ErrorIs(t, err, ontology.ErrInvalidElement)
}

func TestAddClass_MaintainsInverseSubClassLinks(t *testing.T) {
	s := ontology.NewStore()

	require.NoError(t, s.AddClass(ontology.Class{ID: "animal", Name: "Animal"}))
	require.NoError(t, s.AddClass(ontology.Class{ID: "dog", Name: "Dog", SuperClasses: []string{"animal"}}))
	require.NoError(t, s.AddClass(ontology.Class{ID: "cat", Name: "Cat", SuperClasses: []string{"animal"}}))

	animal, ok := s.GetClass("animal")
	require.True(t, ok)
	assert.Equal(t, []string{"cat", "dog"}, animal.SubClasses)
}

func TestAddClass_SubClassLinksAreOrderIndependent(t *testing.T) {
	s := ontology.NewStore()

	// Child registered before its parent exists.
	require.NoError(t, s.AddClass(ontology.Class{ID: "dog", Name: "Dog", SuperClasses: []string{"animal"}}))
	require.NoError(t, s.AddClass(ontology.Class{ID: "animal", Name: "Animal"}))

	animal, ok := s.GetClass("animal")
	require.True(t, ok)
	assert.Equal(t, []string{"dog"}, animal.SubClasses)
}

func TestAddClass_UpsertPreservesCreatedAndRelinks(t *testing.T) {
	s := ontology.NewStore()

	require.NoError(t, s.AddClass(ontology.Class{ID: "animal", Name: "Animal"}))
	require.NoError(t, s.AddClass(ontology.Class{ID: "plant", Name: "Plant"}))
	require.NoError(t, s.AddClass(ontology.Class{ID: "dog", Name: "Dog", SuperClasses: []string{"animal"}}))

	first, _ := s.GetClass("dog")

	require.NoError(t, s.AddClass(ontology.Class{ID: "dog", Name: "Dog", SuperClasses: []string{"plant"}}))

	second, _ := s.GetClass("dog")
	assert.Equal(t, first.Metadata.Created, second.Metadata.Created)
	assert.Equal(t, []string{"plant"}, second.SuperClasses)

	animal, _ := s.GetClass("animal")
	assert.Empty(t, animal.SubClasses, "old superclass must be detached")
	plant, _ := s.GetClass("plant")
	assert.Equal(t, []string{"dog"}, plant.SubClasses)
}

func TestAddClass_RejectsSelfSuperclass(t *testing.T) {
	s := ontology.NewStore()

	err := s.AddClass(ontology.Class{ID: "dog", Name: "Dog", SuperClasses: []string{"dog"}})
	assert.ErrorIs(t, err, ontology.ErrCircularDependency)
}

func TestAddClass_RejectsCycleWithoutMutating(t *testing.T) {
	s := ontology.NewStore()

	require.NoError(t, s.AddClass(ontology.Class{ID: "animal", Name: "Animal"}))
	require.NoError(t, s.AddClass(ontology.Class{ID: "dog", Name: "Dog", SuperClasses: []string{"animal"}}))

	err := s.AddClass(ontology.Class{ID: "animal", Name: "Animal", SuperClasses: []string{"dog"}})
	assert.ErrorIs(t, err, ontology.ErrCircularDependency)

	animal, ok := s.GetClass("animal")
	require.True(t, ok)
	assert.Empty(t, animal.SuperClasses, "rejected mutation must leave the store unchanged")
	assert.Equal(t, []string{"dog"}, animal.SubClasses)
}

func TestAddSuperClass_RejectsCycle(t *testing.T) {
	s := ontology.NewStore()

	require.NoError(t, s.AddClass(ontology.Class{ID: "a", Name: "A"}))
	require.NoError(t, s.AddClass(ontology.Class{ID: "b", Name: "B", SuperClasses: []string{"a"}}))
	require.NoError(t, s.AddClass(ontology.Class{ID: "c", Name: "C", SuperClasses: []string{"b"}}))

	err := s.AddSuperClass("a", "c")
	assert.ErrorIs(t, err, ontology.ErrCircularDependency)

	assert.NoError(t, s.AddSuperClass("c", "a"))
	c, _ := s.GetClass("c")
	assert.Equal(t, []string{"a", "b"}, c.SuperClasses)
}

func TestAddSuperClass_MissingClass(t *testing.T) {
	s := ontology.NewStore()

	err := s.AddSuperClass("ghost", "anything")
	assert.ErrorIs(t, err, ontology.ErrMissingReference)
}

func TestRemoveSuperClass(t *testing.T) {
	s := ontology.NewStore()

	require.NoError(t, s.AddClass(ontology.Class{ID: "animal", Name: "Animal"}))
	require.NoError(t, s.AddClass(ontology.Class{ID: "dog", Name: "Dog", SuperClasses: []string{"animal"}}))

	require.NoError(t, s.RemoveSuperClass("dog", "animal"))

	dog, _ := s.GetClass("dog")
	assert.Empty(t, dog.SuperClasses)
	animal, _ := s.GetClass("animal")
	assert.Empty(t, animal.SubClasses)
}

func TestDeleteClass_CleansUpReferences(t *testing.T) {
	s := ontology.NewStore()

	require.NoError(t, s.AddClass(ontology.Class{ID: "animal", Name: "Animal"}))
	require.NoError(t, s.AddClass(ontology.Class{ID: "dog", Name: "Dog", SuperClasses: []string{"animal"}}))
	require.NoError(t, s.AddClass(ontology.Class{ID: "puppy", Name: "Puppy", SuperClasses: []string{"dog"}}))
	require.NoError(t, s.AddRelationship(ontology.Relationship{Type: "has-a", Source: "dog", Target: "animal"}))

	require.NoError(t, s.DeleteClass("dog"))

	_, ok := s.GetClass("dog")
	assert.False(t, ok)

	animal, _ := s.GetClass("animal")
	assert.Empty(t, animal.SubClasses)
	puppy, _ := s.GetClass("puppy")
	assert.Empty(t, puppy.SuperClasses)
	assert.Empty(t, s.ListRelationships(), "relationships referencing the class must go too")
}

func TestDeleteClass_Missing(t *testing.T) {
	s := ontology.NewStore()
	assert.ErrorIs(t, s.DeleteClass("ghost"), ontology.ErrMissingReference)
}

func TestGetClass_ReturnsCopy(t *testing.T) {
	s := ontology.NewStore()

	require.NoError(t, s.AddClass(ontology.Class{ID: "dog", Name: "Dog", Instances: []string{"doc-1"}}))

	c, _ := s.GetClass("dog")
	c.Instances[0] = "mutated"
	c.Name = "Cat"

	again, _ := s.GetClass("dog")
	assert.Equal(t, "Dog", again.Name)
	assert.Equal(t, []string{"doc-1"}, again.Instances)
}

func TestAddProperty_ValidatesCardinality(t *testing.T) {
	s := ontology.NewStore()

	err := s.AddProperty(ontology.Property{Name: "hasPart", Cardinality: ontology.Cardinality{Min: -1}})
	assert.ErrorIs(t, err, ontology.ErrInvalidElement)

	max := 1
	err = s.AddProperty(ontology.Property{Name: "hasPart", Cardinality: ontology.Cardinality{Min: 2, Max: &max}})
	assert.ErrorIs(t, err, ontology.ErrInvalidElement)

	require.NoError(t, s.AddProperty(ontology.Property{Name: "hasPart", Type: ontology.PropertyObject}))
	p, ok := s.GetProperty("haspart")
	require.True(t, ok)
	assert.Equal(t, "hasPart", p.Name)
}

func TestAddRelationship_DeterministicIDAndMirror(t *testing.T) {
	s := ontology.NewStore()

	require.NoError(t, s.AddRelationship(ontology.Relationship{
		Type: "similar-to", Source: "dog", Target: "cat", Bidirectional: true,
	}))

	rels := s.ListRelationships()
	require.Len(t, rels, 2)
	assert.Equal(t, "cat-similar-to-dog", rels[0].ID)
	assert.Equal(t, "dog-similar-to-cat", rels[1].ID)
	assert.Equal(t, "cat", rels[0].Source)
	assert.Equal(t, "dog", rels[0].Target)
}

func TestAddRelationship_RequiresEndpointsAndType(t *testing.T) {
	s := ontology.NewStore()

	err := s.AddRelationship(ontology.Relationship{Type: "is-a", Source: "dog"})
	assert.ErrorIs(t, err, ontology.ErrInvalidElement)
}

func TestDeleteRelationship(t *testing.T) {
	s := ontology.NewStore()

	require.NoError(t, s.AddRelationship(ontology.Relationship{Type: "is-a", Source: "dog", Target: "animal"}))
	require.NoError(t, s.DeleteRelationship("dog-is-a-animal"))
	assert.ErrorIs(t, s.DeleteRelationship("dog-is-a-animal"), ontology.ErrMissingReference)
}

func TestAddDomain(t *testing.T) {
	s := ontology.NewStore()

	require.NoError(t, s.AddDomain(ontology.Domain{Name: "Animal Care", Coverage: 0.5}))

	domains := s.ListDomains()
	require.Len(t, domains, 1)
	assert.Equal(t, "animal-care", domains[0].ID)

	assert.ErrorIs(t, s.AddDomain(ontology.Domain{}), ontology.ErrInvalidElement)
}

func TestStatistics(t *testing.T) {
	s := ontology.NewStore()

	require.NoError(t, s.AddClass(ontology.Class{ID: "animal", Name: "Animal"}))
	require.NoError(t, s.AddClass(ontology.Class{ID: "dog", Name: "Dog", SuperClasses: []string{"animal"}}))
	require.NoError(t, s.AddClass(ontology.Class{ID: "puppy", Name: "Puppy", SuperClasses: []string{"dog"}}))
	require.NoError(t, s.AddRelationship(ontology.Relationship{Type: "has-a", Source: "dog", Target: "puppy"}))

	stats := s.Statistics()
	assert.Equal(t, 3, stats.Classes)
	assert.Equal(t, 1, stats.Relationships)
	assert.Equal(t, 1, stats.Roots)
	assert.Equal(t, 2, stats.MaxDepth)
	assert.InDelta(t, 1.0, stats.AvgBranching, 0.0001)
}

func TestSlugify(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Water Tank", "water-tank"},
		{"  spaced  out  ", "spaced-out"},
		{"Already-Slugged", "already-slugged"},
		{"C3-PO unit!", "c3-po-unit"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ontology.Slugify(tc.in), "Slugify(%q)", tc.in)
	}
}
