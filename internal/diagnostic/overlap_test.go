package diagnostic

import (
	"testing"

	"github.com/alexanderramin/fieldmarks/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func index() *domain.ReferenceIndex {
	idx := domain.NewReferenceIndex()
	idx.Set("Belly", []string{"White", "Brown", "Streaked"})
	idx.Set("Chest", []string{"Gray", "Streaked"})
	return idx
}

func TestFindOverlaps_ReportsEachSubjectOnce(t *testing.T) {
	subjects := []domain.Subject{
		{CommonName: "Test Bird", FieldMarks: []domain.FieldMark{
			{Area: "Belly", Variant: "White"},
			{Area: "Chest", Variant: "Gray"},
			{Area: "Eye", Variant: "Red"},
		}},
		{CommonName: "Belly Only", FieldMarks: []domain.FieldMark{{Area: "Belly", Variant: "Brown"}}},
		{CommonName: "No Marks"},
	}

	r := FindOverlaps(index(), subjects, DefaultAreaA, DefaultAreaB)
	require.True(t, r.Found())
	require.Len(t, r.Subjects, 1)
	assert.Equal(t, OverlapSubject{
		CommonName: "Test Bird",
		VariantsA:  []string{"White"},
		VariantsB:  []string{"Gray"},
	}, r.Subjects[0])
}

func TestFindOverlaps_ReferenceSets(t *testing.T) {
	r := FindOverlaps(index(), nil, "Belly", "Chest")
	assert.False(t, r.Found())
	assert.Equal(t, []string{"Brown", "Streaked", "White"}, r.ReferenceA)
	assert.Equal(t, []string{"Gray", "Streaked"}, r.ReferenceB)
	assert.Equal(t, []string{"Brown", "Gray", "Streaked", "White"}, r.Combined)
}

func TestFindOverlaps_CustomPairAndUnknownAreas(t *testing.T) {
	subjects := []domain.Subject{
		{CommonName: "Koel", FieldMarks: []domain.FieldMark{
			{Area: "Eye", Variant: "Red"},
			{Area: "Beak", Variant: "Pale"},
			{Area: "Eye", Variant: "Orange"},
		}},
	}

	r := FindOverlaps(index(), subjects, "Eye", "Beak")
	require.Len(t, r.Subjects, 1)
	assert.Equal(t, []string{"Red", "Orange"}, r.Subjects[0].VariantsA)
	assert.Empty(t, r.ReferenceA)
	assert.Empty(t, r.Combined)
}
