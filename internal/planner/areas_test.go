package planner

import (
	"testing"

	"github.com/alexanderramin/fieldmarks/internal/domain"
	"github.com/stretchr/testify/assert"
)

func subject(name string, marks ...string) domain.Subject {
	s := domain.Subject{CommonName: name}
	for i := 0; i+1 < len(marks); i += 2 {
		s.FieldMarks = append(s.FieldMarks, domain.FieldMark{Area: marks[i], Variant: marks[i+1]})
	}
	return s
}

func TestSelectAreas_DerivedFromSubjects(t *testing.T) {
	subjects := []domain.Subject{subject("Test Bird", "Chest", "Gray", "Belly", "White")}

	sel := SelectAreas(standardIndex(), subjects, nil)
	assert.False(t, sel.Overridden)
	assert.Equal(t, []string{"Belly", "Chest"}, sel.Known)
	assert.Empty(t, sel.Missing)
	assert.NotNil(t, sel.Missing)
}

func TestSelectAreas_UnionSortedAcrossSubjects(t *testing.T) {
	subjects := []domain.Subject{
		subject("A", "Wing", "Barred", "Belly", "White"),
		subject("B", "Chest", "Gray", "Belly", "Brown", "Eye", "Red"),
	}

	sel := SelectAreas(standardIndex(), subjects, nil)
	assert.Equal(t, []string{"Belly", "Chest", "Eye", "Wing"}, sel.Requested)
	assert.Equal(t, []string{"Belly", "Chest"}, sel.Known)
	assert.Equal(t, []string{"Eye", "Wing"}, sel.Missing)
}

func TestSelectAreas_MissingArea(t *testing.T) {
	subjects := []domain.Subject{subject("Test Bird", "Belly", "White", "Wing", "Barred")}

	sel := SelectAreas(standardIndex(), subjects, nil)
	assert.Equal(t, []string{"Belly"}, sel.Known)
	assert.Equal(t, []string{"Wing"}, sel.Missing)
}

func TestSelectAreas_OverrideKeepsOrder(t *testing.T) {
	subjects := []domain.Subject{subject("Test Bird", "Belly", "White")}

	sel := SelectAreas(standardIndex(), subjects, []string{"Chest", "Tail", "Belly", "Chest"})
	assert.True(t, sel.Overridden)
	assert.Equal(t, []string{"Chest", "Tail", "Belly"}, sel.Requested)
	assert.Equal(t, []string{"Chest", "Belly"}, sel.Known)
	assert.Equal(t, []string{"Tail"}, sel.Missing)
}

func TestSelectAreas_EmptyOverrideFallsBack(t *testing.T) {
	subjects := []domain.Subject{subject("Test Bird", "Chest", "Gray")}

	sel := SelectAreas(standardIndex(), subjects, []string{})
	assert.False(t, sel.Overridden)
	assert.Equal(t, []string{"Chest"}, sel.Known)
}
