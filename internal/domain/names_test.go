package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanForFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Finch", "Finch"},
		{"Upper Tail", "Upper_Tail"},
		{"Red-Brown", "Red_Brown"},
		{"Black - White", "Black___White"},
		{"", ""},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, CleanForFilename(tc.in))
			assert.Equal(t, tc.want, CleanForFilename(CleanForFilename(tc.in)), "must be idempotent")
		})
	}
}

func TestAssetNames(t *testing.T) {
	assert.Equal(t, "shape_Finch_base", BaseShapeName("Finch"))
	assert.Equal(t, "shape_Long_Legged_base", BaseShapeName("Long-Legged"))
	assert.Equal(t, "bird_belly", CategoryIconName("Belly"))
	assert.Equal(t, "bird_under tail", CategoryIconName("Under Tail"))
	assert.Equal(t, "icon_Belly_White", VariationIconName("Belly", "White"))
	assert.Equal(t, "icon_Upper_Tail_Red_Brown", VariationIconName("Upper Tail", "Red-Brown"))
	assert.Equal(t, "canvas_Finch_Belly_White", CanvasLayerName("Finch", "Belly", "White"))
	assert.Equal(t, "canvas_Sea_Bird_Eye_Ring_Pale", CanvasLayerName("Sea Bird", "Eye Ring", "Pale"))
}
