package manifest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderPrompts_Layout(t *testing.T) {
	assets := sampleAssets()
	got := string(RenderPrompts(sampleSummary(assets), assets))

	want := strings.Join([]string{
		"# GUI Asset Prompts",
		"# NOTE: icon prompts omitted (category_icon, variation_icon)",
		"# Shape: Finch | Birds: Test Bird",
		"# Areas: Chest",
		"",
		"== shape_Finch_base ==",
		"kind: base_shape",
		"",
		"base prompt",
		"",
		"notes: Generate once; use as reference for all canvas layers.",
		"\n" + separator + "\n",
		"== canvas_Finch_Chest_Gray ==",
		"kind: canvas_layer",
		"area: Chest",
		"variant: Gray",
		"",
		"canvas <prompt> & more",
		"",
		"notes: Must align to base; use inpainting/reference image.",
		"\n" + separator + "\n",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestRenderPrompts_OmitsIcons(t *testing.T) {
	assets := sampleAssets()
	got := string(RenderPrompts(sampleSummary(assets), assets))
	assert.NotContains(t, got, "== bird_chest ==")
	assert.NotContains(t, got, "== icon_Chest_Gray ==")
	assert.NotContains(t, got, "WARNING")
}

func TestRenderPrompts_MissingAreasWarning(t *testing.T) {
	assets := sampleAssets()
	summary := sampleSummary(assets)
	summary.MissingAreas = []string{"Wing", "Tail"}
	summary.DuplicateReferenceAreas = []string{"Belly"}

	got := string(RenderPrompts(summary, assets))
	assert.Contains(t, got, "# WARNING: areas missing in reference_data.field_marks: Wing, Tail\n")
	assert.Contains(t, got, "# WARNING: duplicate areas in reference_data.field_marks (last entry used): Belly\n")
}
