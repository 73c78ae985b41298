package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetKind_StringAndParse(t *testing.T) {
	for _, k := range AllAssetKinds {
		assert.True(t, k.Valid())
		parsed, err := ParseAssetKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}

	_, err := ParseAssetKind("sticker")
	assert.Error(t, err)
	assert.False(t, AssetKind(0).Valid())
	assert.Equal(t, "AssetKind(0)", AssetKind(0).String())
}

func TestAssetKind_JSON(t *testing.T) {
	data, err := json.Marshal(struct {
		Kind AssetKind `json:"kind"`
	}{KindCanvasLayer})
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"canvas_layer"}`, string(data))

	var out struct {
		Kind AssetKind `json:"kind"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"kind":"category_icon"}`), &out))
	assert.Equal(t, KindCategoryIcon, out.Kind)

	_, err = json.Marshal(struct{ Kind AssetKind }{AssetKind(9)})
	assert.Error(t, err)
}

func TestCountAssets(t *testing.T) {
	assets := []AssetDescriptor{
		{Kind: KindBaseShape},
		{Kind: KindCategoryIcon},
		{Kind: KindVariationIcon},
		{Kind: KindCanvasLayer},
		{Kind: KindVariationIcon},
		{Kind: KindCanvasLayer},
	}
	assert.Equal(t, AssetCounts{
		BaseShape:      1,
		CategoryIcons:  1,
		VariationIcons: 2,
		CanvasLayers:   2,
		Total:          6,
	}, CountAssets(assets))
}
