package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/kintree/markup"
)

func TestCoerceValue(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
		want []float64
	}{
		{name: "vector", raw: "0 0 1", want: []float64{0, 0, 1}},
		{name: "scalar", raw: "9.81", want: []float64{9.81}},
		{name: "scientific and negative", raw: "1e3 -2.5", want: []float64{1000, -2.5}},
		{name: "extra whitespace", raw: "  1   2 ", want: []float64{1, 2}},
		{name: "joint name stays text", raw: "free"},
		{name: "mixed stays text", raw: "1 x 2"},
		{name: "empty stays text", raw: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := &markup.Value{Raw: tc.raw}
			coerceValue(v)
			if tc.want == nil {
				assert.False(t, v.Numeric())
				assert.Equal(t, tc.raw, v.Raw)
				return
			}
			require.True(t, v.Numeric())
			assert.Equal(t, tc.want, v.Vec)
		})
	}
}

func TestCoerceWholeDocument(t *testing.T) {
	doc, err := markup.DecodeXML(`<kintree><worldbody><body name="a" joint="free" pos="0 0 1"/></worldbody></kintree>`)
	require.NoError(t, err)

	Coerce(doc)

	body := doc.Find("worldbody")[0].Find("body")[0]
	assert.False(t, body.Attr("name").Numeric())
	assert.False(t, body.Attr("joint").Numeric())
	require.True(t, body.Attr("pos").Numeric())
	assert.Equal(t, []float64{0, 0, 1}, body.Attr("pos").Vec)
	// Raw text survives coercion.
	assert.Equal(t, "0 0 1", body.Attr("pos").Raw)
}
