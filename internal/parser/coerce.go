package parser

import (
	"strconv"
	"strings"

	"github.com/vk/kintree/markup"
)

// Coerce attempts numeric coercion on every attribute value in the document,
// in place. A value parses when every whitespace-separated field is a float
// literal; anything else (a joint-type name, a body name) is silently left
// textual. This is normal control flow, not an error.
func Coerce(root *markup.Node) {
	root.Walk(func(n *markup.Node) {
		for _, v := range n.Attrs {
			coerceValue(v)
		}
	})
}

func coerceValue(v *markup.Value) {
	fields := strings.Fields(v.Raw)
	if len(fields) == 0 {
		return
	}
	vec := make([]float64, len(fields))
	for i, f := range fields {
		num, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return
		}
		vec[i] = num
	}
	v.Vec = vec
}
