package parser

import (
	"github.com/vk/kintree/internal/schema"
	"github.com/vk/kintree/markup"
)

// defaultsTable maps a tag name to the default attribute values declared for
// it under the document's defaults node. Values alias the defaults subtree,
// so numeric coercion of the document is reflected here automatically.
type defaultsTable map[string]map[string]*markup.Value

// buildDefaults reads the optional defaults subtree. A missing subtree, or a
// missing child for a given tag, yields an empty default set for that tag.
func buildDefaults(root *markup.Node) (defaultsTable, error) {
	table := make(defaultsTable)
	for _, tag := range []string{schema.TagGeom, schema.TagBody} {
		node, err := findUnique(root, schema.TagDefaults, tag)
		if err != nil {
			return nil, err
		}
		attrs := make(map[string]*markup.Value)
		if node != nil {
			for name, v := range node.Attrs {
				attrs[name] = v
			}
		}
		table[tag] = attrs
	}
	return table, nil
}

// mixInDefaults injects default attribute values into every body and geom
// node of the worldbody subtree. Defaults only fill attributes the node does
// not set explicitly; they never override. Injected values are clones, so a
// node can never mutate the shared table.
func mixInDefaults(worldbody *markup.Node, table defaultsTable) {
	worldbody.Walk(func(n *markup.Node) {
		defaults, ok := table[n.Tag]
		if !ok {
			return
		}
		for name, v := range defaults {
			if _, exists := n.Attrs[name]; !exists {
				n.Attrs[name] = v.Clone()
			}
		}
	})
}
