package markup

import (
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
)

// DecodeHCL parses HCL source text into a document tree. Blocks map to tags
// and attributes to attributes; a single block label becomes the block's
// "name" attribute, mirroring the labelled-block convention. The file's
// top-level body is wrapped in a synthetic root node.
func DecodeHCL(src, filename string) (*Node, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL([]byte(src), filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL document %s: %s", filename, diags.Error())
	}

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return nil, fmt.Errorf("unexpected HCL body implementation for %s", filename)
	}

	root := NewNode(RootTag)
	if err := fillFromBody(root, body); err != nil {
		return nil, err
	}
	return root, nil
}

// fillFromBody copies a syntax body's attributes and nested blocks onto n.
func fillFromBody(n *Node, body *hclsyntax.Body) error {
	for name, attr := range body.Attributes {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return fmt.Errorf("failed to evaluate attribute %q on %q: %s", name, n.Tag, diags.Error())
		}
		raw, err := renderValue(val)
		if err != nil {
			return fmt.Errorf("attribute %q on %q: %w", name, n.Tag, err)
		}
		n.SetAttr(name, raw)
	}

	for _, block := range body.Blocks {
		if len(block.Labels) > 1 {
			return fmt.Errorf("block %q carries %d labels, at most one is allowed", block.Type, len(block.Labels))
		}
		child := NewNode(block.Type)
		if len(block.Labels) == 1 {
			child.SetAttr("name", block.Labels[0])
		}
		if err := fillFromBody(child, block.Body); err != nil {
			return err
		}
		n.Children = append(n.Children, child)
	}
	return nil
}

// renderValue turns an evaluated cty value into the textual attribute form
// the pipeline expects: strings pass through, numbers render as literals, and
// tuples of numbers render whitespace-separated.
func renderValue(val cty.Value) (string, error) {
	if val.IsNull() {
		return "", fmt.Errorf("null value is not a valid attribute")
	}

	ty := val.Type()
	switch {
	case ty.Equals(cty.String):
		return val.AsString(), nil
	case ty.Equals(cty.Number):
		return val.AsBigFloat().Text('g', -1), nil
	case ty.Equals(cty.Bool):
		if val.True() {
			return "true", nil
		}
		return "false", nil
	case ty.IsTupleType() || ty.IsListType():
		var parts []string
		for it := val.ElementIterator(); it.Next(); {
			_, elem := it.Element()
			if elem.Type() != cty.Number {
				return "", fmt.Errorf("collection attributes may only contain numbers, found %s", elem.Type().FriendlyName())
			}
			parts = append(parts, elem.AsBigFloat().Text('g', -1))
		}
		return strings.Join(parts, " "), nil
	default:
		return "", fmt.Errorf("unsupported attribute type %s", ty.FriendlyName())
	}
}
