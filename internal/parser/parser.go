// Package parser implements the model-document parsing pipeline: structural
// checks, schema validation, numeric coercion, defaults resolution, the
// pre-order tree walk and the final flattening. Each stage consumes the
// output of the previous one; the whole pipeline is synchronous and a single
// pass, and every violation aborts it with no partial result.
package parser

import (
	"context"
	"fmt"

	"github.com/vk/kintree/internal/ctxlog"
	"github.com/vk/kintree/internal/schema"
	"github.com/vk/kintree/markup"
	"github.com/vk/kintree/tree"
)

// Parse runs the full pipeline over a document tree and returns the
// flattened kinematic system. The document is mutated in place (numeric
// coercion, defaults injection) and must not be reused afterwards.
func Parse(ctx context.Context, doc *markup.Node) (*tree.System, error) {
	logger := ctxlog.FromContext(ctx)

	if doc.Tag != schema.TagRoot {
		return nil, fmt.Errorf("%w: document root is %q, want %q", ErrStructuralViolation, doc.Tag, schema.TagRoot)
	}

	optionsNode, err := requireUnique(doc, schema.TagOptions)
	if err != nil {
		return nil, err
	}
	worldbody, err := requireUnique(doc, schema.TagWorldbody)
	if err != nil {
		return nil, err
	}
	defaults, err := buildDefaults(doc)
	if err != nil {
		return nil, err
	}

	if err := schema.Validate(doc); err != nil {
		return nil, err
	}
	logger.Debug("document schema validated", "tag", doc.Tag)

	Coerce(doc)
	mixInDefaults(worldbody, defaults)

	opts, err := parseOptions(optionsNode)
	if err != nil {
		return nil, err
	}

	model := ""
	if v := doc.Attr(schema.AttrModel); v != nil {
		model = v.Raw
	}

	w := newWalker()
	for i, body := range worldbody.Find(schema.TagBody) {
		path := fmt.Sprintf("%s/%s[%d]", schema.TagWorldbody, schema.TagBody, i)
		if err := w.walkBody(body, -1, path); err != nil {
			return nil, err
		}
	}

	sys, err := flatten(w.links, model, opts)
	if err != nil {
		return nil, err
	}
	logger.Debug("model document parsed", "model", model, "links", sys.NumLinks())
	return sys, nil
}

// parseOptions reads the coerced options node: gravity must be a 3-vector
// and dt a positive scalar.
func parseOptions(n *markup.Node) (tree.Options, error) {
	gravity := n.Attr(schema.AttrGravity)
	if gravity == nil {
		return tree.Options{}, fmt.Errorf("%w: options has no %q", ErrMissingAttribute, schema.AttrGravity)
	}
	if !gravity.Numeric() || len(gravity.Vec) != 3 {
		return tree.Options{}, fmt.Errorf("%w: options %q is not a 3-vector", ErrInvalidAttribute, schema.AttrGravity)
	}

	dt := n.Attr(schema.AttrDt)
	if dt == nil {
		return tree.Options{}, fmt.Errorf("%w: options has no %q", ErrMissingAttribute, schema.AttrDt)
	}
	if !dt.Numeric() || len(dt.Vec) != 1 || dt.Scalar() <= 0 {
		return tree.Options{}, fmt.Errorf("%w: options %q must be a positive scalar", ErrInvalidAttribute, schema.AttrDt)
	}

	return tree.Options{Gravity: [3]float64(gravity.Vec), Dt: dt.Scalar()}, nil
}
