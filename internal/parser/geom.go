package parser

import (
	"fmt"

	"github.com/vk/kintree/internal/schema"
	"github.com/vk/kintree/markup"
	"github.com/vk/kintree/tree"
)

// geomDims fixes the dim vector width per shape.
var geomDims = map[tree.Shape]int{
	tree.ShapeBox:      3,
	tree.ShapeSphere:   1,
	tree.ShapeCylinder: 2,
}

// parseGeom converts one geom node into its shape-specific geometry value.
func parseGeom(n *markup.Node, path string) (tree.Geometry, error) {
	typeVal := n.Attr(schema.AttrType)
	if typeVal == nil {
		return nil, fmt.Errorf("%w: geom at %s has no %q", ErrMissingAttribute, path, schema.AttrType)
	}
	shape := tree.Shape(typeVal.Raw)
	wantDims, known := geomDims[shape]
	if !known {
		return nil, fmt.Errorf("%w: %q at %s", ErrUnknownGeomShape, typeVal.Raw, path)
	}

	mass, err := requireScalar(n, schema.AttrMass, path)
	if err != nil {
		return nil, err
	}
	pos, err := requireVec3(n, schema.AttrPos, path)
	if err != nil {
		return nil, err
	}

	dimVal := n.Attr(schema.AttrDim)
	if dimVal == nil {
		return nil, fmt.Errorf("%w: geom at %s has no %q", ErrMissingAttribute, path, schema.AttrDim)
	}
	if !dimVal.Numeric() {
		return nil, fmt.Errorf("%w: %q at %s is not numeric", ErrInvalidAttribute, schema.AttrDim, path)
	}
	dim := dimVal.Vec
	if len(dim) != wantDims {
		return nil, fmt.Errorf("%w: shape %q wants %d dimensions, got %d at %s", ErrGeomDimension, shape, wantDims, len(dim), path)
	}

	visual := visualBag(n)

	switch shape {
	case tree.ShapeBox:
		return tree.Box{Mass: mass, Position: pos, X: dim[0], Y: dim[1], Z: dim[2], Visual: visual}, nil
	case tree.ShapeSphere:
		return tree.Sphere{Mass: mass, Position: pos, Radius: dim[0], Visual: visual}, nil
	default:
		return tree.Cylinder{Mass: mass, Position: pos, Radius: dim[0], Length: dim[1], Visual: visual}, nil
	}
}

// visualBag partitions out the reserved-prefix attributes, strips the prefix
// and collects the remainder unvalidated. Numeric values keep their vectors,
// anything else passes through as text.
func visualBag(n *markup.Node) tree.Visual {
	var bag tree.Visual
	for name, v := range n.Attrs {
		if !schema.IsVisual(name) {
			continue
		}
		if bag == nil {
			bag = make(tree.Visual)
		}
		key := schema.TrimVisual(name)
		if v.Numeric() {
			bag[key] = append([]float64(nil), v.Vec...)
		} else {
			bag[key] = v.Raw
		}
	}
	return bag
}

func requireScalar(n *markup.Node, attr, path string) (float64, error) {
	v := n.Attr(attr)
	if v == nil {
		return 0, fmt.Errorf("%w: geom at %s has no %q", ErrMissingAttribute, path, attr)
	}
	if !v.Numeric() || len(v.Vec) != 1 {
		return 0, fmt.Errorf("%w: %q at %s is not a scalar", ErrInvalidAttribute, attr, path)
	}
	return v.Scalar(), nil
}

func requireVec3(n *markup.Node, attr, path string) ([3]float64, error) {
	v := n.Attr(attr)
	if v == nil {
		return [3]float64{}, fmt.Errorf("%w: geom at %s has no %q", ErrMissingAttribute, path, attr)
	}
	if !v.Numeric() || len(v.Vec) != 3 {
		return [3]float64{}, fmt.Errorf("%w: %q at %s is not a 3-vector", ErrInvalidAttribute, attr, path)
	}
	return [3]float64(v.Vec), nil
}
