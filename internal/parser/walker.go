package parser

import (
	"fmt"

	"github.com/vk/kintree/internal/maths"
	"github.com/vk/kintree/internal/schema"
	"github.com/vk/kintree/markup"
	"github.com/vk/kintree/tree"
)

// linkRecord is everything the walker collects for one body node.
type linkRecord struct {
	parent    int
	joint     tree.JointType
	name      string
	transform tree.Transform
	damping   []float64
	armature  []float64
	geoms     []tree.Geometry
}

// walker carries the traversal state: link records in visit order and the
// name index enforcing uniqueness. Appending a record on visit is what
// assigns ids, so ids are dense and pre-order by construction and a fresh
// walker per parse keeps invocations independent.
type walker struct {
	links []linkRecord
	names map[string]int
}

func newWalker() *walker {
	return &walker{names: make(map[string]int)}
}

// walkBody visits one body node: it assigns the next link id, resolves the
// body's transform, joint and per-DOF vectors, parses its geoms, then
// recurses into child bodies with itself as parent.
func (w *walker) walkBody(n *markup.Node, parent int, path string) error {
	id := len(w.links)

	nameVal := n.Attr(schema.AttrName)
	if nameVal == nil {
		return fmt.Errorf("%w: body at %s has no %q", ErrMissingAttribute, path, schema.AttrName)
	}
	name := nameVal.Raw
	if prev, taken := w.names[name]; taken {
		return fmt.Errorf("%w: body name %q at %s already used by link %d", ErrDuplicateName, name, path, prev)
	}
	w.names[name] = id

	jointVal := n.Attr(schema.AttrJoint)
	if jointVal == nil {
		return fmt.Errorf("%w: body %q has no %q", ErrMissingAttribute, name, schema.AttrJoint)
	}
	joint := tree.JointType(jointVal.Raw)
	dof, known := joint.DOF()
	if !known {
		return fmt.Errorf("%w: %q on body %q", ErrUnknownJointType, jointVal.Raw, name)
	}

	pos, err := readVec(n, schema.AttrPos, 3, [3]float64{})
	if err != nil {
		return fmt.Errorf("body %q: %w", name, err)
	}
	rot, err := resolveOrientation(n, name)
	if err != nil {
		return err
	}

	damping, err := readDOFVec(n, schema.AttrDamping, dof)
	if err != nil {
		return fmt.Errorf("body %q: %w", name, err)
	}
	armature, err := readDOFVec(n, schema.AttrArmature, dof)
	if err != nil {
		return fmt.Errorf("body %q: %w", name, err)
	}

	var geoms []tree.Geometry
	for i, g := range n.Find(schema.TagGeom) {
		geom, err := parseGeom(g, fmt.Sprintf("%s/%s[%d]", path, schema.TagGeom, i))
		if err != nil {
			return err
		}
		geoms = append(geoms, geom)
	}

	w.links = append(w.links, linkRecord{
		parent:    parent,
		joint:     joint,
		name:      name,
		transform: tree.Transform{Pos: pos, Rot: rot},
		damping:   damping,
		armature:  armature,
		geoms:     geoms,
	})

	for i, child := range n.Find(schema.TagBody) {
		childPath := fmt.Sprintf("%s/%s[%d]", path, schema.TagBody, i)
		if err := w.walkBody(child, id, childPath); err != nil {
			return err
		}
	}
	return nil
}

// resolveOrientation picks the body's rotation: quat wins when present,
// euler (degrees, intrinsic x-y-z) is converted otherwise, and neither means
// identity. Both at once is fatal.
func resolveOrientation(n *markup.Node, name string) ([4]float64, error) {
	quatVal := n.Attr(schema.AttrQuat)
	eulerVal := n.Attr(schema.AttrEuler)

	switch {
	case quatVal != nil && eulerVal != nil:
		return [4]float64{}, fmt.Errorf("%w: body %q sets both %q and %q", ErrConflictingOrientation, name, schema.AttrQuat, schema.AttrEuler)
	case quatVal != nil:
		if !quatVal.Numeric() || len(quatVal.Vec) != 4 {
			return [4]float64{}, fmt.Errorf("%w: %q on body %q is not a 4-vector", ErrInvalidAttribute, schema.AttrQuat, name)
		}
		return [4]float64(quatVal.Vec), nil
	case eulerVal != nil:
		if !eulerVal.Numeric() || len(eulerVal.Vec) != 3 {
			return [4]float64{}, fmt.Errorf("%w: %q on body %q is not a 3-vector", ErrInvalidAttribute, schema.AttrEuler, name)
		}
		angles := [3]float64{
			maths.Radians(eulerVal.Vec[0]),
			maths.Radians(eulerVal.Vec[1]),
			maths.Radians(eulerVal.Vec[2]),
		}
		return maths.EulerXYZ(angles), nil
	default:
		return maths.Identity(), nil
	}
}

// readVec reads a fixed-width numeric attribute, falling back to def when
// the attribute is absent.
func readVec(n *markup.Node, attr string, width int, def [3]float64) ([3]float64, error) {
	v := n.Attr(attr)
	if v == nil {
		return def, nil
	}
	if !v.Numeric() || len(v.Vec) != width {
		return [3]float64{}, fmt.Errorf("%w: %q is not a %d-vector", ErrInvalidAttribute, attr, width)
	}
	var out [3]float64
	copy(out[:], v.Vec)
	return out, nil
}

// readDOFVec reads a per-DOF vector attribute. Absent means a zero vector of
// the joint's width; a scalar is broadcast to the width; any other length is
// a width mismatch.
func readDOFVec(n *markup.Node, attr string, dof int) ([]float64, error) {
	v := n.Attr(attr)
	if v == nil {
		return make([]float64, dof), nil
	}
	if !v.Numeric() {
		return nil, fmt.Errorf("%w: %q is not numeric", ErrInvalidAttribute, attr)
	}
	switch {
	case len(v.Vec) == dof:
		return append([]float64(nil), v.Vec...), nil
	case len(v.Vec) == 1 && dof >= 1:
		out := make([]float64, dof)
		for i := range out {
			out[i] = v.Vec[0]
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %q has %d entries, joint has %d degrees of freedom", ErrDOFWidth, attr, len(v.Vec), dof)
	}
}
