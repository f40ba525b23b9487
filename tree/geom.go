package tree

import "encoding/json"

// Shape identifies a rigid-body geometry kind.
type Shape string

const (
	ShapeBox      Shape = "box"
	ShapeSphere   Shape = "sphere"
	ShapeCylinder Shape = "cylinder"
)

// Visual is opaque renderer metadata attached to a geometry. Keys are the
// visual attribute names with the reserved prefix stripped; values are either
// a string or a []float64, exactly as they appeared in the document. The
// parser never validates this bag.
type Visual map[string]any

// Geometry is the closed set of rigid-body geometries a link can own.
// Box, Sphere and Cylinder are the only implementations.
type Geometry interface {
	Shape() Shape
	geometry()
}

// Box is an axis-aligned cuboid with full edge lengths X, Y, Z.
type Box struct {
	Mass     float64    `json:"mass"`
	Position [3]float64 `json:"pos"`
	X        float64    `json:"x"`
	Y        float64    `json:"y"`
	Z        float64    `json:"z"`
	Visual   Visual     `json:"visual,omitempty"`
}

func (Box) Shape() Shape { return ShapeBox }
func (Box) geometry()    {}

// Sphere is a ball of the given radius.
type Sphere struct {
	Mass     float64    `json:"mass"`
	Position [3]float64 `json:"pos"`
	Radius   float64    `json:"radius"`
	Visual   Visual     `json:"visual,omitempty"`
}

func (Sphere) Shape() Shape { return ShapeSphere }
func (Sphere) geometry()    {}

// Cylinder is a capped cylinder with the given radius and length.
type Cylinder struct {
	Mass     float64    `json:"mass"`
	Position [3]float64 `json:"pos"`
	Radius   float64    `json:"radius"`
	Length   float64    `json:"length"`
	Visual   Visual     `json:"visual,omitempty"`
}

func (Cylinder) Shape() Shape { return ShapeCylinder }
func (Cylinder) geometry()    {}

// MarshalJSON tags the geometry with its shape so a dumped tree stays
// self-describing.
func (b Box) MarshalJSON() ([]byte, error)      { return marshalGeometry(b) }
func (s Sphere) MarshalJSON() ([]byte, error)   { return marshalGeometry(s) }
func (c Cylinder) MarshalJSON() ([]byte, error) { return marshalGeometry(c) }

func marshalGeometry(g Geometry) ([]byte, error) {
	type box Box
	type sphere Sphere
	type cylinder Cylinder

	var body any
	switch v := g.(type) {
	case Box:
		body = box(v)
	case Sphere:
		body = sphere(v)
	case Cylinder:
		body = cylinder(v)
	}
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	tagged := map[string]json.RawMessage{"shape": json.RawMessage(`"` + string(g.Shape()) + `"`)}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	for k, v := range fields {
		tagged[k] = v
	}
	return json.Marshal(tagged)
}
