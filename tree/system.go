package tree

// Transform places a link relative to its parent: a position and a unit
// quaternion in scalar-first (w, x, y, z) order.
type Transform struct {
	Pos [3]float64 `json:"pos"`
	Rot [4]float64 `json:"rot"`
}

// IdentityTransform returns the zero translation with identity rotation.
func IdentityTransform() Transform {
	return Transform{Rot: [4]float64{1, 0, 0, 0}}
}

// Options carries the simulation options declared once per document.
type Options struct {
	Gravity [3]float64 `json:"gravity"`
	Dt      float64    `json:"dt"`
}

// System is the flattened kinematic tree. All per-link slices are parallel
// and indexed by link id; ids are dense, assigned in pre-order, and satisfy
// Parents[i] < i for every non-root link (roots have parent -1). Damping and
// Armature are the per-link vectors concatenated in id order, so their length
// equals the sum of the joint DOF widths.
type System struct {
	Model      string       `json:"model"`
	Parents    []int        `json:"parents"`
	JointTypes []JointType  `json:"joint_types"`
	Names      []string     `json:"names"`
	Transforms []Transform  `json:"transforms"`
	Geoms      [][]Geometry `json:"geoms"`
	Damping    []float64    `json:"damping"`
	Armature   []float64    `json:"armature"`
	Options    Options      `json:"options"`
}

// NumLinks returns the number of links in the system.
func (s *System) NumLinks() int { return len(s.Parents) }
