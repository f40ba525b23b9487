package tree

// JointType identifies how a link articulates relative to its parent. The
// set is closed: anything outside it is rejected during parsing.
type JointType string

const (
	JointFree      JointType = "free"
	JointSpherical JointType = "spherical"
	JointP3D       JointType = "p3d"
	JointHinge     JointType = "hinge"
	JointSlide     JointType = "slide"
	JointRx        JointType = "rx"
	JointRy        JointType = "ry"
	JointRz        JointType = "rz"
	JointPx        JointType = "px"
	JointPy        JointType = "py"
	JointPz        JointType = "pz"
	JointFrozen    JointType = "frozen"
)

// dofWidths maps each joint type to its velocity degree-of-freedom count.
var dofWidths = map[JointType]int{
	JointFree:      6,
	JointSpherical: 3,
	JointP3D:       3,
	JointHinge:     1,
	JointSlide:     1,
	JointRx:        1,
	JointRy:        1,
	JointRz:        1,
	JointPx:        1,
	JointPy:        1,
	JointPz:        1,
	JointFrozen:    0,
}

// DOF returns the degree-of-freedom width for the joint type, and whether
// the type is a member of the known set.
func (j JointType) DOF() (int, bool) {
	w, ok := dofWidths[j]
	return w, ok
}
