package parser

import "errors"

// Every violation below aborts the parse immediately; no partial tree is
// ever returned.
var (
	// ErrStructuralViolation reports a missing or duplicated required
	// singleton node (options, worldbody), or multiple defaults subtrees.
	ErrStructuralViolation = errors.New("structural violation")

	// ErrConflictingOrientation reports a body carrying both quat and euler.
	ErrConflictingOrientation = errors.New("conflicting orientation")

	// ErrUnknownJointType reports a joint attribute outside the known set.
	ErrUnknownJointType = errors.New("unknown joint type")

	// ErrUnknownGeomShape reports a geom type attribute outside the known set.
	ErrUnknownGeomShape = errors.New("unknown geom shape")

	// ErrNonContiguousIDs reports a broken link-id invariant. The walker
	// assigns ids by appending, so this indicates a traversal bug rather
	// than bad input.
	ErrNonContiguousIDs = errors.New("non-contiguous link ids")

	// ErrDuplicateName reports two bodies sharing a name.
	ErrDuplicateName = errors.New("duplicate body name")

	// ErrMissingAttribute reports a required attribute absent after the
	// defaults merge.
	ErrMissingAttribute = errors.New("missing required attribute")

	// ErrInvalidAttribute reports an attribute that did not coerce to the
	// numeric form its consumer requires.
	ErrInvalidAttribute = errors.New("invalid attribute value")

	// ErrGeomDimension reports a dim vector whose length does not match the
	// geometry shape.
	ErrGeomDimension = errors.New("geom dimension mismatch")

	// ErrDOFWidth reports a damping or armature vector whose length matches
	// neither 1 nor the joint's DOF width.
	ErrDOFWidth = errors.New("degree-of-freedom width mismatch")
)
