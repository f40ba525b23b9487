package parser

import (
	"fmt"

	"github.com/vk/kintree/tree"
)

// flatten converts the walker's visit-ordered records into the parallel
// sequences of the final system and concatenates the per-link damping and
// armature vectors in id order. The walker assigns ids by appending, so the
// parent-before-child check here is defensive: a failure means a traversal
// bug, not bad input.
func flatten(records []linkRecord, model string, opts tree.Options) (*tree.System, error) {
	n := len(records)
	sys := &tree.System{
		Model:      model,
		Parents:    make([]int, n),
		JointTypes: make([]tree.JointType, n),
		Names:      make([]string, n),
		Transforms: make([]tree.Transform, n),
		Geoms:      make([][]tree.Geometry, n),
		Options:    opts,
	}

	for i, r := range records {
		if r.parent < -1 || r.parent >= i {
			return nil, fmt.Errorf("%w: link %d has parent %d", ErrNonContiguousIDs, i, r.parent)
		}
		sys.Parents[i] = r.parent
		sys.JointTypes[i] = r.joint
		sys.Names[i] = r.name
		sys.Transforms[i] = r.transform
		sys.Geoms[i] = r.geoms
		sys.Damping = append(sys.Damping, r.damping...)
		sys.Armature = append(sys.Armature, r.armature...)
	}
	return sys, nil
}
