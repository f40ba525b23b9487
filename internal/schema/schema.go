// Package schema fixes the allowed tag and attribute sets for model
// documents and validates a document tree against them. Validation runs
// before any semantic interpretation so malformed input fails fast.
package schema

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/vk/kintree/markup"
)

// Tag names of the document schema.
const (
	TagRoot      = markup.RootTag
	TagOptions   = "options"
	TagDefaults  = "defaults"
	TagWorldbody = "worldbody"
	TagBody      = "body"
	TagGeom      = "geom"
)

// Attribute names consumed downstream. Keeping them as named constants means
// a typo fails at compile time instead of surviving until validation.
const (
	AttrModel    = "model"
	AttrGravity  = "gravity"
	AttrDt       = "dt"
	AttrName     = "name"
	AttrPos      = "pos"
	AttrQuat     = "quat"
	AttrEuler    = "euler"
	AttrJoint    = "joint"
	AttrArmature = "armature"
	AttrDamping  = "damping"
	AttrType     = "type"
	AttrMass     = "mass"
	AttrDim      = "dim"
)

// VisualPrefix marks renderer metadata attributes on geom nodes. They bypass
// the whitelist and are routed into the geometry's visual bag instead.
const (
	VisualPrefix    = "vispy"
	visualSeparator = "_"
)

// ErrSchemaViolation reports an unknown tag or an attribute outside its
// tag's whitelist.
var ErrSchemaViolation = errors.New("schema violation")

var allowedAttrs = map[string]map[string]struct{}{
	TagRoot:      attrSet(AttrModel),
	TagOptions:   attrSet(AttrGravity, AttrDt),
	TagDefaults:  attrSet(),
	TagWorldbody: attrSet(),
	TagBody:      attrSet(AttrName, AttrPos, AttrQuat, AttrEuler, AttrJoint, AttrArmature, AttrDamping),
	TagGeom:      attrSet(AttrType, AttrMass, AttrPos, AttrDim),
}

func attrSet(names ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// IsVisual reports whether the attribute name carries the reserved visual
// prefix and separator.
func IsVisual(attr string) bool {
	return strings.HasPrefix(attr, VisualPrefix+visualSeparator)
}

// TrimVisual strips the reserved prefix and separator from a visual
// attribute name.
func TrimVisual(attr string) string {
	return strings.TrimPrefix(attr, VisualPrefix+visualSeparator)
}

// Validate walks the whole document and checks every node's tag against the
// allowed-tag set and every attribute against that tag's whitelist. Visual
// attributes on geom nodes are exempt. The first violation aborts the walk.
func Validate(root *markup.Node) error {
	return validateNode(root, root.Tag)
}

func validateNode(n *markup.Node, path string) error {
	allowed, ok := allowedAttrs[n.Tag]
	if !ok {
		return fmt.Errorf("%w: unknown tag %q at %s", ErrSchemaViolation, n.Tag, path)
	}

	for _, name := range sortedAttrNames(n) {
		if n.Tag == TagGeom && IsVisual(name) {
			continue
		}
		if _, ok := allowed[name]; !ok {
			return fmt.Errorf("%w: attribute %q is not allowed on tag %q at %s", ErrSchemaViolation, name, n.Tag, path)
		}
	}

	counts := make(map[string]int)
	for _, c := range n.Children {
		childPath := fmt.Sprintf("%s/%s[%d]", path, c.Tag, counts[c.Tag])
		counts[c.Tag]++
		if err := validateNode(c, childPath); err != nil {
			return err
		}
	}
	return nil
}

// sortedAttrNames keeps violation messages deterministic.
func sortedAttrNames(n *markup.Node) []string {
	names := make([]string, 0, len(n.Attrs))
	for name := range n.Attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
