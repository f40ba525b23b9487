package markup

// RootTag is the tag of the document root node. The XML front-end requires
// it; the HCL front-end synthesizes it around the file's top-level body.
const RootTag = "kintree"

// Value is a single attribute value. Every value starts out textual; numeric
// coercion fills Vec in place when the text parses as whitespace-separated
// float literals, and leaves it nil otherwise. Raw is always preserved so
// string-typed attributes (names, joint types) survive an accidental numeric
// reading.
type Value struct {
	Raw string
	Vec []float64
}

// Numeric reports whether numeric coercion succeeded for this value.
func (v *Value) Numeric() bool { return v.Vec != nil }

// Scalar returns the first component of a numeric value.
func (v *Value) Scalar() float64 { return v.Vec[0] }

// Clone returns an independent copy of the value. The defaults resolver uses
// it so injected defaults never alias the defaults table.
func (v *Value) Clone() *Value {
	c := &Value{Raw: v.Raw}
	if v.Vec != nil {
		c.Vec = append([]float64(nil), v.Vec...)
	}
	return c
}

// Node is one element of the document tree: a tag, an attribute map, and the
// child elements in document order.
type Node struct {
	Tag      string
	Attrs    map[string]*Value
	Children []*Node
}

// NewNode returns an empty node with the given tag.
func NewNode(tag string) *Node {
	return &Node{Tag: tag, Attrs: make(map[string]*Value)}
}

// Attr returns the named attribute value, or nil if absent.
func (n *Node) Attr(name string) *Value {
	return n.Attrs[name]
}

// SetAttr sets the named attribute to a fresh textual value.
func (n *Node) SetAttr(name, raw string) {
	n.Attrs[name] = &Value{Raw: raw}
}

// Find returns the direct children carrying the given tag, in document order.
func (n *Node) Find(tag string) []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.Tag == tag {
			out = append(out, c)
		}
	}
	return out
}

// Walk visits the subtree rooted at n in pre-order.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.Children {
		c.Walk(fn)
	}
}
