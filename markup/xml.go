package markup

import (
	"encoding/xml"
	"fmt"
)

// xmlElement mirrors an arbitrary XML element so the whole document can be
// unmarshalled without schema knowledge.
type xmlElement struct {
	XMLName  xml.Name
	Attrs    []xml.Attr   `xml:",any,attr"`
	Children []xmlElement `xml:",any"`
}

// DecodeXML parses XML source text into a document tree.
func DecodeXML(src string) (*Node, error) {
	var root xmlElement
	if err := xml.Unmarshal([]byte(src), &root); err != nil {
		return nil, fmt.Errorf("failed to parse XML document: %w", err)
	}
	return fromXMLElement(&root), nil
}

func fromXMLElement(el *xmlElement) *Node {
	n := NewNode(el.XMLName.Local)
	for _, a := range el.Attrs {
		n.SetAttr(a.Name.Local, a.Value)
	}
	for i := range el.Children {
		n.Children = append(n.Children, fromXMLElement(&el.Children[i]))
	}
	return n
}
