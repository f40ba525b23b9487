// Package kintree parses declarative multibody model documents into a
// flattened, array-indexed kinematic tree suitable for a downstream physics
// engine. Documents are authored in XML (the historical format) or HCL; both
// front-ends produce the same neutral document tree, which a single-pass
// pipeline validates, coerces, defaults-merges, walks and flattens.
package kintree

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vk/kintree/internal/parser"
	"github.com/vk/kintree/internal/schema"
	"github.com/vk/kintree/markup"
	"github.com/vk/kintree/tree"
)

// Error sentinels re-exported for errors.Is. Every one is fatal: a violation
// aborts the whole parse and no partial tree is returned.
var (
	ErrStructuralViolation    = parser.ErrStructuralViolation
	ErrSchemaViolation        = schema.ErrSchemaViolation
	ErrConflictingOrientation = parser.ErrConflictingOrientation
	ErrUnknownJointType       = parser.ErrUnknownJointType
	ErrUnknownGeomShape       = parser.ErrUnknownGeomShape
	ErrNonContiguousIDs       = parser.ErrNonContiguousIDs
	ErrDuplicateName          = parser.ErrDuplicateName
	ErrMissingAttribute       = parser.ErrMissingAttribute
	ErrInvalidAttribute       = parser.ErrInvalidAttribute
	ErrGeomDimension          = parser.ErrGeomDimension
	ErrDOFWidth               = parser.ErrDOFWidth
)

// LoadString parses XML model source text.
func LoadString(ctx context.Context, src string) (*tree.System, error) {
	doc, err := markup.DecodeXML(src)
	if err != nil {
		return nil, err
	}
	return LoadDocument(ctx, doc)
}

// LoadHCLString parses HCL model source text. The filename only labels
// diagnostics.
func LoadHCLString(ctx context.Context, src, filename string) (*tree.System, error) {
	doc, err := markup.DecodeHCL(src, filename)
	if err != nil {
		return nil, err
	}
	return LoadDocument(ctx, doc)
}

// LoadFile reads and parses a model file, picking the front-end by file
// extension: .hcl is decoded as HCL, anything else as XML.
func LoadFile(ctx context.Context, path string) (*tree.System, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model file %s: %w", path, err)
	}
	if filepath.Ext(path) == ".hcl" {
		return LoadHCLString(ctx, string(raw), path)
	}
	return LoadString(ctx, string(raw))
}

// LoadDocument parses a pre-built document tree. The tree is mutated in
// place and must not be reused afterwards.
func LoadDocument(ctx context.Context, doc *markup.Node) (*tree.System, error) {
	return parser.Parse(ctx, doc)
}
