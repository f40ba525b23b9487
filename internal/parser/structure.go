package parser

import (
	"fmt"

	"github.com/vk/kintree/markup"
)

// findUnique descends through the given tag chain, requiring at most one
// match at each step. It returns nil when the chain is absent, and
// ErrStructuralViolation when any step matches more than once.
func findUnique(n *markup.Node, tags ...string) (*markup.Node, error) {
	current := n
	for _, tag := range tags {
		matches := current.Find(tag)
		switch len(matches) {
		case 0:
			return nil, nil
		case 1:
			current = matches[0]
		default:
			return nil, fmt.Errorf("%w: found %d %q nodes under %q, at most one is allowed", ErrStructuralViolation, len(matches), tag, current.Tag)
		}
	}
	return current, nil
}

// requireUnique is findUnique for nodes whose absence is also fatal.
func requireUnique(n *markup.Node, tag string) (*markup.Node, error) {
	found, err := findUnique(n, tag)
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, fmt.Errorf("%w: required %q node is missing", ErrStructuralViolation, tag)
	}
	return found, nil
}
