// Package markup provides the neutral tree-structured document model the
// parsing pipeline consumes, plus the front-ends that produce it from XML or
// HCL source text. The front-ends are tokenizers only: they know nothing
// about the model schema, and the pipeline behaves identically regardless of
// which front-end produced the tree.
package markup
