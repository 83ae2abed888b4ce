// Package tree provides the pre-trained decision-tree models used by the
// tree-based artifact classification methods.
//
// A model is an opaque, read-only artifact: a fixed feature-name universe
// plus named trees ("treeAll", trained on multi-center data, and "treePrg",
// trained on a single center). Models load from a YAML store; the store
// shipped with this module is embedded in the binary.
package tree
