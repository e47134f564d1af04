// Package textutil provides filename normalization and similarity helpers.
//
// Normalization lowercases a filename, applies NFKC so visually-identical
// Unicode spellings compare equal, and strips the extension plus hyphen and
// underscore separators. Similarity between two normalized names is either
// containment or a position-aligned character ratio over the longer name.
package textutil
