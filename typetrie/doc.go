// Package typetrie stores type vectors and answers dominance queries.
//
// A type vector assigns a small non-negative value to each position of a
// search tree; zero means "nothing here". A stored vector s dominates a
// query t when every nonzero position of s holds the same value in t. For
// the surfaces behind the vectors this is support containment: s describes
// a surface whose discs all appear in t's.
//
// Vectors are stored with their trailing zeros stripped, so a node marks
// the end of an element exactly when the remainder of that element is zero.
// Dominates walks the trie following, at each position, the zero child and
// the child for the query's value.
//
// Complexity: Insert is O(len). Dominates is O(nodes) in the worst case and
// O(len) when stored vectors are sparse.
package typetrie
