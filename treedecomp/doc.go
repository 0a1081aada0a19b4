// Package treedecomp builds and manipulates rooted tree decompositions of
// small undirected graphs.
//
// A tree decomposition of G is a tree of bags (sets of nodes of G) such
// that every node lies in some bag, the endpoints of every edge share a
// bag, and the bags holding any one node form a connected subtree. Its
// width is the largest bag size minus one.
//
// Construction is greedy fill-in: repeatedly eliminate the node whose
// neighbourhood needs the fewest extra edges to become a clique. Every
// decomposition is rooted; bag indices follow postfix order, so a child
// always has a smaller index than its parent and the root is last.
//
// A nice decomposition has an empty root, leaves of exactly one node, and
// every other bag one of:
//
//	Introduce: one child, equal to the bag minus one node
//	Forget:    one child, equal to the bag plus one node
//	Join:      two children, both equal to the bag
//
// Decompositions are read and written in the PACE 2016 text format, which
// is unrooted and numbers bags and nodes from 1.
package treedecomp
