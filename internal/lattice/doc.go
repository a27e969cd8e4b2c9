// Package lattice builds rectangular grids of sample points and pushes
// them through linear transforms.
//
// A [Grid] is an ordered slice of points produced by the Cartesian
// product of two coordinate ranges. Order is part of the contract: the
// point at flat index i*len(ys)+j is (xs[i], ys[j]), and color mappings
// are indexed positionally against it so a point stays traceable across
// transforms.
package lattice
