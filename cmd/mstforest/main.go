// SPDX-License-Identifier: MIT

// Command mstforest generates graph fixtures and computes their minimum
// spanning trees with the partial-tree builder, Prim or Kruskal.
package main

func main() {
	Execute()
}
