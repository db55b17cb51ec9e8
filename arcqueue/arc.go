// SPDX-License-Identifier: MIT

package arcqueue

import "fmt"

// Arc is an undirected edge candidate between vertex indices From and To.
//
// From is the endpoint already inside the partial tree that owns the arc;
// To may or may not be inside it. EdgeID names the graph edge the arc was
// derived from and is carried through untouched.
type Arc struct {
	From   int
	To     int
	Weight int64
	EdgeID string
}

// Equal reports whether a and b describe the same undirected arc:
// (u,v,w) equals (v,u,w). EdgeID is ignored.
func (a Arc) Equal(b Arc) bool {
	if a.Weight != b.Weight {
		return false
	}

	return (a.From == b.From && a.To == b.To) || (a.From == b.To && a.To == b.From)
}

// Reversed returns the arc with its endpoints swapped.
func (a Arc) Reversed() Arc {
	a.From, a.To = a.To, a.From

	return a
}

// String renders the arc as "(from to weight)".
func (a Arc) String() string {
	return fmt.Sprintf("(%d %d %d)", a.From, a.To, a.Weight)
}
