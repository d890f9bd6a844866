package ome

import "fmt"

// DimensionOrder declares how the Z, C and T axes of a volume are laid out
// as a linear sequence of planes: reading left to right after the fixed "XY"
// prefix, the axes go from fastest-varying to slowest-varying. X and Y are
// always the two innermost pixel axes and take no part in plane indexing.
//
// Only the six permutations below are legal; anything else is rejected, never
// silently mapped to a default order.
type DimensionOrder string

const (
	OrderXYZCT DimensionOrder = "XYZCT"
	OrderXYZTC DimensionOrder = "XYZTC"
	OrderXYCTZ DimensionOrder = "XYCTZ"
	OrderXYCZT DimensionOrder = "XYCZT"
	OrderXYTCZ DimensionOrder = "XYTCZ"
	OrderXYTZC DimensionOrder = "XYTZC"
)

// Valid reports whether d is one of the six legal dimension orders.
func (d DimensionOrder) Valid() bool {
	switch d {
	case OrderXYZCT, OrderXYZTC, OrderXYCTZ, OrderXYCZT, OrderXYTCZ, OrderXYTZC:
		return true
	}
	return false
}

// Selection addresses a single plane by its 0-based depth, channel and time
// coordinates.
type Selection struct {
	Z int
	C int
	T int
}

// PlaneIndex returns the position the selected plane occupies in the linear
// plane sequence of a single multi-page file with these declared sizes, per
// the declared dimension order. For an order with axes a1 a2 a3 (fastest to
// slowest), sizes n1 n2 n3 and selection indices i1 i2 i3, the index is
// i1 + n1*i2 + n1*n2*i3. Axes of size 1 still multiply through as identity
// factors for the slower axes.
//
// Selections are not bounds-checked; out-of-range coordinates yield a
// well-defined but out-of-range index.
func (p *Pixels) PlaneIndex(sel Selection) (int, error) {
	z, c, t := sel.Z, sel.C, sel.T
	switch p.DimensionOrder {
	case OrderXYZCT:
		return z + p.SizeZ*c + p.SizeZ*p.SizeC*t, nil
	case OrderXYZTC:
		return z + p.SizeZ*t + p.SizeZ*p.SizeT*c, nil
	case OrderXYCTZ:
		return c + p.SizeC*t + p.SizeC*p.SizeT*z, nil
	case OrderXYCZT:
		return c + p.SizeC*z + p.SizeC*p.SizeZ*t, nil
	case OrderXYTCZ:
		return t + p.SizeT*c + p.SizeT*p.SizeC*z, nil
	case OrderXYTZC:
		return t + p.SizeT*z + p.SizeT*p.SizeZ*c, nil
	default:
		return 0, fmt.Errorf("invalid dimension order %q", p.DimensionOrder)
	}
}
