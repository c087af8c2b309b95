// Package kernel holds the array-access routine under test: for every
// element of a 2D grid, add the sum of the element's two indices and
// store the result in a second grid of the same shape. Three variants
// cover the storage and access strategies the benchmark compares.
package kernel

import "gridbench/grid"

// AddIndexSum sets out(ix,iy) = in(ix,iy) + (ix+iy) for every element
// of the nx×ny grids, with (ix+iy) computed in integer arithmetic and
// converted to float32 before the addition. The inner loop walks a
// contiguous row, matching the grids' row-major layout. in is never
// written; every element of out is overwritten, so repeated calls with
// the same in produce the same out. nx and ny are trusted to match the
// actual extents of both grids.
func AddIndexSum(in *grid.Grid, nx, ny int, out *grid.Grid) {
	for iy := 0; iy < ny; iy++ {
		base := iy * nx
		inRow := in.Data[base : base+nx]
		outRow := out.Data[base : base+nx]
		for ix := range inRow {
			outRow[ix] = inRow[ix] + float32(ix+iy)
		}
	}
}

// AddIndexSumNested is the same kernel over slice-of-row storage, the
// layout the original vector-of-vectors program used. in and out must
// both hold ny rows of at least nx elements.
func AddIndexSumNested(in [][]float32, nx, ny int, out [][]float32) {
	for iy := 0; iy < ny; iy++ {
		inRow := in[iy][:nx]
		outRow := out[iy][:nx]
		for ix := 0; ix < nx; ix++ {
			outRow[ix] = inRow[ix] + float32(ix+iy)
		}
	}
}
