package kernel

import "gridbench/grid"

// Mismatch identifies the first cell where the output disagrees with
// the closed-form expectation in(ix,iy) + (ix+iy).
type Mismatch struct {
	Ix, Iy int
	Got    float32 // value found in the output grid
	In     float32 // corresponding input value
}

// Verify scans out in row-major order and compares every element
// against in(ix,iy) + (ix+iy). It returns the first mismatching cell,
// or nil when every element agrees. The scan stops at the first
// mismatch; later bad cells are not reported.
func Verify(in *grid.Grid, nx, ny int, out *grid.Grid) *Mismatch {
	for iy := 0; iy < ny; iy++ {
		base := iy * nx
		for ix := 0; ix < nx; ix++ {
			if got, want := out.Data[base+ix], in.Data[base+ix]+float32(ix+iy); got != want {
				return &Mismatch{Ix: ix, Iy: iy, Got: got, In: in.Data[base+ix]}
			}
		}
	}
	return nil
}
