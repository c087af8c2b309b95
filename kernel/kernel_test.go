package kernel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridbench/grid"
)

// seededPair returns a seed-filled input grid and a zeroed output grid.
func seededPair(nx, ny int) (*grid.Grid, *grid.Grid) {
	in := grid.New(nx, ny)
	out := grid.New(nx, ny)
	in.FillSeed()
	return in, out
}

func TestAddIndexSum_ClosedForm(t *testing.T) {
	// With the seed (nx-ix)+(ny-iy), input + (ix+iy) is nx+ny everywhere.
	in, out := seededPair(3, 2)
	AddIndexSum(in, 3, 2, out)

	assert.Equal(t, [][]float32{{5, 4, 3}, {4, 3, 2}}, [][]float32{in.Row(0), in.Row(1)})
	for iy := 0; iy < 2; iy++ {
		for ix := 0; ix < 3; ix++ {
			assert.Equal(t, float32(5), out.At(ix, iy), "output at (%d,%d)", ix, iy)
		}
	}
	require.Nil(t, Verify(in, 3, 2, out))
}

func TestAddIndexSum_InputUntouched(t *testing.T) {
	in, out := seededPair(7, 5)
	before := append([]float32(nil), in.Data...)
	AddIndexSum(in, 7, 5, out)
	assert.Equal(t, before, in.Data)
}

func TestAddIndexSum_Idempotent(t *testing.T) {
	in, out := seededPair(9, 4)
	AddIndexSum(in, 9, 4, out)
	first := append([]float32(nil), out.Data...)
	AddIndexSum(in, 9, 4, out)
	assert.Equal(t, first, out.Data)
}

func TestVariantsAgree(t *testing.T) {
	const nx, ny = 13, 6
	in, outChecked := seededPair(nx, ny)
	outUnchecked := grid.New(nx, ny)
	nestedIn := grid.NewNested(nx, ny)
	nestedOut := grid.NewNested(nx, ny)
	grid.FillSeedNested(nestedIn)

	AddIndexSum(in, nx, ny, outChecked)
	AddIndexSumUnchecked(in, nx, ny, outUnchecked)
	AddIndexSumNested(nestedIn, nx, ny, nestedOut)

	assert.Equal(t, outChecked.Data, outUnchecked.Data)
	for iy := 0; iy < ny; iy++ {
		assert.Equal(t, outChecked.Row(iy), nestedOut[iy], "row %d", iy)
	}
	require.Nil(t, Verify(in, nx, ny, outUnchecked))
}

func TestEmptyGrids(t *testing.T) {
	for _, dims := range [][2]int{{0, 10}, {2000, 0}, {0, 0}} {
		nx, ny := dims[0], dims[1]
		in, out := seededPair(nx, ny)
		AddIndexSum(in, nx, ny, out)
		AddIndexSumUnchecked(in, nx, ny, out)
		AddIndexSumNested(grid.NewNested(nx, ny), nx, ny, grid.NewNested(nx, ny))
		require.Nil(t, Verify(in, nx, ny, out), "%dx%d", nx, ny)
	}
}

func TestVerify_ReportsFirstMismatchOnly(t *testing.T) {
	const nx, ny = 6, 3
	in, out := seededPair(nx, ny)
	AddIndexSum(in, nx, ny, out)

	// Corrupt two cells; only the earlier one in row-major order is
	// reported.
	out.Set(out.At(4, 0)+1, 4, 0)
	out.Set(out.At(1, 2)+1, 1, 2)

	m := Verify(in, nx, ny, out)
	require.NotNil(t, m)
	assert.Equal(t, 4, m.Ix)
	assert.Equal(t, 0, m.Iy)
	assert.Equal(t, in.At(4, 0), m.In)
	assert.Equal(t, out.At(4, 0), m.Got)
}

func TestVerify_CleanPass(t *testing.T) {
	in, out := seededPair(11, 7)
	AddIndexSumUnchecked(in, 11, 7, out)
	require.Nil(t, Verify(in, 11, 7, out))
}
