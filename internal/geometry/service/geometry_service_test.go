package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TriGrid/internal/geometry/domain"
)

func c(x, y int) domain.Coordinate { return domain.NewCoordinate(x, y) }

func TestComputeTriangleVertices(t *testing.T) {
	svc := NewGeometryService()
	tests := []struct {
		ref  string
		size int
		want domain.Shape
	}{
		{"A1", 10, domain.Shape{c(0, 0), c(0, 10), c(10, 10)}},
		{"A2", 10, domain.Shape{c(0, 0), c(10, 0), c(10, 10)}},
		{"A3", 10, domain.Shape{c(10, 0), c(10, 10), c(20, 10)}},
		{"B1", 10, domain.Shape{c(0, 10), c(0, 20), c(10, 20)}},
		{"F12", 10, domain.Shape{c(50, 50), c(60, 50), c(60, 60)}},
		{"C5", 7, domain.Shape{c(14, 14), c(14, 21), c(21, 21)}},
	}
	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			got, ok := svc.ComputeTriangleVertices(domain.NewGrid(tt.size), domain.MustCellReference(tt.ref))
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeTriangleVertices_InvalidInput(t *testing.T) {
	svc := NewGeometryService()

	for _, size := range []int{0, -10} {
		_, ok := svc.ComputeTriangleVertices(domain.NewGrid(size), domain.MustCellReference("A1"))
		assert.False(t, ok, "size=%d", size)
	}

	_, ok := svc.ComputeTriangleVertices(domain.NewGrid(10), domain.CellReference{})
	assert.False(t, ok)
}

func TestComputeTriangleVertices_OddColumnsLeanLeftAndAreValid(t *testing.T) {
	svc := NewGeometryService()
	for _, size := range []int{1, 3, 10, 250} {
		for row := 1; row <= domain.MaxRows; row++ {
			for col := 1; col <= domain.MaxColumns; col += 2 {
				ref, _ := domain.NewCellReference(row, col)
				s, ok := svc.ComputeTriangleVertices(domain.NewGrid(size), ref)
				require.True(t, ok)
				require.Len(t, s, 3)
				assert.Equal(t, s[0].X, s[1].X, "outer vertex shares the top-left x for %s", ref)
				assert.True(t, IsValidTriangle(size, s[0], s[1], s[2]), "%s size=%d", ref, size)
			}
		}
	}
}

func TestInferCellReference_RoundTrip(t *testing.T) {
	svc := NewGeometryService()
	for _, size := range []int{1, 2, 10, 33} {
		grid := domain.NewGrid(size)
		for row := 1; row <= domain.MaxRows; row++ {
			for col := 1; col <= domain.MaxColumns; col++ {
				ref, _ := domain.NewCellReference(row, col)
				s, ok := svc.ComputeTriangleVertices(grid, ref)
				require.True(t, ok)

				tri, _ := domain.TriangleFromShape(s)
				got, ok := svc.InferCellReference(grid, tri)
				require.True(t, ok, "%s size=%d", ref, size)
				assert.Equal(t, ref, got)
			}
		}
	}
}

func TestInferCellReference(t *testing.T) {
	svc := NewGeometryService()
	grid := domain.NewGrid(10)

	got, ok := svc.InferCellReference(grid, domain.NewTriangle(c(0, 0), c(0, 10), c(10, 10)))
	require.True(t, ok)
	assert.Equal(t, "A", got.Row())
	assert.Equal(t, 1, got.Column())

	tests := []struct {
		name string
		grid domain.Grid
		tri  domain.Triangle
	}{
		{"zero grid", domain.NewGrid(0), domain.NewTriangle(c(0, 0), c(0, 10), c(10, 10))},
		{"degenerate", grid, domain.NewTriangle(c(0, 0), c(0, 0), c(10, 10))},
		{"wrong leg length", grid, domain.NewTriangle(c(0, 0), c(0, 5), c(5, 5))},
		{"below last row", grid, domain.NewTriangle(c(0, 60), c(0, 70), c(10, 70))},
		{"right of last column", grid, domain.NewTriangle(c(60, 0), c(70, 0), c(70, 10))},
		{"negative coordinates", grid, domain.NewTriangle(c(0, -5), c(0, 5), c(10, 5))},
		// truncating division would fold this into A1; floor puts it in column 0
		{"negative x floors out of range", grid, domain.NewTriangle(c(-5, 0), c(-5, 10), c(5, 10))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, ok := svc.InferCellReference(tt.grid, tt.tri)
			assert.False(t, ok)
			assert.False(t, ref.Valid())
		})
	}
}

// Off-grid but well-formed triangles are snapped to the cell holding their top-left vertex.
func TestInferCellReference_UnalignedTriangleSnapsToCell(t *testing.T) {
	svc := NewGeometryService()
	got, ok := svc.InferCellReference(domain.NewGrid(10), domain.NewTriangle(c(5, 5), c(15, 5), c(15, 15)))
	require.True(t, ok)
	assert.Equal(t, "A2", got.String())
}

func TestIsValidTriangle(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		a, b, d domain.Coordinate
		want    bool
	}{
		{"left leaning", 10, c(0, 0), c(0, 10), c(10, 10), true},
		{"right leaning", 10, c(0, 0), c(10, 0), c(10, 10), true},
		{"vertex order independent", 10, c(10, 10), c(0, 0), c(0, 10), true},
		{"degenerate zero side", 10, c(0, 0), c(0, 0), c(10, 10), false},
		{"all points equal", 10, c(0, 0), c(0, 0), c(0, 0), false},
		{"legs too short", 10, c(0, 0), c(0, 5), c(5, 5), false},
		{"collinear legs", 10, c(0, 0), c(0, 10), c(0, 20), true},
		{"only one leg", 10, c(0, 0), c(0, 10), c(20, 10), false},
		// 3-4-5 legs are exact under sqrt, so a rotated right triangle passes
		{"rotated exact legs", 5, c(0, 0), c(3, 4), c(7, 1), true},
		{"zero grid", 0, c(0, 0), c(0, 0), c(0, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidTriangle(tt.size, tt.a, tt.b, tt.d))
		})
	}
}

func TestFloorDiv(t *testing.T) {
	assert.Equal(t, 0, floorDiv(5, 10))
	assert.Equal(t, -1, floorDiv(-5, 10))
	assert.Equal(t, -1, floorDiv(-10, 10))
	assert.Equal(t, 2, floorDiv(25, 10))
}
