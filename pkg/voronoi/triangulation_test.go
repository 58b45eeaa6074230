package voronoi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAccepts(t *testing.T) {
	tri := twoTriangles()
	require.NoError(t, tri.Validate(4))

	for e, o := range tri.HalfEdges {
		if o >= 0 {
			assert.Equal(t, e, tri.HalfEdges[o])
		}
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Triangulation)
		field  string
	}{
		{"short triangles", func(tr *Triangulation) { tr.Triangles = tr.Triangles[:5] }, "triangles"},
		{"length mismatch", func(tr *Triangulation) { tr.HalfEdges = tr.HalfEdges[:3] }, "halfedges"},
		{"point out of range", func(tr *Triangulation) { tr.Triangles[5] = 9 }, "triangles"},
		{"negative point", func(tr *Triangulation) { tr.Triangles[0] = -2 }, "triangles"},
		{"opposite out of range", func(tr *Triangulation) { tr.HalfEdges[0] = 17 }, "halfedges"},
		{"asymmetric", func(tr *Triangulation) { tr.HalfEdges[1] = 4 }, "halfedges"},
		{"self opposite", func(tr *Triangulation) { tr.HalfEdges[2] = 2 }, "halfedges"},
		{"wrong endpoints", func(tr *Triangulation) {
			tr.HalfEdges[0], tr.HalfEdges[4] = 4, 0
		}, "halfedges"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tri := twoTriangles()
			tt.mutate(&tri)

			err := tri.Validate(4)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedTriangulation)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestValidateGhosts(t *testing.T) {
	tri := twoTriangles()
	assert.Error(t, tri.Validate(3))

	tri.Ghosts = 1
	assert.NoError(t, tri.Validate(3))
}

func TestOpposite(t *testing.T) {
	tri := twoTriangles()

	o, ok := tri.Opposite(1)
	assert.True(t, ok)
	assert.Equal(t, 3, o)

	o, ok = tri.Opposite(0)
	assert.False(t, ok)
	assert.Equal(t, NoHalfEdge, o)

	assert.Equal(t, [3]int{2, 1, 3}, tri.PointsOfTriangle(1))
}

func TestValidateAnyNegativeOpposite(t *testing.T) {
	tri := Triangulation{
		Triangles: []int{0, 1, 2, 2, 1, 3},
		HalfEdges: []int{-2, 3, -5, 1, -2, -1},
	}
	require.NoError(t, tri.Validate(4))

	_, ok := tri.Opposite(0)
	assert.False(t, ok)
}
