package dihedral_test

import (
	"math"
	"sort"
	"testing"

	"github.com/katalvlaran/lvgroup/dihedral"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGenerate_CountAndOrder checks 2n elements, rotations first.
func TestGenerate_CountAndOrder(t *testing.T) {
	for n := 3; n <= 12; n++ {
		els, err := dihedral.Generate(n)
		require.NoError(t, err)
		require.Len(t, els, 2*n, "n=%d", n)
		for k := 0; k < n; k++ {
			assert.Equal(t, dihedral.Element{Kind: dihedral.Rotation, K: k, N: n}, els[k])
			assert.Equal(t, dihedral.Element{Kind: dihedral.Reflection, K: k, N: n}, els[n+k])
		}
	}
}

// TestGenerate_TooFew verifies the n < 3 contract.
func TestGenerate_TooFew(t *testing.T) {
	for _, n := range []int{-1, 0, 1, 2} {
		els, err := dihedral.Generate(n)
		assert.ErrorIs(t, err, dihedral.ErrTooFewVertices, "n=%d", n)
		assert.Nil(t, els)
	}
}

// TestActions_AreBijections checks every element permutes {0..n-1}.
func TestActions_AreBijections(t *testing.T) {
	for n := 3; n <= 9; n++ {
		els, err := dihedral.Generate(n)
		require.NoError(t, err)
		for _, e := range els {
			img := e.Permutation()
			sorted := append([]int(nil), img...)
			sort.Ints(sorted)
			for i := range sorted {
				assert.Equal(t, i, sorted[i], "n=%d %s image %v", n, e.ID(), img)
			}
		}
	}
}

// TestD4_IdentityAndRotationComposition covers the n=4 properties.
func TestD4_IdentityAndRotationComposition(t *testing.T) {
	els, err := dihedral.Generate(4)
	require.NoError(t, err)
	require.Len(t, els, 8)

	id := els[0]
	for i := 0; i < 4; i++ {
		assert.Equal(t, i, id.Action(i, 4))
	}

	for k1 := 0; k1 < 4; k1++ {
		for k2 := 0; k2 < 4; k2++ {
			r1, r2, r12 := els[k1], els[k2], els[(k1+k2)%4]
			for i := 0; i < 4; i++ {
				assert.Equal(t, r12.Action(i, 4), r2.Action(r1.Action(i, 4), 4), "k1=%d k2=%d i=%d", k1, k2, i)
			}
		}
	}
}

// TestReflection_Formula pins sr^k(i) = (n − (i+k) mod n) mod n.
func TestReflection_Formula(t *testing.T) {
	s1 := dihedral.Element{Kind: dihedral.Reflection, K: 1, N: 5}
	assert.Equal(t, []int{4, 3, 2, 1, 0}, s1.Permutation())

	s0 := dihedral.Element{Kind: dihedral.Reflection, K: 0, N: 5}
	assert.Equal(t, []int{0, 4, 3, 2, 1}, s0.Permutation())
}

// TestStabilizer_D6Vertex0 checks {e, s} for n=6, v=0.
func TestStabilizer_D6Vertex0(t *testing.T) {
	els, err := dihedral.Generate(6)
	require.NoError(t, err)

	stab := dihedral.Stabilizer(els, 0)
	require.Len(t, stab, 2)
	assert.True(t, stab[0].IsIdentity())
	assert.Equal(t, dihedral.Element{Kind: dihedral.Reflection, K: 0, N: 6}, stab[1])
}

// TestStabilizer_AlwaysIdentityPlusOneReflection holds for every vertex of a regular polygon.
func TestStabilizer_AlwaysIdentityPlusOneReflection(t *testing.T) {
	for n := 3; n <= 10; n++ {
		els, err := dihedral.Generate(n)
		require.NoError(t, err)
		for v := 0; v < n; v++ {
			stab := dihedral.Stabilizer(els, v)
			require.Len(t, stab, 2, "n=%d v=%d", n, v)
			assert.True(t, stab[0].IsIdentity())
			assert.Equal(t, dihedral.Reflection, stab[1].Kind)
			assert.Equal(t, ((-2*v)%n+n)%n, stab[1].K)
		}
	}
}

func TestOrbitStabilizer(t *testing.T) {
	for n := 3; n <= 8; n++ {
		for v := 0; v < n; v++ {
			rep, err := dihedral.OrbitStabilizer(n, v)
			require.NoError(t, err)
			assert.Len(t, rep.Orbit, n, "transitive action")
			assert.True(t, rep.Holds(), "|G| = |orbit|·|stab| for n=%d v=%d", n, v)
		}
	}

	_, err := dihedral.OrbitStabilizer(5, 5)
	assert.ErrorIs(t, err, dihedral.ErrVertexOutOfRange)
	_, err = dihedral.OrbitStabilizer(2, 0)
	assert.ErrorIs(t, err, dihedral.ErrTooFewVertices)
}

func TestOrbit_Empty(t *testing.T) {
	assert.Nil(t, dihedral.Orbit(nil, 0))
}

// TestCompose_MatchesAction verifies the closed form against pointwise composition.
func TestCompose_MatchesAction(t *testing.T) {
	for _, n := range []int{3, 4, 5, 6} {
		els, err := dihedral.Generate(n)
		require.NoError(t, err)
		for _, a := range els {
			for _, b := range els {
				c, err := dihedral.Compose(a, b)
				require.NoError(t, err)
				for i := 0; i < n; i++ {
					assert.Equal(t, a.Act(b.Act(i)), c.Act(i), "n=%d %s∘%s at %d", n, a, b, i)
				}
			}
		}
	}
}

func TestCompose_SizeMismatch(t *testing.T) {
	_, err := dihedral.Compose(
		dihedral.Element{Kind: dihedral.Rotation, K: 1, N: 4},
		dihedral.Element{Kind: dihedral.Rotation, K: 1, N: 5},
	)
	assert.ErrorIs(t, err, dihedral.ErrSizeMismatch)
}

func TestInverseAndOrder(t *testing.T) {
	els, err := dihedral.Generate(6)
	require.NoError(t, err)
	for _, e := range els {
		c, err := dihedral.Compose(e, dihedral.Inverse(e))
		require.NoError(t, err)
		assert.True(t, c.IsIdentity(), "%s · %s⁻¹", e, e)
	}

	orders := map[string]int{"r0": 1, "r1": 6, "r2": 3, "r3": 2, "r4": 3, "r5": 6, "s0": 2, "s3": 2}
	for _, e := range els {
		if want, ok := orders[e.ID()]; ok {
			assert.Equal(t, want, dihedral.Order(e), e.ID())
		}
	}
}

func TestLabels(t *testing.T) {
	els, err := dihedral.Generate(4)
	require.NoError(t, err)

	var ids, latex, names []string
	for _, e := range els {
		ids = append(ids, e.ID())
		latex = append(latex, e.LaTeX())
		names = append(names, e.Name())
	}
	assert.Equal(t, []string{"r0", "r1", "r2", "r3", "s0", "s1", "s2", "s3"}, ids)
	assert.Equal(t, []string{"e", "r", "r^2", "r^3", "s", "sr^1", "sr^2", "sr^3"}, latex)
	assert.Equal(t, []string{
		"Identity", "Rotation 1", "Rotation 2", "Rotation 3",
		"Reflection 0", "Reflection 1", "Reflection 2", "Reflection 3",
	}, names)
	assert.Equal(t, "rotation", dihedral.Rotation.String())
	assert.Equal(t, "reflection", dihedral.Reflection.String())
}

func TestFind(t *testing.T) {
	e, err := dihedral.Find(5, "s3")
	require.NoError(t, err)
	assert.Equal(t, dihedral.Element{Kind: dihedral.Reflection, K: 3, N: 5}, e)

	_, err = dihedral.Find(5, "r5")
	assert.ErrorIs(t, err, dihedral.ErrUnknownID)
	_, err = dihedral.Find(1, "r0")
	assert.ErrorIs(t, err, dihedral.ErrTooFewVertices)
}

func TestVertices(t *testing.T) {
	pts, err := dihedral.Vertices(4, 80)
	require.NoError(t, err)
	require.Len(t, pts, 4)

	assert.InDelta(t, 0, pts[0].X, 1e-9)
	assert.InDelta(t, -80, pts[0].Y, 1e-9, "vertex 1 at the top")
	assert.InDelta(t, 80, pts[1].X, 1e-9, "clockwise in screen coordinates")
	for i, p := range pts {
		assert.Equal(t, i+1, p.Label)
		assert.InDelta(t, 80, math.Hypot(p.X, p.Y), 1e-9)
	}

	_, err = dihedral.Vertices(2, 1)
	assert.ErrorIs(t, err, dihedral.ErrTooFewVertices)
}

func TestEdgesAndSymmetry(t *testing.T) {
	edges, err := dihedral.Edges(5)
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}}, edges)

	for n := 3; n <= 8; n++ {
		els, err := dihedral.Generate(n)
		require.NoError(t, err)
		for _, e := range els {
			assert.True(t, dihedral.IsSymmetry(e), "n=%d %s", n, e.ID())
		}
	}

	_, err = dihedral.Edges(2)
	assert.ErrorIs(t, err, dihedral.ErrTooFewVertices)
	assert.False(t, dihedral.IsSymmetry(dihedral.Element{N: 2}))
}

// TestZeroElement_NoPanic covers elements with no polygon attached.
func TestZeroElement_NoPanic(t *testing.T) {
	var e dihedral.Element
	assert.NotPanics(t, func() {
		assert.Equal(t, 3, e.Act(3))
		assert.Equal(t, 2, e.Action(2, 0))
		assert.Equal(t, 5, dihedral.Element{Kind: dihedral.Reflection, K: 1}.Action(5, -1))
		assert.Equal(t, e, dihedral.Inverse(e))
		assert.Equal(t, 1, dihedral.Order(e))
		assert.Empty(t, e.Permutation())
	})
}
