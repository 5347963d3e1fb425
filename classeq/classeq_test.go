package classeq_test

import (
	"testing"

	"github.com/katalvlaran/lvgroup/classeq"
	"github.com/katalvlaran/lvgroup/dihedral"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestS3(t *testing.T) {
	eq := classeq.S3()
	assert.Equal(t, "S_3", eq.Group)
	assert.Equal(t, 6, eq.Order)
	assert.Equal(t, []string{"e"}, eq.Center, "Z(S₃) is trivial")
	assert.Equal(t, "6 = 1 + 2 + 3", eq.String())

	require.Len(t, eq.Classes, 3)
	assert.Equal(t, []string{"e"}, eq.Classes[0].Members)
	assert.Equal(t, []string{"(1 2 3)", "(1 3 2)"}, eq.Classes[1].Members)
	assert.Equal(t, []string{"(1 2)", "(1 3)", "(2 3)"}, eq.Classes[2].Members)
}

func TestDihedral_D4(t *testing.T) {
	eq, err := classeq.Dihedral(4)
	require.NoError(t, err)
	assert.Equal(t, "D_4", eq.Group)
	assert.Equal(t, []string{"e", "r^2"}, eq.Center, "non-trivial center")
	assert.Equal(t, "8 = 2 + 2 + 2 + 2", eq.String())

	var members [][]string
	for _, c := range eq.Classes {
		members = append(members, c.Members)
	}
	assert.Equal(t, [][]string{
		{"e"}, {"r^2"}, {"r", "r^3"}, {"s", "sr^2"}, {"sr^1", "sr^3"},
	}, members)
}

func TestDihedral_Equations(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{3, "6 = 1 + 2 + 3"},
		{5, "10 = 1 + 2 + 2 + 5"},
		{6, "12 = 2 + 2 + 2 + 3 + 3"},
	}
	for _, tc := range tests {
		eq, err := classeq.Dihedral(tc.n)
		require.NoError(t, err)
		assert.Equal(t, tc.want, eq.String(), "n=%d", tc.n)

		total := 0
		for _, c := range eq.Classes {
			total += c.Size()
		}
		assert.Equal(t, eq.Order, total, "classes partition D_%d", tc.n)
	}
}

func TestDihedral_TooFew(t *testing.T) {
	_, err := classeq.Dihedral(2)
	assert.ErrorIs(t, err, dihedral.ErrTooFewVertices)
}
