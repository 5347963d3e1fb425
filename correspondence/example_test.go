package correspondence_test

import (
	"fmt"

	"github.com/katalvlaran/lvgroup/correspondence"
)

// ExampleDihedral lists the subgroups of D₄ above its center and their
// images in D₄/Z(D₄).
func ExampleDihedral() {
	lat, err := correspondence.Dihedral(4, "r2")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, p := range lat.Pairs {
		fmt.Printf("%-12s |H|=%d  |H/N|=%d\n", p.Subgroup.Label(), p.Subgroup.Order(), p.ImageOrder())
	}
	fmt.Println("holds:", lat.Holds())
	// Output:
	// ⟨r, s⟩       |H|=8  |H/N|=4
	// ⟨r⟩          |H|=4  |H/N|=2
	// ⟨r^2, s⟩     |H|=4  |H/N|=2
	// ⟨r^2, sr^1⟩  |H|=4  |H/N|=2
	// ⟨r^2⟩        |H|=2  |H/N|=1
	// holds: true
}
