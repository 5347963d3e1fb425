package classeq_test

import (
	"fmt"

	"github.com/katalvlaran/lvgroup/classeq"
)

// ExampleDihedral prints the class equation of the square's symmetry group.
func ExampleDihedral() {
	eq, err := classeq.Dihedral(4)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(eq)
	fmt.Println("Z(G) =", eq.Center)
	// Output:
	// 8 = 2 + 2 + 2 + 2
	// Z(G) = [e r^2]
}
