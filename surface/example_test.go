// SPDX-License-Identifier: MIT

package surface_test

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/roughsurf/surface"
)

func ExampleGenerate() {
	p := surface.Anisotropic(32, 10, 0.5, 2, 1)
	f, err := surface.Generate(p, rand.New(rand.NewSource(42)))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(f.Params, f.N(), len(f.Rows()))
	// Output:
	// N=32 rL=10 h=0.5 clx=2 cly=1 32 32
}

func ExampleParameters_Validate() {
	err := surface.Isotropic(1, 10, 1, 2).Validate()
	fmt.Println(errors.Is(err, surface.ErrInvalidParameter))
	// Output:
	// true
}
