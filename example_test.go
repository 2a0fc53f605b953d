package atomset_test

import (
	"fmt"

	"github.com/jcorbin/atomset"
)

func Example() {
	set := atomset.New()

	fmt.Println(set.Insert("return") == atomset.AtomReturn)
	fmt.Println(set.Insert("myVar"))
	fmt.Println(set.Insert("myVar"))

	atoms := set.Export()
	fmt.Println(len(atoms), atoms[atomset.AtomUseStrict], atoms[len(atoms)-1])

	// Output:
	// true
	// @51
	// @51
	// 52 use strict myVar
}
