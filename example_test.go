package farahidi_test

import (
	"fmt"

	"github.com/KareemErgawy/al-farahidi/specdef"
)

func Example() {
	spec := `
! integer literals
$digit  := 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 | 8 | 9
$number := $digit $digit*
`
	g, e := specdef.ParseString("example spec", spec)
	if e != nil {
		fmt.Println(e)
		return
	}

	for i := range g.Nonterms {
		fmt.Println(g.NontermString(i))
	}

	// Output:
	// $digit := (0 | (1 | (2 | (3 | (4 | (5 | (6 | (7 | (8 | (9))))))))))
	// $number := ($digit & (($digit*)))
}
