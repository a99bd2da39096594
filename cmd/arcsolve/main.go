// Command arcsolve builds a CSP graph interactively on stdin/stdout and
// then enumerates every consistent assignment with the arc-consistency
// solver.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/katalvlaran/arcsolve/cli"
	"github.com/katalvlaran/arcsolve/solver"
)

func main() {
	g := cli.Start(os.Stdin, os.Stdout)

	solutions, err := solver.ArcConsistency(g)
	if err != nil {
		log.Fatal(err)
	}

	if len(solutions) == 0 {
		fmt.Println("No consistent assignment exists.")
		return
	}

	fmt.Printf("Found %d solution(s).\n", len(solutions))
	for i, sol := range solutions {
		fmt.Printf("Solution %d:\n", i+1)
		for _, s := range sol {
			fmt.Printf("  %s = %v\n", s.Name, s.Domain)
		}
	}
}
