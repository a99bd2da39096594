package cspgraph

import (
	"fmt"
	"strings"
)

// String renders a deterministic text dump of the graph: every constraint
// (name and description), then every variable (name and domain), then the
// edge list, each section in first-insertion order. Display only; the
// solver never consults it.
func (g *Graph) String() string {
	var b strings.Builder

	b.WriteString("##########################\n")
	b.WriteString("All contained constraints.\n")
	b.WriteString("##########################\n")
	for _, name := range g.constrOrder {
		b.WriteString(g.constraints[name].String())
		b.WriteString("\n\n")
	}

	b.WriteString("########################\n")
	b.WriteString("All contained variables.\n")
	b.WriteString("########################\n")
	for _, name := range g.varOrder {
		b.WriteString(g.variables[name].String())
		b.WriteString("\n\n")
	}

	b.WriteString("####################\n")
	b.WriteString("All contained edges.\n")
	b.WriteString("####################\n")
	for _, vn := range g.varOrder {
		for _, cn := range g.varEdges[vn] {
			fmt.Fprintf(&b, " %s -- %s\n", vn, cn)
		}
	}
	return b.String()
}
