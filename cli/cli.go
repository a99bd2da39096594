package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/arcsolve/constraint"
	"github.com/katalvlaran/arcsolve/cspgraph"
)

// Creator drives one interactive graph-construction session: prompt, read
// a line, dispatch on the command token, echo the current graph, repeat.
type Creator struct {
	scanner *bufio.Scanner
	out     io.Writer
	graph   *cspgraph.Graph
	eof     bool
}

// Start runs the interactive graph-construction loop over in/out and
// returns the graph built so far when the user exits (E / EXIT / END) or
// the input ends. Command tokens are case-insensitive; unrecognised tokens
// print a diagnostic and re-prompt.
func Start(in io.Reader, out io.Writer) *cspgraph.Graph {
	c := &Creator{
		scanner: bufio.NewScanner(in),
		out:     out,
		graph:   cspgraph.New(),
	}
	fmt.Fprintln(out, "Initiating graph creation.")

	for !c.eof {
		line := c.readLine("APP > ")
		if line == "" {
			continue
		}
		if c.dispatch(line) {
			break
		}
	}

	fmt.Fprintln(out, "Goodbye.")
	return c.graph
}

// dispatch handles one command token, returning true when the session
// should end.
func (c *Creator) dispatch(token string) (done bool) {
	switch strings.ToUpper(token) {
	case "AC", "ADDCONSTRAINT":
		c.addConstraint()
	case "AV", "ADDVARIABLE":
		c.addVariable()
	case "AE", "ADDEDGE":
		c.addEdge()
	case "RV", "REMOVEVERTEX":
		c.removeVertex()
	case "RE", "REMOVEEDGE":
		c.removeEdge()
	case "E", "EXIT", "END":
		return true
	default:
		fmt.Fprintf(c.out, "Unrecognised command %q. Commands: AC AV AE RV RE E.\n", token)
		return false
	}
	c.echoGraph()
	return false
}

func (c *Creator) addConstraint() {
	name := c.readLine("Constraint name > ")
	kind := c.readComparison()
	checked := c.readInt("Checked value > ")
	n := c.readNonNegativeInt("Threshold n > ")
	desc := c.readLine("Description > ")
	if c.eof {
		return
	}

	var pred constraint.Predicate
	switch kind {
	case cmpGreaterOrEqual:
		pred = constraint.GreaterOrEqual(checked, n)
	case cmpLessOrEqual:
		pred = constraint.LessOrEqual(checked, n)
	case cmpExactly:
		pred = constraint.Exactly(checked, n)
	}
	if err := c.graph.AddConstraint(name, pred, desc); err != nil {
		fmt.Fprintf(c.out, "Could not add constraint: %v\n", err)
	}
}

func (c *Creator) addVariable() {
	name := c.readLine("Variable name > ")
	var values []int
	for !c.eof && c.readYesNo("Add a domain value? [Y/N] > ") {
		values = append(values, c.readInt("Value > "))
	}
	if c.eof {
		return
	}
	if err := c.graph.AddVariable(name, values...); err != nil {
		fmt.Fprintf(c.out, "Could not add variable: %v\n", err)
	}
}

func (c *Creator) addEdge() {
	varName := c.readLine("Variable name > ")
	constrName := c.readLine("Constraint name > ")
	if c.eof {
		return
	}
	if err := c.graph.AddEdge(varName, constrName); err != nil {
		fmt.Fprintf(c.out, "Could not add edge: %v\n", err)
	}
}

func (c *Creator) removeVertex() {
	name := c.readLine("Vertex name > ")
	if c.eof {
		return
	}
	c.graph.RemoveVertex(name)
}

func (c *Creator) removeEdge() {
	a := c.readLine("First vertex name > ")
	b := c.readLine("Second vertex name > ")
	if c.eof {
		return
	}
	c.graph.RemoveEdge(a, b)
}

func (c *Creator) echoGraph() {
	fmt.Fprintln(c.out, c.graph)
}

type comparison int

const (
	cmpGreaterOrEqual comparison = iota
	cmpLessOrEqual
	cmpExactly
)

// readComparison keeps prompting until the user picks one of the three
// stock constraint shapes.
func (c *Creator) readComparison() comparison {
	for !c.eof {
		switch strings.ToUpper(c.readLine("Comparison? [>= / <= / =] > ")) {
		case ">=", "GEQ":
			return cmpGreaterOrEqual
		case "<=", "LEQ":
			return cmpLessOrEqual
		case "=", "==", "EQ":
			return cmpExactly
		default:
			fmt.Fprintln(c.out, "Please answer >=, <=, or =.")
		}
	}
	return cmpExactly
}

// readYesNo keeps prompting until a yes (Y/YES) or no (N/NO) token is read.
// Input exhaustion reads as no.
func (c *Creator) readYesNo(prompt string) bool {
	for !c.eof {
		switch strings.ToUpper(c.readLine(prompt)) {
		case "Y", "YES":
			return true
		case "N", "NO":
			return false
		default:
			fmt.Fprintln(c.out, "Please answer Y or N.")
		}
	}
	return false
}

// readInt keeps prompting until a parseable integer is read. Input
// exhaustion reads as 0.
func (c *Creator) readInt(prompt string) int {
	for !c.eof {
		line := c.readLine(prompt)
		v, err := strconv.Atoi(line)
		if err == nil {
			return v
		}
		if !c.eof {
			fmt.Fprintf(c.out, "%q is not an integer.\n", line)
		}
	}
	return 0
}

// readNonNegativeInt keeps prompting until an integer >= 0 is read. The
// stock constraint factories treat a negative threshold as programmer
// error and panic, so a typed negative must be caught here and re-asked.
// Input exhaustion reads as 0.
func (c *Creator) readNonNegativeInt(prompt string) int {
	for !c.eof {
		v := c.readInt(prompt)
		if v >= 0 {
			return v
		}
		fmt.Fprintf(c.out, "%d is negative; the threshold must be >= 0.\n", v)
	}
	return 0
}

// readLine prints prompt and returns the next input line, trimmed. Sets
// the eof flag and returns "" once input is exhausted.
func (c *Creator) readLine(prompt string) string {
	fmt.Fprint(c.out, prompt)
	if !c.scanner.Scan() {
		c.eof = true
		return ""
	}
	return strings.TrimSpace(c.scanner.Text())
}
