// Package cli implements a line-oriented interactive builder for CSP
// graphs: a prompt loop recognising short and long command tokens
// (AC/ADDCONSTRAINT, AV/ADDVARIABLE, AE/ADDEDGE, RV/REMOVEVERTEX,
// RE/REMOVEEDGE, E/EXIT/END), case-insensitive, echoing the current graph
// after every mutating command.
//
// The package only calls the public cspgraph builder API and reads/writes
// plain io streams, so sessions are scriptable and testable without a
// terminal.
package cli
