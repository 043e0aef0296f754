// internal/compiler/stats.go
package compiler

import (
	"fmt"

	"tfi/internal/parser"
)

// Stats aggregates per-kind statement counts for a program. Nested
// statements are counted; TotalStatements counts top-level only.
type Stats struct {
	TotalStatements   int
	PrintStatements   int
	ConstDeclarations int
	LetDeclarations   int
	IfStatements      int
	WhileLoops        int
	ForLoops          int
}

// GetStats parses the source and counts statements by kind. The program is
// not validated.
func GetStats(source string) (*Stats, error) {
	program, err := parser.ParseProgram(source)
	if err != nil {
		return nil, err
	}

	stats := &Stats{TotalStatements: len(program)}
	for _, stmt := range program {
		countStatement(stmt, stats)
	}
	return stats, nil
}

func countStatement(stmt parser.Statement, stats *Stats) {
	switch s := stmt.(type) {
	case *parser.PrintStmt:
		stats.PrintStatements++
	case *parser.ConstStmt:
		stats.ConstDeclarations++
	case *parser.LetStmt:
		stats.LetDeclarations++
	case *parser.IfStmt:
		stats.IfStatements++
		for _, inner := range s.Then {
			countStatement(inner, stats)
		}
		for _, inner := range s.Else {
			countStatement(inner, stats)
		}
	case *parser.WhileStmt:
		stats.WhileLoops++
		for _, inner := range s.Body {
			countStatement(inner, stats)
		}
	case *parser.ForStmt:
		stats.ForLoops++
		for _, inner := range s.Body {
			countStatement(inner, stats)
		}
	}
}

// TotalDeclarations returns the combined rrr and pushpa count.
func (s *Stats) TotalDeclarations() int {
	return s.ConstDeclarations + s.LetDeclarations
}

// TotalControlStructures returns the combined if/while/for count.
func (s *Stats) TotalControlStructures() int {
	return s.IfStatements + s.WhileLoops + s.ForLoops
}

// Summary renders a human-readable overview.
func (s *Stats) Summary() string {
	return fmt.Sprintf(
		"Compilation Summary:\n"+
			"- Total statements: %d\n"+
			"- Print statements: %d\n"+
			"- Variable declarations: %d\n"+
			"- Control structures: %d",
		s.TotalStatements,
		s.PrintStatements,
		s.TotalDeclarations(),
		s.TotalControlStructures())
}
