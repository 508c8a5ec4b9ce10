package parser

import "fmt"

// ParseError reports that the infinite-loop guard tripped: a repeated parser
// succeeded without consuming input. The text fallback guarantees forward
// progress on any well-formed input, so a ParseError indicates a defect in
// the parser, not in the input.
type ParseError struct {
	Offset  int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse stalled at byte %d: %s", e.Offset, e.Message)
}
