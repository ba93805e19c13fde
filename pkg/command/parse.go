package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"

	"github.com/graphsat/vertexcover/pkg/graph"
)

// Parse reads one line. vertices is the current vertex count of the
// graph: edge endpoints are checked against it, and an E command is
// rejected with graph.ErrVerticesNotDefined while it is 0.
//
// The first problem found, scanning left to right, is the one
// returned.
func Parse(line string, vertices int) (Command, error) {
	toks, err := tokens(line)
	if err != nil {
		return nil, errors.Wrap(err, "command: tokenizing line")
	}
	p := parser{line: line, cursor: cursor{toks: toks}}

	head := p.next()
	switch {
	case head.EOF():
		return nil, ErrEmptyLine
	case head.Type == keywordToken && head.Value == "V":
		return p.vertexCount()
	case head.Type == keywordToken && head.Value == "E":
		return p.edges(vertices)
	}
	if fields := strings.Fields(line); len(fields) > 0 {
		return nil, UnrecognizedCommand(fields[0])
	}
	return nil, UnrecognizedCommand(head.Value)
}

type parser struct {
	line string
	cursor
}

// text returns the source between the start of from and the end of
// to, clamped to the line.
func (p *parser) text(from, to lexer.Token) string {
	start, end := from.Pos.Offset, to.Pos.Offset+len(to.Value)
	if end > len(p.line) {
		end = len(p.line)
	}
	if start > end {
		start = end
	}
	return p.line[start:end]
}

// remainder returns the unread part of the line.
func (p *parser) remainder() string {
	t := p.peek()
	if t.EOF() || t.Pos.Offset > len(p.line) {
		return ""
	}
	return strings.TrimSpace(p.line[t.Pos.Offset:])
}

func (p *parser) vertexCount() (Command, error) {
	rest := p.remainder()
	t := p.next()
	if t.Type != intToken || !p.peek().EOF() {
		return nil, MalformedVertexCount(rest)
	}
	n, err := strconv.Atoi(t.Value)
	if err != nil {
		return nil, MalformedVertexCount(rest)
	}
	if n <= 1 {
		return nil, graph.InvalidVertexCount(n)
	}
	return SetVertexCount{N: n}, nil
}

func (p *parser) edges(vertices int) (Command, error) {
	if vertices == 0 {
		return nil, graph.ErrVerticesNotDefined
	}
	if !isPunct(p.next(), "{") {
		return nil, MalformedEdgeList("edges should start with '{'")
	}

	set := graph.NewEdgeSet(vertices)
	if isPunct(p.peek(), "}") {
		p.next()
		return p.closed(set)
	}
	for {
		start := p.peek()
		if start.EOF() {
			return nil, MalformedEdgeList("edge list should end with '}'")
		}
		a, b, last, ok := p.pair()
		if !ok {
			return nil, MalformedEdgePair(p.text(start, last))
		}
		if err := set.Add(a, b); err != nil {
			return nil, err
		}

		sep := p.next()
		switch {
		case isPunct(sep, "}"):
			return p.closed(set)
		case sep.EOF():
			return nil, MalformedEdgeList("edge list should end with '}'")
		case !isPunct(sep, ","):
			return nil, MalformedEdgeList(fmt.Sprintf("edges should be separated by commas, found %q", sep.Value))
		}
	}
}

// pair reads <int,int>. last is the final token read, which is the
// offending one when ok is false.
func (p *parser) pair() (a, b int, last lexer.Token, ok bool) {
	var err error
	if last = p.next(); !isPunct(last, "<") {
		return
	}
	if last = p.next(); last.Type != intToken {
		return
	}
	if a, err = strconv.Atoi(last.Value); err != nil {
		return
	}
	if last = p.next(); !isPunct(last, ",") {
		return
	}
	if last = p.next(); last.Type != intToken {
		return
	}
	if b, err = strconv.Atoi(last.Value); err != nil {
		return
	}
	if last = p.next(); !isPunct(last, ">") {
		return
	}
	return a, b, last, true
}

// closed finishes an edge list whose '}' has been read.
func (p *parser) closed(set *graph.EdgeSet) (Command, error) {
	if !p.peek().EOF() {
		return nil, MalformedEdgeList(fmt.Sprintf("unexpected %q after '}'", p.remainder()))
	}
	return SetEdges{Edges: set.Edges()}, nil
}
