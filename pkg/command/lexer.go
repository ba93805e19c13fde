package command

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// lineLexer splits a command line into single-letter keywords,
// signed integers and punctuation. Whitespace is anything
// unicode.IsSpace accepts, so the lexer and strings.Fields agree on
// what a blank line is. Anything else becomes an Other
// token so that lexing itself never fails; the parser decides which
// error an unexpected token is.
var lineLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Keyword", Pattern: `[A-Za-z]`},
	{Name: "Int", Pattern: `[-+]?\d+`},
	{Name: "Punct", Pattern: `[{}<>,]`},
	{Name: "Whitespace", Pattern: `[\s\v\x{85}\p{Z}]+`},
	{Name: "Other", Pattern: `.`},
})

var (
	keywordToken    = lineLexer.Symbols()["Keyword"]
	intToken        = lineLexer.Symbols()["Int"]
	punctToken      = lineLexer.Symbols()["Punct"]
	whitespaceToken = lineLexer.Symbols()["Whitespace"]
)

// tokens returns the non-whitespace tokens of line, always terminated
// by an EOF token positioned at the end of the line.
func tokens(line string) ([]lexer.Token, error) {
	lex, err := lineLexer.LexString("", line)
	if err != nil {
		return nil, err
	}
	all, err := lexer.ConsumeAll(lex)
	if err != nil {
		return nil, err
	}
	out := all[:0]
	for _, t := range all {
		if t.Type == whitespaceToken {
			continue
		}
		out = append(out, t)
	}
	if len(out) == 0 || !out[len(out)-1].EOF() {
		out = append(out, lexer.EOFToken(lexer.Position{Offset: len(line)}))
	}
	return out, nil
}

// cursor walks a token slice. Reads past the end keep returning the
// final EOF token.
type cursor struct {
	toks []lexer.Token
	pos  int
}

func (c *cursor) peek() lexer.Token {
	if c.pos >= len(c.toks) {
		return c.toks[len(c.toks)-1]
	}
	return c.toks[c.pos]
}

func (c *cursor) next() lexer.Token {
	t := c.peek()
	if c.pos < len(c.toks) {
		c.pos++
	}
	return t
}

func isPunct(t lexer.Token, value string) bool {
	return t.Type == punctToken && t.Value == value
}
