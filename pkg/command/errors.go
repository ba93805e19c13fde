package command

import (
	"errors"
	"fmt"
)

// ErrEmptyLine is returned for a line with nothing but whitespace.
// Such lines are not commands and are skipped without a diagnostic.
var ErrEmptyLine = errors.New("command: empty line")

// MalformedVertexCount is returned when the text after V is not a
// single base-10 integer. It holds the offending text.
type MalformedVertexCount string

func (e MalformedVertexCount) Error() string {
	return fmt.Sprintf("command: malformed vertex count %q, expected V <int>", string(e))
}

// MalformedEdgeList is returned when an edge list is not opened with
// '{', its pairs are not comma separated, or it is not closed with '}'.
type MalformedEdgeList string

func (e MalformedEdgeList) Error() string {
	return "command: malformed edge list: " + string(e)
}

// MalformedEdgePair is returned when an element of an edge list is not
// exactly <int,int>. It holds the text from the start of the bad pair.
type MalformedEdgePair string

func (e MalformedEdgePair) Error() string {
	return fmt.Sprintf("command: malformed edge %q, expected <v1,v2>", string(e))
}

// UnrecognizedCommand is returned for any line that does not start
// with V or E. It holds the leading token.
type UnrecognizedCommand string

func (e UnrecognizedCommand) Error() string {
	return fmt.Sprintf("command: unrecognized command %q, valid commands are 'V' and 'E'", string(e))
}
