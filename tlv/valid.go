package tlv

import (
	"errors"

	"github.com/ansel1/merry"
)

// ErrTooDeep indicates that constructed values are nested deeper than allowed.
var ErrTooDeep = errors.New("nesting too deep")

// Valid reports whether the value of every constructed node in the tree rooted
// at n consists of complete TLVs without trailing bytes. Primitive values are
// not inspected.
//
// The returned error wraps a [*SyntaxError]. Its message is prefixed with the
// identifiers of the enclosing nodes, outermost first.
func (n Node) Valid() error {
	return n.valid(0, 0)
}

// ValidDepth works like [Node.Valid] but fails with [ErrTooDeep] if constructed
// values are nested more than maxDepth levels deep. A maxDepth of 0 or less
// disables the check.
func (n Node) ValidDepth(maxDepth int) error {
	return n.valid(0, maxDepth)
}

func (n Node) valid(depth, maxDepth int) error {
	if n.ID.IsPrimitive() {
		return nil
	}
	if maxDepth > 0 && depth >= maxDepth {
		return merry.Prepend(&SyntaxError{Err: ErrTooDeep, Header: n.Header()}, n.ID.String())
	}
	rest := n.Value
	for len(rest) > 0 {
		child, r, err := Parse(rest)
		if err != nil {
			var se *SyntaxError
			if errors.As(err, &se) {
				se.ByteOffset = int64(len(n.Value) - len(rest))
			}
			return merry.Prepend(err, n.ID.String())
		}
		if err = child.valid(depth+1, maxDepth); err != nil {
			return merry.Prepend(err, n.ID.String())
		}
		rest = r
	}
	return nil
}
