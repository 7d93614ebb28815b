package pos

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPositionString(t *testing.T) {
	assert.Equal(t, "3:7", Position{Line: 3, Column: 7}.String())
}

func TestPositionLess(t *testing.T) {
	assert.True(t, Position{Line: 1, Column: 9}.Less(Position{Line: 2, Column: 1}))
	assert.True(t, Position{Line: 2, Column: 1}.Less(Position{Line: 2, Column: 2}))
	assert.False(t, Position{Line: 2, Column: 2}.Less(Position{Line: 2, Column: 2}))
}

func TestJoinEnclosesBothSpans(t *testing.T) {
	a := Span{Start: Position{1, 1}, End: Position{1, 5}, StartOffset: 0, EndOffset: 4}
	b := Span{Start: Position{2, 1}, End: Position{2, 3}, StartOffset: 10, EndOffset: 12}
	joined := Join(a, b)
	assert.Equal(t, a.Start, joined.Start)
	assert.Equal(t, b.End, joined.End)
	assert.Equal(t, 0, joined.StartOffset)
	assert.Equal(t, 12, joined.EndOffset)
}

func TestJoinOrderIndependent(t *testing.T) {
	a := Span{Start: Position{1, 1}, End: Position{1, 5}, StartOffset: 0, EndOffset: 4}
	b := Span{Start: Position{2, 1}, End: Position{2, 3}, StartOffset: 10, EndOffset: 12}
	assert.Equal(t, Join(a, b), Join(b, a))
}
