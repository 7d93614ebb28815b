package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/OxenFxc/lua-ast-parser/pos"
)

func TestNewDefaultsTagFromUUID(t *testing.T) {
	c := New("source", "")
	assert.Len(t, c.Tag, 8)
}

func TestRecordAndHasErrors(t *testing.T) {
	c := New("line one\nline two", "test")
	assert.False(t, c.HasErrors())
	c.Record(Warning, "just a warning", pos.Span{Start: pos.Position{Line: 1, Column: 1}}, "")
	assert.False(t, c.HasErrors())
	c.Errorf(pos.Span{Start: pos.Position{Line: 2, Column: 3}}, "lexer", "bad token %q", "@")
	assert.True(t, c.HasErrors())
	assert.Equal(t, 1, c.ErrorCount())
}

func TestEntriesPreserveInsertionOrder(t *testing.T) {
	c := New("", "test")
	c.Record(Info, "first", pos.Span{}, "")
	c.Record(Info, "second", pos.Span{}, "")
	entries := c.Entries()
	assert.Equal(t, "first", entries[0].Message)
	assert.Equal(t, "second", entries[1].Message)
}

func TestRenderIncludesOffendingLine(t *testing.T) {
	c := New("local x = 1\nreturn x +", "test")
	c.Errorf(pos.Span{Start: pos.Position{Line: 2, Column: 11}}, "parser", "unexpected EOF")
	rendered := c.Render(c.Entries()[0])
	assert.Contains(t, rendered, "return x +")
	assert.Contains(t, rendered, "[ERROR]")
}

func TestSourceOverridesTag(t *testing.T) {
	c := New("", "default-tag")
	c.Record(Error, "oops", pos.Span{}, "eval")
	assert.Equal(t, "eval", c.Entries()[0].Source)
	c.Record(Error, "oops2", pos.Span{}, "")
	assert.Equal(t, "default-tag", c.Entries()[1].Source)
}
