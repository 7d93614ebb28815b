package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruthy(t *testing.T) {
	assert.False(t, Truthy(nil))
	assert.False(t, Truthy(false))
	assert.True(t, Truthy(true))
	assert.True(t, Truthy(int64(0)))
	assert.True(t, Truthy(""))
}

func TestToStringNumbers(t *testing.T) {
	assert.Equal(t, "3", ToString(int64(3)))
	assert.Equal(t, "3.5", ToString(3.5))
	assert.Equal(t, "1.0", ToString(1.0))
	assert.Equal(t, "nil", ToString(nil))
	assert.Equal(t, "true", ToString(true))
}

func TestTableArrayKeysNormalizeFloatAndInt(t *testing.T) {
	tbl := NewTable()
	assert.NoError(t, tbl.RawSet(int64(1), "a"))
	assert.Equal(t, "a", tbl.RawGet(1.0))
}

func TestTableLenContiguousRun(t *testing.T) {
	tbl := NewTable()
	tbl.RawSet(int64(1), "a")
	tbl.RawSet(int64(2), "b")
	tbl.RawSet(int64(3), "c")
	assert.Equal(t, int64(3), tbl.Len())
}

func TestTableRawSetNilRemoves(t *testing.T) {
	tbl := NewTable()
	tbl.RawSet("k", "v")
	assert.Equal(t, "v", tbl.RawGet("k"))
	tbl.RawSet("k", nil)
	assert.Nil(t, tbl.RawGet("k"))
}

func TestTableRejectsNaNKey(t *testing.T) {
	tbl := NewTable()
	err := tbl.RawSet(nan(), "x")
	assert.Error(t, err)
}

func nan() float64 {
	var zero float64
	return zero / zero
}

func TestEnvironmentLookupChain(t *testing.T) {
	global := NewEnvironment(nil)
	global.Define("x", int64(1))
	child := NewEnvironment(global)
	v, ok := child.Get("x")
	assert.True(t, ok)
	assert.Equal(t, int64(1), v)

	assert.True(t, child.Assign("x", int64(2)))
	gv, _ := global.Get("x")
	assert.Equal(t, int64(2), gv, "Assign mutates the enclosing binding in place")

	assert.False(t, child.Assign("undeclared", int64(9)))
}

func TestParseNumberDecimal(t *testing.T) {
	v, err := ParseNumber("42")
	assert.NoError(t, err)
	assert.Equal(t, int64(42), v)

	v, err = ParseNumber("3.14")
	assert.NoError(t, err)
	assert.Equal(t, 3.14, v)
}

func TestParseNumberHexInteger(t *testing.T) {
	v, err := ParseNumber("0xFF")
	assert.NoError(t, err)
	assert.Equal(t, int64(255), v)
}

func TestParseNumberHexFloatWithoutExponent(t *testing.T) {
	v, err := ParseNumber("0x1.8")
	assert.NoError(t, err)
	assert.Equal(t, 1.5, v)
}

func TestParseNumberHexFloatWithExponent(t *testing.T) {
	v, err := ParseNumber("0x1p4")
	assert.NoError(t, err)
	assert.Equal(t, 16.0, v)
}
