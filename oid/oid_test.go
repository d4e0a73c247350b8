package oid

import (
	"testing"

	assert "github.com/stretchr/testify/require"
)

func TestParseAcceptsValidText(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"simple", "1.3.6.1.4.1.42"},
		{"leadingDot", ".1.3.6.1"},
		{"singlePart", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, err := Parse(tt.in)
			assert.NoError(t, err)
			assert.GreaterOrEqual(t, o.Len(), 1)
		})
	}
}

func TestParseErrors(t *testing.T) {
	_, err := Parse("")
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = Parse(".")
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = Parse("1.3.x.1")
	assert.ErrorIs(t, err, ErrInvalidPart)
}

func TestStringRoundTrip(t *testing.T) {
	o := MustParse("1.3.6.1.4.1.42")
	assert.Equal(t, "1.3.6.1.4.1.42", o.String())

	back, err := Parse(o.String())
	assert.NoError(t, err)
	assert.True(t, o.Equal(back))
}

func TestEmptyOid(t *testing.T) {
	o := Empty()
	assert.True(t, o.IsEmpty())
	assert.Equal(t, 0, o.Len())
	assert.Equal(t, "", o.String())
}

func TestCompareAndLess(t *testing.T) {
	tests := []struct {
		name string
		a, b Oid
		want int
	}{
		{"equal", MustParse("1.3.6.1"), MustParse("1.3.6.1"), 0},
		{"less", MustParse("1.3.6.1"), MustParse("1.3.6.2"), -1},
		{"greater", MustParse("1.3.6.2"), MustParse("1.3.6.1"), 1},
		{"prefixLess", MustParse("1.3.6"), MustParse("1.3.6.1"), -1},
		{"prefixGreater", MustParse("1.3.6.1"), MustParse("1.3.6"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Compare(tt.b))
			assert.Equal(t, tt.want < 0, tt.a.Less(tt.b))
		})
	}
}

func TestStartsWith(t *testing.T) {
	o := MustParse("1.3.6.1.4.1.42")
	assert.True(t, o.StartsWith(MustParse("1.3.6")))
	assert.True(t, o.StartsWith(Empty()))
	assert.True(t, o.StartsWith(o))
	assert.False(t, o.StartsWith(MustParse("1.3.6.1.4.1.42.1")))
	assert.False(t, o.StartsWith(MustParse("1.3.7")))
}

func TestCommonPrefixLen(t *testing.T) {
	a := MustParse("1.3.6.1.4.1")
	b := MustParse("1.3.6.1.5.9")
	assert.Equal(t, 4, a.CommonPrefixLen(b))
}

func TestParentChild(t *testing.T) {
	o := MustParse("1.3.6.1")
	parent, ok := o.Parent()
	assert.True(t, ok)
	assert.Equal(t, "1.3.6", parent.String())

	child := parent.Child(1)
	assert.True(t, child.Equal(o))

	_, ok = MustParse("1").Parent()
	assert.False(t, ok)
}

func TestTruncate(t *testing.T) {
	o := MustParse("1.3.6.1.4.1.42")
	assert.Equal(t, "1.3.6.1", o.Truncate(4).String())
	assert.True(t, o.Equal(o.Truncate(99)))
}
