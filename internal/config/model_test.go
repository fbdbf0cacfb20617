package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseScalar(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want Scalar
	}{
		{"nil is absent", nil, Scalar{}},
		{"float passes through", 2.5, Float(2.5)},
		{"int widens", 3, Float(3)},
		{"int64 widens", int64(7), Float(7)},
		{"numeric string parses", "4.5", Float(4.5)},
		{"padded numeric string parses", " 10 ", Float(10)},
		{"non-numeric string is invalid", "soon", Invalid()},
		{"bool is invalid", true, Invalid()},
		{"map is invalid", map[string]any{}, Invalid()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseScalar(tc.in))
		})
	}
}

func TestScalarInt(t *testing.T) {
	i, ok := Float(5).Int()
	assert.True(t, ok)
	assert.Equal(t, int64(5), i)

	_, ok = Float(5.5).Int()
	assert.False(t, ok)

	_, ok = Invalid().Int()
	assert.False(t, ok)

	_, ok = Scalar{}.Int()
	assert.False(t, ok)
}
