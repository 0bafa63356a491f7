package ansi_test

import (
	"fmt"
	"testing"

	"github.com/arthur-debert/ansiout/pkg/ansi"
	"github.com/stretchr/testify/assert"
)

func TestToBool(t *testing.T) {
	tests := []struct {
		input    any
		expected bool
	}{
		{nil, false},
		{true, true},
		{false, false},
		{"yes", true},
		{"YES", true},
		{"on", true},
		{"ON", true},
		{"1", true},
		{"true", true},
		{"TRUE", true},
		{"True", true},
		{"no", false},
		{"off", false},
		{"0", false},
		{"false", false},
		{"random", false},
		{"", false},
		{" yes", false},
		{1, true},
		{0, false},
		{42, false},
		{-1, false},
		{int8(1), true},
		{int64(1), true},
		{uint(1), true},
		{uint64(2), false},
		{1.0, false},
		{[]string{"yes"}, false},
		{struct{}{}, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%T(%v)", tt.input, tt.input), func(t *testing.T) {
			assert.Equal(t, tt.expected, ansi.ToBool(tt.input))
		})
	}
}
