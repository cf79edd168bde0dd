package main

import "testing"

func TestPosition(t *testing.T) {
	tests := []struct {
		input     string
		offset    int
		line, col int
	}{
		{"ab\ncd", 4, 2, 2},
		{"ab\rcd", 4, 2, 2},
		{"ab\r\ncd", 5, 2, 2},
		{"ab\r\ncd", 3, 1, 3},
		{"a\r\r\nb", 4, 3, 1},
		{"abc", 2, 1, 3},
	}
	for i, test := range tests {
		line, col := position([]rune(test.input), test.offset)
		if line != test.line || col != test.col {
			t.Errorf("#%d: expected %d:%d for offset %d in %q, have %d:%d",
				i, test.line, test.col, test.offset, test.input, line, col)
		}
	}
}
