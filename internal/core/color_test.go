package core

import "testing"

func TestColorString(t *testing.T) {
	tests := []struct {
		c    Color
		want string
	}{
		{ColorDefault, "default"},
		{ColorShip, "ship"},
		{ColorStatus, "status"},
		{Color(NumColors), "unknown"},
	}

	for _, tc := range tests {
		if got := tc.c.String(); got != tc.want {
			t.Errorf("Color(%d).String() = %q, expected %q", tc.c, got, tc.want)
		}
	}
}
