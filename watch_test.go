package main

import "testing"

func TestIsShaderFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"assets/shaders/body.vert", true},
		{"assets/shaders/body.frag", true},
		{"BODY.FRAG", true},
		{"assets/shaders/notes.txt", false},
		{"assets/shaders/body.vert.swp", false},
		{"body", false},
	}

	for _, tc := range tests {
		if got := isShaderFile(tc.path); got != tc.want {
			t.Errorf("isShaderFile(%q): got %v, want %v", tc.path, got, tc.want)
		}
	}
}
