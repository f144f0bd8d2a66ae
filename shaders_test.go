package main

import (
	"strings"
	"testing"
)

// TestEmbeddedShadersComplete checks that every program's shader pair
// is embedded and carries the expected GLSL version.
func TestEmbeddedShadersComplete(t *testing.T) {
	for name, files := range shaderPrograms {
		for _, file := range files {
			data, err := shaderFS.ReadFile("assets/shaders/" + file)
			if err != nil {
				t.Errorf("program %s: missing shader %s: %v", name, file, err)
				continue
			}
			src := string(data)
			if !strings.HasPrefix(src, "#version 410 core") {
				t.Errorf("shader %s does not start with #version 410 core", file)
			}
			if !strings.Contains(src, "void main()") {
				t.Errorf("shader %s has no main function", file)
			}
		}
	}
}

func TestProgramForFile(t *testing.T) {
	tests := []struct {
		name   string
		file   string
		want   string
		wantOK bool
	}{
		{name: "VertexByBase", file: "body.vert", want: "body", wantOK: true},
		{name: "FragmentWithPath", file: "assets/shaders/skybox.frag", want: "skybox", wantOK: true},
		{name: "TextShader", file: "text.frag", want: "text", wantOK: true},
		{name: "UnknownFile", file: "notes.txt", wantOK: false},
		{name: "EditorBackup", file: "body.vert~", wantOK: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := programForFile(tc.file)
			if ok != tc.wantOK {
				t.Fatalf("programForFile(%q): ok = %v, want %v", tc.file, ok, tc.wantOK)
			}
			if ok && got != tc.want {
				t.Errorf("programForFile(%q): got %q, want %q", tc.file, got, tc.want)
			}
		})
	}
}
