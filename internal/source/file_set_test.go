package source

import (
	"testing"
)

func TestResolveMultiline(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("sample.py", []byte("x = 1\nif len(x):\n    pass\n"))

	tests := []struct {
		name     string
		off      uint32
		expected LineCol
	}{
		{"first byte", 0, LineCol{Line: 1, Col: 1}},
		{"newline byte stays on its line", 5, LineCol{Line: 1, Col: 6}},
		{"start of second line", 6, LineCol{Line: 2, Col: 1}},
		{"inside second line", 9, LineCol{Line: 2, Col: 4}},
		{"start of third line", 17, LineCol{Line: 3, Col: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, _ := fs.Resolve(Span{File: id, Start: tt.off, End: tt.off})
			if start != tt.expected {
				t.Fatalf("offset %d: expected %+v, got %+v", tt.off, tt.expected, start)
			}
		})
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("sample.py", []byte("first\nsecond\nthird"))
	f := fs.Get(id)

	if got := f.GetLine(1); got != "first" {
		t.Fatalf("line 1: got %q", got)
	}
	if got := f.GetLine(2); got != "second" {
		t.Fatalf("line 2: got %q", got)
	}
	if got := f.GetLine(3); got != "third" {
		t.Fatalf("line 3 without trailing newline: got %q", got)
	}
	if got := f.GetLine(4); got != "" {
		t.Fatalf("missing line must be empty, got %q", got)
	}
	if got := f.GetLine(0); got != "" {
		t.Fatalf("line 0 must be empty, got %q", got)
	}
}

func TestLoadNormalization(t *testing.T) {
	content := []byte("a\r\nb")
	normalized, changed := normalizeCRLF(content)
	if !changed || string(normalized) != "a\nb" {
		t.Fatalf("normalizeCRLF: got %q (changed=%v)", normalized, changed)
	}

	bom := []byte{0xEF, 0xBB, 0xBF, 'x'}
	trimmed, had := removeBOM(bom)
	if !had || string(trimmed) != "x" {
		t.Fatalf("removeBOM: got %q (had=%v)", trimmed, had)
	}
}

func TestFileVersioning(t *testing.T) {
	fs := NewFileSet()
	id1 := fs.Add("mod.py", []byte("v1"), 0)
	id2 := fs.Add("mod.py", []byte("v2"), 0)
	if id1 == id2 {
		t.Fatalf("re-adding a path must mint a fresh ID")
	}
	f, ok := fs.GetByPath("mod.py")
	if !ok || string(f.Content) != "v2" {
		t.Fatalf("GetByPath must return the latest version")
	}
}
