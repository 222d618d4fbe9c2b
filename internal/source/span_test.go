package source

import (
	"testing"
)

func TestSpanCover(t *testing.T) {
	tests := []struct {
		name     string
		span     Span
		other    Span
		expected Span
	}{
		{
			name:     "other extends both ends",
			span:     Span{File: 1, Start: 10, End: 20},
			other:    Span{File: 1, Start: 5, End: 25},
			expected: Span{File: 1, Start: 5, End: 25},
		},
		{
			name:     "other inside span",
			span:     Span{File: 1, Start: 10, End: 20},
			other:    Span{File: 1, Start: 12, End: 15},
			expected: Span{File: 1, Start: 10, End: 20},
		},
		{
			name:     "different file ignored",
			span:     Span{File: 1, Start: 10, End: 20},
			other:    Span{File: 2, Start: 0, End: 100},
			expected: Span{File: 1, Start: 10, End: 20},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.span.Cover(tt.other); got != tt.expected {
				t.Fatalf("Cover: expected %+v, got %+v", tt.expected, got)
			}
		})
	}
}

func TestSpanText(t *testing.T) {
	f := &File{Content: []byte("if len(x):")}

	if got := (Span{Start: 3, End: 9}).Text(f); got != "len(x)" {
		t.Fatalf("expected %q, got %q", "len(x)", got)
	}
	if got := (Span{Start: 8, End: 99}).Text(f); got != "):" {
		t.Fatalf("out-of-range end must clamp, got %q", got)
	}
	if got := (Span{Start: 5, End: 5}).Text(f); got != "" {
		t.Fatalf("empty span renders empty text, got %q", got)
	}
	if got := (Span{Start: 1, End: 2}).Text(nil); got != "" {
		t.Fatalf("nil file renders empty text, got %q", got)
	}
}
