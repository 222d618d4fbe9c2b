package diagfmt

import (
	"strings"
	"testing"

	"github.com/romarionagy/pylint/internal/diag"
	"github.com/romarionagy/pylint/internal/source"
)

func sampleBag(t *testing.T) (*diag.Bag, *source.FileSet, source.FileID) {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("sample.py", []byte("if len(items):\n    pass\n"))

	bag := diag.NewBag(16)
	d := diag.NewConvention(
		diag.ImplicitBooleanessNotLen,
		source.Span{File: fileID, Start: 3, End: 13},
		"Do not use `len(SEQUENCE)` without comparison to determine if a sequence is empty",
	).WithConfidence(diag.ConfidenceInference)
	bag.Add(d)
	return bag, fs, fileID
}

func TestPrettyHeaderAndUnderline(t *testing.T) {
	bag, fs, _ := sampleBag(t)

	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{})
	out := sb.String()

	if !strings.Contains(out, "sample.py:1:4: CONVENTION C1802:") {
		t.Fatalf("missing header in:\n%s", out)
	}
	lines := strings.Split(out, "\n")
	if len(lines) < 3 {
		t.Fatalf("output too short:\n%s", out)
	}
	if lines[1] != "    if len(items):" {
		t.Fatalf("context line = %q", lines[1])
	}
	// len(items) spans bytes 3..13, so the underline starts under column 4.
	if lines[2] != "       ^~~~~~~~~~" {
		t.Fatalf("underline = %q", lines[2])
	}
}

func TestPrettyConfidenceAndColor(t *testing.T) {
	bag, fs, _ := sampleBag(t)

	var plain strings.Builder
	Pretty(&plain, bag, fs, PrettyOpts{ShowConfidence: true})
	if !strings.Contains(plain.String(), "(INFERENCE)") {
		t.Fatalf("confidence missing:\n%s", plain.String())
	}
	if strings.Contains(plain.String(), "\x1b[") {
		t.Fatalf("unexpected escape codes without color:\n%q", plain.String())
	}

	var colored strings.Builder
	Pretty(&colored, bag, fs, PrettyOpts{Color: true})
	if !strings.Contains(colored.String(), "\x1b[") {
		t.Fatalf("expected escape codes with color:\n%q", colored.String())
	}
}

func TestPrettyNotesAndFixes(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("sample.py", []byte("x == []\n"))

	sp := source.Span{File: fileID, Start: 0, End: 7}
	d := diag.NewConvention(diag.ImplicitBooleanessNotComparison, sp, "'x == []' can be simplified")
	d.Notes = append(d.Notes, diag.Note{Span: sp, Msg: "empty list is falsey"})
	d.Fixes = append(d.Fixes, diag.Fix{
		Title: "use implicit booleaness",
		Edits: []diag.FixEdit{{Span: sp, NewText: "not x"}},
	})

	bag := diag.NewBag(4)
	bag.Add(d)

	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{ShowNotes: true, ShowFixes: true})
	out := sb.String()

	if !strings.Contains(out, "note: empty list is falsey") {
		t.Fatalf("note missing:\n%s", out)
	}
	if !strings.Contains(out, "fix: replace with `not x`") {
		t.Fatalf("fix missing:\n%s", out)
	}

	var quiet strings.Builder
	Pretty(&quiet, bag, fs, PrettyOpts{})
	if strings.Contains(quiet.String(), "note:") || strings.Contains(quiet.String(), "fix:") {
		t.Fatalf("notes/fixes shown when disabled:\n%s", quiet.String())
	}
}

func TestPrettySkipsContextForEmptySpan(t *testing.T) {
	fs := source.NewFileSet()
	bag := diag.NewBag(4)
	bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{}, "failed to load snapshot: boom"))

	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{})
	out := sb.String()

	if !strings.Contains(out, "ERROR IO4001: failed to load snapshot: boom") {
		t.Fatalf("header missing:\n%s", out)
	}
	if strings.Contains(out, "^") {
		t.Fatalf("unexpected underline:\n%s", out)
	}
}
