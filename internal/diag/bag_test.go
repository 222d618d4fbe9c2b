package diag

import (
	"testing"

	"github.com/romarionagy/pylint/internal/source"
)

func span(file source.FileID, start, end uint32) source.Span {
	return source.Span{File: file, Start: start, End: end}
}

func TestBagLimit(t *testing.T) {
	b := NewBag(2)
	if !b.Add(NewConvention(ImplicitBooleanessNotLen, span(0, 0, 1), "one")) {
		t.Fatalf("first add must succeed")
	}
	if !b.Add(NewConvention(ImplicitBooleanessNotLen, span(0, 1, 2), "two")) {
		t.Fatalf("second add must succeed")
	}
	if b.Add(NewConvention(ImplicitBooleanessNotLen, span(0, 2, 3), "three")) {
		t.Fatalf("add past the cap must be rejected")
	}
	if b.Len() != 2 {
		t.Fatalf("expected 2 items, got %d", b.Len())
	}
}

func TestBagSortDeterministic(t *testing.T) {
	b := NewBag(8)
	b.Add(NewConvention(ImplicitBooleanessNotComparison, span(1, 5, 9), "later file"))
	b.Add(NewConvention(ImplicitBooleanessNotComparison, span(0, 10, 12), "later offset"))
	b.Add(New(SevWarning, ImplicitBooleanessNotLen, span(0, 3, 8), "warning"))
	b.Add(NewError(IOLoadFileError, span(0, 3, 8), "error"))
	b.Sort()

	items := b.Items()
	if items[0].Message != "error" || items[1].Message != "warning" {
		t.Fatalf("same span must order by severity desc, got %q then %q",
			items[0].Message, items[1].Message)
	}
	if items[2].Message != "later offset" || items[3].Message != "later file" {
		t.Fatalf("unexpected tail order: %q, %q", items[2].Message, items[3].Message)
	}
}

func TestBagDedupAndMerge(t *testing.T) {
	b := NewBag(4)
	b.Add(NewConvention(ImplicitBooleanessNotLen, span(0, 0, 6), "dup"))
	b.Add(NewConvention(ImplicitBooleanessNotLen, span(0, 0, 6), "dup"))
	b.Dedup()
	if b.Len() != 1 {
		t.Fatalf("dedup: expected 1 item, got %d", b.Len())
	}

	other := NewBag(4)
	other.Add(NewConvention(ImplicitBooleanessNotComparison, span(0, 8, 10), "extra"))
	b.Merge(other)
	if b.Len() != 2 {
		t.Fatalf("merge: expected 2 items, got %d", b.Len())
	}
}

func TestHasFindings(t *testing.T) {
	b := NewBag(4)
	b.Add(New(SevInfo, UnknownCode, span(0, 0, 0), "just info"))
	if b.HasFindings() {
		t.Fatalf("info alone is not a finding")
	}
	b.Add(NewConvention(ImplicitBooleanessNotComparisonToZero, span(0, 0, 4), "finding"))
	if !b.HasFindings() {
		t.Fatalf("convention diagnostic must count as a finding")
	}
	if b.HasErrors() {
		t.Fatalf("no errors were added")
	}
}

func TestDedupReporter(t *testing.T) {
	bag := NewBag(8)
	r := NewDedupReporter(BagReporter{Bag: bag})

	d := NewConvention(ImplicitBooleanessNotLen, span(0, 0, 6), "same")
	r.Report(d)
	r.Report(d)
	r.Report(NewConvention(ImplicitBooleanessNotLen, span(0, 0, 6), "different message"))

	if bag.Len() != 2 {
		t.Fatalf("expected 2 unique diagnostics, got %d", bag.Len())
	}
}

func TestReportBuilderEmitOnce(t *testing.T) {
	bag := NewBag(4)
	rb := NewReportBuilder(BagReporter{Bag: bag},
		NewConvention(ImplicitBooleanessNotLen, span(0, 0, 6), "msg"))
	rb.WithConfidence(ConfidenceInference).
		WithFix("use x instead", FixEdit{Span: span(0, 0, 6), NewText: "x"})
	rb.Emit()
	rb.Emit()

	if bag.Len() != 1 {
		t.Fatalf("emit must deliver exactly once, got %d", bag.Len())
	}
	got := bag.Items()[0]
	if got.Confidence != ConfidenceInference {
		t.Fatalf("confidence not carried: %v", got.Confidence)
	}
	if len(got.Fixes) != 1 || got.Fixes[0].Edits[0].NewText != "x" {
		t.Fatalf("fix not carried: %+v", got.Fixes)
	}
}

func TestCodeID(t *testing.T) {
	tests := []struct {
		code Code
		id   string
	}{
		{ImplicitBooleanessNotLen, "C1802"},
		{ImplicitBooleanessNotComparison, "C1803"},
		{ImplicitBooleanessNotComparisonToString, "C1804"},
		{ImplicitBooleanessNotComparisonToZero, "C1805"},
		{IOLoadFileError, "IO4001"},
		{UnknownCode, "E0000"},
	}
	for _, tt := range tests {
		if got := tt.code.ID(); got != tt.id {
			t.Fatalf("Code(%d).ID() = %q, want %q", tt.code, got, tt.id)
		}
	}
}
