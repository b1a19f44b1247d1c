package words

import (
	"slices"
	"strings"
	"testing"
)

func TestSegment(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		highlights []string
		want       []Token
	}{
		{
			name:       "highlight_by_prefix",
			text:       "React Bits is great",
			highlights: []string{"React", "great"},
			want: []Token{
				{Text: "React", Index: 0, Highlighted: true},
				{Text: "Bits", Index: 1},
				{Text: "is", Index: 2},
				{Text: "great", Index: 3, Highlighted: true},
			},
		},
		{
			name:       "prefix_not_substring",
			text:       "unreactive Reactor",
			highlights: []string{"React"},
			want: []Token{
				{Text: "unreactive", Index: 0},
				{Text: "Reactor", Index: 1, Highlighted: true},
			},
		},
		{
			name:       "case_sensitive",
			text:       "react React",
			highlights: []string{"React"},
			want: []Token{
				{Text: "react", Index: 0},
				{Text: "React", Index: 1, Highlighted: true},
			},
		},
		{
			name:       "collapses_whitespace",
			text:       "  one\ttwo\n\nthree  ",
			highlights: nil,
			want: []Token{
				{Text: "one", Index: 0},
				{Text: "two", Index: 1},
				{Text: "three", Index: 2},
			},
		},
		{
			name:       "empty_prefix_ignored",
			text:       "a b",
			highlights: []string{""},
			want: []Token{
				{Text: "a", Index: 0},
				{Text: "b", Index: 1},
			},
		},
		{
			name: "empty_text",
			text: "",
			want: nil,
		},
		{
			name: "only_whitespace",
			text: " \t ",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Segment(tt.text, tt.highlights)
			if !slices.Equal(got, tt.want) {
				t.Fatalf("Segment(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}

func TestSegmentMatchesFields(t *testing.T) {
	inputs := []string{
		"The quick brown fox",
		"single",
		"tabs\tand\nnewlines  mixed",
		"",
	}
	for _, in := range inputs {
		got := Segment(in, []string{"q"})
		fields := strings.Fields(in)
		if len(got) != len(fields) {
			t.Fatalf("len(Segment(%q)) = %d, want %d", in, len(got), len(fields))
		}
		for i, tok := range got {
			if tok.Text != fields[i] || tok.Index != i {
				t.Fatalf("token %d = %+v, want text %q index %d", i, tok, fields[i], i)
			}
		}
	}
}

func TestSegmentIdempotent(t *testing.T) {
	text := "Falling words bounce around"
	hl := []string{"bo", "Fall"}
	a := Segment(text, hl)
	b := Segment(text, hl)
	if !slices.Equal(a, b) {
		t.Fatalf("expected identical output, got %+v and %+v", a, b)
	}
}
