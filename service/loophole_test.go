package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindLoopholes(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "empty text",
			text: "",
			want: []string{},
		},
		{
			name: "no exception phrase",
			text: "This law covers constitutional protections.",
			want: []string{},
		},
		{
			name: "single unless",
			text: "You may not enter unless authorized.",
			want: []string{"You may not enter **unless** authorized."},
		},
		{
			name: "case preserved",
			text: "Entry is barred UNLESS approved.",
			want: []string{"Entry is barred **UNLESS** approved."},
		},
		{
			name: "if requires trailing space",
			text: "Please verify the form.",
			want: []string{},
		},
		{
			name: "if with trailing space",
			text: "Pay if due",
			want: []string{"Pay **if **due"},
		},
		{
			// The marker covers the part of "if " that survives trimming.
			// A plain replace over the trimmed window would mark nothing here.
			name: "if at end of text clamps the marker",
			text: "Check if ",
			want: []string{"Check **if**"},
		},
		{
			name: "phrase snippets may overlap",
			text: "No exception applies.",
			want: []string{
				"No **except**ion applies.",
				"No **exception** applies.",
			},
		},
		{
			// Each snippet marks only its own occurrence. A plain replace
			// over the window would mark both copies in both snippets.
			name: "each occurrence marks its own position",
			text: "unless unless",
			want: []string{
				"**unless** unless",
				"unless **unless**",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FindLoopholes(tt.text))
		})
	}
}

func TestFindLoopholesWindow_ClampsToWindow(t *testing.T) {
	text := "aaaaaaaaaa unless bbbbbbbbbb"

	got := FindLoopholesWindow(text, 5)
	assert.Equal(t, []string{"aaaa **unless** bbbb"}, got)
}

func TestFindLoopholesWindow_MultiByteOffsets(t *testing.T) {
	text := "Ünïcödé text exempt ñ"

	got := FindLoopholesWindow(text, 2)
	assert.Equal(t, []string{"t **exempt** ñ"}, got)
}

func TestFindLoopholes_PhraseOrder(t *testing.T) {
	text := "Allowed if signed, except on holidays, unless waived."

	got := FindLoopholes(text)
	assert.Len(t, got, 3)
	assert.Contains(t, got[0], "**unless**")
	assert.Contains(t, got[1], "**except**")
	assert.Contains(t, got[2], "**if **")
}

func TestExceptionPhrases_ReturnsCopy(t *testing.T) {
	phrases := ExceptionPhrases()
	phrases[0] = "changed"
	assert.Equal(t, "unless", ExceptionPhrases()[0])
}
