package pipeline

import (
	"context"
	"testing"
)

func TestPreprocessMarkdown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "plain content unchanged",
			input:    "# Week 9\n\n## Monday – Pizza\n",
			expected: "# Week 9\n\n## Monday – Pizza\n",
		},
		{
			name:     "strips UTF-8 BOM",
			input:    "\uFEFF# Week 9",
			expected: "# Week 9",
		},
		{
			name:     "BOM only at start is stripped",
			input:    "\uFEFF# A\nB",
			expected: "# A\nB",
		},
		{
			name:     "CRLF normalized to LF",
			input:    "# A\r\n\r\n## B\r\n- item\r\n",
			expected: "# A\n\n## B\n- item\n",
		},
		{
			name:     "bare CR normalized to LF",
			input:    "# A\r## B\r",
			expected: "# A\n## B\n",
		},
		{
			name:     "mixed line endings",
			input:    "a\r\nb\rc\nd",
			expected: "a\nb\nc\nd",
		},
		{
			name:     "three newlines compressed to two",
			input:    "a\n\n\nb",
			expected: "a\n\nb",
		},
		{
			name:     "many newlines compressed to two",
			input:    "a\n\n\n\n\n\nb",
			expected: "a\n\nb",
		},
		{
			name:     "two newlines preserved",
			input:    "a\n\nb",
			expected: "a\n\nb",
		},
		{
			name:     "CRLF runs compressed after normalization",
			input:    "a\r\n\r\n\r\nb",
			expected: "a\n\nb",
		},
		{
			name:     "BOM then CRLF then excess blanks",
			input:    "\uFEFF# A\r\n\r\n\r\n\r\n## B",
			expected: "# A\n\n## B",
		},
	}

	preprocessor := &PlanPreprocessor{}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx := context.Background()
			got := preprocessor.PreprocessMarkdown(ctx, tt.input)
			if got != tt.expected {
				t.Errorf("PreprocessMarkdown(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestPreprocessMarkdown_ContextCancellation(t *testing.T) {
	t.Parallel()

	preprocessor := &PlanPreprocessor{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately

	input := "\uFEFF# A\r\n\r\n\r\nB"

	// When context is cancelled, returns content unchanged
	got := preprocessor.PreprocessMarkdown(ctx, input)
	if got != input {
		t.Errorf("PreprocessMarkdown() with cancelled context should return content unchanged, got %q", got)
	}
}
