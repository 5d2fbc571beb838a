package pipeline

import "strings"

// headingDelimiters are tried in order; the first delimiter present in the
// heading wins, split on its first occurrence. The order is part of the
// dialect: en dash, hyphen, em dash, double hyphen. Reordering changes how
// headings containing more than one dash variant split.
var headingDelimiters = []string{
	" – ",  // en dash
	" - ",  // hyphen
	" — ",  // em dash
	" -- ", // double hyphen
}

// SplitHeading separates a section heading into an optional day label and a
// meal title, both trimmed. A heading without a recognized delimiter has no
// day label; the whole trimmed heading becomes the meal title.
func SplitHeading(rawTitle string) (dayLabel, mealTitle string) {
	for _, delim := range headingDelimiters {
		if idx := strings.Index(rawTitle, delim); idx != -1 {
			return strings.TrimSpace(rawTitle[:idx]), strings.TrimSpace(rawTitle[idx+len(delim):])
		}
	}
	return "", strings.TrimSpace(rawTitle)
}
