// SPDX-License-Identifier: GPL-2.0-or-later

package mapfile

import (
	"sort"
)

// span is the half open byte range [Start, End) of the source.
type span struct {
	Start, End int
}

func (s span) contains(off int) bool {
	return off >= s.Start && off < s.End
}

// commentSpans finds all // and /* */ comments of src. Comment markers
// inside quoted strings do not start a comment.
func commentSpans(src string) []span {
	var r []span
	quoted := false
	for i := 0; i < len(src); i++ {
		switch c := src[i]; {
		case c == '"':
			quoted = !quoted
		case c == '\n':
			// strings never span lines
			quoted = false
		case quoted || c != '/' || i+1 >= len(src):
		case src[i+1] == '/':
			start := i
			for i < len(src) && src[i] != '\n' {
				i++
			}
			r = append(r, span{start, i})
			// the newline ends the comment but is not part of it
			i--
		case src[i+1] == '*':
			start := i
			i += 2
			for i < len(src) && !(src[i] == '*' && i+1 < len(src) && src[i+1] == '/') {
				i++
			}
			end := i + 2
			if end > len(src) {
				end = len(src)
			}
			r = append(r, span{start, end})
			i = end - 1
		}
	}
	return r
}

// inSpans reports whether off lies inside one of the sorted spans.
func inSpans(spans []span, off int) bool {
	i := sort.Search(len(spans), func(i int) bool {
		return spans[i].End > off
	})
	return i < len(spans) && spans[i].contains(off)
}

// blank replaces every comment with spaces, keeping newlines and therefore
// all offsets.
func blank(src string, spans []span) string {
	b := []byte(src)
	for _, s := range spans {
		for i := s.Start; i < s.End; i++ {
			if b[i] != '\n' && b[i] != '\r' {
				b[i] = ' '
			}
		}
	}
	return string(b)
}

// braces returns the outermost {...} regions of text[start:end], including
// the braces. Braces inside quoted strings are ignored. The text is
// expected to be free of comments; errors quote src, of which text is the
// blanked copy.
func braces(src, text string, start, end int) ([]span, error) {
	var r []span
	var depth int
	quoted := false
	open := -1
	for i := start; i < end; i++ {
		switch text[i] {
		case '"':
			quoted = !quoted
		case '\n':
			quoted = false
		case '{':
			if quoted {
				break
			}
			if depth == 0 {
				open = i
			}
			depth++
		case '}':
			if quoted {
				break
			}
			if depth == 0 {
				return nil, parseError(src, i, "unmatched closing brace")
			}
			depth--
			if depth == 0 {
				r = append(r, span{open, i + 1})
			}
		}
	}
	if depth != 0 {
		return nil, parseError(src, open, "unterminated block")
	}
	return r, nil
}

// gaps returns the parts of [start, end) not covered by the sorted spans.
func gaps(spans []span, start, end int) []span {
	var r []span
	for _, s := range spans {
		if s.Start > start {
			r = append(r, span{start, s.Start})
		}
		start = s.End
	}
	if end > start {
		r = append(r, span{start, end})
	}
	return r
}
