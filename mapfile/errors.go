// SPDX-License-Identifier: GPL-2.0-or-later

package mapfile

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrUnknownClass = errors.New("unknown entity class")
	ErrNoBrushes    = errors.New("map has no brushes")
)

// ParseError describes text that does not follow the map grammar.
// Offset is the byte offset into the source.
type ParseError struct {
	Offset int
	Text   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at offset %d: %s: %q", e.Offset, e.Reason, e.Text)
}

// parseError builds a ParseError quoting the source line around off.
func parseError(src string, off int, format string, v ...interface{}) *ParseError {
	if off > len(src) {
		off = len(src)
	}
	start, end := off, off
	for start > 0 && src[start-1] != '\n' {
		start--
	}
	for end < len(src) && src[end] != '\n' && src[end] != '\r' {
		end++
	}
	text := src[start:end]
	if len(text) > 60 {
		text = text[:60]
	}
	return &ParseError{
		Offset: off,
		Text:   text,
		Reason: fmt.Sprintf(format, v...),
	}
}
