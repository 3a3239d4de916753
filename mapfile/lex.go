// SPDX-License-Identifier: GPL-2.0-or-later

package mapfile

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

type itemType int

const (
	itemError  itemType = iota
	itemEOF
	itemString // quoted string includes quotes
	itemChar   // '(' or ')'
	itemSpace  // <= 32
	itemWord
)

const eof = -1

type item struct {
	typ itemType
	pos int
	val string
}

func (i item) String() string {
	switch i.typ {
	case itemEOF:
		return "EOF"
	case itemError:
		return i.val
	}
	if len(i.val) > 10 {
		return fmt.Sprintf("%.10q...", i.val)
	}
	return fmt.Sprintf("%q", i.val)
}

type stateFn func(*lexer) stateFn

type lexer struct {
	input string
	start int
	pos   int
	width int
	items chan item
	state stateFn
}

func lex(input string) *lexer {
	l := &lexer{
		input: input,
		items: make(chan item, 2),
		state: lexAction,
	}
	return l
}

func (l *lexer) nextItem() item {
	for {
		select {
		case item := <-l.items:
			return item
		default:
			if l.state == nil {
				return item{itemEOF, l.pos, ""}
			}
			l.state = l.state(l)
		}
	}
}

// tokens returns all items which are not space, up to the first error or
// the end of input.
func (l *lexer) tokens() ([]item, *item) {
	var r []item
	for {
		i := l.nextItem()
		switch i.typ {
		case itemSpace:
			continue
		case itemEOF:
			return r, nil
		case itemError:
			return r, &i
		default:
			r = append(r, i)
		}
	}
}

func (l *lexer) emit(t itemType) {
	l.items <- item{t, l.start, l.input[l.start:l.pos]}
	l.start = l.pos
}

func (l *lexer) next() rune {
	if l.pos >= len(l.input) {
		l.width = 0
		return eof
	}
	r, w := utf8.DecodeRuneInString(l.input[l.pos:])
	l.width = w
	l.pos += l.width
	return r
}

func (l *lexer) backup() {
	l.pos -= l.width
}

func (l *lexer) peek() rune {
	r := l.next()
	l.backup()
	return r
}

func (l *lexer) errorf(format string, args ...interface{}) stateFn {
	l.items <- item{
		itemError,
		l.start,
		fmt.Sprintf(format, args...),
	}
	return nil
}

func lexAction(l *lexer) stateFn {
	switch r := l.next(); {
	case r == eof:
		l.emit(itemEOF)
		return nil
	case isSpace(r):
		return lexSpace
	case r == '"':
		return lexQuote
	case r == '(' || r == ')':
		l.emit(itemChar)
		return lexAction
	case isWordRune(r):
		l.backup()
		return lexWord
	default:
		return l.errorf("unhandled char: %#U", r)
	}
}

func lexSpace(l *lexer) stateFn {
	for isSpace(l.peek()) {
		l.next()
	}
	l.emit(itemSpace)
	return lexAction
}

func lexQuote(l *lexer) stateFn {
Loop:
	for {
		switch l.next() {
		case '"':
			break Loop
		case eof, '\n':
			return l.errorf("unterminated string")
		}
	}
	l.emit(itemString)
	return lexAction
}

func lexWord(l *lexer) stateFn {
	for isWordRune(l.peek()) {
		l.next()
	}
	l.emit(itemWord)
	return lexAction
}

func isWordRune(r rune) bool {
	// this is an ugly ascii workaround
	return r > ' ' && !strings.ContainsRune(`"()`, r)
}

func isSpace(r rune) bool {
	return r != eof && r <= ' '
}

func unquote(s string) string {
	s = strings.TrimPrefix(s, `"`)
	return strings.TrimSuffix(s, `"`)
}
