package keyfile

import (
	"bufio"
	"io"
	"strings"
)

// Tokenizer converts a keyfile byte stream into a sequence of tokens.
// It is single pass and never rewinds. Comment lines ($ in column one)
// are only recognized at the start of a line, as are the * keyword
// markers; a * or $ appearing mid-line is ordinary word content.
type Tokenizer struct {
	rd      *bufio.Reader
	line    int
	midLine bool
	eof     bool
}

func NewTokenizer(r io.Reader) *Tokenizer {
	return &Tokenizer{rd: bufio.NewReader(r), line: 1}
}

// Line returns the 1-based line number of the tokenizer's current position.
func (tz *Tokenizer) Line() int {
	return tz.line
}

// Next returns the next token in the stream. After the first
// TokenEndOfInput every subsequent call returns TokenEndOfInput.
func (tz *Tokenizer) Next() Token {
	if tz.eof {
		return Token{Kind: TokenEndOfInput, Line: tz.line}
	}
	c, ok := tz.peek()
	if !ok {
		tz.eof = true
		return Token{Kind: TokenEndOfInput, Line: tz.line}
	}
	if !tz.midLine {
		switch c {
		case '$':
			return tz.scanComment()
		case '*':
			tz.read()
			tz.midLine = true
			return Token{Kind: TokenAsterisk, Text: "*", Line: tz.line}
		}
	}
	switch {
	case c == '\n':
		tz.read()
		tok := Token{Kind: TokenNewline, Text: "\n", Line: tz.line}
		tz.line++
		tz.midLine = false
		return tok
	case c == ',':
		tz.read()
		tz.midLine = true
		return Token{Kind: TokenComma, Text: ",", Line: tz.line}
	case isSpace(c):
		return tz.scanWhitespace()
	case isDigit(c) || c == '-':
		return tz.scanNumber()
	default:
		return tz.scanWord()
	}
}

func (tz *Tokenizer) peek() (byte, bool) {
	b, err := tz.rd.Peek(1)
	if err != nil {
		return 0, false
	}
	return b[0], true
}

func (tz *Tokenizer) read() byte {
	c, _ := tz.rd.ReadByte()
	return c
}

// scanComment consumes a $-comment up to but not including the newline.
func (tz *Tokenizer) scanComment() Token {
	var sb strings.Builder
	tz.read() // '$'
	for {
		c, ok := tz.peek()
		if !ok || c == '\n' {
			break
		}
		sb.WriteByte(tz.read())
	}
	tz.midLine = true
	return Token{Kind: TokenComment, Text: sb.String(), Line: tz.line}
}

func (tz *Tokenizer) scanWhitespace() Token {
	var sb strings.Builder
	sb.WriteByte(tz.read())
	for {
		c, ok := tz.peek()
		if !ok || c == '\n' || !isSpace(c) {
			break
		}
		sb.WriteByte(tz.read())
	}
	tz.midLine = true
	return Token{Kind: TokenWhitespace, Text: sb.String(), Line: tz.line}
}

func (tz *Tokenizer) scanWord() Token {
	var sb strings.Builder
	sb.WriteByte(tz.read())
	for {
		c, ok := tz.peek()
		if !ok || c == '\n' || c == ',' || isSpace(c) {
			break
		}
		sb.WriteByte(tz.read())
	}
	tz.midLine = true
	return Token{Kind: TokenWord, Text: sb.String(), Line: tz.line}
}

// scanNumber accepts an optional leading minus, digits, an optional
// fraction and an optional exponent. The scan is greedy but never
// crosses a newline.
func (tz *Tokenizer) scanNumber() Token {
	var sb strings.Builder
	line := tz.line
	tz.midLine = true
	if c, ok := tz.peek(); ok && c == '-' {
		sb.WriteByte(tz.read())
	}
	tz.scanDigits(&sb)
	if c, ok := tz.peek(); ok && c == '.' {
		sb.WriteByte(tz.read())
		tz.scanDigits(&sb)
	}
	if c, ok := tz.peek(); ok && (c == 'e' || c == 'E') {
		sb.WriteByte(tz.read())
		if c, ok = tz.peek(); ok && (c == '-' || c == '+') {
			sb.WriteByte(tz.read())
		}
		tz.scanDigits(&sb)
	}
	return Token{Kind: TokenNumber, Text: sb.String(), Line: line}
}

func (tz *Tokenizer) scanDigits(sb *strings.Builder) {
	for {
		c, ok := tz.peek()
		if !ok || !isDigit(c) {
			return
		}
		sb.WriteByte(tz.read())
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isSpace reports whitespace other than newline. Carriage returns are
// treated as plain whitespace so CRLF input tokenizes the same as LF.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\f', '\v', '\r':
		return true
	}
	return false
}
