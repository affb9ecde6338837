// Package scanner implements the context-sensitive lexical scanner for the
// tomlette configuration format (spec.md §4.1). It is a cursor over the
// input text that, given a one-bit posture hint from the Builder, returns
// the next token without attempting any recovery from malformed input.
package scanner

import (
	"fmt"
	"unicode/utf8"
)

// Scanner is a cursor over a string. It carries only (text, cursor) plus
// the line/column bookkeeping needed to report positions, so that it is
// cheap to Clone for the Builder's two-token lookahead (spec.md §9).
type Scanner struct {
	input string
	file  FileRef

	startIndex int
	curIndex   int

	startLine        int
	stopLine         int
	indexAtStartLine int
	indexAtStopLine  int
}

// New creates a Scanner positioned at the start of input.
func New(input string, file FileRef) *Scanner {
	return &Scanner{input: input, file: file}
}

// Clone returns an independent copy positioned at the same place as s.
// Used by the Builder to look two tokens ahead without disturbing s.
func (s *Scanner) Clone() *Scanner {
	clone := *s
	return &clone
}

// Token returns the raw source text of the most recently scanned token.
func (s *Scanner) Token() string {
	return s.input[s.startIndex:s.curIndex]
}

func (s *Scanner) Start() Pos {
	return Pos{File: s.file, Line: s.startLine + 1, Col: s.startIndex - s.indexAtStartLine + 1}
}

func (s *Scanner) Stop() Pos {
	return Pos{File: s.file, Line: s.stopLine + 1, Col: s.curIndex - s.indexAtStopLine + 1}
}

// bumpLine records that a newline was just consumed: s.curIndex must
// already point past it, at the first byte of the new line.
func (s *Scanner) bumpLine() {
	s.stopLine++
	s.indexAtStopLine = s.curIndex
}

// Error is returned for any lexical failure: an unrecognized character, or
// a malformed string/numeric/date-time literal. The scanner never recovers
// from one (spec.md §4.1 "Failure").
type Error struct {
	Pos     Pos
	Message string
}

func (e Error) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.Pos.File, e.Pos.Line, e.Pos.Col, e.Message)
}

func (s *Scanner) errf(format string, args ...any) error {
	return Error{Pos: s.Start(), Message: fmt.Sprintf(format, args...)}
}

// Next scans and consumes the next token, or returns a Token{Type: EOFToken}
// once the remainder of the input is exhausted.
func (s *Scanner) Next(posture Posture) (Token, error) {
	if err := s.skipInsignificant(); err != nil {
		return Token{}, err
	}

	s.startIndex = s.curIndex
	s.startLine = s.stopLine
	s.indexAtStartLine = s.indexAtStopLine

	if s.curIndex >= len(s.input) {
		return s.tok(EOFToken), nil
	}

	r, w := utf8.DecodeRuneInString(s.input[s.curIndex:])
	if r == utf8.RuneError && w <= 1 {
		return Token{}, s.errf("invalid UTF-8 input")
	}

	if r == '\n' {
		s.curIndex += w
		s.bumpLine()
		return s.tok(NewlineToken), nil
	}
	if r == '\r' && strHasPrefixAt(s.input, s.curIndex, "\r\n") {
		s.curIndex += 2
		s.bumpLine()
		return s.tok(NewlineToken), nil
	}

	if tt, ok := punctuation[r]; ok {
		s.curIndex += w
		return s.tok(tt), nil
	}

	if posture != Value {
		if n := scanBareKey(s.input[s.curIndex:]); n > 0 {
			s.curIndex += n
			t := s.tok(StringToken)
			t.Str = s.Token()
			return t, nil
		}
	}

	if tok, found, err := s.scanString(); err != nil {
		return Token{}, err
	} else if found {
		return tok, nil
	}

	if tok, found, err := s.scanDateTime(); err != nil {
		return Token{}, err
	} else if found {
		return tok, nil
	}

	if tok, found := s.scanFloat(); found {
		return tok, nil
	}

	if tok, found, err := s.scanInteger(); err != nil {
		return Token{}, err
	} else if found {
		return tok, nil
	}

	if n := scanBoolKeyword(s.input[s.curIndex:]); n > 0 {
		t := s.tok(BoolToken)
		t.Bln = s.input[s.curIndex] == 't'
		s.curIndex += n
		return t, nil
	}

	return Token{}, s.errf("unexpected character %q", r)
}

// Peek is Next without consuming: it leaves s exactly as it found it,
// regardless of posture, per the contract in spec.md §5.
func (s *Scanner) Peek(posture Posture) (Token, error) {
	return s.Clone().Next(posture)
}

func (s *Scanner) tok(tt TokenType) Token {
	return Token{Type: tt, Start: s.Start(), Stop: s.Stop()}
}

// skipInsignificant advances past leading spaces/tabs and an optional
// comment body, per spec.md §4.1's Next operation. Newlines are
// significant (they are the Newline token) and are never skipped here.
func (s *Scanner) skipInsignificant() error {
	for {
		if s.curIndex >= len(s.input) {
			return nil
		}
		switch s.input[s.curIndex] {
		case ' ', '\t':
			s.curIndex++
			continue
		case '#':
			for s.curIndex < len(s.input) && s.input[s.curIndex] != '\n' {
				if s.input[s.curIndex] == '\r' && strHasPrefixAt(s.input, s.curIndex, "\r\n") {
					break
				}
				r, w := utf8.DecodeRuneInString(s.input[s.curIndex:])
				if r == utf8.RuneError && w <= 1 {
					return s.errf("invalid UTF-8 input in comment")
				}
				s.curIndex += w
			}
			continue
		}
		return nil
	}
}

var punctuation = map[rune]TokenType{
	'=': EqualToken,
	'.': DotToken,
	',': CommaToken,
	'{': LeftBraceToken,
	'}': RightBraceToken,
	'[': LeftBracketToken,
	']': RightBracketToken,
}

func strHasPrefixAt(s string, i int, prefix string) bool {
	return len(s)-i >= len(prefix) && s[i:i+len(prefix)] == prefix
}

func scanBareKey(rest string) int {
	n := 0
	for n < len(rest) {
		c := rest[n]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_' || c == '-' {
			n++
			continue
		}
		break
	}
	return n
}

func scanBoolKeyword(rest string) int {
	for _, kw := range [2]string{"true", "false"} {
		if len(rest) >= len(kw) && rest[:len(kw)] == kw {
			after := rest[len(kw):]
			if after == "" || !isKeyContinuation(after[0]) {
				return len(kw)
			}
		}
	}
	return 0
}

func isKeyContinuation(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_' || c == '-'
}
