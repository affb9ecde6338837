package scanner

import "strconv"

// scanString recognizes rules 4-7 of spec.md §4.1: multiline basic, basic,
// multiline literal, and literal strings (tried in that order, since the
// single-line opener is a strict prefix of the multiline one). On success
// it has advanced s past the closing delimiter and returns the decoded
// token; found is false if the input does not begin with any quote.
func (s *Scanner) scanString() (tok Token, found bool, err error) {
	switch {
	case strHasPrefixAt(s.input, s.curIndex, `"""`):
		return s.scanQuoted(`"""`, true, true)
	case strHasPrefixAt(s.input, s.curIndex, `"`):
		return s.scanQuoted(`"`, false, true)
	case strHasPrefixAt(s.input, s.curIndex, `'''`):
		return s.scanQuoted(`'''`, true, false)
	case strHasPrefixAt(s.input, s.curIndex, `'`):
		return s.scanQuoted(`'`, false, false)
	}
	return Token{}, false, nil
}

// scanQuoted scans the body of one of the four string forms starting at
// s.curIndex, which must already point at the opening delim. multiline
// allows embedded raw newlines and trims one immediately-following leading
// newline; escapes apply only to the two double-quoted forms.
func (s *Scanner) scanQuoted(delim string, multiline bool, escapes bool) (Token, bool, error) {
	quoteChar := delim[0]
	s.curIndex += len(delim)

	if multiline {
		if strHasPrefixAt(s.input, s.curIndex, "\r\n") {
			s.curIndex += 2
			s.bumpLine()
		} else if strHasPrefixAt(s.input, s.curIndex, "\n") {
			s.curIndex++
			s.bumpLine()
		}
	}

	var content []byte
	for {
		if s.curIndex >= len(s.input) {
			return Token{}, false, s.errf("unterminated string literal")
		}
		c := s.input[s.curIndex]

		if c == quoteChar {
			run := 0
			for s.curIndex+run < len(s.input) && s.input[s.curIndex+run] == quoteChar {
				run++
			}
			needed := 1
			if multiline {
				needed = 3
			}
			if run < needed {
				if !multiline && run >= 1 {
					return Token{}, false, s.errf("unescaped %q inside single-line string", rune(quoteChar))
				}
				content = append(content, s.input[s.curIndex:s.curIndex+run]...)
				s.curIndex += run
				continue
			}
			// A run at or above the closing count always closes the
			// string in full, however long the run is (spec.md §4.1 rule
			// 4: "closes with three (or more)").
			s.curIndex += run
			tok := s.tok(StringToken)
			tok.Str = string(content)
			return tok, true, nil
		}

		if !multiline && (c == '\n' || c == '\r') {
			return Token{}, false, s.errf("raw newline in single-line string")
		}

		if multiline && c == '\n' {
			content = append(content, c)
			s.curIndex++
			s.bumpLine()
			continue
		}
		if multiline && strHasPrefixAt(s.input, s.curIndex, "\r\n") {
			content = append(content, '\n')
			s.curIndex += 2
			s.bumpLine()
			continue
		}

		if escapes && c == '\\' {
			elided, decoded, err := s.decodeEscape()
			if err != nil {
				return Token{}, false, err
			}
			if elided && !multiline {
				return Token{}, false, s.errf("raw newline in single-line string")
			}
			if !elided {
				content = append(content, decoded...)
			}
			continue
		}

		content = append(content, c)
		s.curIndex++
	}
}

// decodeEscape handles the content starting at s.curIndex, which must be a
// '\\'. It advances s past the escape sequence and reports whether it was a
// line continuation (elided entirely, no output) or a decoded replacement.
func (s *Scanner) decodeEscape() (elided bool, decoded string, err error) {
	start := s.curIndex
	j := start + 1
	for j < len(s.input) && (s.input[j] == ' ' || s.input[j] == '\t') {
		j++
	}
	if j < len(s.input) && s.input[j] == '\n' {
		j++
		s.stopLine++
		s.indexAtStopLine = j
		s.bumpAcrossEscapeWhitespace(&j)
		s.curIndex = j
		return true, "", nil
	}
	if j+1 < len(s.input) && s.input[j] == '\r' && s.input[j+1] == '\n' {
		j += 2
		s.stopLine++
		s.indexAtStopLine = j
		s.bumpAcrossEscapeWhitespace(&j)
		s.curIndex = j
		return true, "", nil
	}

	if start+1 >= len(s.input) {
		return false, "", s.errf("unterminated escape sequence")
	}
	switch s.input[start+1] {
	case 'b':
		s.curIndex += 2
		return false, "\b", nil
	case 't':
		s.curIndex += 2
		return false, "\t", nil
	case 'n':
		s.curIndex += 2
		return false, "\n", nil
	case 'f':
		s.curIndex += 2
		return false, "\f", nil
	case 'r':
		s.curIndex += 2
		return false, "\r", nil
	case '"':
		s.curIndex += 2
		return false, "\"", nil
	case '\\':
		s.curIndex += 2
		return false, "\\", nil
	case 'u':
		if start+6 > len(s.input) {
			return false, "", s.errf("truncated \\u escape")
		}
		n, convErr := strconv.ParseUint(s.input[start+2:start+6], 16, 32)
		if convErr != nil {
			return false, "", s.errf("invalid \\u escape %q", s.input[start+2:start+6])
		}
		s.curIndex += 6
		return false, string(rune(n)), nil
	default:
		return false, "", s.errf("unsupported escape sequence \\%c", s.input[start+1])
	}
}

// bumpAcrossEscapeWhitespace advances *j past any further whitespace that is
// part of a line-continuation's elided span, bumping line bookkeeping for
// each newline encountered along the way.
func (s *Scanner) bumpAcrossEscapeWhitespace(j *int) {
	for *j < len(s.input) {
		switch {
		case s.input[*j] == ' ' || s.input[*j] == '\t':
			*j++
		case s.input[*j] == '\n':
			s.stopLine++
			s.indexAtStopLine = *j + 1
			*j++
		case strHasPrefixAt(s.input, *j, "\r\n"):
			s.stopLine++
			s.indexAtStopLine = *j + 2
			*j += 2
		default:
			return
		}
	}
}
