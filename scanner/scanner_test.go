package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scanAll(t *testing.T, input string) []Token {
	t.Helper()
	sc := New(input, "test.toml")
	var toks []Token
	posture := Any
	for {
		tok, err := sc.Next(posture)
		require.NoError(t, err)
		toks = append(toks, tok)
		if tok.Type == EOFToken {
			return toks
		}
		// mimic the builder: values are scanned in Value posture, a bare
		// key right after '=' flips posture for one token only.
		if tok.Type == EqualToken {
			posture = Value
		} else {
			posture = Any
		}
	}
}

func TestNext_punctuation(t *testing.T) {
	toks := scanAll(t, "=.,{}[]")
	types := make([]TokenType, 0, len(toks))
	for _, tok := range toks {
		types = append(types, tok.Type)
	}
	assert.Equal(t, []TokenType{
		EqualToken, DotToken, CommaToken, LeftBraceToken, RightBraceToken,
		LeftBracketToken, RightBracketToken, EOFToken,
	}, types)
}

func TestNext_newlineVariants(t *testing.T) {
	t.Run("unix", func(t *testing.T) {
		toks := scanAll(t, "\n")
		require.Len(t, toks, 2)
		assert.Equal(t, NewlineToken, toks[0].Type)
	})
	t.Run("windows", func(t *testing.T) {
		toks := scanAll(t, "\r\n")
		require.Len(t, toks, 2)
		assert.Equal(t, NewlineToken, toks[0].Type)
	})
}

func TestNext_bareKey(t *testing.T) {
	sc := New("server-name_1 =", "test.toml")
	tok, err := sc.Next(Any)
	require.NoError(t, err)
	assert.Equal(t, StringToken, tok.Type)
	assert.Equal(t, "server-name_1", tok.Str)
}

func TestNext_commentsAndSpacesAreInsignificant(t *testing.T) {
	sc := New("   # a comment\n=", "test.toml")
	tok, err := sc.Next(Any)
	require.NoError(t, err)
	assert.Equal(t, NewlineToken, tok.Type)
	tok, err = sc.Next(Any)
	require.NoError(t, err)
	assert.Equal(t, EqualToken, tok.Type)
}

func TestNext_booleanVsBareKey(t *testing.T) {
	t.Run("Any posture returns a bare-key string", func(t *testing.T) {
		sc := New("true", "test.toml")
		tok, err := sc.Next(Any)
		require.NoError(t, err)
		assert.Equal(t, StringToken, tok.Type)
		assert.Equal(t, "true", tok.Str)
	})
	t.Run("Value posture returns a bool, boundary is punctuation", func(t *testing.T) {
		sc := New("[true, false]", "test.toml")
		tok, err := sc.Next(Any)
		require.NoError(t, err)
		require.Equal(t, LeftBracketToken, tok.Type)

		tok, err = sc.Next(Value)
		require.NoError(t, err)
		require.Equal(t, BoolToken, tok.Type)
		assert.True(t, tok.Bln)
	})
}

func TestNext_integers(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want int64
	}{
		{"decimal", "1979", 1979},
		{"negative", "-17", -17},
		{"underscored", "1_000_000", 1000000},
		{"hex", "0xDEADBEEF", 0xDEADBEEF},
		{"octal", "0o755", 0o755},
		{"binary", "0b1010", 0b1010},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			sc := New(c.in, "test.toml")
			tok, err := sc.Next(Value)
			require.NoError(t, err)
			require.Equal(t, IntegerToken, tok.Type)
			assert.Equal(t, c.want, tok.Int)
		})
	}
}

func TestNext_floats(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want float64
	}{
		{"fraction", "3.14", 3.14},
		{"exponent", "5e+22", 5e+22},
		{"both", "6.626e-34", 6.626e-34},
		{"underscored", "224_617.445_991_228", 224617.445991228},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			sc := New(c.in, "test.toml")
			tok, err := sc.Next(Value)
			require.NoError(t, err)
			require.Equal(t, FloatToken, tok.Type)
			assert.InDelta(t, c.want, tok.Flt, 1e-9)
		})
	}
}

func TestNext_floatRejectsMissingDigitAroundDot(t *testing.T) {
	// original_source/tests/float.rs: a digit is required on both sides of
	// the fractional '.', so these never reach scanFloat as a single token
	// -- they split into punctuation plus a bare integer, which the Builder
	// then rejects at the statement-boundary check.
	t.Run("leading dot, no integer part", func(t *testing.T) {
		sc := New(".7", "test.toml")
		tok, err := sc.Next(Value)
		require.NoError(t, err)
		assert.Equal(t, DotToken, tok.Type, "the '.' is not absorbed into a float")
	})
	t.Run("trailing dot, no fraction digits", func(t *testing.T) {
		sc := New("7.", "test.toml")
		tok, err := sc.Next(Value)
		require.NoError(t, err)
		require.Equal(t, IntegerToken, tok.Type)
		assert.Equal(t, int64(7), tok.Int)
		tok, err = sc.Next(Value)
		require.NoError(t, err)
		assert.Equal(t, DotToken, tok.Type, "the trailing '.' is left over, unconsumed")
	})
	t.Run("exponent with no fraction digits after the dot", func(t *testing.T) {
		sc := New("3.e+20", "test.toml")
		tok, err := sc.Next(Value)
		require.NoError(t, err)
		require.Equal(t, IntegerToken, tok.Type)
		assert.Equal(t, int64(3), tok.Int)
	})
}

func TestNext_dateTimeOffsetForms(t *testing.T) {
	// original_source/tests/dates.rs: an explicit +/-HH:MM offset and a
	// space instead of 'T' as the date/time separator both parse to an
	// OffsetDateTime.
	t.Run("negative offset", func(t *testing.T) {
		sc := New("1979-05-27T00:32:00-07:00", "test.toml")
		tok, err := sc.Next(Value)
		require.NoError(t, err)
		require.Equal(t, OffsetDateTimeToken, tok.Type)
		_, offsetSec := tok.Time.Zone()
		assert.Equal(t, -7*3600, offsetSec)
	})
	t.Run("space separator", func(t *testing.T) {
		sc := New("1979-05-27 07:32:00Z", "test.toml")
		tok, err := sc.Next(Value)
		require.NoError(t, err)
		require.Equal(t, OffsetDateTimeToken, tok.Type)
		assert.Equal(t, 1979, tok.Time.Year())
	})
}

func TestNext_integerLikeFloatShapeFallsThroughToInteger(t *testing.T) {
	// "42" has no '.', 'e', or 'E': floatShapeRe matches it but the
	// dot/exponent check rejects it as a float, so scanInteger claims it.
	sc := New("42", "test.toml")
	tok, err := sc.Next(Value)
	require.NoError(t, err)
	require.Equal(t, IntegerToken, tok.Type)
	assert.Equal(t, int64(42), tok.Int)
}

func TestNext_dateTimeForms(t *testing.T) {
	t.Run("offset date-time", func(t *testing.T) {
		sc := New("1979-05-27T07:32:00Z", "test.toml")
		tok, err := sc.Next(Value)
		require.NoError(t, err)
		require.Equal(t, OffsetDateTimeToken, tok.Type)
		assert.Equal(t, 1979, tok.Time.Year())
		assert.Equal(t, 7, tok.Time.Hour())
	})
	t.Run("local date-time", func(t *testing.T) {
		sc := New("1979-05-27T07:32:00.999999", "test.toml")
		tok, err := sc.Next(Value)
		require.NoError(t, err)
		require.Equal(t, LocalDateTimeToken, tok.Type)
		assert.Equal(t, 999999000, tok.Time.Nanosecond())
	})
	t.Run("local date", func(t *testing.T) {
		sc := New("1979-05-27", "test.toml")
		tok, err := sc.Next(Value)
		require.NoError(t, err)
		require.Equal(t, LocalDateToken, tok.Type)
	})
	t.Run("local time", func(t *testing.T) {
		sc := New("07:32:00", "test.toml")
		tok, err := sc.Next(Value)
		require.NoError(t, err)
		require.Equal(t, LocalTimeToken, tok.Type)
		assert.Equal(t, 7, tok.Time.Hour())
	})
}

func TestNext_basicString(t *testing.T) {
	sc := New(`"hello \"world\"\n"`, "test.toml")
	tok, err := sc.Next(Value)
	require.NoError(t, err)
	require.Equal(t, StringToken, tok.Type)
	assert.Equal(t, "hello \"world\"\n", tok.Str)
}

func TestNext_basicStringRejectsRawNewline(t *testing.T) {
	sc := New("\"a\nb\"", "test.toml")
	_, err := sc.Next(Value)
	assert.Error(t, err)
}

func TestNext_literalString(t *testing.T) {
	sc := New(`'C:\Users\nope'`, "test.toml")
	tok, err := sc.Next(Value)
	require.NoError(t, err)
	require.Equal(t, StringToken, tok.Type)
	assert.Equal(t, `C:\Users\nope`, tok.Str)
}

func TestNext_multilineBasicStringTrimsLeadingNewline(t *testing.T) {
	sc := New("\"\"\"\nfirst line\"\"\"", "test.toml")
	tok, err := sc.Next(Value)
	require.NoError(t, err)
	assert.Equal(t, "first line", tok.Str)
}

func TestNext_multilineBasicStringLineContinuation(t *testing.T) {
	sc := New("\"\"\"\nThe quick brown \\\n\n\n  fox jumps over \\\n    the lazy dog.\"\"\"", "test.toml")
	tok, err := sc.Next(Value)
	require.NoError(t, err)
	assert.Equal(t, "The quick brown fox jumps over the lazy dog.", tok.Str)
}

func TestNext_multilineInternalQuoteRuns(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			"two quotes mid-string, not a closer",
			`"""Here are two quotation marks: "". Simple enough.""""`,
			`Here are two quotation marks: "". Simple enough.`,
		},
		{
			"escaped quote plus trailing run of 4",
			`"""Here are three quotation marks: ""\".""""`,
			`Here are three quotation marks: """.`,
		},
		{
			"leading quote from the run right after the opener",
			`""""This," she said, "is just a pointless statement.""""`,
			`"This," she said, "is just a pointless statement.`,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			sc := New(c.in, "test.toml")
			tok, err := sc.Next(Value)
			require.NoError(t, err)
			assert.Equal(t, c.want, tok.Str)
		})
	}
}

func TestNext_multilineQuoteRunOfExactlyThreeEndsEarly(t *testing.T) {
	// A bare run of exactly 3 unescaped quotes always closes, even mid
	// document -- so this is a syntax error once the leftover "." and
	// quotes are scanned where a Newline/EOF was expected.
	sc := New(`"""Here are three quotation marks: """."""`, "test.toml")
	tok, err := sc.Next(Value)
	require.NoError(t, err)
	assert.Equal(t, "Here are three quotation marks: ", tok.Str)
}

func TestNext_multilineLiteralString(t *testing.T) {
	sc := New("'''\nThe first newline is\ntrimmed.'''", "test.toml")
	tok, err := sc.Next(Value)
	require.NoError(t, err)
	assert.Equal(t, "The first newline is\ntrimmed.", tok.Str)
}

func TestNext_uEscape(t *testing.T) {
	sc := New(`"\u00e9"`, "test.toml")
	tok, err := sc.Next(Value)
	require.NoError(t, err)
	assert.Equal(t, "é", tok.Str)
}

func TestPeek_doesNotConsume(t *testing.T) {
	sc := New("abc", "test.toml")
	peeked, err := sc.Peek(Any)
	require.NoError(t, err)
	assert.Equal(t, "abc", peeked.Str)

	next, err := sc.Next(Any)
	require.NoError(t, err)
	assert.Equal(t, peeked, next)

	eof, err := sc.Next(Any)
	require.NoError(t, err)
	assert.Equal(t, EOFToken, eof.Type)
}

func TestNext_unexpectedCharacter(t *testing.T) {
	sc := New("@", "test.toml")
	_, err := sc.Next(Any)
	require.Error(t, err)
	var scanErr Error
	require.ErrorAs(t, err, &scanErr)
	assert.Equal(t, 1, scanErr.Pos.Line)
	assert.Equal(t, 1, scanErr.Pos.Col)
}

func TestNext_positionsAcrossLines(t *testing.T) {
	sc := New("a\nbc", "test.toml")
	tok, err := sc.Next(Any)
	require.NoError(t, err)
	assert.Equal(t, 1, tok.Start.Line)

	_, err = sc.Next(Any) // newline
	require.NoError(t, err)

	tok, err = sc.Next(Any)
	require.NoError(t, err)
	assert.Equal(t, 2, tok.Start.Line)
	assert.Equal(t, 1, tok.Start.Col)
}
