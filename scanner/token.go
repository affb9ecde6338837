package scanner

import "time"

// TokenType identifies the lexical class of a Token. The set is fixed by
// the grammar in spec.md §4.1: punctuation, the four quoted-string flavors
// (collapsed to one String kind post-unescaping), the four numeric/date
// literal families, and end-of-input.
type TokenType int

const (
	NewlineToken TokenType = iota + 1
	EqualToken
	DotToken
	CommaToken
	LeftBraceToken
	RightBraceToken
	LeftBracketToken
	RightBracketToken

	StringToken
	IntegerToken
	FloatToken
	BoolToken
	OffsetDateTimeToken
	LocalDateTimeToken
	LocalDateToken
	LocalTimeToken

	EOFToken
)

func init() {
	for tt := TokenType(1); tt != EOFToken; tt++ {
		if tokenToDescription[tt] == "" {
			panic("tomlette/scanner: tokenToDescription missing an entry")
		}
	}
}

var tokenToDescription = map[TokenType]string{
	NewlineToken:        "NewlineToken",
	EqualToken:           "EqualToken",
	DotToken:             "DotToken",
	CommaToken:           "CommaToken",
	LeftBraceToken:       "LeftBraceToken",
	RightBraceToken:      "RightBraceToken",
	LeftBracketToken:     "LeftBracketToken",
	RightBracketToken:    "RightBracketToken",
	StringToken:          "StringToken",
	IntegerToken:         "IntegerToken",
	FloatToken:           "FloatToken",
	BoolToken:            "BoolToken",
	OffsetDateTimeToken:  "OffsetDateTimeToken",
	LocalDateTimeToken:   "LocalDateTimeToken",
	LocalDateToken:       "LocalDateToken",
	LocalTimeToken:       "LocalTimeToken",
	EOFToken:             "EOFToken",
}

func (tt TokenType) String() string {
	if s, ok := tokenToDescription[tt]; ok {
		return s
	}
	return "UnknownToken"
}

// Token is the unit returned by Scanner.Next/Peek. Only the field(s)
// corresponding to Type carry meaningful data; the rest are zero.
type Token struct {
	Type  TokenType
	Start Pos
	Stop  Pos

	Str string
	Int int64
	Flt float64
	Bln bool

	// OffsetDateTime carries a real UTC offset via its *time.Location.
	// LocalDateTime/LocalDate/LocalTime have no offset; by convention they
	// are stored in time.UTC and only the components the variant names are
	// meaningful (LocalDate zeroes the time-of-day, LocalTime zeroes the
	// date to January 1, year 0).
	Time time.Time
}
