package scanner

import (
	"regexp"
	"strconv"
	"time"
)

// The four date/time literal shapes of spec.md §4.1 rule 9, tried longest
// (most specific) first since local date-time is a textual prefix of offset
// date-time, and local date a prefix of both.
var (
	offsetDateTimeRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}[Tt ]\d{2}:\d{2}:\d{2}(\.\d+)?(Z|z|[+-]\d{2}:\d{2})`)
	localDateTimeRe  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}[Tt ]\d{2}:\d{2}:\d{2}(\.\d+)?`)
	localDateRe      = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)
	localTimeRe      = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}(\.\d+)?`)
)

// scanDateTime recognizes the four date/time literal forms. On success it
// advances s past the literal; found is false if none of the four regexes
// match at the current position (ordinary integers and bare keys look
// nothing like these, so no input is consumed on a miss).
func (s *Scanner) scanDateTime() (tok Token, found bool, err error) {
	rest := s.input[s.curIndex:]

	if m := offsetDateTimeRe.FindString(rest); m != "" {
		t, parseErr := parseOffsetDateTime(m)
		if parseErr != nil {
			return Token{}, false, s.errf("%s", parseErr)
		}
		s.curIndex += len(m)
		tok := s.tok(OffsetDateTimeToken)
		tok.Time = t
		return tok, true, nil
	}
	if m := localDateTimeRe.FindString(rest); m != "" {
		t, parseErr := parseLocalDateTime(m)
		if parseErr != nil {
			return Token{}, false, s.errf("%s", parseErr)
		}
		s.curIndex += len(m)
		tok := s.tok(LocalDateTimeToken)
		tok.Time = t
		return tok, true, nil
	}
	if m := localDateRe.FindString(rest); m != "" {
		t, parseErr := time.Parse("2006-01-02", m)
		if parseErr != nil {
			return Token{}, false, s.errf("invalid local date %q", m)
		}
		s.curIndex += len(m)
		tok := s.tok(LocalDateToken)
		tok.Time = t
		return tok, true, nil
	}
	if m := localTimeRe.FindString(rest); m != "" {
		t, parseErr := parseLocalTime(m)
		if parseErr != nil {
			return Token{}, false, s.errf("%s", parseErr)
		}
		s.curIndex += len(m)
		tok := s.tok(LocalTimeToken)
		tok.Time = t
		return tok, true, nil
	}
	return Token{}, false, nil
}

func parseOffsetDateTime(lit string) (time.Time, error) {
	datePart, timePart := lit[:10], lit[11:]

	hh, _ := strconv.Atoi(timePart[0:2])
	mm, _ := strconv.Atoi(timePart[3:5])
	ss, _ := strconv.Atoi(timePart[6:8])
	rest := timePart[8:]

	nsec, rest := takeFraction(rest)

	loc := time.UTC
	if rest != "" && rest != "Z" && rest != "z" {
		sign := 1
		if rest[0] == '-' {
			sign = -1
		}
		offH, _ := strconv.Atoi(rest[1:3])
		offM, _ := strconv.Atoi(rest[4:6])
		loc = time.FixedZone("", sign*(offH*3600+offM*60))
	}

	y, mo, d := parseYMD(datePart)
	return time.Date(y, mo, d, hh, mm, ss, nsec, loc), nil
}

func parseLocalDateTime(lit string) (time.Time, error) {
	datePart := lit[:10]
	timePart := lit[11:]
	hh, _ := strconv.Atoi(timePart[0:2])
	mm, _ := strconv.Atoi(timePart[3:5])
	ss, _ := strconv.Atoi(timePart[6:8])
	nsec, _ := takeFraction(timePart[8:])
	y, mo, d := parseYMD(datePart)
	return time.Date(y, mo, d, hh, mm, ss, nsec, time.UTC), nil
}

func parseLocalTime(lit string) (time.Time, error) {
	hh, _ := strconv.Atoi(lit[0:2])
	mm, _ := strconv.Atoi(lit[3:5])
	ss, _ := strconv.Atoi(lit[6:8])
	nsec, _ := takeFraction(lit[8:])
	return time.Date(0, time.January, 1, hh, mm, ss, nsec, time.UTC), nil
}

func parseYMD(datePart string) (int, time.Month, int) {
	y, _ := strconv.Atoi(datePart[0:4])
	mo, _ := strconv.Atoi(datePart[5:7])
	d, _ := strconv.Atoi(datePart[8:10])
	return y, time.Month(mo), d
}

// takeFraction consumes a leading ".ddd..." fractional-seconds suffix and
// returns it as nanoseconds (padded or truncated to 9 digits), along with
// whatever text follows it.
func takeFraction(rest string) (nsec int, tail string) {
	if rest == "" || rest[0] != '.' {
		return 0, rest
	}
	i := 1
	for i < len(rest) && rest[i] >= '0' && rest[i] <= '9' {
		i++
	}
	digits := rest[1:i]
	for len(digits) < 9 {
		digits += "0"
	}
	digits = digits[:9]
	n, _ := strconv.Atoi(digits)
	return n, rest[i:]
}
