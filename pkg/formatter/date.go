package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/graw/pkg/domain/types"
)

// datePattern is a compiled SimpleDateFormat style pattern such as
// "yyyy-MM-dd HH:mm:ss z". Text fields are rendered with their own Go layout
// so that literal text can never be taken for a layout token. Number fields
// are zero padded to the letter count, as SimpleDateFormat does.
type datePattern struct {
	tokens []dateToken
}

type dateToken struct {
	literal string
	layout  string
	number  func(t time.Time) int
	width   int
	era     bool
}

func (x dateToken) isLiteral() bool {
	return x.layout == "" && x.number == nil && !x.era
}

func (x *datePattern) format(t time.Time) string {
	var b strings.Builder
	for _, tok := range x.tokens {
		switch {
		case tok.era:
			if t.Year() > 0 {
				b.WriteString("AD")
			} else {
				b.WriteString("BC")
			}
		case tok.number != nil:
			b.WriteString(fmt.Sprintf("%0*d", tok.width, tok.number(t)))
		case tok.layout != "":
			b.WriteString(t.Format(tok.layout))
		default:
			b.WriteString(tok.literal)
		}
	}
	return b.String()
}

func compileDatePattern(pattern string) (*datePattern, error) {
	var tokens []dateToken
	runes := []rune(pattern)

	literal := func(s string) {
		if n := len(tokens); n > 0 && tokens[n-1].isLiteral() {
			tokens[n-1].literal += s
			return
		}
		tokens = append(tokens, dateToken{literal: s})
	}

	for i := 0; i < len(runes); {
		c := runes[i]

		if c == '\'' {
			if i+1 < len(runes) && runes[i+1] == '\'' {
				literal("'")
				i += 2
				continue
			}
			end := i + 1
			var quoted strings.Builder
			closed := false
			for end < len(runes) {
				if runes[end] == '\'' {
					if end+1 < len(runes) && runes[end+1] == '\'' {
						quoted.WriteRune('\'')
						end += 2
						continue
					}
					closed = true
					break
				}
				quoted.WriteRune(runes[end])
				end++
			}
			if !closed {
				return nil, goerr.Wrap(types.ErrConfiguration, "unterminated quote in date format",
					goerr.V("format", pattern))
			}
			literal(quoted.String())
			i = end + 1
			continue
		}

		if !isASCIILetter(c) {
			literal(string(c))
			i++
			continue
		}

		n := 1
		for i+n < len(runes) && runes[i+n] == c {
			n++
		}

		tok, ok := fieldToken(c, n)
		if !ok {
			return nil, goerr.Wrap(types.ErrConfiguration, "unsupported date format letter",
				goerr.V("format", pattern),
				goerr.V("letter", string(c)),
			)
		}
		tokens = append(tokens, tok)
		i += n
	}

	return &datePattern{tokens: tokens}, nil
}

func number(width int, fn func(t time.Time) int) dateToken {
	return dateToken{number: fn, width: width}
}

// fieldToken maps a run of n pattern letters c to a token. Week based
// fields follow the US calendar: weeks start on Sunday and week 1 is the
// one containing the first day of the year or month.
func fieldToken(c rune, n int) (dateToken, bool) {
	switch c {
	case 'G':
		return dateToken{era: true}, true
	case 'y', 'Y':
		year := func(t time.Time) int { return t.Year() }
		if c == 'Y' {
			year = func(t time.Time) int {
				_, y := weekOfYear(t)
				return y
			}
		}
		if n == 2 {
			return number(2, func(t time.Time) int { return year(t) % 100 }), true
		}
		return number(n, year), true
	case 'M', 'L':
		switch {
		case n >= 4:
			return dateToken{layout: "January"}, true
		case n == 3:
			return dateToken{layout: "Jan"}, true
		default:
			return number(n, func(t time.Time) int { return int(t.Month()) }), true
		}
	case 'w':
		return number(n, func(t time.Time) int {
			w, _ := weekOfYear(t)
			return w
		}), true
	case 'W':
		return number(n, weekOfMonth), true
	case 'D':
		return number(n, func(t time.Time) int { return t.YearDay() }), true
	case 'd':
		return number(n, func(t time.Time) int { return t.Day() }), true
	case 'F':
		return number(n, func(t time.Time) int { return (t.Day()-1)/7 + 1 }), true
	case 'E':
		if n >= 4 {
			return dateToken{layout: "Monday"}, true
		}
		return dateToken{layout: "Mon"}, true
	case 'u':
		return number(n, func(t time.Time) int {
			if t.Weekday() == time.Sunday {
				return 7
			}
			return int(t.Weekday())
		}), true
	case 'a':
		return dateToken{layout: "PM"}, true
	case 'H':
		return number(n, func(t time.Time) int { return t.Hour() }), true
	case 'k':
		return number(n, func(t time.Time) int {
			if t.Hour() == 0 {
				return 24
			}
			return t.Hour()
		}), true
	case 'K':
		return number(n, func(t time.Time) int { return t.Hour() % 12 }), true
	case 'h':
		return number(n, func(t time.Time) int {
			if h := t.Hour() % 12; h != 0 {
				return h
			}
			return 12
		}), true
	case 'm':
		return number(n, func(t time.Time) int { return t.Minute() }), true
	case 's':
		return number(n, func(t time.Time) int { return t.Second() }), true
	case 'S':
		return number(n, func(t time.Time) int { return t.Nanosecond() / int(time.Millisecond) }), true
	case 'z':
		// Go has no long zone names, so zzzz renders the abbreviation too.
		return dateToken{layout: "MST"}, true
	case 'Z':
		return dateToken{layout: "-0700"}, true
	case 'X':
		switch n {
		case 1:
			return dateToken{layout: "Z07"}, true
		case 2:
			return dateToken{layout: "Z0700"}, true
		default:
			return dateToken{layout: "Z07:00"}, true
		}
	}
	return dateToken{}, false
}

func civilDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sundayOf(d time.Time) time.Time {
	return d.AddDate(0, 0, -int(d.Weekday()))
}

// weekOfYear returns the week number and the year the week belongs to. The
// last days of December fall into week 1 of the next year when that week
// contains January 1.
func weekOfYear(t time.Time) (int, int) {
	day := civilDate(t.Year(), t.Month(), t.Day())
	next := sundayOf(civilDate(t.Year()+1, time.January, 1))
	if !day.Before(next) {
		return 1, t.Year() + 1
	}
	start := sundayOf(civilDate(t.Year(), time.January, 1))
	return int(day.Sub(start).Hours()/24)/7 + 1, t.Year()
}

func weekOfMonth(t time.Time) int {
	first := civilDate(t.Year(), t.Month(), 1)
	return (t.Day()+int(first.Weekday())-1)/7 + 1
}

func isASCIILetter(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func formatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}
