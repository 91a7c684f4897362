// Package natdate maps free-form date expressions ("in 2 weeks",
// "15/03/24", "March 15th") to calendar dates relative to a reference day.
//
// Expressions are tried against an ordered rule table; the first rule that
// matches decides the result.
package natdate

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrUnparseable is returned when no rule matches the expression.
var ErrUnparseable = errors.New("unparseable date expression")

// Layout is the canonical output layout.
const Layout = "2006-01-02"

// Rule is one recognizer in the table.
type Rule struct {
	Name  string
	Match func(expr string, ref time.Time) (time.Time, bool)
}

// Rules is the default table, in priority order.
var Rules = []Rule{
	{Name: "iso", Match: matchISO},
	{Name: "numeric_dmy", Match: matchNumericDMY},
	{Name: "keyword", Match: matchKeyword},
	{Name: "relative", Match: matchRelative},
	{Name: "next_unit", Match: matchNextUnit},
	{Name: "weekday", Match: matchWeekday},
	{Name: "month_day", Match: matchMonthDay},
	{Name: "day_month", Match: matchDayMonth},
}

// Parse resolves expr against ref using Rules.
func Parse(expr string, ref time.Time) (time.Time, error) {
	return ParseWith(Rules, expr, ref)
}

// ParseWith resolves expr with a custom rule table.
func ParseWith(rules []Rule, expr string, ref time.Time) (time.Time, error) {
	e := prepare(expr)
	if e == "" {
		return time.Time{}, fmt.Errorf("%w: empty", ErrUnparseable)
	}
	day := truncate(ref)
	for _, r := range rules {
		if t, ok := r.Match(e, day); ok {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrUnparseable, expr)
}

// Format parses expr and renders it as YYYY-MM-DD.
func Format(expr string, ref time.Time) (string, error) {
	t, err := Parse(expr, ref)
	if err != nil {
		return "", err
	}
	return t.Format(Layout), nil
}

var (
	leadingFiller  = regexp.MustCompile(`^(?:on|by|at|for|until|till|is|it's|its|the)\s+`)
	trailingFiller = regexp.MustCompile(`[\s.,!?;:]+$`)
)

func prepare(expr string) string {
	e := strings.ToLower(strings.TrimSpace(expr))
	for {
		next := leadingFiller.ReplaceAllString(e, "")
		if next == e {
			break
		}
		e = next
	}
	return trailingFiller.ReplaceAllString(e, "")
}

func truncate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// date builds a UTC day and rejects values time.Date would normalize,
// such as February 30.
func date(y int, m time.Month, d int) (time.Time, bool) {
	if m < time.January || m > time.December || d < 1 || d > 31 {
		return time.Time{}, false
	}
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	if t.Month() != m || t.Day() != d {
		return time.Time{}, false
	}
	return t, true
}

var isoRe = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})(?:[t\s].*)?$`)

func matchISO(e string, _ time.Time) (time.Time, bool) {
	m := isoRe.FindStringSubmatch(e)
	if m == nil {
		return time.Time{}, false
	}
	return date(atoi(m[1]), time.Month(atoi(m[2])), atoi(m[3]))
}

var dmyRe = regexp.MustCompile(`^(\d{1,2})[/.\-](\d{1,2})[/.\-](\d{2}|\d{4})$`)

// matchNumericDMY reads day-first numeric dates; two-digit years are 20xx.
func matchNumericDMY(e string, _ time.Time) (time.Time, bool) {
	m := dmyRe.FindStringSubmatch(e)
	if m == nil {
		return time.Time{}, false
	}
	y := atoi(m[3])
	if len(m[3]) == 2 {
		y += 2000
	}
	return date(y, time.Month(atoi(m[2])), atoi(m[1]))
}

func matchKeyword(e string, ref time.Time) (time.Time, bool) {
	switch e {
	case "today", "tonight":
		return ref, true
	case "tomorrow", "tmrw":
		return ref.AddDate(0, 0, 1), true
	case "day after tomorrow", "the day after tomorrow":
		return ref.AddDate(0, 0, 2), true
	}
	return time.Time{}, false
}

var relativeRe = regexp.MustCompile(`^(?:in\s+)?(\d+|an?|one|two|three|four|five|six|seven|eight|nine|ten|eleven|twelve)\s+(day|week|month|year)s?(?:\s+(?:from\s+(?:now|today)|later))?$`)

var numberWords = map[string]int{
	"a": 1, "an": 1, "one": 1, "two": 2, "three": 3, "four": 4, "five": 5, "six": 6,
	"seven": 7, "eight": 8, "nine": 9, "ten": 10, "eleven": 11, "twelve": 12,
}

func matchRelative(e string, ref time.Time) (time.Time, bool) {
	m := relativeRe.FindStringSubmatch(e)
	if m == nil {
		return time.Time{}, false
	}
	n, ok := numberWords[m[1]]
	if !ok {
		n = atoi(m[1])
	}
	return shift(ref, m[2], n), true
}

var nextUnitRe = regexp.MustCompile(`^next\s+(day|week|month|year)$`)

func matchNextUnit(e string, ref time.Time) (time.Time, bool) {
	m := nextUnitRe.FindStringSubmatch(e)
	if m == nil {
		return time.Time{}, false
	}
	return shift(ref, m[1], 1), true
}

func shift(ref time.Time, unit string, n int) time.Time {
	switch unit {
	case "week":
		return ref.AddDate(0, 0, 7*n)
	case "month":
		return ref.AddDate(0, n, 0)
	case "year":
		return ref.AddDate(n, 0, 0)
	default:
		return ref.AddDate(0, 0, n)
	}
}

var weekdayRe = regexp.MustCompile(`^(?:(next|this|coming)\s+)?(mon|tues?|wed(?:nes)?|thu(?:rs?)?|fri|sat(?:ur)?|sun)(?:day)?$`)

var weekdays = map[string]time.Weekday{
	"mon": time.Monday, "tue": time.Tuesday, "tues": time.Tuesday,
	"wed": time.Wednesday, "wednes": time.Wednesday,
	"thu": time.Thursday, "thur": time.Thursday, "thurs": time.Thursday,
	"fri": time.Friday, "sat": time.Saturday, "satur": time.Saturday, "sun": time.Sunday,
}

// matchWeekday picks the next occurrence strictly after ref. "next X"
// on the same weekday as ref means a week later.
func matchWeekday(e string, ref time.Time) (time.Time, bool) {
	m := weekdayRe.FindStringSubmatch(e)
	if m == nil {
		return time.Time{}, false
	}
	wd, ok := weekdays[m[2]]
	if !ok {
		return time.Time{}, false
	}
	delta := (int(wd) - int(ref.Weekday()) + 7) % 7
	if delta == 0 {
		delta = 7
	}
	return ref.AddDate(0, 0, delta), true
}

var months = map[string]time.Month{
	"jan": time.January, "january": time.January,
	"feb": time.February, "february": time.February,
	"mar": time.March, "march": time.March,
	"apr": time.April, "april": time.April,
	"may": time.May,
	"jun": time.June, "june": time.June,
	"jul": time.July, "july": time.July,
	"aug": time.August, "august": time.August,
	"sep": time.September, "sept": time.September, "september": time.September,
	"oct": time.October, "october": time.October,
	"nov": time.November, "november": time.November,
	"dec": time.December, "december": time.December,
}

const monthAlt = `(jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|june?|july?|aug(?:ust)?|sept?(?:ember)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)\.?`

var (
	monthDayRe = regexp.MustCompile(`^` + monthAlt + `\s+(\d{1,2})(?:st|nd|rd|th)?(?:,?\s+(\d{4}))?$`)
	dayMonthRe = regexp.MustCompile(`^(\d{1,2})(?:st|nd|rd|th)?\s+(?:of\s+)?` + monthAlt + `(?:,?\s+(\d{4}))?$`)
)

func matchMonthDay(e string, ref time.Time) (time.Time, bool) {
	m := monthDayRe.FindStringSubmatch(e)
	if m == nil {
		return time.Time{}, false
	}
	return calendar(ref, months[m[1]], atoi(m[2]), m[3])
}

func matchDayMonth(e string, ref time.Time) (time.Time, bool) {
	m := dayMonthRe.FindStringSubmatch(e)
	if m == nil {
		return time.Time{}, false
	}
	return calendar(ref, months[m[2]], atoi(m[1]), m[3])
}

// calendar resolves a month/day with an optional year. Without a year the
// date is placed in the first year, starting at ref's, where it exists and
// has not yet passed.
func calendar(ref time.Time, month time.Month, day int, year string) (time.Time, bool) {
	if year != "" {
		return date(atoi(year), month, day)
	}
	for y := ref.Year(); y <= ref.Year()+4; y++ {
		t, ok := date(y, month, day)
		if ok && !t.Before(ref) {
			return t, true
		}
	}
	return time.Time{}, false
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
