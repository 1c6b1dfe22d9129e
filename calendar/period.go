package calendar

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// =============================================================================
// PERIOD - Signed calendar displacement (years, months, days)
// =============================================================================

// Period is an immutable displacement in calendar units. Components are
// independent and may be negative; Zero is the identity.
type Period struct {
	Years  int
	Months int
	Days   int
}

// Zero is the identity period, rendered "P0D".
var Zero = Period{}

// Constructors
func PeriodOf(years, months, days int) Period {
	return Period{Years: years, Months: months, Days: days}
}
func Years(n int) Period  { return Period{Years: n} }
func Months(n int) Period { return Period{Months: n} }
func Days(n int) Period   { return Period{Days: n} }

var periodFormat = regexp.MustCompile(`^([+-]?)P(?:([+-]?\d+)Y)?(?:([+-]?\d+)M)?(?:([+-]?\d+)D)?$`)

// ParsePeriod parses the ISO-8601 style form produced by String, e.g.
// "P3M", "P1Y2M3D", "P-1M", "P0D".
func ParsePeriod(s string) (Period, error) {
	upper := strings.ToUpper(s)
	m := periodFormat.FindStringSubmatch(upper)
	if m == nil || upper == "P" || upper == "+P" || upper == "-P" {
		return Period{}, fmt.Errorf("%w: %q", ErrInvalidPeriodFormat, s)
	}
	sign := 1
	if m[1] == "-" {
		sign = -1
	}
	num := func(g string) int {
		if g == "" {
			return 0
		}
		n, _ := strconv.Atoi(g)
		return sign * n
	}
	return Period{Years: num(m[2]), Months: num(m[3]), Days: num(m[4])}, nil
}

// IsZero reports whether all components are zero.
func (p Period) IsZero() bool {
	return p.Years == 0 && p.Months == 0 && p.Days == 0
}

// TotalMonths returns the year and month components as a single month count.
func (p Period) TotalMonths() int {
	return p.Years*12 + p.Months
}

// Negated returns the period with every component negated.
func (p Period) Negated() Period {
	return Period{Years: -p.Years, Months: -p.Months, Days: -p.Days}
}

// MultipliedBy scales every component by n.
func (p Period) MultipliedBy(n int) Period {
	return Period{Years: p.Years * n, Months: p.Months * n, Days: p.Days * n}
}

// AddTo applies the period to a date: the year and month components shift as
// one clamped month addition, then the day component is added.
func (p Period) AddTo(d Date) Date {
	result := d
	if tm := p.TotalMonths(); tm != 0 {
		result = result.AddMonths(tm)
	}
	if p.Days != 0 {
		result = result.AddDays(p.Days)
	}
	return result
}

// String renders the period in ISO-8601 style: "P0D" for zero, otherwise
// "P" followed by each non-zero component ("P3M", "P1Y2M3D", "P-1M").
func (p Period) String() string {
	if p.IsZero() {
		return "P0D"
	}
	var b strings.Builder
	b.WriteByte('P')
	if p.Years != 0 {
		fmt.Fprintf(&b, "%dY", p.Years)
	}
	if p.Months != 0 {
		fmt.Fprintf(&b, "%dM", p.Months)
	}
	if p.Days != 0 {
		fmt.Fprintf(&b, "%dD", p.Days)
	}
	return b.String()
}
