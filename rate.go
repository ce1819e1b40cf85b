package heath

import (
	"fmt"
	"strings"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Hours converts d to a decimal number of hours.
func Hours(d time.Duration) decimal.Decimal {
	return decimal.NewFromInt(int64(d / time.Second)).Div(decimal.NewFromInt(3600))
}

// Rate is an hourly rate in a given currency, like "950 SEK".
type Rate struct {
	value decimal.Decimal
	cur   string
}

// NewRate returns the hourly rate value in currency cur.
func NewRate(value decimal.Decimal, cur string) Rate { return Rate{value: value, cur: cur} }

// ParseRate reads "<amount> <currency code>".
func ParseRate(s string) (Rate, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return Rate{}, fmt.Errorf("invalid rate %q want format \"<amount> <currency>\"", s)
	}
	v, err := decimal.NewFromString(fields[0])
	if err != nil {
		return Rate{}, fmt.Errorf("invalid rate amount %q: %w", fields[0], err)
	}
	code := strings.ToUpper(fields[1])
	if money.GetCurrency(code) == nil {
		return Rate{}, fmt.Errorf("unknown currency %q", fields[1])
	}
	return Rate{value: v, cur: code}, nil
}

func (r Rate) IsZero() bool      { return r.cur == "" }
func (r Rate) Currency() string  { return r.cur }
func (r Rate) Equal(q Rate) bool { return r.cur == q.cur && r.value.Equal(q.value) }
func (r Rate) String() string {
	if r.IsZero() {
		return ""
	}
	return r.value.String() + " " + r.cur
}

// Amount returns the amount earned over d at this rate.
func (r Rate) Amount(d time.Duration) Amount {
	return Amount{value: r.value.Mul(Hours(d)), cur: r.cur}
}

// Amount is a sum of money earned on a project.
type Amount struct {
	value decimal.Decimal // as major unit value
	cur   string
}

func (a Amount) IsZero() bool     { return a.cur == "" }
func (a Amount) Currency() string { return a.cur }

// Value returns the amount in major units.
func (a Amount) Value() decimal.Decimal { return a.value }

// String formats the amount with its currency conventions.
func (a Amount) String() string {
	if a.IsZero() {
		return ""
	}
	// money.New never returns a nil currency.
	cur := *money.New(0, a.cur).Currency()
	minor := a.value.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}
