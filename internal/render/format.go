package render

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Money formats an amount with the profile's currency symbol and exactly two
// fraction digits.
func Money(symbol string, amount decimal.Decimal) string {
	return symbol + amount.StringFixed(2)
}

// NegMoney formats a deducted amount, e.g. "-$50.00".
func NegMoney(symbol string, amount decimal.Decimal) string {
	return "-" + Money(symbol, amount)
}

// Percent formats a percentage as integer-or-decimal followed by "%":
// 10 -> "10%", 7.5 -> "7.5%".
func Percent(pct decimal.Decimal) string {
	return pct.String() + "%"
}

func decimalInt(n int64) string {
	return strconv.FormatInt(n, 10)
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}
