package types

// Currency represents a supported budget currency code
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyJPY Currency = "JPY"
	CurrencyCNY Currency = "CNY"
	CurrencyCAD Currency = "CAD"
	CurrencyAUD Currency = "AUD"
	CurrencyCHF Currency = "CHF"
)

// AllCurrencies returns all supported currency codes
func AllCurrencies() []Currency {
	return []Currency{
		CurrencyUSD,
		CurrencyEUR,
		CurrencyGBP,
		CurrencyJPY,
		CurrencyCNY,
		CurrencyCAD,
		CurrencyAUD,
		CurrencyCHF,
	}
}

// IsValid checks if the currency code is supported
func (c Currency) IsValid() bool {
	switch c {
	case CurrencyUSD,
		CurrencyEUR,
		CurrencyGBP,
		CurrencyJPY,
		CurrencyCNY,
		CurrencyCAD,
		CurrencyAUD,
		CurrencyCHF:
		return true
	default:
		return false
	}
}

// String returns the string representation of the currency code
func (c Currency) String() string {
	return string(c)
}
