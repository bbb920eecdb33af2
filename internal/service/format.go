package service

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// MoneyFormatter renders amounts as symbol-prefixed, thousands-grouped strings
// such as "₹12,500" or "₹1,234.5".
type MoneyFormatter struct {
	symbol string
	tag    language.Tag
}

func NewMoneyFormatter(symbol string) MoneyFormatter {
	return MoneyFormatter{symbol: symbol, tag: language.English}
}

func (f MoneyFormatter) Format(amount float64) string {
	p := message.NewPrinter(f.tag)
	return f.symbol + p.Sprintf("%v", number.Decimal(amount, number.MaxFractionDigits(2)))
}
