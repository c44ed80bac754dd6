package finance

import (
	"strings"

	"github.com/shopspring/decimal"
)

var ones = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight",
	"Nine", "Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen",
	"Sixteen", "Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy",
	"Eighty", "Ninety",
}

// AmountInWords renders a rupee amount in words using the Indian
// numbering system (thousand, lakh, crore), e.g.
// "Two Hundred Eighty Six Rupees Only" or
// "One Lakh Twenty Rupees And Fifty Paise Only". A unit amount
// singularizes ("One Rupee", "One Paisa"). This mirrors the en-IN
// currency rendering the client shows on invoice previews.
func AmountInWords(amount decimal.Decimal) string {
	prefix := ""
	if amount.IsNegative() {
		prefix = "Minus "
		amount = amount.Neg()
	}

	rounded := amount.Round(2)
	rupees := rounded.IntPart()
	paise := rounded.Sub(decimal.NewFromInt(rupees)).Mul(oneHundred).IntPart()

	var b strings.Builder
	b.WriteString(prefix)
	switch {
	case rupees == 0:
		b.WriteString("Zero Rupees")
	case rupees == 1:
		b.WriteString("One Rupee")
	default:
		b.WriteString(numberInWords(rupees))
		b.WriteString(" Rupees")
	}
	if paise > 0 {
		b.WriteString(" And ")
		b.WriteString(numberInWords(paise))
		if paise == 1 {
			b.WriteString(" Paisa")
		} else {
			b.WriteString(" Paise")
		}
	}
	b.WriteString(" Only")
	return b.String()
}

// numberInWords converts a positive integer using Indian grouping:
// two-digit groups of crore and lakh above a three-digit thousand base.
func numberInWords(n int64) string {
	switch {
	case n < 20:
		return ones[n]
	case n < 100:
		word := tens[n/10]
		if n%10 != 0 {
			word += " " + ones[n%10]
		}
		return word
	case n < 1000:
		word := ones[n/100] + " Hundred"
		if n%100 != 0 {
			word += " " + numberInWords(n%100)
		}
		return word
	case n < 100000:
		word := numberInWords(n/1000) + " Thousand"
		if n%1000 != 0 {
			word += " " + numberInWords(n%1000)
		}
		return word
	case n < 10000000:
		word := numberInWords(n/100000) + " Lakh"
		if n%100000 != 0 {
			word += " " + numberInWords(n%100000)
		}
		return word
	default:
		word := numberInWords(n/10000000) + " Crore"
		if n%10000000 != 0 {
			word += " " + numberInWords(n%10000000)
		}
		return word
	}
}
