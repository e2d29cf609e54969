// Package numwords transcribes non-negative integer amounts into English
// words using South Asian (lakh) grouping: 1,50,500 reads "One Lakh Fifty
// Thousand Five Hundred", not "One Hundred Fifty Thousand Five Hundred".
package numwords

import (
	"errors"
	"strings"
)

// ErrNegativeAmount is returned when a negative amount is passed to ToWords.
var ErrNegativeAmount = errors.New("numwords: amount must not be negative")

var ones = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
}

var teens = []string{
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen",
	"Sixteen", "Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

// convertBelowThousand spells out 0..999. Zero yields the empty string so
// callers can splice group results together without special-casing.
func convertBelowThousand(n int64) string {
	switch {
	case n == 0:
		return ""
	case n < 10:
		return ones[n]
	case n < 20:
		return teens[n-10]
	case n < 100:
		s := tens[n/10]
		if n%10 != 0 {
			s += " " + ones[n%10]
		}
		return s
	default:
		s := ones[n/100] + " Hundred"
		if n%100 != 0 {
			s += " " + convertBelowThousand(n%100)
		}
		return s
	}
}

// ToWords converts a non-negative amount into title-cased, space-separated
// English words with lakh/thousand grouping. Amounts of one crore
// (10,000,000) and above carry no crore term: the lakh count itself is
// spelled out, so 1,00,00,000 reads "One Hundred Lakh". That matches the
// receipts this system has always produced and is kept as-is.
func ToWords(n int64) (string, error) {
	if n < 0 {
		return "", ErrNegativeAmount
	}

	if n == 0 {
		return "Zero", nil
	}
	// Grouping can leave an empty thousand group behind (a remainder below
	// one thousand); collapse the doubled space it produces.
	return strings.Join(strings.Fields(grouped(n)), " "), nil
}

// grouped spells out any positive amount with lakh/thousand grouping. The
// lakh count is itself grouped the same way, so it can grow without bound:
// ten thousand crore reads "Ten Lakh Lakh".
func grouped(n int64) string {
	if n < 100000 {
		return convertBelowLakh(n)
	}
	s := grouped(n/100000) + " Lakh"
	remainder := n % 100000
	if remainder != 0 {
		s += " " + convertBelowThousand(remainder/1000) + " Thousand"
		if remainder%1000 != 0 {
			s += " " + convertBelowThousand(remainder%1000)
		}
	}
	return s
}

// convertBelowLakh spells out 1..99999 with thousand grouping.
func convertBelowLakh(n int64) string {
	if n < 1000 {
		return convertBelowThousand(n)
	}
	s := convertBelowThousand(n/1000) + " Thousand"
	if n%1000 != 0 {
		s += " " + convertBelowThousand(n%1000)
	}
	return s
}
