// Package services holds the CEE valorisation core and its display-boundary
// helpers: pure functions over read-only snapshots, no PocketBase imports.
package services

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// frPrinter localizes numbers for the French display conventions the rest of
// the application uses (decimal comma, non-breaking group separators).
var frPrinter = message.NewPrinter(language.French)

// FormatEUR formats an amount in euros for display, e.g. "1 234,56 €".
// Rounding happens here, at the boundary; the core keeps full precision.
func FormatEUR(amount float64) string {
	return frPrinter.Sprintf("%.2f €", amount)
}

// FormatMWh formats a normalized-energy figure, e.g. "20,000 MWh".
func FormatMWh(mwh float64) string {
	return frPrinter.Sprintf("%.3f MWh", mwh)
}

// FormatQuantity formats a multiplier/quantity value without a unit,
// trimming trailing zeros ("40", "2,5").
func FormatQuantity(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	return strings.ReplaceAll(s, ".", ",")
}
