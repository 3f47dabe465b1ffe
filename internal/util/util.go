package util

import (
	"fmt"
	"regexp"
	"strings"
)

// CurrencySymbol matches the storefront's display currency.
const CurrencySymbol = "EGP "

// FormatPrice renders a whole-EGP price for display.
func FormatPrice(price float64) string {
	return fmt.Sprintf("%s%.0f", CurrencySymbol, price)
}

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func ValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

var (
	slugStrip    = regexp.MustCompile(`[^\w\s-]`)
	slugCollapse = regexp.MustCompile(`[\s_-]+`)
	slugTrim     = regexp.MustCompile(`^-+|-+$`)
)

// Slugify normalizes a display name into a URL slug.
func Slugify(s string) string {
	s = strings.ToLower(s)
	s = slugStrip.ReplaceAllString(s, "")
	s = slugCollapse.ReplaceAllString(s, "-")
	return slugTrim.ReplaceAllString(s, "")
}
