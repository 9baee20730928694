package rendering

import (
	"fmt"
	"html/template"
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Funcs are the helpers available to every template.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"lower":       strings.ToLower,
		"join":        strings.Join,
		"initials":    Initials,
		"rating":      FormatRating,
		"categoryURL": CategoryURL,
	}
}

// Initials returns the upper-cased first letter of each word, at most two.
func Initials(name string) string {
	var b strings.Builder
	n := 0
	for _, word := range strings.Fields(name) {
		r, _ := utf8.DecodeRuneInString(word)
		b.WriteRune(unicode.ToUpper(r))
		if n++; n == 2 {
			break
		}
	}
	return b.String()
}

// FormatRating prints a product rating with one decimal.
func FormatRating(r float64) string {
	return fmt.Sprintf("%.1f", r)
}

// CategoryURL is the products page filtered to category.
func CategoryURL(category string) string {
	if category == "" || category == "All" {
		return "/products"
	}
	return "/products?category=" + url.QueryEscape(category)
}
