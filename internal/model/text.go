package model

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/publicsuffix"
)

// Ellipsis is appended to truncated names.
const Ellipsis = "..."

// Truncate shortens s to at most n runes and appends Ellipsis when anything
// was cut. Strings of n runes or fewer are returned unchanged.
// It never splits a multi-byte rune.
func Truncate(s string, n int) string {
	if n < 0 {
		n = 0
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos] + Ellipsis
		}
		i++
	}
	return s
}

// Domain returns the registrable domain (eTLD+1) of rawURL, for example
// "rbc.com" for "https://www.rbc.com/community-social-impact/".
// It falls back to the bare host when the public suffix list has no answer
// and returns an empty string when rawURL has no host.
func Domain(rawURL string) string {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return ""
	}
	host := strings.ToLower(u.Hostname())
	if host == "" {
		return ""
	}
	domain, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return host
	}
	return domain
}
