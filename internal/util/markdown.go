package util

import "regexp"

var mdSpecial = regexp.MustCompile("[*_`\\[\\]()#<>!|\\\\]")

// SanitizeMarkdown strips Markdown control characters from user-derived
// strings (sender names come straight out of uploaded files) before they are
// rendered into a report.
func SanitizeMarkdown(s string) string {
	return mdSpecial.ReplaceAllString(s, "")
}
