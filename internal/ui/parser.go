package ui

import (
	"errors"
	"strings"
)

// ErrUnclosedBlock is returned by ParseCSS for a "{" without its "}".
var ErrUnclosedBlock = errors.New("css: unclosed block")

// ParseCSS parses a primitive CSS file: .class or #id selectors, optionally grouped with
// commas, and blocks of "key: value;". No combinators, no @rules; blocks with other
// selectors are skipped. Later rules override earlier ones for the same property.
func ParseCSS(content string) (*Stylesheet, error) {
	sheet := &Stylesheet{}
	rest := stripCSSComments(content)
	for {
		open := strings.IndexByte(rest, '{')
		if open == -1 {
			return sheet, nil
		}
		close := findMatchingBrace(rest, open)
		if close == -1 {
			return sheet, ErrUnclosedBlock
		}
		props := parseDeclarations(rest[open+1 : close])
		for _, sel := range strings.Split(rest[:open], ",") {
			sel = strings.TrimSpace(sel)
			if validSelector(sel) {
				sheet.Rules = append(sheet.Rules, Rule{Selector: sel, Props: props})
			}
		}
		rest = rest[close+1:]
	}
}

func validSelector(sel string) bool {
	return len(sel) >= 2 && (sel[0] == '.' || sel[0] == '#') && !strings.ContainsAny(sel, " \t\n>+~:[")
}

func stripCSSComments(s string) string {
	var b strings.Builder
	for {
		i := strings.Index(s, "/*")
		if i == -1 {
			b.WriteString(s)
			return b.String()
		}
		b.WriteString(s[:i])
		j := strings.Index(s[i+2:], "*/")
		if j == -1 {
			return b.String()
		}
		s = s[i+2+j+2:]
	}
}

func findMatchingBrace(s string, openIdx int) int {
	depth := 1
	for i := openIdx + 1; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func parseDeclarations(body string) map[string]string {
	props := make(map[string]string)
	for _, part := range strings.Split(body, ";") {
		k, v, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		k = strings.TrimSpace(k)
		if k != "" {
			props[k] = strings.TrimSpace(v)
		}
	}
	return props
}
