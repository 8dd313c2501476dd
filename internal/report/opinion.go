// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"regexp"

	"github.com/pdiddy/caselaw-mcp/pkg/types"
)

// tagRe matches any HTML or XML tag for plain-text conversion.
var tagRe = regexp.MustCompile(`<[^>]+>`)

// StripTags removes all markup tags, leaving only text content.
func StripTags(s string) string {
	return tagRe.ReplaceAllString(s, "")
}

// OpinionText is the extracted body of an opinion plus the name of the
// field it came from.
type OpinionText struct {
	Text   string
	Source string
}

// ExtractOpinionText picks the opinion body from the first populated text
// field. plain_text is preferred and passes through verbatim; the markup
// variants are tried in a fixed order and stripped to plain text. The
// first populated field wins even when later fields are also set. Returns
// false when no field yields any text.
func ExtractOpinionText(op types.Opinion) (OpinionText, bool) {
	if op.PlainText != "" {
		return OpinionText{Text: op.PlainText, Source: "plain_text"}, true
	}
	candidates := []struct {
		source string
		raw    string
	}{
		{"html_with_citations", op.HTMLWithCitations},
		{"html", op.HTML},
		{"html_columbia", op.HTMLColumbia},
		{"html_lawbox", op.HTMLLawbox},
		{"html_anon_2020", op.HTMLAnon2020},
		{"xml_harvard", op.XMLHarvard},
	}
	for _, c := range candidates {
		if c.raw == "" {
			continue
		}
		text := StripTags(c.raw)
		if text == "" {
			return OpinionText{}, false
		}
		return OpinionText{Text: text, Source: c.source}, true
	}
	return OpinionText{}, false
}

// Truncate caps s at max characters, reporting whether anything was cut.
// A max of zero or less disables truncation.
func Truncate(s string, max int) (string, bool) {
	if max <= 0 {
		return s, false
	}
	r := []rune(s)
	if len(r) <= max {
		return s, false
	}
	return string(r[:max]), true
}
