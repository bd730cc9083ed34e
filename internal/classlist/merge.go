// Package classlist merges required class tokens into an element's class attribute.
package classlist

import (
	"strings"

	"git.home.luguber.info/inful/layoutsync/internal/fragment"
)

// Rule describes the tokens a class attribute must carry.
//
// ExemptToken is not added when any existing token contains ExemptWhenContains,
// so a page with its own gradient background keeps it instead of getting a
// flat background class.
type Rule struct {
	Required           []string `yaml:"required"`
	ExemptToken        string   `yaml:"exempt_token,omitempty"`
	ExemptWhenContains string   `yaml:"exempt_when_contains,omitempty"`
}

// DefaultRule returns the body class rule used by the site layout.
func DefaultRule() Rule {
	return Rule{
		Required:           []string{"bg-background-cream", "text-text-main", "antialiased", "min-h-screen"},
		ExemptToken:        "bg-background-cream",
		ExemptWhenContains: "gradient",
	}
}

// Tokens merges the rule into existing and returns the resulting class list.
// Existing order is kept (first occurrence of a duplicate wins) and missing
// required tokens are appended in rule order.
func (r Rule) Tokens(existing []string) []string {
	seen := make(map[string]bool, len(existing)+len(r.Required))
	out := make([]string, 0, len(existing)+len(r.Required))
	for _, token := range existing {
		if seen[token] {
			continue
		}
		seen[token] = true
		out = append(out, token)
	}

	exempt := r.exempted(out)
	for _, token := range r.Required {
		if token == "" || seen[token] {
			continue
		}
		if exempt && token == r.ExemptToken {
			continue
		}
		seen[token] = true
		out = append(out, token)
	}
	return out
}

func (r Rule) exempted(existing []string) bool {
	if r.ExemptToken == "" || r.ExemptWhenContains == "" {
		return false
	}
	for _, token := range existing {
		if strings.Contains(token, r.ExemptWhenContains) {
			return true
		}
	}
	return false
}

// Merge applies the rule to an opening tag and returns the rewritten tag.
//
// An existing class value is replaced in place by the space-joined merged
// list; quotes and every other byte of the tag are kept. Without a class
// attribute one is inserted before the closing '>' (or '/>') holding only the
// appended tokens. A class attribute whose value is unquoted or unterminated
// is left alone.
func Merge(tag string, rule Rule) string {
	attr, ok := fragment.FindAttribute(tag, "class")
	if !ok {
		added := rule.Tokens(nil)
		if len(added) == 0 || !strings.HasSuffix(tag, ">") {
			return tag
		}
		at := len(tag) - 1
		if strings.HasSuffix(tag, "/>") {
			at--
		}
		return tag[:at] + ` class="` + strings.Join(added, " ") + `"` + tag[at:]
	}

	if attr.Quote == 0 || !attr.Closed {
		return tag
	}
	merged := strings.Join(rule.Tokens(strings.Fields(attr.Value)), " ")
	return tag[:attr.ValueStart] + merged + tag[attr.ValueEnd:]
}

// MergeBody applies the rule to the first <body> opening tag of doc.
// Documents without a complete body tag are returned unchanged.
func MergeBody(doc string, rule Rule) string {
	return MergeElement(doc, "body", rule)
}

// MergeElement applies the rule to the first opening tag that starts with `<tag`.
func MergeElement(doc, tag string, rule Rule) string {
	start := strings.Index(doc, "<"+tag)
	if start < 0 {
		return doc
	}
	open, ok := fragment.OpeningTag(doc, start)
	if !ok {
		return doc
	}
	merged := Merge(open, rule)
	if merged == open {
		return doc
	}
	return doc[:start] + merged + doc[start+len(open):]
}
