package fragment

import "strings"

// Attribute is one attribute of an opening tag, with the byte offsets of its
// value inside the tag text so callers can rewrite the value in place.
type Attribute struct {
	Name     string
	Value    string
	HasValue bool
	// Quote is '"' or '\'' for quoted values, 0 otherwise.
	Quote byte
	// Closed is false when a quoted value runs to the end of the tag text.
	Closed     bool
	ValueStart int
	ValueEnd   int
}

// OpeningTag returns the text from doc[at] up to and including the next '>'.
func OpeningTag(doc string, at int) (string, bool) {
	if at < 0 || at >= len(doc) {
		return "", false
	}
	gt := strings.IndexByte(doc[at:], '>')
	if gt < 0 {
		return "", false
	}
	return doc[at : at+gt+1], true
}

// ParseAttributes splits the attributes of an opening tag such as
// `<body id="top" class='a b'>`. Duplicate names are kept in source order.
func ParseAttributes(tag string) []Attribute {
	i := 0
	if strings.HasPrefix(tag, "<") {
		i = 1
	}
	for i < len(tag) && !isSpace(tag[i]) && tag[i] != '>' && tag[i] != '/' {
		i++
	}

	var attrs []Attribute
	for i < len(tag) {
		for i < len(tag) && (isSpace(tag[i]) || tag[i] == '/') {
			i++
		}
		if i >= len(tag) || tag[i] == '>' {
			break
		}

		nameStart := i
		for i < len(tag) && !isSpace(tag[i]) && tag[i] != '=' && tag[i] != '>' && tag[i] != '/' {
			i++
		}
		attr := Attribute{Name: tag[nameStart:i], Closed: true}

		j := i
		for j < len(tag) && isSpace(tag[j]) {
			j++
		}
		if j >= len(tag) || tag[j] != '=' {
			attrs = append(attrs, attr)
			i = j
			continue
		}

		j++
		for j < len(tag) && isSpace(tag[j]) {
			j++
		}
		attr.HasValue = true
		if j < len(tag) && (tag[j] == '"' || tag[j] == '\'') {
			attr.Quote = tag[j]
			attr.ValueStart = j + 1
			if end := strings.IndexByte(tag[j+1:], attr.Quote); end >= 0 {
				attr.ValueEnd = j + 1 + end
				i = attr.ValueEnd + 1
			} else {
				attr.Closed = false
				attr.ValueEnd = len(tag)
				if strings.HasSuffix(tag, ">") {
					attr.ValueEnd--
				}
				i = len(tag)
			}
		} else {
			attr.ValueStart = j
			for j < len(tag) && !isSpace(tag[j]) && tag[j] != '>' {
				j++
			}
			attr.ValueEnd = j
			i = j
		}
		if attr.ValueEnd < attr.ValueStart {
			attr.ValueEnd = attr.ValueStart
		}
		attr.Value = tag[attr.ValueStart:attr.ValueEnd]
		attrs = append(attrs, attr)
	}
	return attrs
}

// FindAttribute returns the first attribute named name (ASCII case-insensitive).
func FindAttribute(tag, name string) (Attribute, bool) {
	for _, attr := range ParseAttributes(tag) {
		if strings.EqualFold(attr.Name, name) {
			return attr, true
		}
	}
	return Attribute{}, false
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}
