package fragment

import "strings"

// SelectorKind enumerates how an opening tag is matched.
type SelectorKind string

const (
	KindFirst SelectorKind = "first" // first opening tag of the name
	KindID    SelectorKind = "id"    // id attribute equals Value
	KindClass SelectorKind = "class" // class attribute contains Value as a token
)

// Selector identifies the opening tag of a fragment.
type Selector struct {
	Tag   string
	Kind  SelectorKind
	Value string
}

// ByID selects the first <tag> whose id attribute equals id.
func ByID(tag, id string) Selector {
	return Selector{Tag: tag, Kind: KindID, Value: id}
}

// ByClass selects the first <tag> whose class list contains class.
func ByClass(tag, class string) Selector {
	return Selector{Tag: tag, Kind: KindClass, Value: class}
}

// First selects the first <tag> unconditionally.
func First(tag string) Selector {
	return Selector{Tag: tag, Kind: KindFirst}
}

// String renders the selector in CSS-like shorthand (nav#mobileMenu, nav.mobile-menu, header).
func (s Selector) String() string {
	switch s.Kind {
	case KindID:
		return s.Tag + "#" + s.Value
	case KindClass:
		return s.Tag + "." + s.Value
	default:
		return s.Tag
	}
}

// Matches reports whether the opening tag text satisfies the selector.
// The tag name itself is not checked; the caller found openTag by its literal prefix.
func (s Selector) Matches(openTag string) bool {
	switch s.Kind {
	case KindID:
		attr, ok := FindAttribute(openTag, "id")
		return ok && attr.Value == s.Value
	case KindClass:
		attr, ok := FindAttribute(openTag, "class")
		if !ok {
			return false
		}
		for _, token := range strings.Fields(attr.Value) {
			if token == s.Value {
				return true
			}
		}
		return false
	default:
		return true
	}
}
