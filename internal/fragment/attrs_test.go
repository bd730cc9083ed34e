package fragment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAttributes(t *testing.T) {
	tag := `<body id="top" class='a  b' data-x=raw hidden DATA-Y = "v">`

	attrs := ParseAttributes(tag)
	require.Len(t, attrs, 5)

	assert.Equal(t, "id", attrs[0].Name)
	assert.Equal(t, "top", attrs[0].Value)
	assert.Equal(t, byte('"'), attrs[0].Quote)

	assert.Equal(t, "class", attrs[1].Name)
	assert.Equal(t, "a  b", attrs[1].Value)
	assert.Equal(t, byte('\''), attrs[1].Quote)
	assert.Equal(t, "a  b", tag[attrs[1].ValueStart:attrs[1].ValueEnd])

	assert.Equal(t, "raw", attrs[2].Value)
	assert.Equal(t, byte(0), attrs[2].Quote)

	assert.Equal(t, "hidden", attrs[3].Name)
	assert.False(t, attrs[3].HasValue)

	assert.Equal(t, "DATA-Y", attrs[4].Name)
	assert.Equal(t, "v", attrs[4].Value)
}

func TestParseAttributes_SelfClosingAndUnterminated(t *testing.T) {
	attrs := ParseAttributes(`<img src="a.png"/>`)
	require.Len(t, attrs, 1)
	assert.Equal(t, "a.png", attrs[0].Value)

	attrs = ParseAttributes(`<div title="a>`)
	require.Len(t, attrs, 1)
	assert.False(t, attrs[0].Closed)
	assert.Equal(t, "a", attrs[0].Value)
}

func TestFindAttribute_CaseInsensitiveFirstWins(t *testing.T) {
	attr, ok := FindAttribute(`<div CLASS="one" class="two">`, "class")
	require.True(t, ok)
	assert.Equal(t, "one", attr.Value)

	_, ok = FindAttribute(`<div data-class="x">`, "class")
	assert.False(t, ok)
}

func TestOpeningTag(t *testing.T) {
	doc := `text <body class="x"> rest`

	tag, ok := OpeningTag(doc, 5)
	require.True(t, ok)
	assert.Equal(t, `<body class="x">`, tag)

	_, ok = OpeningTag(`<body class="x"`, 0)
	assert.False(t, ok)
	_, ok = OpeningTag(doc, len(doc))
	assert.False(t, ok)
}
