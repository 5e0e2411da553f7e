package authoring

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/case-framework/case-forms/pkg/forms/types"
)

// ExtractCloze derives blanks and options from the underlined spans of a rich text sentence.
// Spans are taken in document order; a <u> nested inside another one is part of the outer blank.
// Sentences without underlines, or that cannot be parsed, yield empty slices.
func ExtractCloze(sentence string) ([]types.Blank, []string) {
	blanks := []types.Blank{}
	options := []string{}

	nodes, err := parseSentence(sentence)
	if err != nil {
		return blanks, options
	}

	for _, n := range nodes {
		walkUnderlined(n, func(u *html.Node) {
			text := textContent(u)
			pos := len(blanks)
			blanks = append(blanks, types.Blank{ID: pos, Text: text, Position: pos})
			options = append(options, text)
		})
	}
	return blanks, options
}

type SegmentKind string

const (
	SEGMENT_TEXT  SegmentKind = "text"
	SEGMENT_BLANK SegmentKind = "blank"
)

// Segment is a piece of a cloze sentence as shown to a respondent: either plain text or the
// slot for the blank at Position.
type Segment struct {
	Kind     SegmentKind `json:"kind"`
	Text     string      `json:"text,omitempty"`
	Position int         `json:"position"`
}

// ClozeSegments splits the sentence into text runs and blank slots. Markup other than <u> is
// reduced to its text.
func ClozeSegments(sentence string) []Segment {
	segments := []Segment{}

	nodes, err := parseSentence(sentence)
	if err != nil {
		return []Segment{{Kind: SEGMENT_TEXT, Text: sentence}}
	}

	pos := 0
	var sb strings.Builder
	flush := func() {
		if sb.Len() > 0 {
			segments = append(segments, Segment{Kind: SEGMENT_TEXT, Text: sb.String()})
			sb.Reset()
		}
	}

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch {
		case n.Type == html.TextNode:
			sb.WriteString(n.Data)
			return
		case isUnderline(n):
			flush()
			segments = append(segments, Segment{Kind: SEGMENT_BLANK, Position: pos})
			pos++
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range nodes {
		walk(n)
	}
	flush()
	return segments
}

func parseSentence(sentence string) ([]*html.Node, error) {
	body := &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	}
	return html.ParseFragment(strings.NewReader(sentence), body)
}

func isUnderline(n *html.Node) bool {
	return n.Type == html.ElementNode && n.DataAtom == atom.U
}

func walkUnderlined(n *html.Node, fn func(u *html.Node)) {
	if isUnderline(n) {
		fn(n)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walkUnderlined(c, fn)
	}
}

func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(textContent(c))
	}
	return sb.String()
}
