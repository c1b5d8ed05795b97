// Package markdown provides AST-level analysis of authored markdown bodies.
//
// It never renders: rendering belongs to the external generator. The toolkit
// only inspects documents, currently to extract link and image destinations
// for asset checks.
package markdown

import (
	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// DestKind classifies where a destination came from.
type DestKind string

const (
	DestKindLink  DestKind = "link"
	DestKindImage DestKind = "image"
	DestKindAuto  DestKind = "auto"
)

// Destination is one link-like target found in a body.
type Destination struct {
	Kind DestKind
	URL  string
}

// ExtractDestinations parses body and collects every link, image and
// autolink destination in document order.
func ExtractDestinations(body []byte) []Destination {
	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(body))

	var dests []Destination
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *gmast.Link:
			dests = append(dests, Destination{Kind: DestKindLink, URL: string(node.Destination)})
		case *gmast.Image:
			dests = append(dests, Destination{Kind: DestKindImage, URL: string(node.Destination)})
		case *gmast.AutoLink:
			dests = append(dests, Destination{Kind: DestKindAuto, URL: string(node.URL(body))})
		}
		return gmast.WalkContinue, nil
	})
	return dests
}
