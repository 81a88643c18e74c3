package sink

import (
	"bytes"
	"fmt"
	"html"

	"github.com/matzehuels/tableau/pkg/layout"
)

const pileCSS = `
    .pile { stroke: #1a1a1a; stroke-width: 1.5; }
    .pile.talon { fill: #2b4c7e; }
    .pile.waste { fill: #567ebb; }
    .pile.foundation { fill: #c9a227; }
    .pile.row { fill: #f4f1ea; }
    .pile.reserve { fill: #8c6bb1; }
    .region { fill: #ffffff; fill-opacity: 0.08; stroke: #ffffff; stroke-opacity: 0.4; stroke-dasharray: 6 4; }
    .label { font-family: sans-serif; font-size: 14px; }
    .suit { font-family: sans-serif; font-size: 10px; fill: #404040; text-anchor: middle; dominant-baseline: central; }`

// SVGOption configures [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	regions    bool
	background string
	textColor  string
	counts     map[layout.Kind]int
}

// WithRegions outlines the drop regions.
func WithRegions() SVGOption { return func(r *svgRenderer) { r.regions = true } }

// WithBackground sets the surface fill and the label colour.
func WithBackground(fill, text string) SVGOption {
	return func(r *svgRenderer) { r.background, r.textColor = fill, text }
}

// WithCounts sets the number shown in each label, by pile kind.
func WithCounts(c map[layout.Kind]int) SVGOption { return func(r *svgRenderer) { r.counts = c } }

// RenderSVG draws res as a standalone SVG document.
func RenderSVG(res *layout.Result, opts ...SVGOption) []byte {
	r := svgRenderer{background: "#006633", textColor: "#000000"}
	for _, opt := range opts {
		opt(&r)
	}
	g := res.Geometry

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n",
		res.Width, res.Height, res.Width, res.Height)
	fmt.Fprintf(&buf, "  <title>%s</title>\n", html.EscapeString(string(res.Family)))
	fmt.Fprintf(&buf, "  <style>%s\n    .label { fill: %s; }\n  </style>\n", pileCSS, r.textColor)
	fmt.Fprintf(&buf, `  <rect width="%d" height="%d" fill="%s"/>`+"\n", res.Width, res.Height, r.background)

	if r.regions {
		for i, reg := range res.Regions {
			c := reg.Rect.Clip(res.Width, res.Height)
			if c.X1 <= c.X0 || c.Y1 <= c.Y0 {
				continue
			}
			fmt.Fprintf(&buf, `  <rect id="region-%d" class="region" x="%d" y="%d" width="%d" height="%d"/>`+"\n",
				i, c.X0, c.Y0, c.X1-c.X0, c.Y1-c.Y0)
		}
	}

	for _, p := range res.All() {
		fmt.Fprintf(&buf, `  <rect id="%s-%d" class="pile %s" x="%d" y="%d" width="%d" height="%d" rx="4"/>`+"\n",
			p.Kind, p.Index, p.Kind, p.X, p.Y, g.CW, g.CH)
		if p.HasSuit() {
			fmt.Fprintf(&buf, `  <text class="suit" x="%d" y="%d">%d</text>`+"\n", p.X+g.CW/2, p.Y+g.CH/2, p.Suit)
		}
	}

	for _, p := range res.Labeled() {
		l := p.Label
		fmt.Fprintf(&buf, `  <text class="label" x="%d" y="%d" text-anchor="%s" dominant-baseline="%s" xml:space="preserve">%s</text>`+"\n",
			l.X, l.Y, textAnchor(l.Anchor), baseline(l.Anchor), l.Format.Format(r.counts[p.Kind]))
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func textAnchor(a layout.Anchor) string {
	switch a.Horizontal() {
	case -1:
		return "start"
	case 1:
		return "end"
	}
	return "middle"
}

func baseline(a layout.Anchor) string {
	switch a.Vertical() {
	case -1:
		return "hanging"
	case 1:
		return "text-after-edge"
	}
	return "central"
}
