package sink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/tableau/pkg/errors"
	"github.com/matzehuels/tableau/pkg/layout"
)

// DOTFormats lists the formats [RenderDOT] produces.
var DOTFormats = []string{"svg", "png"}

var kindFill = map[layout.Kind]string{
	layout.KindTalon:      "#2b4c7e",
	layout.KindWaste:      "#567ebb",
	layout.KindFoundation: "#c9a227",
	layout.KindRow:        "#f4f1ea",
	layout.KindReserve:    "#8c6bb1",
}

// ToDOT converts res to a Graphviz graph for the neato engine. Every pile
// is a node pinned at its layout position (y flipped, since Graphviz grows
// upward); piles sharing a drop region are chained with dotted edges.
func ToDOT(res *layout.Result) string {
	g := res.Geometry
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  splines=true;\n")
	buf.WriteString("  bgcolor=\"#006633\";\n")
	fmt.Fprintf(&buf, "  node [shape=box, style=\"rounded,filled\", fixedsize=true, width=%.3f, height=%.3f, fontsize=10];\n",
		float64(g.CW)/72, float64(g.CH)/72)
	buf.WriteString("\n")

	for _, p := range res.All() {
		cx, cy := p.X+g.CW/2, res.Height-(p.Y+g.CH/2)
		label := p.Kind.String()
		if p.HasSuit() {
			label += "\n" + strconv.Itoa(p.Suit)
		}
		fmt.Fprintf(&buf, "  %q [pos=\"%d,%d!\", label=%q, fillcolor=%q];\n",
			nodeID(p), cx, cy, label, kindFill[p.Kind])
	}

	if len(res.Regions) > 0 {
		buf.WriteString("\n")
	}
	for _, r := range res.Regions {
		for i := 1; i < len(r.Piles); i++ {
			fmt.Fprintf(&buf, "  %q -- %q [style=dotted, color=white];\n", nodeID(r.Piles[i-1]), nodeID(r.Piles[i]))
		}
	}
	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(p layout.Pile) string {
	return fmt.Sprintf("%s-%d", p.Kind, p.Index)
}

// RenderDOT renders a graph produced by [ToDOT] with Graphviz.
func RenderDOT(ctx context.Context, dot, format string) ([]byte, error) {
	var f graphviz.Format
	switch strings.ToLower(format) {
	case "svg":
		f = graphviz.SVG
	case "png":
		f = graphviz.PNG
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "graphviz cannot render %q", format)
	}

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.SetLayout(graphviz.NEATO).Render(ctx, g, f, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	if f == graphviz.SVG {
		return normalizeViewBox(buf.Bytes()), nil
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's point-unit svg header with one whose
// width and height match the view box.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}
	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}
	header := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`, w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(header))
}
