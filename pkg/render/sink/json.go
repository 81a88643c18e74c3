package sink

import (
	"github.com/bytedance/sonic"

	"github.com/matzehuels/tableau/pkg/errors"
	"github.com/matzehuels/tableau/pkg/layout"
)

// Document is the JSON form of a layout result. Regions refer to piles by
// their position in canonical order (see [layout.Result.All]).
type Document struct {
	Family      layout.Family `json:"family"`
	Params      layout.Params `json:"params"`
	Width       int           `json:"width"`
	Height      int           `json:"height"`
	Talon       *layout.Pile  `json:"talon"`
	Waste       *layout.Pile  `json:"waste,omitempty"`
	Foundations []layout.Pile `json:"foundations"`
	Rows        []layout.Pile `json:"rows"`
	Reserves    []layout.Pile `json:"reserves"`
	Regions     []jsonRegion  `json:"regions"`
	Meta        *DocumentMeta `json:"meta,omitempty"`
}

// DocumentMeta records how a document was produced.
type DocumentMeta struct {
	RunID   string `json:"run_id,omitempty"`
	Preset  string `json:"preset,omitempty"`
	Version string `json:"version,omitempty"`
}

type jsonRegion struct {
	Piles []int    `json:"piles"`
	Rect  jsonRect `json:"rect"`
}

// jsonRect carries unbounded edges as null.
type jsonRect struct {
	X0 *int `json:"x0"`
	Y0 *int `json:"y0"`
	X1 *int `json:"x1"`
	Y1 *int `json:"y1"`
}

// JSONOption configures [RenderJSON].
type JSONOption func(*Document)

// WithMeta attaches run metadata to the document.
func WithMeta(m DocumentMeta) JSONOption {
	return func(d *Document) { d.Meta = &m }
}

// RenderJSON encodes res as an indented JSON document.
func RenderJSON(res *layout.Result, opts ...JSONOption) ([]byte, error) {
	doc, err := NewDocument(res)
	if err != nil {
		return nil, err
	}
	for _, opt := range opts {
		opt(doc)
	}
	data, err := sonic.ConfigStd.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode layout")
	}
	return data, nil
}

// NewDocument converts res to its serialized form.
func NewDocument(res *layout.Result) (*Document, error) {
	index := make(map[layout.Point]int, res.Len())
	for i, p := range res.All() {
		index[p.Point()] = i
	}
	doc := &Document{
		Family:      res.Family,
		Params:      res.Params,
		Width:       res.Width,
		Height:      res.Height,
		Talon:       res.Talon,
		Waste:       res.Waste,
		Foundations: nonNil(res.Foundations),
		Rows:        nonNil(res.Rows),
		Reserves:    nonNil(res.Reserves),
		Regions:     make([]jsonRegion, 0, len(res.Regions)),
	}
	for _, r := range res.Regions {
		jr := jsonRegion{Piles: make([]int, 0, len(r.Piles)), Rect: encodeRect(r.Rect)}
		for _, p := range r.Piles {
			i, ok := index[p.Point()]
			if !ok {
				return nil, errors.New(errors.ErrCodePileNotFound, "region pile %s is not part of the layout", p)
			}
			jr.Piles = append(jr.Piles, i)
		}
		doc.Regions = append(doc.Regions, jr)
	}
	return doc, nil
}

// ParseJSON decodes a document written by [RenderJSON] back into a result.
func ParseJSON(data []byte) (*layout.Result, error) {
	var doc Document
	if err := sonic.ConfigStd.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode layout")
	}
	return doc.Result()
}

// Result rebuilds the layout result described by d.
func (d *Document) Result() (*layout.Result, error) {
	if _, err := layout.ParseFamily(string(d.Family)); err != nil {
		return nil, err
	}
	res := &layout.Result{
		Family:      d.Family,
		Params:      d.Params,
		Geometry:    layout.NewGeometry(d.Params),
		Talon:       d.Talon,
		Waste:       d.Waste,
		Foundations: d.Foundations,
		Rows:        d.Rows,
		Reserves:    d.Reserves,
		Width:       d.Width,
		Height:      d.Height,
	}
	all := res.All()
	for _, jr := range d.Regions {
		r := layout.Region{Rect: decodeRect(jr.Rect)}
		for _, i := range jr.Piles {
			if i < 0 || i >= len(all) {
				return nil, errors.New(errors.ErrCodeInvalidInput, "region refers to pile %d of %d", i, len(all))
			}
			r.Piles = append(r.Piles, all[i])
		}
		res.Regions = append(res.Regions, r)
	}
	return res, nil
}

func encodeRect(r layout.Rect) jsonRect {
	edge := func(v int) *int {
		if v == layout.Unbounded || v == layout.UnboundedNeg {
			return nil
		}
		return &v
	}
	return jsonRect{edge(r.X0), edge(r.Y0), edge(r.X1), edge(r.Y1)}
}

func decodeRect(r jsonRect) layout.Rect {
	edge := func(v *int, unbounded int) int {
		if v == nil {
			return unbounded
		}
		return *v
	}
	return layout.Rect{
		X0: edge(r.X0, layout.UnboundedNeg),
		Y0: edge(r.Y0, layout.UnboundedNeg),
		X1: edge(r.X1, layout.Unbounded),
		Y1: edge(r.Y1, layout.Unbounded),
	}
}

func nonNil(p []layout.Pile) []layout.Pile {
	if p == nil {
		return []layout.Pile{}
	}
	return p
}
