package sink

import (
	"bytes"
	"context"
	"encoding/json"
	"image/png"
	"reflect"
	"strings"
	"testing"

	"github.com/matzehuels/tableau/pkg/errors"
	"github.com/matzehuels/tableau/pkg/layout"
	"github.com/matzehuels/tableau/pkg/render"
)

func compute(t *testing.T, f layout.Family) *layout.Result {
	t.Helper()
	res, err := layout.Compute(f, layout.DefaultParams(f))
	if err != nil {
		t.Fatalf("Compute(%s) error = %v", f, err)
	}
	return res
}

func TestJSONRoundTrip(t *testing.T) {
	for _, f := range layout.Families() {
		t.Run(string(f), func(t *testing.T) {
			res := compute(t, f)
			data, err := RenderJSON(res)
			if err != nil {
				t.Fatalf("RenderJSON() error = %v", err)
			}
			back, err := ParseJSON(data)
			if err != nil {
				t.Fatalf("ParseJSON() error = %v", err)
			}
			if back.Family != res.Family || back.Params != res.Params {
				t.Errorf("header = %s %+v, want %s %+v", back.Family, back.Params, res.Family, res.Params)
			}
			if back.Width != res.Width || back.Height != res.Height {
				t.Errorf("size = %dx%d, want %dx%d", back.Width, back.Height, res.Width, res.Height)
			}
			if !reflect.DeepEqual(back.All(), res.All()) {
				t.Errorf("piles differ after round trip")
			}
			if !reflect.DeepEqual(back.Regions, res.Regions) {
				t.Errorf("Regions = %+v, want %+v", back.Regions, res.Regions)
			}
		})
	}
}

func TestJSONUnboundedEdgesAreNull(t *testing.T) {
	data, err := RenderJSON(compute(t, layout.Klondike), WithMeta(DocumentMeta{RunID: "run-1"}))
	if err != nil {
		t.Fatalf("RenderJSON() error = %v", err)
	}
	var out struct {
		Regions []struct {
			Piles []int          `json:"piles"`
			Rect  map[string]any `json:"rect"`
		} `json:"regions"`
		Meta DocumentMeta `json:"meta"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if len(out.Regions) != 1 {
		t.Fatalf("regions = %d, want 1", len(out.Regions))
	}
	rect := out.Regions[0].Rect
	for _, k := range []string{"x0", "x1", "y1"} {
		if v, ok := rect[k]; !ok || v != nil {
			t.Errorf("rect[%s] = %v, want null", k, v)
		}
	}
	if rect["y0"] != float64(141) {
		t.Errorf("rect[y0] = %v, want 141", rect["y0"])
	}
	if want := []int{6, 7, 8, 9, 10, 11, 12}; !reflect.DeepEqual(out.Regions[0].Piles, want) {
		t.Errorf("region piles = %v, want %v", out.Regions[0].Piles, want)
	}
	if out.Meta.RunID != "run-1" {
		t.Errorf("Meta.RunID = %q, want run-1", out.Meta.RunID)
	}
}

func TestParseJSONErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		code errors.Code
	}{
		{"malformed", `{"family":`, errors.ErrCodeInvalidInput},
		{"unknown family", `{"family":"spiderette"}`, errors.ErrCodeInvalidFamily},
		{"region index", `{"family":"yukon","rows":[],"regions":[{"piles":[3],"rect":{}}]}`, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseJSON([]byte(tt.data))
			if !errors.Is(err, tt.code) {
				t.Errorf("ParseJSON() error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestRenderSVG(t *testing.T) {
	res := compute(t, layout.Klondike)
	svg := string(RenderSVG(res, WithRegions(), WithCounts(map[layout.Kind]int{layout.KindTalon: 24})))

	if !strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 577 555"`) {
		t.Errorf("unexpected header: %.80s", svg)
	}
	if got := strings.Count(svg, `class="pile `); got != res.Len() {
		t.Errorf("piles = %d, want %d", got, res.Len())
	}
	if got := strings.Count(svg, `class="region"`); got != 1 {
		t.Errorf("regions = %d, want 1", got)
	}
	if got := strings.Count(svg, `class="label"`); got != 2 {
		t.Errorf("labels = %d, want 2", got)
	}
	if !strings.Contains(svg, `text-anchor="middle" dominant-baseline="hanging" xml:space="preserve">24</text>`) {
		t.Error("talon label with count 24 not found")
	}
}

func TestRenderSVGWithoutRegions(t *testing.T) {
	svg := string(RenderSVG(compute(t, layout.FreeCell)))
	if strings.Contains(svg, `class="region"`) {
		t.Error("regions drawn without WithRegions")
	}
}

func TestToDOT(t *testing.T) {
	res := compute(t, layout.Klondike)
	dot := ToDOT(res)
	if got := strings.Count(dot, "pos=\""); got != res.Len() {
		t.Errorf("nodes = %d, want %d", got, res.Len())
	}
	// talon center (45, 58) flipped against a 555 high surface
	if !strings.Contains(dot, `"talon-0" [pos="45,497!"`) {
		t.Errorf("talon node not pinned:\n%s", dot)
	}
	if got := strings.Count(dot, " -- "); got != 6 {
		t.Errorf("region edges = %d, want 6", got)
	}
}

func TestRenderDOT(t *testing.T) {
	dot := ToDOT(compute(t, layout.Yukon))
	svg, err := RenderDOT(context.Background(), dot, "svg")
	if err != nil {
		t.Fatalf("RenderDOT() error = %v", err)
	}
	if !bytes.Contains(svg, []byte("<svg")) {
		t.Error("RenderDOT() output is not svg")
	}
	if _, err := RenderDOT(context.Background(), dot, "gif"); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("RenderDOT(gif) error = %v, want INVALID_FORMAT", err)
	}
}

func TestRenderPNG(t *testing.T) {
	fr, err := render.Build(compute(t, layout.Harp), render.Options{})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	data, err := RenderPNG(fr, WithScale(1))
	if err != nil {
		t.Fatalf("RenderPNG() error = %v", err)
	}
	if _, err := png.Decode(bytes.NewReader(data)); err != nil {
		t.Errorf("png.Decode() error = %v", err)
	}
}
