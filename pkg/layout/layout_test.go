package layout

import (
	"reflect"
	"testing"

	"github.com/matzehuels/tableau/pkg/errors"
)

func compute(t *testing.T, f Family, mod func(*Params)) *Result {
	t.Helper()
	p := DefaultParams(f)
	if mod != nil {
		mod(&p)
	}
	r, err := Compute(f, p)
	if err != nil {
		t.Fatalf("Compute(%s) error = %v", f, err)
	}
	return r
}

func points(piles []Pile) []Point {
	out := make([]Point, len(piles))
	for i, p := range piles {
		out[i] = p.Point()
	}
	return out
}

func TestKlondikeExample(t *testing.T) {
	r := compute(t, Klondike, func(p *Params) {
		p.CardWidth, p.CardHeight = 60, 96
		p.MarginX, p.MarginY = 10, 10
	})

	if got := r.Talon.Point(); got != (Point{10, 10}) {
		t.Errorf("talon = %v, want (10,10)", got)
	}
	if got := r.Waste.Point(); got != (Point{80, 10}) {
		t.Errorf("waste = %v, want (80,10)", got)
	}
	wantFound := []Point{{220, 10}, {290, 10}, {360, 10}, {430, 10}}
	if got := points(r.Foundations); !reflect.DeepEqual(got, wantFound) {
		t.Errorf("foundations = %v, want %v", got, wantFound)
	}
	if len(r.Rows) != 7 {
		t.Fatalf("rows = %d, want 7", len(r.Rows))
	}
	for i, row := range r.Rows {
		if want := (Point{10 + i*70, 146}); row.Point() != want {
			t.Errorf("row[%d] = %v, want %v", i, row.Point(), want)
		}
	}
	if want := 10 + max(7, 1+1+4)*70; r.Width != want {
		t.Errorf("Width = %d, want %d", r.Width, want)
	}
	if r.Height != 555 {
		t.Errorf("Height = %d, want 555", r.Height)
	}

	wantLabel := LabelSpec{X: 40, Y: 116, Anchor: AnchorN, Format: FormatPlain}
	if r.Talon.Label == nil || *r.Talon.Label != wantLabel {
		t.Errorf("talon label = %v, want %v", r.Talon.Label, wantLabel)
	}
	if len(r.Regions) != 1 {
		t.Fatalf("regions = %d, want 1", len(r.Regions))
	}
	wantRect := Rect{UnboundedNeg, 141, Unbounded, Unbounded}
	if r.Regions[0].Rect != wantRect {
		t.Errorf("region rect = %v, want %v", r.Regions[0].Rect, wantRect)
	}
	if len(r.Regions[0].Piles) != 7 {
		t.Errorf("region piles = %d, want 7", len(r.Regions[0].Piles))
	}
}

func TestFamilyReference(t *testing.T) {
	tests := []struct {
		family      Family
		mod         func(*Params)
		talon       Point
		waste       *Point
		firstFound  Point
		firstRow    Point
		reserves    []Point
		width       int
		height      int
		foundations int
	}{
		{
			family: BakersDozen, talon: Point{577, 516},
			firstFound: Point{577, 10}, firstRow: Point{10, 10},
			width: 658, height: 622, foundations: 4,
		},
		{
			family: FreeCell, talon: Point{10, 499},
			firstFound: Point{415, 10}, firstRow: Point{50, 116},
			reserves: []Point{{10, 10}, {91, 10}, {172, 10}, {253, 10}},
			width:    739, height: 605, foundations: 4,
		},
		{
			family: Gypsy, mod: func(p *Params) { p.Decks, p.Waste = 2, true },
			talon: Point{699, 568}, waste: &Point{618, 568},
			firstFound: Point{658, 10}, firstRow: Point{10, 10},
			width: 820, height: 674, foundations: 8,
		},
		{
			family: Harp, mod: func(p *Params) { p.Decks = 2 },
			talon: Point{739, 596}, waste: &Point{658, 596},
			firstFound: Point{10, 596}, firstRow: Point{50, 10},
			width: 820, height: 702, foundations: 8,
		},
		{
			family: Klondike, mod: func(p *Params) { p.Suits = 6; p.Rows = 8 },
			talon: Point{10, 10}, waste: &Point{91, 10},
			firstFound: Point{415, 10}, firstRow: Point{10, 252},
			width: 658, height: 661, foundations: 6,
		},
		{
			family: Yukon, talon: Point{10, 443},
			firstFound: Point{577, 10}, firstRow: Point{10, 10},
			width: 658, height: 549, foundations: 4,
		},
		{
			family: Easy, talon: Point{10, 10}, waste: &Point{91, 10},
			firstFound: Point{253, 10}, firstRow: Point{10, 136},
			width: 577, height: 425, foundations: 4,
		},
		{
			family: Easy, mod: func(p *Params) { p.Decks = 3 },
			talon: Point{10, 10}, waste: &Point{91, 10},
			firstFound: Point{172, 10}, firstRow: Point{10, 222},
			// the first foundation strip overruns the row width
			width: 820, height: 425, foundations: 12,
		},
		{
			family: Samurai, talon: Point{334, 539}, waste: &Point{415, 539},
			firstFound: Point{10, 10}, firstRow: Point{91, 10},
			width: 820, height: 675, foundations: 12,
		},
		{
			family: Sumo, talon: Point{10, 349},
			firstFound: Point{10, 10}, firstRow: Point{172, 116},
			reserves: []Point{{10, 116}, {10, 222}, {901, 116}, {901, 222}},
			width:    982, height: 455, foundations: 12,
		},
		{
			// the reserve column runs past the sizing height; the surface grows
			family: Fun, talon: Point{10, 339},
			firstFound: Point{344, 10}, firstRow: Point{10, 10},
			reserves: []Point{{344, 434}, {344, 540}, {344, 646}, {344, 752}},
			width:    425, height: 858, foundations: 4,
		},
		{
			family: Oonsoo, talon: Point{10, 10},
			firstRow: Point{111, 10},
			width:    657, height: 455, foundations: 0,
		},
		{
			family: Ghulam, talon: Point{354, 540},
			firstFound: Point{10, 10}, firstRow: Point{101, 10},
			width: 516, height: 646, foundations: 8,
		},
		{
			family: Generic, talon: Point{10, 10}, waste: &Point{10, 116},
			firstFound: Point{294, 10}, firstRow: Point{10, 232},
			width: 658, height: 656, foundations: 4,
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.family), func(t *testing.T) {
			r := compute(t, tt.family, tt.mod)

			if r.Talon == nil || r.Talon.Point() != tt.talon {
				t.Errorf("talon = %v, want %v", r.Talon, tt.talon)
			}
			switch {
			case tt.waste == nil && r.Waste != nil:
				t.Errorf("waste = %v, want none", r.Waste)
			case tt.waste != nil && (r.Waste == nil || r.Waste.Point() != *tt.waste):
				t.Errorf("waste = %v, want %v", r.Waste, *tt.waste)
			}
			if len(r.Foundations) != tt.foundations {
				t.Fatalf("foundations = %d, want %d", len(r.Foundations), tt.foundations)
			}
			if tt.foundations > 0 && r.Foundations[0].Point() != tt.firstFound {
				t.Errorf("foundation[0] = %v, want %v", r.Foundations[0].Point(), tt.firstFound)
			}
			if r.Rows[0].Point() != tt.firstRow {
				t.Errorf("row[0] = %v, want %v", r.Rows[0].Point(), tt.firstRow)
			}
			if tt.reserves != nil && !reflect.DeepEqual(points(r.Reserves), tt.reserves) {
				t.Errorf("reserves = %v, want %v", points(r.Reserves), tt.reserves)
			}
			if r.Width != tt.width || r.Height != tt.height {
				t.Errorf("size = %dx%d, want %dx%d", r.Width, r.Height, tt.width, tt.height)
			}
		})
	}
}

// variants exercises every family with its defaults plus a few shapes
// that take the less common branches.
func variants() []struct {
	name   string
	family Family
	params Params
} {
	type v = struct {
		name   string
		family Family
		params Params
	}
	var out []v
	for _, f := range Families() {
		out = append(out, v{string(f), f, DefaultParams(f)})
	}
	with := func(f Family, name string, mod func(*Params)) {
		p := DefaultParams(f)
		mod(&p)
		out = append(out, v{string(f) + "/" + name, f, p})
	}
	with(Klondike, "no-waste", func(p *Params) { p.Waste = false })
	with(Klondike, "two-decks", func(p *Params) { p.Decks, p.Rows = 2, 10 })
	with(Klondike, "trumps", func(p *Params) { p.Suits, p.Trumps, p.Rows = 5, true, 9 })
	with(Klondike, "uncentered", func(p *Params) { p.Center, p.Waste = false, false })
	with(Gypsy, "two-decks-waste", func(p *Params) { p.Decks, p.Waste = 2, true })
	with(Gypsy, "no-texts", func(p *Params) { p.Texts = false })
	with(Harp, "no-texts", func(p *Params) { p.Texts, p.Waste = false, false })
	with(FreeCell, "two-decks", func(p *Params) { p.Decks, p.Rows, p.Texts = 2, 10, true })
	with(Easy, "four-decks", func(p *Params) { p.Decks = 4 })
	with(Samurai, "no-waste", func(p *Params) { p.Waste = false })
	with(Sumo, "two-decks", func(p *Params) { p.Decks, p.Reserves = 2, 2 })
	with(Fun, "two-decks", func(p *Params) { p.Decks = 2 })
	with(Oonsoo, "reserves", func(p *Params) { p.Reserves = 4 })
	with(Ghulam, "reserves", func(p *Params) { p.Reserves = 4 })
	with(Generic, "no-waste", func(p *Params) { p.Waste = false })
	return out
}

func TestDeterministic(t *testing.T) {
	for _, v := range variants() {
		t.Run(v.name, func(t *testing.T) {
			a, err := Compute(v.family, v.params)
			if err != nil {
				t.Fatalf("Compute() error = %v", err)
			}
			b, err := Compute(v.family, v.params)
			if err != nil {
				t.Fatalf("Compute() error = %v", err)
			}
			if !reflect.DeepEqual(a, b) {
				t.Error("Compute() results differ between identical calls")
			}
		})
	}
}

func TestUniquePositions(t *testing.T) {
	for _, v := range variants() {
		t.Run(v.name, func(t *testing.T) {
			r, err := Compute(v.family, v.params)
			if err != nil {
				t.Fatalf("Compute() error = %v", err)
			}
			seen := make(map[Point]Pile)
			for _, p := range r.All() {
				if prev, dup := seen[p.Point()]; dup {
					t.Errorf("%v shares position with %v", p, prev)
				}
				seen[p.Point()] = p
			}
			if len(seen) != r.Len() {
				t.Errorf("unique positions = %d, want %d", len(seen), r.Len())
			}
		})
	}
}

func TestSurfaceContainsPiles(t *testing.T) {
	for _, v := range variants() {
		t.Run(v.name, func(t *testing.T) {
			r, err := Compute(v.family, v.params)
			if err != nil {
				t.Fatalf("Compute() error = %v", err)
			}
			g := r.Geometry
			for _, p := range r.All() {
				if p.X < 0 || p.Y < 0 || p.X+g.CW > r.Width || p.Y+g.CH > r.Height {
					t.Errorf("%v footprint outside %dx%d", p, r.Width, r.Height)
				}
			}
			b := r.Bounds()
			if b.X1+g.XM > r.Width || b.Y1+g.YM > r.Height {
				t.Errorf("bounds %v plus margin exceed %dx%d", b, r.Width, r.Height)
			}
		})
	}
}

func TestFoundationCount(t *testing.T) {
	for _, v := range variants() {
		t.Run(v.name, func(t *testing.T) {
			r, err := Compute(v.family, v.params)
			if err != nil {
				t.Fatalf("Compute() error = %v", err)
			}
			p := v.params
			suits := p.Suits
			if p.Trumps {
				suits++
			}
			var want int
			switch v.family {
			case Easy, Fun:
				want = p.Decks * p.Ranks
			case Samurai, Sumo:
				want = 12 * p.Decks
			case Ghulam:
				want = p.Suits
			case Oonsoo:
				want = 0
			case Klondike:
				foundrows := 1
				if suits > 5 {
					foundrows = 2
				}
				want = foundrows * (suits / foundrows) * p.Decks
			case Generic:
				want = 2 * (suits / 2) * p.Decks
			default:
				want = suits * p.Decks
			}
			if len(r.Foundations) != want {
				t.Errorf("foundations = %d, want %d", len(r.Foundations), want)
			}
		})
	}
}

func TestFoundationOrder(t *testing.T) {
	t.Run("gypsy is suit-major", func(t *testing.T) {
		r := compute(t, Gypsy, func(p *Params) { p.Decks = 2 })
		want := []int{0, 0, 1, 1, 2, 2, 3, 3}
		for i, f := range r.Foundations {
			if f.Suit != want[i] {
				t.Errorf("foundation[%d].Suit = %d, want %d", i, f.Suit, want[i])
			}
		}
	})
	t.Run("sumo is deck-major", func(t *testing.T) {
		r := compute(t, Sumo, func(p *Params) { p.Decks, p.Reserves = 2, 2 })
		for i, f := range r.Foundations {
			if f.Suit != i%12 {
				t.Errorf("foundation[%d].Suit = %d, want %d", i, f.Suit, i%12)
			}
		}
	})
	t.Run("free cell leaves a gap", func(t *testing.T) {
		r := compute(t, FreeCell, nil)
		last := r.Reserves[len(r.Reserves)-1]
		if gap := r.Foundations[0].X - last.X; gap != 2*r.Geometry.XS {
			t.Errorf("reserve to foundation gap = %d, want %d", gap, 2*r.Geometry.XS)
		}
	})
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name   string
		family Family
		mod    func(*Params)
		code   errors.Code
	}{
		{"sumo odd reserves", Sumo, func(p *Params) { p.Reserves = 3 }, errors.ErrCodeInvalidConfig},
		{"fun odd rows", Fun, func(p *Params) { p.Rows = 7 }, errors.ErrCodeInvalidConfig},
		{"fun reserves per deck", Fun, func(p *Params) { p.Decks, p.Reserves = 2, 3 }, errors.ErrCodeInvalidConfig},
		{"oonsoo odd rows", Oonsoo, func(p *Params) { p.Rows = 11 }, errors.ErrCodeInvalidConfig},
		{"ghulam odd reserves", Ghulam, func(p *Params) { p.Reserves = 1 }, errors.ErrCodeInvalidConfig},
		{"ghulam texts", Ghulam, func(p *Params) { p.Texts = true }, errors.ErrCodeInvalidConfig},
		{"bakers dozen texts", BakersDozen, func(p *Params) { p.Texts = true }, errors.ErrCodeInvalidConfig},
		{"yukon waste", Yukon, func(p *Params) { p.Waste = true }, errors.ErrCodeInvalidConfig},
		{"klondike reserves", Klondike, func(p *Params) { p.Reserves = 2 }, errors.ErrCodeInvalidConfig},
		{"negative rows", Klondike, func(p *Params) { p.Rows = -1 }, errors.ErrCodeInvalidConfig},
		{"zero decks", Gypsy, func(p *Params) { p.Decks = 0 }, errors.ErrCodeInvalidConfig},
		{"zero card width", Harp, func(p *Params) { p.CardWidth = 0 }, errors.ErrCodeInvalidConfig},
		{"negative margin", Yukon, func(p *Params) { p.MarginY = -1 }, errors.ErrCodeInvalidConfig},
		{"zero playcards", FreeCell, func(p *Params) { p.Playcards = 0 }, errors.ErrCodeInvalidConfig},
		{"generic zero height", Generic, func(p *Params) { p.Height = 0 }, errors.ErrCodeInvalidConfig},
		{"colliding piles", Sumo, func(p *Params) { p.Rows = 12 }, errors.ErrCodeDuplicatePile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams(tt.family)
			tt.mod(&p)
			r, err := Compute(tt.family, p)
			if err == nil {
				t.Fatalf("Compute() = %v, want error", r)
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("Compute() error = %v, want code %v", err, tt.code)
			}
			if !errors.IsConfiguration(err) {
				t.Errorf("IsConfiguration(%v) = false, want true", err)
			}
		})
	}
}

func TestUnknownFamily(t *testing.T) {
	_, err := Compute("klondyke", DefaultParams(Klondike))
	if !errors.Is(err, errors.ErrCodeInvalidFamily) {
		t.Fatalf("Compute() error = %v, want %v", err, errors.ErrCodeInvalidFamily)
	}
	var se *errors.SuggestionError
	if !asSuggestion(err, &se) || se.Suggestion != "klondike" {
		t.Errorf("suggestion = %v, want klondike", se)
	}
}

func TestPreviewSuppressesLabels(t *testing.T) {
	for _, f := range []Family{Klondike, Gypsy, Harp, Generic} {
		t.Run(string(f), func(t *testing.T) {
			full := compute(t, f, nil)
			preview := compute(t, f, func(p *Params) { p.Preview = 2 })

			if len(full.Labeled()) == 0 {
				t.Fatal("expected labels without preview")
			}
			if n := len(preview.Labeled()); n != 0 {
				t.Errorf("labels in preview = %d, want 0", n)
			}
			if !reflect.DeepEqual(points(full.All()), points(preview.All())) {
				t.Error("preview changed pile positions")
			}
			if full.Width != preview.Width || full.Height != preview.Height {
				t.Error("preview changed surface size")
			}
		})
	}
}

func TestGroups(t *testing.T) {
	r := compute(t, FreeCell, nil)
	g := r.Groups()
	if len(g.Talon) != 1 {
		t.Errorf("Talon group = %d, want 1", len(g.Talon))
	}
	if want := len(r.Rows) + len(r.Reserves); len(g.Drop) != want {
		t.Errorf("Drop group = %d, want %d", len(g.Drop), want)
	}
	if want := len(r.Foundations) + len(r.Rows) + len(r.Reserves); len(g.Open) != want {
		t.Errorf("Open group = %d, want %d", len(g.Open), want)
	}
	if len(g.Reserve) != 4 {
		t.Errorf("Reserve group = %d, want 4", len(g.Reserve))
	}

	k := compute(t, Klondike, nil).Groups()
	if len(k.Talon) != 2 || k.Talon[1].Kind != KindWaste {
		t.Errorf("Talon group = %v, want talon and waste", k.Talon)
	}
	if last := k.Drop[len(k.Drop)-1]; last.Kind != KindWaste {
		t.Errorf("Drop group ends with %v, want waste", last)
	}
}

func TestResultIsolation(t *testing.T) {
	r := compute(t, Klondike, nil)
	r.Regions[0].Piles[0].X = -100
	if r.Rows[0].X == -100 {
		t.Error("region piles alias the result rows")
	}
}

func TestParseFamily(t *testing.T) {
	tests := []struct {
		input   string
		want    Family
		wantErr bool
	}{
		{"klondike", Klondike, false},
		{" Klondike ", Klondike, false},
		{"freecell", FreeCell, false},
		{"samuri", Samurai, false},
		{"generiklon", Generic, false},
		{"spider", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFamily(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFamily(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFamily(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFloorDiv(t *testing.T) {
	tests := []struct{ a, b, want int }{
		{7, 2, 3},
		{-7, 2, -4},
		{-8, 2, -4},
		{0, 3, 0},
		{64 * 2, 3, 42},
	}
	for _, tt := range tests {
		if got := floorDiv(tt.a, tt.b); got != tt.want {
			t.Errorf("floorDiv(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
