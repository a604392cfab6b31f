package blend

import "testing"

func TestMulDiv255(t *testing.T) {
	tests := []struct {
		name string
		a, b byte
		want byte
	}{
		{"zero * zero", 0, 0, 0},
		{"zero * max", 0, 255, 0},
		{"max * max", 255, 255, 255},
		{"half * half", 128, 128, 64},
		{"255 * 128", 255, 128, 128},
		{"1 * 1", 1, 1, 0},
		{"200 * 200", 200, 200, 157},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mulDiv255(tt.a, tt.b); got != tt.want {
				t.Errorf("mulDiv255(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestMulDiv255_IdentityAtMax(t *testing.T) {
	for v := 0; v < 256; v++ {
		if got := mulDiv255(byte(v), 255); got != byte(v) {
			t.Fatalf("mulDiv255(%d, 255) = %d, want %d", v, got, v)
		}
	}
}

func TestModes(t *testing.T) {
	// Half-transparent red source over opaque blue destination.
	const sr, sg, sb, sa = 128, 0, 0, 128
	const dr, dg, db, da = 0, 0, 255, 255

	tests := []struct {
		mode Mode
		want [4]byte
	}{
		{SourceOver, [4]byte{128, 0, 127, 255}},
		{SourceIn, [4]byte{128, 0, 0, 128}},
		{SourceOut, [4]byte{0, 0, 0, 0}},
		{SourceAtop, [4]byte{128, 0, 127, 255}},
		{DestinationOver, [4]byte{0, 0, 255, 255}},
		{DestinationIn, [4]byte{0, 0, 128, 128}},
		{DestinationOut, [4]byte{0, 0, 127, 127}},
		{DestinationAtop, [4]byte{0, 0, 128, 128}},
		{Lighter, [4]byte{128, 0, 255, 255}},
		{Copy, [4]byte{128, 0, 0, 128}},
		{Xor, [4]byte{0, 0, 127, 127}},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			r, g, b, a := Get(tt.mode)(sr, sg, sb, sa, dr, dg, db, da)
			got := [4]byte{r, g, b, a}
			if got != tt.want {
				t.Errorf("%s = %v, want %v", tt.mode, got, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	for i := range modeNames {
		m := Mode(i)
		got, ok := Parse(m.String())
		if !ok || got != m {
			t.Errorf("Parse(%q) = %v, %v; want %v, true", m.String(), got, ok, m)
		}
	}
	if _, ok := Parse("multiply"); ok {
		t.Error("Parse(\"multiply\") should fail")
	}
}

func TestBounded(t *testing.T) {
	// A transparent source must leave the destination alone exactly when the
	// mode reports itself as bounded.
	for i := range modeNames {
		m := Mode(i)
		r, g, b, a := Get(m)(0, 0, 0, 0, 10, 20, 30, 40)
		unchanged := r == 10 && g == 20 && b == 30 && a == 40
		if unchanged != m.Bounded() {
			t.Errorf("%s: Bounded() = %v, transparent source unchanged = %v", m, m.Bounded(), unchanged)
		}
	}
}
