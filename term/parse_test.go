package term

import (
	"testing"
)

func parse(t *testing.T, raw string) Term {
	t.Helper()
	v, err := NewFactory().Parse(raw)
	if err != nil {
		t.Fatalf("cannot parse %q: %v", raw, err)
	}
	return v
}

func TestParseNumberAndDimension(t *testing.T) {
	if v := parse(t, "12"); !v.Equals(Number{Value: 12}) {
		t.Errorf("expected bare number, got %v", v)
	}
	if v := parse(t, "12px"); !v.Equals(Number{Value: 12, Unit: "px"}) {
		t.Errorf("expected 12px, got %v", v)
	}
	if v := parse(t, "1.5em"); !v.Equals(Number{Value: 1.5, Unit: "em"}) {
		t.Errorf("expected 1.5em, got %v", v)
	}
	if v := parse(t, "-4pt"); !v.Equals(Number{Value: -4, Unit: "pt"}) {
		t.Errorf("expected -4pt, got %v", v)
	}
}

func TestParsePercent(t *testing.T) {
	if v := parse(t, "50%"); !v.Equals(Percent{Value: 50}) {
		t.Errorf("expected 50%%, got %v", v)
	}
}

func TestParseIdentAndString(t *testing.T) {
	if v := parse(t, "bold"); !v.Equals(Ident{Name: "bold"}) {
		t.Errorf("expected keyword, got %v", v)
	}
	if v := parse(t, `"Times New Roman"`); !v.Equals(Str{Value: "Times New Roman"}) {
		t.Errorf("expected quoted string, got %v", v)
	}
}

func TestParseHexColors(t *testing.T) {
	if v := parse(t, "#ff0000"); !v.Equals(Color{R: 0xff, A: 0xff}) {
		t.Errorf("expected red, got %v", v)
	}
	// #f00 expands nibble-wise to #ff0000
	if v := parse(t, "#f00"); !v.Equals(Color{R: 0xff, A: 0xff}) {
		t.Errorf("expected short form to expand, got %v", v)
	}
	if _, err := NewFactory().Parse("#f0"); err == nil {
		t.Error("expected error for malformed hex color")
	}
}

func TestParseURI(t *testing.T) {
	if v := parse(t, `url("img/bg.png")`); !v.Equals(URI{Location: "img/bg.png"}) {
		t.Errorf("expected URI, got %v", v)
	}
	if v := parse(t, "url(bg.png)"); !v.Equals(URI{Location: "bg.png"}) {
		t.Errorf("expected unquoted URI, got %v", v)
	}
}

func TestParseFunction(t *testing.T) {
	v := parse(t, "rgb(255, 0, 0)")
	want := Function{Name: "rgb", Args: []Term{
		Number{Value: 255}, Number{Value: 0}, Number{Value: 0},
	}}
	if !v.Equals(want) {
		t.Errorf("expected %v, got %v", want, v)
	}
}

func TestParseNestedFunction(t *testing.T) {
	v := parse(t, "calc(min(10px, 2em))")
	f, ok := v.(Function)
	if !ok || f.Name != "calc" || len(f.Args) != 1 {
		t.Fatalf("expected calc with one argument, got %v", v)
	}
	if inner, ok := f.Args[0].(Function); !ok || inner.Name != "min" || len(inner.Args) != 2 {
		t.Errorf("expected nested min(10px, 2em), got %v", f.Args[0])
	}
}

func TestParseList(t *testing.T) {
	v := parse(t, "1px solid #000")
	want := List{
		Number{Value: 1, Unit: "px"},
		Ident{Name: "solid"},
		Color{A: 0xff},
	}
	if !v.Equals(want) {
		t.Errorf("expected %v, got %v", want, v)
	}
}

func TestParseCommaSeparatedList(t *testing.T) {
	v := parse(t, `Helvetica, "Arial", sans-serif`)
	l, ok := v.(List)
	if !ok || len(l) != 3 {
		t.Fatalf("expected 3-element list, got %v", v)
	}
}

func TestParseErrors(t *testing.T) {
	f := NewFactory()
	for _, raw := range []string{"", "  ", "rgb(1, 2", "}"} {
		if _, err := f.Parse(raw); err == nil {
			t.Errorf("expected error for %q", raw)
		}
	}
}
