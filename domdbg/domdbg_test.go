package domdbg

import (
	"strings"
	"testing"

	"github.com/andreygrigoriev/styledom/cascade"
	"github.com/andreygrigoriev/styledom/dom"
	"github.com/andreygrigoriev/styledom/term"
)

func TestSprintStructure(t *testing.T) {
	d := dom.NewDocument()
	root := d.AppendElement(dom.NoNode, "html")
	body := d.AppendElement(root, "body")
	d.AppendElement(body, "p", dom.Attr{Name: "id", Value: "p1"})
	d.AppendElement(body, "span")

	out := Sprint(d, nil)
	for _, want := range []string{"html", "body", "p#p1", "span"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestSprintWithStyles(t *testing.T) {
	d := dom.NewDocument()
	root := d.AppendElement(dom.NoNode, "html")
	p := d.AppendElement(root, "p")

	store := cascade.NewSingleMapStore()
	store.Set("color", term.Color{R: 0xff, A: 0xff})
	store.Set("width", term.Ident{Name: "auto"})
	styles := cascade.StyleMap{p: store}

	out := Sprint(d, styles, "color", "width")
	if !strings.Contains(out, "color=#ff0000") || !strings.Contains(out, "width=auto") {
		t.Errorf("expected annotated properties in output:\n%s", out)
	}
	// unrequested properties stay out
	if strings.Contains(out, "margin") {
		t.Errorf("unexpected property in output:\n%s", out)
	}
}

func TestSprintEmptyDocument(t *testing.T) {
	if out := Sprint(dom.NewDocument(), nil); !strings.Contains(out, "empty") {
		t.Errorf("expected empty-document marker, got %q", out)
	}
}
