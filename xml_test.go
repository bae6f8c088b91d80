package combineur

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func assertTag(t *testing.T, want Tag, got Result[Tag]) {
	t.Helper()

	if !got.OK {
		t.Fatalf("parse failed at %q", got.Rest)
	}

	if diff := cmp.Diff(want, got.Value, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("tag mismatch (-want +got):\n%s", diff)
	}
}

func TestQuotedString(t *testing.T) {
	r := QuotedString()(`"Hello Joe!"`)

	if !r.OK || r.Value != "Hello Joe!" || r.Rest != "" {
		t.Fatalf("got %+v", r)
	}

	r = QuotedString()(`"unterminated`)

	if r.OK {
		t.Fatalf("expected failure, got %+v", r)
	}
}

func TestAttributeList(t *testing.T) {
	r := AttributeList()(` one="1" two="2"`)

	if !r.OK || r.Rest != "" {
		t.Fatalf("got %+v", r)
	}

	want := []Attribute{{"one", "1"}, {"two", "2"}}

	if diff := cmp.Diff(want, r.Value); diff != "" {
		t.Fatalf("attributes mismatch (-want +got):\n%s", diff)
	}
}

func TestSingleElement(t *testing.T) {
	r := SingleElement()(`<div class="float"/>`)

	assertTag(t, Tag{
		Name:       "div",
		Attributes: []Attribute{{"class", "float"}},
	}, r)

	if r.Rest != "" {
		t.Fatalf("unconsumed input %q", r.Rest)
	}
}

func TestSingleElementRoundTrip(t *testing.T) {
	attrs := []Attribute{
		{"class", "float"},
		{"data-rank", "7"},
		{"empty", ""},
	}

	var b strings.Builder
	b.WriteString("<widget")

	for _, a := range attrs {
		fmt.Fprintf(&b, " %s=%q", a.Name, a.Value)
	}

	b.WriteString("/>")

	r := Element()(b.String())

	assertTag(t, Tag{Name: "widget", Attributes: attrs}, r)

	if r.Rest != "" {
		t.Fatalf("unconsumed input %q", r.Rest)
	}
}

func TestDuplicateAttributesAreKept(t *testing.T) {
	r := SingleElement()(`<a x="1" x="2"/>`)

	assertTag(t, Tag{
		Name:       "a",
		Attributes: []Attribute{{"x", "1"}, {"x", "2"}},
	}, r)
}

func TestChildlessOpenCloseElement(t *testing.T) {
	r := Element()("<a></a>")

	assertTag(t, Tag{Name: "a"}, r)
}

func TestNestedDocument(t *testing.T) {
	doc := `
        <top label="Top">
            <semi-bottom label="Bottom"/>
            <middle>
                <bottom label="Another bottom"/>
            </middle>
        </top>`

	want := Tag{
		Name:       "top",
		Attributes: []Attribute{{"label", "Top"}},
		Children: []Tag{
			{
				Name:       "semi-bottom",
				Attributes: []Attribute{{"label", "Bottom"}},
			},
			{
				Name: "middle",
				Children: []Tag{
					{
						Name:       "bottom",
						Attributes: []Attribute{{"label", "Another bottom"}},
					},
				},
			},
		},
	}

	r := Element()(doc)
	assertTag(t, want, r)

	if r.Rest != "" {
		t.Fatalf("unconsumed input %q", r.Rest)
	}
}

func TestMismatchedClosingTag(t *testing.T) {
	doc := `
        <top>
            <bottom/>
        </middle>`

	r := Element()(doc)

	if r.OK {
		t.Fatalf("expected failure, got %+v", r.Value)
	}

	if r.Rest != "</middle>" {
		t.Fatalf("failure view %q, want %q", r.Rest, "</middle>")
	}
}

func TestWhitespaceInsensitivity(t *testing.T) {
	compact := Element()(`<a b="1" c="2"/>`)
	spread := Element()("  \n <a   b=\"1\"\n\tc=\"2\"/>  \n")

	if !compact.OK || !spread.OK {
		t.Fatalf("compact %+v, spread %+v", compact, spread)
	}

	if diff := cmp.Diff(compact.Value, spread.Value, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("values differ (-compact +spread):\n%s", diff)
	}

	if compact.Rest != "" || spread.Rest != "" {
		t.Fatalf("unconsumed input %q / %q", compact.Rest, spread.Rest)
	}
}

func TestWhitespaceBeforeTagCloseIsRejected(t *testing.T) {
	// whitespace only separates attribute pairs; the tag close must
	// follow the attribute list immediately
	r := Element()(`<a b="1" />`)

	if r.OK {
		t.Fatalf("expected failure, got %+v", r.Value)
	}

	r = Element()(`<a b="1" >`)

	if r.OK {
		t.Fatalf("expected failure, got %+v", r.Value)
	}
}

func TestSuffixReparse(t *testing.T) {
	r := Element()("<a/> <b kind=\"second\"/>")

	assertTag(t, Tag{Name: "a"}, r)

	if r.Rest != "<b kind=\"second\"/>" {
		t.Fatalf("unexpected suffix %q", r.Rest)
	}

	// parsing the reported suffix behaves like a fresh top-level call
	second := Element()(r.Rest)

	assertTag(t, Tag{
		Name:       "b",
		Attributes: []Attribute{{"kind", "second"}},
	}, second)

	if second.Rest != "" {
		t.Fatalf("unconsumed input %q", second.Rest)
	}
}

func TestTagLookups(t *testing.T) {
	doc := `
        <feed>
            <entry id="one"/>
            <group>
                <entry id="two"/>
            </group>
        </feed>`

	r := Element()(doc)

	if !r.OK {
		t.Fatalf("parse failed at %q", r.Rest)
	}

	root := r.Value

	first := root.First("entry")

	if first == nil {
		t.Fatal("entry not found")
	}

	if id, ok := first.Attr("id"); !ok || id != "one" {
		t.Fatalf("first entry id %q", id)
	}

	all := root.FindAll("entry")

	if len(all) != 2 {
		t.Fatalf("found %d entries", len(all))
	}

	if _, ok := first.Attr("missing"); ok {
		t.Fatal("unexpected attribute")
	}
}
