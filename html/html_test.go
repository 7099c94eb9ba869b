package html

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/rope"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/net/html"
)

func TestTextFromHTML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rope")
	defer teardown()
	//
	input := `<p>The quick <b>brown</b> fox <i>jumps <em>over</em></i> the lazy dog</p>`
	r, err := TextFromHTML(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if r.String() != "The quick brown fox jumps over the lazy dog" {
		t.Errorf("unexpected text '%s'", r)
	}
	if r.FragmentCount() != 6 {
		t.Errorf("expected one fragment per text node (6), have %d", r.FragmentCount())
	}
}

func TestInnerText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rope")
	defer teardown()
	//
	doc, err := html.Parse(strings.NewReader(`<html><body><div id="x">Hello <span>World</span></div><p>!</p></body></html>`))
	if err != nil {
		t.Fatal(err)
	}
	var div *html.Node
	var find func(*html.Node)
	find = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "div" {
			div = n
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			find(c)
		}
	}
	find(doc)
	if div == nil {
		t.Fatal("div not found")
	}
	r, err := InnerText(div)
	if err != nil {
		t.Fatal(err)
	}
	if r.String() != "Hello World" {
		t.Errorf("unexpected inner text '%s'", r)
	}
	if _, err := InnerText(nil); !errors.Is(err, rope.ErrIllegalArguments) {
		t.Errorf("expected ErrIllegalArguments for nil node, got %v", err)
	}
}
