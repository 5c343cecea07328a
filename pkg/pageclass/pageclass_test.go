package pageclass

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func doc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	d, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestSelectorChain_FirstMatchWins(t *testing.T) {
	d := doc(t, `<div class="new">a</div><div class="old">b</div>`)
	chain := SelectorChain{".missing", ".new", ".old"}
	got := chain.Find(d.Selection)
	if got.Length() != 1 || got.Text() != "a" {
		t.Errorf("chain matched %q, want first candidate with a hit", got.Text())
	}
}

func TestSelectorChain_NoMatch(t *testing.T) {
	d := doc(t, `<p>x</p>`)
	if got := (SelectorChain{".a", ".b"}).Find(d.Selection); got.Length() != 0 {
		t.Errorf("chain matched %d nodes, want 0", got.Length())
	}
	if got := (SelectorChain{}).Find(d.Selection); got.Length() != 0 {
		t.Errorf("empty chain matched %d nodes, want 0", got.Length())
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		html string
		want Category
	}{
		{
			"detail overlay on top of listing",
			`<table class="table--data"><tbody><tr><td>1</td></tr></tbody></table>
			 <div class="posting__overlay">x</div>`,
			CategoryDetail,
		},
		{
			"legacy detail",
			`<div id="postingDiv">x</div>`,
			CategoryDetail,
		},
		{
			"listing only",
			`<table id="postingsTable"><tbody><tr><td>1</td></tr></tbody></table>`,
			CategoryListing,
		},
		{
			"unrelated page",
			`<p>hello</p>`,
			CategoryUnknown,
		},
	}
	for _, tt := range tests {
		if got := Classify(doc(t, tt.html)); got != tt.want {
			t.Errorf("%s: Classify() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestOpenJobID(t *testing.T) {
	d := doc(t, `<div class="posting__overlay" data-posting-id="123456">x</div>`)
	if got := OpenJobID(d.Find(`div[class*="posting__overlay"]`)); got != "123456" {
		t.Errorf("OpenJobID = %q, want 123456", got)
	}

	d = doc(t, `<div id="postingDiv"><h2>Software Developer - 654321 - Fall 2026</h2></div>`)
	if got := OpenJobID(d.Find("#postingDiv")); got != "654321" {
		t.Errorf("OpenJobID from header = %q, want 654321", got)
	}

	d = doc(t, `<div id="postingDiv"><h2>No id here</h2></div>`)
	if got := OpenJobID(d.Find("#postingDiv")); got != "" {
		t.Errorf("OpenJobID = %q, want empty", got)
	}
}

func TestRowID(t *testing.T) {
	d := doc(t, `<table><tbody>
		<tr id="a" data-posting-id="111111"><td>ignored</td></tr>
		<tr id="b"><td>Dev</td><td>222222</td></tr>
		<tr id="c"><td>no id</td></tr>
	</tbody></table>`)

	if got := RowID(d.Find("#a")); got != "111111" {
		t.Errorf("RowID(attr) = %q", got)
	}
	if got := RowID(d.Find("#b")); got != "222222" {
		t.Errorf("RowID(cell) = %q", got)
	}
	if got := RowID(d.Find("#c")); got != "" {
		t.Errorf("RowID(none) = %q, want empty", got)
	}
}
