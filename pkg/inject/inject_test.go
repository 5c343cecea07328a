package inject

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func doc(t *testing.T) *goquery.Document {
	t.Helper()
	d, err := goquery.NewDocumentFromReader(strings.NewReader(`<html><head></head><body><p>x</p></body></html>`))
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestEnsureStyle_InsertOnceUpdateInPlace(t *testing.T) {
	d := doc(t)

	EnsureStyle(d, "panel", ".a { color: red }")
	EnsureStyle(d, "panel", ".a { color: blue }")

	styles := d.Find(`style[data-wwlens-id="panel"]`)
	if styles.Length() != 1 {
		t.Fatalf("style count = %d, want 1", styles.Length())
	}
	if got, _ := styles.Html(); !strings.Contains(got, "blue") {
		t.Errorf("style content = %q, want updated content", got)
	}
}

func TestEnsureStyle_DistinctIDs(t *testing.T) {
	d := doc(t)
	EnsureStyle(d, "a", ".a{}")
	EnsureStyle(d, "b", ".b{}")
	if n := d.Find("style").Length(); n != 2 {
		t.Errorf("style count = %d, want 2", n)
	}
}

func TestEnsureStylesheet_UpdatesHref(t *testing.T) {
	d := doc(t)
	EnsureStylesheet(d, "theme", "https://example.com/v1.css")
	EnsureStylesheet(d, "theme", "https://example.com/v2.css")

	links := d.Find(`link[data-wwlens-id="theme"]`)
	if links.Length() != 1 {
		t.Fatalf("link count = %d, want 1", links.Length())
	}
	if href, _ := links.Attr("href"); href != "https://example.com/v2.css" {
		t.Errorf("href = %q, want updated href", href)
	}
}

func TestCleanup_RemovesAllInjected(t *testing.T) {
	d := doc(t)
	EnsureStyle(d, "a", ".a{}")
	EnsureStylesheet(d, "b", "x.css")
	d.Find("body").AppendHtml(`<div id="extra">y</div>`)
	Tag(d.Find("#extra"))

	if n := Cleanup(d); n != 3 {
		t.Errorf("Cleanup() = %d, want 3", n)
	}
	if n := d.Find("[" + AttrInjected + "]").Length(); n != 0 {
		t.Errorf("injected elements remaining = %d", n)
	}
	if d.Find("p").Length() != 1 {
		t.Error("Cleanup removed non-injected content")
	}
}
