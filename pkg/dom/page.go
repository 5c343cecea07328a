// Package dom abstracts the live document surface the tracker observes: a
// mutable DOM tree, coalesced mutation notifications, and synthetic user
// activation.
package dom

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Page is one live document. All access is single-threaded: the tracker's
// event loop is the only reader, and mutators notify after their change is
// fully applied so a reader woken by Mutations observes a settled tree.
type Page interface {
	// Doc returns the live document. Callers mutate it in place.
	Doc() *goquery.Document
	// Mutations delivers coalesced change notifications.
	Mutations() <-chan struct{}
	// Activate simulates user activation (a click) of sel.
	Activate(sel *goquery.Selection) error
}

// ActivateFunc reacts to a synthetic activation against a MemoryPage,
// typically by mutating the page the way the real site would.
type ActivateFunc func(p *MemoryPage, sel *goquery.Selection) error

// MemoryPage is an in-memory Page backed by parsed HTML. It drives the
// replay command and the tracker tests.
type MemoryPage struct {
	doc        *goquery.Document
	events     chan struct{}
	onActivate ActivateFunc
}

// NewMemoryPage parses initial into a live document. onActivate may be nil,
// in which case activations are no-ops.
func NewMemoryPage(initial string, onActivate ActivateFunc) (*MemoryPage, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(initial))
	if err != nil {
		return nil, fmt.Errorf("parse page html: %w", err)
	}
	return &MemoryPage{
		doc:        doc,
		events:     make(chan struct{}, 1),
		onActivate: onActivate,
	}, nil
}

func (p *MemoryPage) Doc() *goquery.Document { return p.doc }

func (p *MemoryPage) Mutations() <-chan struct{} { return p.events }

func (p *MemoryPage) Activate(sel *goquery.Selection) error {
	if p.onActivate == nil {
		return nil
	}
	return p.onActivate(p, sel)
}

// SetHTML replaces the whole document and posts a mutation notification.
func (p *MemoryPage) SetHTML(html string) error {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return fmt.Errorf("parse page html: %w", err)
	}
	p.doc = doc
	p.Notify()
	return nil
}

// Mutate applies f to the live document and posts a mutation notification.
func (p *MemoryPage) Mutate(f func(doc *goquery.Document)) {
	f(p.doc)
	p.Notify()
}

// Notify posts a coalesced mutation notification without blocking.
func (p *MemoryPage) Notify() {
	select {
	case p.events <- struct{}{}:
	default:
	}
}
