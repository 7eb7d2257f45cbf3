// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render fetches the generated cv.json and renders it into an
// HTML node tree, one section per displayed subtype.
package render

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
	"golang.org/x/net/html"

	"github.com/pdiddy/cv-builder/internal/httputil"
	"github.com/pdiddy/cv-builder/pkg/types"
)

// Element IDs the page must (list) or may (status, PDF link) provide.
const (
	ListID    = "publications-list"
	StatusID  = "publications-status"
	PDFLinkID = "cv-pdf-link"
)

// LoadFailedMessage is shown in the status element when the fetch fails.
const LoadFailedMessage = "Could not load publications. Please try again later."

// ErrNoContainer is returned by Mount when the page has no list container.
var ErrNoContainer = errors.New("render: page has no #" + ListID + " element")

// Page owns the nodes the renderer writes to. The nodes are looked up
// once by Mount and never re-acquired.
type Page struct {
	root    *html.Node
	list    *goquery.Selection
	status  *goquery.Selection
	pdfLink *goquery.Selection

	client *http.Client
	log    *zap.Logger
}

// Option configures a Page.
type Option func(*Page)

// WithClient sets the HTTP client used by Load.
func WithClient(c *http.Client) Option {
	return func(p *Page) { p.client = c }
}

// WithLogger sets the logger used to report fetch failures.
func WithLogger(l *zap.Logger) Option {
	return func(p *Page) { p.log = l }
}

// Mount acquires the list container, status element, and PDF link from
// root. Only the list container is required.
func Mount(root *html.Node, opts ...Option) (*Page, error) {
	doc := goquery.NewDocumentFromNode(root)
	list := doc.Find("#" + ListID).First()
	if list.Length() == 0 {
		return nil, ErrNoContainer
	}

	p := &Page{
		root:    root,
		list:    list,
		status:  doc.Find("#" + StatusID).First(),
		pdfLink: doc.Find("#" + PDFLinkID).First(),
		client:  http.DefaultClient,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Mounted reports whether the list container is still attached to the
// tree the page was mounted on.
func (p *Page) Mounted() bool {
	for n := p.list.Get(0); n != nil; n = n.Parent {
		if n == p.root {
			return true
		}
	}
	return false
}

// Load fetches the document at url and renders it. On failure the error
// is logged, the status element shows LoadFailedMessage, and the list is
// left as it was; the *httputil.FetchError is returned. Nothing is
// mutated once the container has been detached.
func (p *Page) Load(ctx context.Context, url string) error {
	var doc types.Document
	err := httputil.FetchJSON(ctx, p.client, url, &doc)
	return p.show(url, doc, err)
}

// LoadFile reads the document from a local cv.json and renders it, with
// the same failure handling as Load.
func (p *Page) LoadFile(path string) error {
	var doc types.Document
	data, err := os.ReadFile(path)
	if err == nil {
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		err = fmt.Errorf("reading document %s: %w", path, err)
	}
	return p.show(path, doc, err)
}

func (p *Page) show(from string, doc types.Document, err error) error {
	if err != nil {
		p.log.Error("loading publications failed", zap.String("from", from), zap.Error(err))
		if p.Mounted() {
			p.status.SetText(LoadFailedMessage)
		}
		return err
	}
	if !p.Mounted() {
		p.log.Debug("list container detached, skipping render", zap.String("from", from))
		return nil
	}
	p.Render(doc)
	return nil
}

// Render replaces the list contents with the sections for doc, clears
// the status element, and points the PDF link at doc.Web.PDFLink when
// one is configured.
func (p *Page) Render(doc types.Document) {
	p.status.SetText("")
	p.list.Empty()
	for _, g := range GroupPublications(doc) {
		p.list.AppendNodes(renderSection(g))
	}
	if doc.Web.PDFLink != "" {
		p.pdfLink.SetAttr("href", doc.Web.PDFLink)
	}
}

// Group is the publications shown under one heading.
type Group struct {
	Subtype string
	Label   string
	Entries []types.WebPublication
}

// GroupPublications returns one group per display subtype, in display
// order. Each group keeps the relative order of the publications array.
// Publications whose subtype is not displayed appear in no group.
func GroupPublications(doc types.Document) []Group {
	groups := make([]Group, 0, len(doc.Web.DisplaySubtypes))
	for _, subtype := range doc.Web.DisplaySubtypes {
		g := Group{Subtype: subtype, Label: doc.Web.Label(subtype)}
		for _, p := range doc.Publications {
			if p.Subtype == subtype {
				g.Entries = append(g.Entries, p)
			}
		}
		groups = append(groups, g)
	}
	return groups
}

// HTML serializes the tree rooted at n.
func HTML(n *html.Node) (string, error) {
	var b strings.Builder
	if err := html.Render(&b, n); err != nil {
		return "", err
	}
	return b.String(), nil
}
