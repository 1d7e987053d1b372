package goquery

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/pagechat"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

// Compile-time interface verification.
var _ pagechat.Extractor = (*Extractor)(nil)

// removedElements are dropped from the tree before any text is read.
const removedElements = "script, style, nav, footer, header, aside"

// Extractor extracts bounded PageContent from raw HTML.
type Extractor struct {
	limits pagechat.ExtractLimits
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithLimits overrides the default extraction limits.
func WithLimits(limits pagechat.ExtractLimits) Option {
	return func(e *Extractor) {
		e.limits = limits
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{limits: pagechat.DefaultExtractLimits()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract parses raw HTML and returns its title, description, headings,
// paragraphs and normalized text. Malformed markup is repaired by the parser
// rather than rejected.
func (e *Extractor) Extract(raw []byte, sourceURL string) (*pagechat.PageContent, error) {
	doc, err := parse(raw)
	if err != nil {
		return nil, err
	}

	page := &pagechat.PageContent{
		URL:         sourceURL,
		Title:       pagechat.NoTitle,
		Description: description(doc),
		Headings:    e.headings(doc),
		Paragraphs:  e.paragraphs(doc),
		Status:      pagechat.StatusSuccess,
	}
	if title := doc.Find("title").First(); title.Length() > 0 {
		page.Title = strings.TrimSpace(title.Text())
	}

	content := normalizeText(doc.Text())
	if utf8.RuneCountInString(content) > e.limits.MaxContentChars {
		content = pagechat.TruncateChars(content, e.limits.MaxContentChars) + pagechat.TruncationMarker
		page.Truncated = true
	}
	page.Content = content
	page.WordCount = len(strings.FieldsFunc(content, isSpace))
	page.CharCount = utf8.RuneCountInString(content)
	page.ContentHash = fmt.Sprintf("%016x", xxhash.Sum64String(content))

	return page, nil
}

// CleanHTML returns the markup of the document body after boilerplate
// elements have been removed.
func (e *Extractor) CleanHTML(raw []byte) (string, error) {
	doc, err := parse(raw)
	if err != nil {
		return "", err
	}
	body, err := doc.Find("body").First().Html()
	if err != nil {
		return "", pagechat.Errorf(pagechat.EPARSE, "failed to render HTML: %v", err)
	}
	return body, nil
}

// parse decodes raw to UTF-8, builds the document tree and strips the
// removed elements.
func parse(raw []byte) (*goquery.Document, error) {
	r, err := decode(raw)
	if err != nil {
		return nil, pagechat.Errorf(pagechat.EPARSE, "failed to decode HTML: %v", err)
	}

	// With scripting disabled <noscript> children are parsed as markup.
	root, err := html.ParseWithOptions(r, html.ParseOptionEnableScripting(false))
	if err != nil {
		return nil, pagechat.Errorf(pagechat.EPARSE, "failed to parse HTML: %v", err)
	}

	doc := goquery.NewDocumentFromNode(root)
	doc.Find(removedElements).Remove()
	return doc, nil
}

// decode returns a UTF-8 reader over raw. A BOM or a declared charset is
// honoured. The windows-1252 guess made when the first 1024 bytes are
// inconclusive is only accepted if the whole input is not valid UTF-8.
func decode(raw []byte) (io.Reader, error) {
	if _, name, certain := charset.DetermineEncoding(raw, ""); !certain && name == "windows-1252" && utf8.Valid(raw) {
		return bytes.NewReader(raw), nil
	}
	return charset.NewReader(bytes.NewReader(raw), "")
}

func description(doc *goquery.Document) string {
	content, _ := doc.Find(`meta[name="description"]`).First().Attr("content")
	return strings.TrimSpace(content)
}

func (e *Extractor) headings(doc *goquery.Document) []string {
	var headings []string
	doc.Find("h1, h2, h3, h4, h5, h6").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if len(headings) >= e.limits.MaxHeadings {
			return false
		}
		text := strings.TrimSpace(sel.Text())
		if text != "" && utf8.RuneCountInString(text) < e.limits.MaxHeadingChars {
			headings = append(headings, text)
		}
		return true
	})
	return headings
}

func (e *Extractor) paragraphs(doc *goquery.Document) []string {
	var paragraphs []string
	doc.Find("p").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if len(paragraphs) >= e.limits.MaxParagraphs {
			return false
		}
		text := strings.TrimSpace(sel.Text())
		if utf8.RuneCountInString(text) > e.limits.MinParagraphChars {
			paragraphs = append(paragraphs, text)
		}
		return true
	})
	return paragraphs
}

// normalizeText joins the non-blank phrases of text with single spaces.
// Splitting on lines and double spaces, trimming and dropping empty pieces,
// then collapsing whitespace runs reduces to splitting on whitespace.
func normalizeText(text string) string {
	return strings.Join(strings.FieldsFunc(text, isSpace), " ")
}

// isSpace reports Unicode whitespace plus the ASCII information separators,
// which also break lines.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}
