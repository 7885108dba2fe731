package markit

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

const pageShell = `<!DOCTYPE html><html><head><meta charset="utf-8"/></head><body></body></html>`

// RenderHTML converts the rendered document into a standalone HTML page.
func (d *Document) RenderHTML() ([]byte, error) {
	if err := d.Err(); err != nil {
		return nil, err
	}
	return convertHTML([]byte(d.Render()), d.cfg)
}

// ConvertHTML converts Markdown into a standalone HTML page linking the
// configured stylesheet. A leading YAML front matter block is stripped and
// its title key becomes the page title unless WithTitle is given.
func ConvertHTML(markdown []byte, opts ...Option) ([]byte, error) {
	return convertHTML(markdown, newConfig(opts))
}

func convertHTML(src []byte, cfg config) ([]byte, error) {
	meta, body, err := splitFrontMatter(src)
	if err != nil {
		return nil, err
	}
	var content bytes.Buffer
	if err := newMarkdownEngine().Convert(body, &content); err != nil {
		return nil, fmt.Errorf("markit: convert markdown: %w", err)
	}

	page, err := goquery.NewDocumentFromReader(strings.NewReader(pageShell))
	if err != nil {
		return nil, fmt.Errorf("markit: page shell: %w", err)
	}
	head := page.Find("head")
	title := cfg.title
	if title == "" {
		if s, ok := meta["title"].(string); ok {
			title = s
		}
	}
	if title != "" {
		head.AppendHtml("<title></title>")
		head.Find("title").SetText(title)
	}
	if cfg.stylesheet != "" {
		head.AppendHtml(`<link rel="stylesheet"/>`)
		head.Find("link").SetAttr("href", cfg.stylesheet)
	}
	page.Find("body").AppendHtml(content.String())

	out, err := page.Html()
	if err != nil {
		return nil, fmt.Errorf("markit: render page: %w", err)
	}
	return []byte(out), nil
}

func newMarkdownEngine() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)
}
