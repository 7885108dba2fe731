package markit

const (
	defaultWrapWords  = 10
	defaultIndent     = "\t"
	defaultStylesheet = "styles.css"
)

// Option configures rendering behavior.
type Option func(*config)

type config struct {
	wrapWords  int
	indent     string
	stylesheet string
	title      string
}

func newConfig(opts []Option) config {
	cfg := config{
		wrapWords:  defaultWrapWords,
		indent:     defaultIndent,
		stylesheet: defaultStylesheet,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithWrapWords sets how many space-separated words a paragraph keeps on one
// line before a soft line break. Zero or less disables wrapping.
func WithWrapWords(n int) Option {
	return func(cfg *config) {
		cfg.wrapWords = n
	}
}

// WithIndent sets the indentation unit emitted once per list nesting level.
func WithIndent(unit string) Option {
	return func(cfg *config) {
		cfg.indent = unit
	}
}

// WithStylesheet sets the stylesheet href linked from HTML output. An empty
// href omits the link.
func WithStylesheet(href string) Option {
	return func(cfg *config) {
		cfg.stylesheet = href
	}
}

// WithTitle sets the HTML <title>, overriding a front matter title.
func WithTitle(title string) Option {
	return func(cfg *config) {
		cfg.title = title
	}
}
