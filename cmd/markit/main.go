package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/markit"
	"pkt.systems/version"
)

const (
	defaultWrapWords  = 10
	defaultStylesheet = "styles.css"
	defaultIndent     = "tab"
)

func init() {
	version.SetDefaultModule("pkt.systems/markit")
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var (
		outPath     string
		htmlMode    bool
		stylesheet  string
		title       string
		wrapWords   int
		indentFlag  string
		verbose     bool
		showVersion bool
	)

	flags := pflag.NewFlagSet("markit", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVarP(&outPath, "output", "o", "", "Output file instead of stdout")
	flags.BoolVar(&htmlMode, "html", false, "Convert the generated Markdown to an HTML page")
	flags.StringVar(&stylesheet, "stylesheet", defaultStylesheet, "Stylesheet href linked from HTML output (empty omits it)")
	flags.StringVar(&title, "title", "", "HTML page title (defaults to the front matter title)")
	flags.IntVar(&wrapWords, "wrap", defaultWrapWords, "Words per line before a soft line break (0 disables)")
	flags.StringVar(&indentFlag, "indent", defaultIndent, "List indentation: tab or a number of spaces")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Log progress to stderr")
	flags.BoolVar(&showVersion, "version", false, "Print version and exit")
	flags.Usage = func() {
		fmt.Fprintln(stderr, version.Module(), version.Current())
		fmt.Fprintf(stderr, "Usage: markit [flags] [description.yaml|url]\n")
		fmt.Fprintln(stderr, "\nIf no input is provided, the YAML description is read from stdin.")
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}
	if showVersion {
		fmt.Fprintln(stdout, version.Module(), version.Current())
		return 0
	}
	if flags.NArg() > 1 {
		fmt.Fprintln(stderr, "expected at most one input")
		flags.Usage()
		return 2
	}

	log := newLogger(stderr, verbose)

	indent, err := resolveIndent(indentFlag)
	if err != nil {
		fmt.Fprintf(stderr, "invalid --indent %q: %v\n", indentFlag, err)
		return 2
	}

	opts := []markit.Option{
		markit.WithWrapWords(wrapWords),
		markit.WithIndent(indent),
		markit.WithStylesheet(stylesheet),
		markit.WithTitle(title),
	}
	var doc *markit.Document
	if input := flags.Arg(0); isURL(input) {
		log.WithField("url", input).Debug("fetching description")
		doc, err = markit.LoadURL(context.Background(), markit.LoadURLRequest{URL: input, Options: opts})
	} else {
		reader, closer, openErr := openInput(input, stdin)
		if openErr != nil {
			fmt.Fprintf(stderr, "open input: %v\n", openErr)
			return 1
		}
		doc, err = markit.Load(reader, opts...)
		if closer != nil {
			_ = closer.Close()
		}
	}
	if err != nil {
		fmt.Fprintf(stderr, "load: %v\n", err)
		return 1
	}
	log.WithField("blocks", doc.Len()).Debug("document loaded")

	if !htmlMode && isHTMLPath(outPath) {
		log.WithField("output", outPath).Info("output has an HTML extension; enabling --html")
		htmlMode = true
	}

	var out []byte
	if htmlMode {
		out, err = doc.RenderHTML()
		if err != nil {
			fmt.Fprintf(stderr, "render html: %v\n", err)
			return 1
		}
	} else {
		out = []byte(doc.Render())
	}

	writer, closeOut, err := resolveOutput(outPath, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "open output: %v\n", err)
		return 1
	}
	if isTerminal(writer) && !strings.HasSuffix(string(out), "\n") {
		out = append(out, '\n')
	}
	if err := writeOutput(writer, closeOut, out); err != nil {
		fmt.Fprintf(stderr, "write: %v\n", err)
		return 1
	}
	if outPath != "" {
		log.WithFields(logrus.Fields{
			"output": outPath,
			"size":   humanize.Bytes(uint64(len(out))),
			"html":   htmlMode,
		}).Info("document written")
	}
	return 0
}

// writeOutput writes out and closes c, reporting the first failure.
func writeOutput(w io.Writer, c io.Closer, out []byte) error {
	_, err := w.Write(out)
	if c != nil {
		if closeErr := c.Close(); err == nil {
			err = closeErr
		}
	}
	return err
}

func newLogger(w io.Writer, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.SetLevel(logrus.WarnLevel)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

func resolveIndent(value string) (string, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" || value == "tab" {
		return "\t", nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return "", fmt.Errorf("expected tab or a non-negative number of spaces")
	}
	return strings.Repeat(" ", n), nil
}

func isHTMLPath(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".html" || ext == ".htm"
}

func isURL(arg string) bool {
	u, err := url.Parse(strings.TrimSpace(arg))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func openInput(arg string, stdin io.Reader) (io.Reader, io.Closer, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" || arg == "-" {
		return stdin, nil, nil
	}
	f, err := os.Open(normalizePath(arg))
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func resolveOutput(path string, stdout io.Writer) (io.Writer, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return stdout, nil, nil
	}
	clean := normalizePath(path)
	dir := filepath.Dir(clean)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	f, err := os.Create(clean)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
