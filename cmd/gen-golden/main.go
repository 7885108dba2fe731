package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"pkt.systems/markit"
)

// gen-golden renders every testdata/*.yaml description and writes the
// Markdown next to it as <name>.md.golden.
func main() {
	root := "testdata"
	var paths []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(path, ".yaml") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		fatalf("walk %s: %v", root, err)
	}
	if len(paths) == 0 {
		fatalf("no yaml descriptions found under %s", root)
	}
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			fatalf("open %s: %v", path, err)
		}
		doc, err := markit.Load(f)
		_ = f.Close()
		if err != nil {
			fatalf("load %s: %v", path, err)
		}
		goldenPath := goldenPath(path)
		if err := os.WriteFile(goldenPath, []byte(doc.Render()), 0o644); err != nil {
			fatalf("write %s: %v", goldenPath, err)
		}
		fmt.Fprintf(os.Stdout, "wrote %s\n", goldenPath)
	}
}

func goldenPath(yamlPath string) string {
	return strings.TrimSuffix(yamlPath, ".yaml") + ".md.golden"
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
