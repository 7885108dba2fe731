package markit

import (
	"bytes"
	"fmt"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"
)

const frontMatterDelimiter = "---"

// FrontMatter sets the YAML metadata block emitted at the top of the
// document. Calling it again replaces the block; nil or empty metadata
// removes it.
func (d *Document) FrontMatter(meta map[string]any) *Document {
	if d.failed() {
		return d
	}
	if len(meta) == 0 {
		d.front = nil
		return d
	}
	encoded, err := yaml.Marshal(meta)
	if err != nil {
		d.err = fmt.Errorf("markit: front matter: %w", err)
		return d
	}
	var b bytes.Buffer
	b.WriteString(frontMatterDelimiter + "\n")
	b.Write(encoded)
	b.WriteString(frontMatterDelimiter + "\n")
	d.front = b.Bytes()
	return d
}

// splitFrontMatter separates a leading YAML front matter block from the
// Markdown body. Sources without one are returned unchanged with nil metadata.
func splitFrontMatter(src []byte) (map[string]any, []byte, error) {
	if !bytes.HasPrefix(src, []byte(frontMatterDelimiter+"\n")) {
		return nil, src, nil
	}
	meta := map[string]any{}
	body, err := frontmatter.Parse(bytes.NewReader(src), &meta)
	if err != nil {
		return nil, nil, fmt.Errorf("markit: front matter: %w", err)
	}
	return meta, body, nil
}
