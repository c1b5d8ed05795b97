package frontmatter

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Serialize emits a complete document: `---` delimited front-matter followed
// by the body. Field order follows the schema so scaffolded posts diff
// cleanly against hand-written ones.
func Serialize(m Meta, body []byte) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("---\n")

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return nil, fmt.Errorf("encode front-matter: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}

	buf.WriteString("---\n")
	buf.Write(body)
	return buf.Bytes(), nil
}
