package tempo

import (
	"strings"

	"gopkg.in/yaml.v3"
)

var frontMatterDelimiters = []string{"---", "+++", ";;;"}

// DocumentMeta is the parsed front-matter header, when one is present.
type DocumentMeta struct {
	Title  string
	Fields map[string]any
}

// StripFrontMatter removes a leading metadata block fenced by ---, +++
// or ;;; and returns the remaining body. The block only counts as front
// matter when its first line looks like metadata (a key-value pair or a
// JSON-ish opener) and the fence closes; otherwise the document comes
// back untouched, so a leading --- rule is never eaten. YAML blocks also
// yield the declared title.
func StripFrontMatter(content string) (DocumentMeta, string) {
	var meta DocumentMeta
	lines := strings.Split(content, "\n")
	if len(lines) < 3 {
		return meta, content
	}
	first := strings.TrimSpace(strings.TrimPrefix(lines[0], "\ufeff"))
	delim := ""
	for _, d := range frontMatterDelimiters {
		if first == d {
			delim = d
			break
		}
	}
	if delim == "" || !metadataLikely(lines[1]) {
		return meta, content
	}
	for i := 2; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) != delim {
			continue
		}
		if delim == "---" {
			meta = parseYAMLMeta(strings.Join(lines[1:i], "\n"))
		}
		return meta, strings.Join(lines[i+1:], "\n")
	}
	// unclosed fence: treat the whole document as content
	return meta, content
}

// metadataLikely mirrors the heuristic used for streamed documents: the
// line after the fence must carry a key-value pair or open a JSON value.
func metadataLikely(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		return true
	}
	return strings.Contains(trimmed, ":") || strings.Contains(trimmed, "=")
}

func parseYAMLMeta(block string) DocumentMeta {
	var fields map[string]any
	if err := yaml.Unmarshal([]byte(block), &fields); err != nil {
		return DocumentMeta{}
	}
	meta := DocumentMeta{Fields: fields}
	if title, ok := fields["title"].(string); ok {
		meta.Title = title
	}
	return meta
}
