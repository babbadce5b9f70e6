package filesystem

import (
	"fmt"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

const frontMatterDelimiter = "---"

// splitFrontMatter separates a leading YAML front matter block from the body.
// Content without front matter is returned unchanged with nil metadata.
func splitFrontMatter(content string) (map[string]any, string, error) {
	content = strings.TrimPrefix(content, "\ufeff")

	first, rest, ok := strings.Cut(content, "\n")
	if !ok || strings.TrimRight(first, "\r") != frontMatterDelimiter {
		return nil, content, nil
	}

	var block []string
	for {
		line, remaining, more := strings.Cut(rest, "\n")
		if strings.TrimRight(line, "\r") == frontMatterDelimiter {
			var meta map[string]any
			if err := yaml.Unmarshal([]byte(strings.Join(block, "\n")), &meta); err != nil {
				return nil, "", fmt.Errorf("failed to parse front matter: %w", err)
			}
			return meta, remaining, nil
		}
		if !more {
			// No closing delimiter
			return nil, content, nil
		}
		block = append(block, line)
		rest = remaining
	}
}

// title picks the document title: front matter title, else the first level one
// heading, else the file name without extension
func title(meta map[string]any, body, key string) string {
	if t, ok := meta["title"].(string); ok && strings.TrimSpace(t) != "" {
		return strings.TrimSpace(t)
	}

	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if heading, ok := strings.CutPrefix(line, "# "); ok {
			if heading = strings.TrimSpace(heading); heading != "" {
				return heading
			}
		}
	}

	name := path.Base(key)
	return strings.TrimSuffix(name, path.Ext(name))
}
