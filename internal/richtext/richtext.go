// Package richtext is the serialized form of an editor tab: a Markdown body,
// optionally preceded by a YAML front matter block holding the tab style.
package richtext

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"
)

const fence = "---\n"

var frontMatterPattern = regexp.MustCompile(`(?s)^---\n(.*?)\n---\n(.*)`)

// Style is the text style applied to a whole tab.
type Style struct {
	Bold      bool `yaml:"bold,omitempty"`
	Italic    bool `yaml:"italic,omitempty"`
	Monospace bool `yaml:"monospace,omitempty"`
}

// IsZero reports whether no style flag is set.
func (s Style) IsZero() bool {
	return s == Style{}
}

// Document is the content of one tab.
type Document struct {
	Style Style
	Body  string
}

// Plain wraps unstyled text.
func Plain(body string) Document {
	return Document{Body: body}
}

// Encode serializes doc. Unstyled documents encode to their body unchanged
// unless the body itself opens with a front matter fence.
func Encode(doc Document) (string, error) {
	if doc.Style.IsZero() && !strings.HasPrefix(doc.Body, fence) {
		return doc.Body, nil
	}

	meta, err := yaml.Marshal(doc.Style)
	if err != nil {
		return "", fmt.Errorf("failed to encode style: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(fence)
	sb.Write(meta)
	sb.WriteString(fence)
	sb.WriteString(doc.Body)
	return sb.String(), nil
}

// Decode parses s produced by Encode. Input without front matter is returned
// as an unstyled body. On malformed front matter the whole input is returned
// as the body together with the error.
func Decode(s string) (Document, error) {
	matches := frontMatterPattern.FindStringSubmatch(s)
	if len(matches) != 3 {
		return Plain(s), nil
	}

	var style Style
	if err := yaml.Unmarshal([]byte(matches[1]), &style); err != nil {
		return Plain(s), fmt.Errorf("failed to parse front matter: %w", err)
	}
	return Document{Style: style, Body: matches[2]}, nil
}

// Headline returns the text of the first level-1 heading in body, or "".
func Headline(body string) string {
	source := []byte(body)
	doc := goldmark.DefaultParser().Parse(text.NewReader(source))

	var title string
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering && n.Kind() == ast.KindHeading {
			if n.(*ast.Heading).Level == 1 {
				title = strings.TrimSpace(string(n.Text(source)))
				return ast.WalkStop, nil
			}
		}
		return ast.WalkContinue, nil
	})
	return title
}
