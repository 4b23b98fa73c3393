// Package markdown renders operator-authored dieline notes to safe HTML.
package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Renderer converts markdown notes to HTML.
type Renderer interface {
	// Render returns sanitized HTML for notes. Empty input yields "".
	Render(notes string) (string, error)
}

type renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func NewRenderer() Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.Table,
			extension.Strikethrough,
			extension.Linkify,
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
		),
	)

	policy := bluemonday.UGCPolicy()
	policy.RequireNoFollowOnLinks(true)

	return &renderer{md: md, policy: policy}
}

func (r *renderer) Render(notes string) (string, error) {
	if strings.TrimSpace(notes) == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(notes), &buf); err != nil {
		return "", fmt.Errorf("failed to render notes: %w", err)
	}
	return r.policy.Sanitize(buf.String()), nil
}
