// Package render converts user supplied markdown into HTML that is safe to
// embed in a page.
package render

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var (
	md = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
	)

	policyOnce sync.Once
	policy     *bluemonday.Policy
)

func sanitizer() *bluemonday.Policy {
	policyOnce.Do(func() {
		policy = bluemonday.UGCPolicy()
		policy.RequireNoFollowOnLinks(true)
	})
	return policy
}

// Markdown renders source to sanitised HTML. Blank input renders to "".
func Markdown(source string) (string, error) {
	if strings.TrimSpace(source) == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return sanitizer().Sanitize(buf.String()), nil
}

// PlainText strips every tag from s.
func PlainText(s string) string {
	return bluemonday.StrictPolicy().Sanitize(s)
}
