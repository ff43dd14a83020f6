// Package jd fetches a job posting URL and reduces the page to markdown
// suitable for prompt interpolation.
package jd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/JohannesKaufmann/html-to-markdown/plugin"
	readability "github.com/go-shiori/go-readability"
)

const (
	fetchTimeout   = 30 * time.Second
	maxContentSize = 2 << 20
	userAgent      = "portfoliomaker/1.0"
)

var excessiveLinesRe = regexp.MustCompile(`\n{4,}`)

// Fetcher downloads job postings and converts them to markdown.
type Fetcher struct {
	client    *http.Client
	converter *md.Converter
	maxSize   int64
}

func NewFetcher() *Fetcher {
	converter := md.NewConverter("", true, nil)
	converter.Use(plugin.GitHubFlavored())
	return &Fetcher{
		client:    &http.Client{Timeout: fetchTimeout},
		converter: converter,
		maxSize:   maxContentSize,
	}
}

// Fetch retrieves the page, extracts its main content and returns it as
// markdown.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return "", fmt.Errorf("unsupported job description URL %q", rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch job description: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch job description: HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxSize+1))
	if err != nil {
		return "", fmt.Errorf("read job description: %w", err)
	}
	if int64(len(body)) > f.maxSize {
		return "", fmt.Errorf("job description page exceeds %d bytes", f.maxSize)
	}

	// Main-content extraction; fall back to the whole page when the
	// reader finds nothing usable.
	content := string(body)
	if article, err := readability.FromReader(bytes.NewReader(body), parsed); err == nil &&
		strings.TrimSpace(article.Content) != "" {
		content = article.Content
	}

	markdown, err := f.converter.ConvertString(content)
	if err != nil {
		return "", fmt.Errorf("convert job description: %w", err)
	}

	markdown = cleanMarkdown(markdown)
	if markdown == "" {
		return "", errors.New("job description page had no extractable text")
	}
	return markdown, nil
}

func cleanMarkdown(content string) string {
	content = excessiveLinesRe.ReplaceAllString(content, "\n\n\n")
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
