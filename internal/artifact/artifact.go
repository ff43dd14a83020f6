// Package artifact builds client-side download links for generated text.
// Content is base64-encoded into a data URI; nothing is written server-side.
package artifact

import (
	"encoding/base64"
	"fmt"
)

const (
	MIMEMarkdown = "text/markdown"
	MIMEPlain    = "text/plain"
)

// DownloadLink is a self-contained download: the browser decodes the data
// URI, no follow-up request reaches the server.
type DownloadLink struct {
	Filename string `json:"filename"`
	MIME     string `json:"mime"`
	DataURI  string `json:"data_uri"`
}

func NewDownloadLink(content, filename, mime string) DownloadLink {
	encoded := base64.StdEncoding.EncodeToString([]byte(content))
	return DownloadLink{
		Filename: filename,
		MIME:     mime,
		DataURI:  fmt.Sprintf("data:%s;base64,%s", mime, encoded),
	}
}

// ResumeLinks returns the two download variants offered for a resume.
func ResumeLinks(content string) []DownloadLink {
	return []DownloadLink{
		NewDownloadLink(content, "resume.md", MIMEMarkdown),
		NewDownloadLink(content, "resume.txt", MIMEPlain),
	}
}

// CoverLetterLinks returns the download variant offered for a cover letter.
func CoverLetterLinks(content string) []DownloadLink {
	return []DownloadLink{
		NewDownloadLink(content, "cover_letter.md", MIMEMarkdown),
	}
}

// EnhancedLinks returns the download variant offered for enhanced text.
func EnhancedLinks(content string) []DownloadLink {
	return []DownloadLink{
		NewDownloadLink(content, "enhanced.md", MIMEMarkdown),
	}
}
