package api

import (
	"bytes"
	_ "embed"
	"fmt"
	"net/http"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

//go:embed usage.md
var usageMarkdown []byte

const docsHeader = `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<title>atbtag API</title>
<style>
body { font-family: sans-serif; max-width: 60em; margin: 2em auto; padding: 0 1em; }
code, pre { background-color: #f4f4f4; }
pre { padding: 0.6em; overflow-x: auto; }
table { border-collapse: collapse; }
td, th { border: 1px solid #999; padding: 0.3em 0.6em; text-align: left; }
</style>
</head>
<body>
`

const docsFooter = `</body>
</html>
`

// renderDocs converts the embedded usage page to HTML once at startup.
func renderDocs() ([]byte, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.Table))

	var buf bytes.Buffer
	buf.WriteString(docsHeader)
	if err := md.Convert(usageMarkdown, &buf); err != nil {
		return nil, fmt.Errorf("convert usage.md: %w", err)
	}
	buf.WriteString(docsFooter)
	return buf.Bytes(), nil
}

func (service *Service) handleDocs(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(service.docs)
}
