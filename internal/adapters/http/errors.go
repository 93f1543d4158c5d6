package http

import (
	"bytes"
	"errors"
	"html"
	"html/template"
	"net/http"

	"github.com/3-lines-studio/multipage/internal/core"
)

type errorData struct {
	Title   string
	Message string
	IsDev   bool
}

var errorTemplate = template.Must(template.New("error").Parse(`<!doctype html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <style>
        body { font-family: system-ui, sans-serif; max-width: 800px; margin: 50px auto; padding: 0 20px; }
        h1 { color: #e74c3c; }
        pre { background: #f8f9fa; padding: 15px; border-radius: 5px; overflow-x: auto; white-space: pre-wrap; }
    </style>
</head>
<body>
    <h1>{{.Title}}</h1>
    {{if .IsDev}}
    <pre>{{.Message}}</pre>
    {{else}}
    <p>An error occurred while processing your request.</p>
    {{end}}
</body>
</html>`))

func errorKind(err error) string {
	var cfgErr *core.ConfigError
	var notFound *core.NotFoundError
	var transform *core.TransformError
	switch {
	case errors.As(err, &cfgErr):
		return "config"
	case errors.As(err, &notFound):
		return "not_found"
	case errors.As(err, &transform):
		return "transform"
	}
	return "internal"
}

func errorTitle(kind string) string {
	switch kind {
	case "config":
		return "Page configuration error"
	case "not_found":
		return "Page source not found"
	case "transform":
		return "Page transform error"
	}
	return "Internal Server Error"
}

func serveError(w http.ResponseWriter, err error, isDev bool) {
	data := errorData{
		Title:   errorTitle(errorKind(err)),
		Message: err.Error(),
		IsDev:   isDev,
	}

	var buf bytes.Buffer
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := errorTemplate.Execute(&buf, data); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("<!doctype html><html><body><pre>" + html.EscapeString(data.Message) + "</pre></body></html>"))
		return
	}

	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write(buf.Bytes())
}

func serveHTML(w http.ResponseWriter, doc string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(doc))
}
