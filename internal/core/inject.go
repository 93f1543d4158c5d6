package core

import (
	"fmt"
	"html"
	"strings"
)

const closingHTMLTag = "</html>"

func ModuleScriptTag(src string) string {
	return fmt.Sprintf(`<script type="module" src="%s"></script>`, html.EscapeString(src))
}

// InjectModuleScript inserts a module script tag for src, followed by a
// newline, right before the last closing html tag. Every other byte of doc is
// kept. When doc has no closing html tag the script tag is appended to the
// end and ok is false.
func InjectModuleScript(doc string, src string) (result string, ok bool) {
	tag := ModuleScriptTag(src) + "\n"

	idx := lastIndexFold(doc, closingHTMLTag)
	if idx < 0 {
		if doc != "" && !strings.HasSuffix(doc, "\n") {
			doc += "\n"
		}
		return doc + tag, false
	}

	return doc[:idx] + tag + doc[idx:], true
}

func lastIndexFold(s, substr string) int {
	for i := len(s) - len(substr); i >= 0; i-- {
		if strings.EqualFold(s[i:i+len(substr)], substr) {
			return i
		}
	}
	return -1
}
