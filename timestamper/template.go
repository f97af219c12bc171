package timestamper

import (
	"os"
	"strings"
)

// ResolveTemplate returns the template text selected by cfg. An inline
// template takes priority over a template file, which takes priority over
// the configured (default) template. The result must contain Placeholder.
func ResolveTemplate(cfg Config) (string, error) {
	var text string
	switch {
	case cfg.HasInlineTemplate:
		text = cfg.InlineTemplate
	case cfg.TemplatePath != "":
		data, err := os.ReadFile(cfg.TemplatePath)
		if err != nil {
			return "", newError(KindReadFailed, err, "Failed to read template file at %s", cfg.TemplatePath)
		}
		text = string(data)
	default:
		text = cfg.Template
	}
	if !strings.Contains(text, Placeholder) {
		return "", newError(KindPlaceholderNotFound, nil, "Template does not contain %s placeholder", Placeholder)
	}
	return text, nil
}

// Substitute replaces every occurrence of Placeholder in text with ts.
func Substitute(text, ts string) string {
	return strings.ReplaceAll(text, Placeholder, ts)
}
