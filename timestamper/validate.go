package timestamper

import (
	"os"

	"github.com/cockroachdb/errors"

	"github.com/creachadair/timestamper/moment"
)

// A check examines (and may update) a configuration, reporting an error if
// it is not acceptable.
type check func(*Config) error

// checks are applied in order; the first failure ends validation.
var checks = []check{
	checkOutputIntent,
	checkRequired,
	checkTemplateExists,
	checkFormat,
	markInlineTemplate,
	checkInlineTemplate,
	checkSingleTemplate,
}

// Validate checks cfg for consistency. On success the Result carries the
// validated configuration, which may differ from cfg in HasInlineTemplate.
// When cfg requests the version, no checks are applied.
func Validate(cfg Config) Result {
	if !cfg.Version {
		for _, c := range checks {
			if err := c(&cfg); err != nil {
				return failed(err)
			}
		}
	}
	return Result{Config: cfg}
}

func checkOutputIntent(cfg *Config) error {
	if cfg.SkipOutput && cfg.OutputPath == "" {
		return errors.WithHint(newError(KindOutputConfusion, nil,
			"Please make up your mind: do you want me to generate the output file or not?"),
			"-so skips the output file, so -o needs no file name; drop one of them")
	}
	return nil
}

func checkRequired(cfg *Config) error {
	for _, field := range requiredOrder {
		if cfg.Missing.Contains(field) {
			return newError(RequiredKind(field), nil, "%s is required after %s", field, flagFor[field])
		}
	}
	return nil
}

func checkTemplateExists(cfg *Config) error {
	if cfg.TemplatePath == "" {
		return nil
	}
	if _, err := os.Stat(cfg.TemplatePath); err != nil {
		return errors.WithHintf(newError(KindTemplateNotExists, err,
			"Template file %s does not exist", cfg.TemplatePath),
			"relative -t paths are resolved against the working directory")
	}
	return nil
}

func checkFormat(cfg *Config) error {
	if err := moment.Validate(cfg.Format); err != nil {
		return errors.WithHint(newError(KindInvalidFormat, err,
			"Please enter a valid format: %v", err),
			`use moment-style tokens, for example "YYYYMMDDHHmm" or "[v]YYYY.MM.DD"`)
	}
	return nil
}

func markInlineTemplate(cfg *Config) error {
	if cfg.InlineTemplate != "" {
		cfg.HasInlineTemplate = true
	}
	return nil
}

func checkInlineTemplate(cfg *Config) error {
	if cfg.HasInlineTemplate && cfg.InlineTemplate == "" {
		return errors.WithHint(newError(KindInvalidInlineTemplate, nil,
			"Please provide a valid inline template"),
			`an inline template must contain `+Placeholder+`, for example -i "`+Placeholder+`-build"`)
	}
	return nil
}

func checkSingleTemplate(cfg *Config) error {
	if cfg.TemplatePath != "" && cfg.InlineTemplate != "" {
		return errors.WithHint(newError(KindExtraTemplate, nil,
			"You can use only one template"),
			"use either -t <file> or -i <text>, not both")
	}
	return nil
}
