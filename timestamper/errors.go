package timestamper

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// A Kind is the stable, machine-readable class of a failure.
type Kind string

// Failure kinds reported by the pipeline. The kind for a flag given without
// its value is built by RequiredKind.
const (
	KindInvalidArgument       Kind = "invalid_argument"
	KindOutputConfusion       Kind = "output_confusion"
	KindTemplateNotExists     Kind = "template_not_exists"
	KindInvalidFormat         Kind = "invalid_format"
	KindInvalidInlineTemplate Kind = "invalid_inline_template"
	KindExtraTemplate         Kind = "extra_template"
	KindReadFailed            Kind = "failed_to_read_file"
	KindPlaceholderNotFound   Kind = Placeholder + "_placeholder_not_found"
	KindWriteFailed           Kind = "failed_to_write_file"
)

// RequiredKind returns the kind reported when the value for field is missing.
func RequiredKind(field string) Kind { return Kind(field + "_required") }

// Sentinel values for use with errors.Is. Only the kind is compared.
var (
	ErrInvalidArgument       = &Error{Kind: KindInvalidArgument}
	ErrOutputConfusion       = &Error{Kind: KindOutputConfusion}
	ErrTemplateNotExists     = &Error{Kind: KindTemplateNotExists}
	ErrInvalidFormat         = &Error{Kind: KindInvalidFormat}
	ErrInvalidInlineTemplate = &Error{Kind: KindInvalidInlineTemplate}
	ErrExtraTemplate         = &Error{Kind: KindExtraTemplate}
	ErrReadFailed            = &Error{Kind: KindReadFailed}
	ErrPlaceholderNotFound   = &Error{Kind: KindPlaceholderNotFound}
	ErrWriteFailed           = &Error{Kind: KindWriteFailed}
)

// Error is the concrete type of errors reported by the pipeline.
type Error struct {
	Kind    Kind
	Message string
	Err     error // the underlying cause, or nil
}

// Error returns the human-readable message of e.
func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return e.Message
}

// Unwrap returns the underlying cause of e, if any.
func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same kind as e.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// KindOf returns the kind of the first *Error in the chain of err, or "" if
// there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func newError(kind Kind, cause error, msg string, args ...any) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(msg, args...), Err: cause}
}
