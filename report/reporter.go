package report

import (
	"context"

	pcsxerrors "github.com/phillipmacon/pcsx2/errors"
)

// Presenter shows an error to the end user: a popup, a console box, a status
// line.
type Presenter interface {
	Present(ctx context.Context, title, message string) error
}

// PresenterFunc adapts a function to Presenter.
type PresenterFunc func(ctx context.Context, title, message string) error

// Present calls f.
func (f PresenterFunc) Present(ctx context.Context, title, message string) error {
	return f(ctx, title, message)
}

// titles maps each kind to the heading shown above the user message.
var titles = map[pcsxerrors.Kind]string{
	pcsxerrors.KindGeneric:           "Error",
	pcsxerrors.KindStreamUnavailable: "Stream error",
	pcsxerrors.KindResourceNotFound:  "File not found",
	pcsxerrors.KindPermissionDenied:  "Access denied",
	pcsxerrors.KindStreamExhausted:   "Unexpected end of file",
}

// Title returns the presentation heading for kind.
// Returns "Error" for kinds without an entry.
func Title(kind pcsxerrors.Kind) string {
	if t, ok := titles[kind]; ok {
		return t
	}
	return titles[pcsxerrors.KindGeneric]
}

// Reporter logs errors and presents the ones that are not silent.
type Reporter struct {
	logger    *Logger
	presenter Presenter
}

// Option configures a Reporter.
type Option func(*Reporter)

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(logger *Logger) Option {
	return func(r *Reporter) {
		r.logger = logger
	}
}

// WithPresenter sets the presenter. Without one, errors are only logged.
func WithPresenter(p Presenter) Option {
	return func(r *Reporter) {
		r.presenter = p
	}
}

// NewReporter creates a Reporter.
func NewReporter(opts ...Option) *Reporter {
	r := &Reporter{logger: NewNopLogger()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Report logs err at error level and, unless it is silent, presents its
// end-user rendering. It returns only presentation failures; err itself is
// never returned. Report is a no-op for nil.
func (r *Reporter) Report(ctx context.Context, err error) error {
	resp := pcsxerrors.ToDiagnosticJSON(err)
	if resp == nil {
		return nil
	}

	r.logger.Error(ctx, resp.Diagnostic,
		"variant", resp.Variant,
		"kind", resp.Kind,
		"stream", resp.Stream,
		"silent", resp.Silent,
	)

	if resp.Silent || r.presenter == nil {
		return nil
	}

	title := Title(pcsxerrors.Kind(resp.Kind))
	if perr := r.presenter.Present(ctx, title, resp.Message); perr != nil {
		return pcsxerrors.Wrap(perr, "presenting error")
	}
	return nil
}
