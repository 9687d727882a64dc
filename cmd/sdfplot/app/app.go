package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/roman-kulish/sdfplot/internal/render"
	"github.com/roman-kulish/sdfplot/internal/sdf"
	"github.com/roman-kulish/sdfplot/internal/spectrum"
)

type runner struct {
	reader   sdf.Reader
	renderer render.Renderer
	logger   *slog.Logger
}

type Option func(r *runner)

// WithReader replaces the measurement file reader
func WithReader(reader sdf.Reader) Option {
	return func(r *runner) {
		r.reader = reader
	}
}

// WithRenderer replaces the plotting backend
func WithRenderer(renderer render.Renderer) Option {
	return func(r *runner) {
		r.renderer = renderer
	}
}

// Run reads one measurement and writes its plot. Every step aborts the run
// on failure, nothing is retried.
func Run(ctx context.Context, config *Config, logger *slog.Logger, options ...Option) error {
	r := runner{
		reader:   sdf.FileReader{},
		renderer: render.NewGonum(),
		logger:   logger,
	}
	for _, option := range options {
		option(&r)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	hdr, samples, err := r.reader.Read(config.InputFile)
	if err != nil {
		return err
	}
	if err = hdr.Validate(); err != nil {
		return fmt.Errorf("invalid header: %w", err)
	}

	data := hdr.Data()
	r.logger.Info("measurement loaded",
		slog.Group("header",
			slog.String("source", config.InputFile),
			slog.String("measType", hdr.MeasHeader.MeasType.String()),
			slog.String("resolution", data.XResolution.String()),
			slog.Int("points", data.NumPoints),
			slog.String("firstX", humanHz(data.AbscissaFirstX)),
			slog.String("yUnit", data.YUnit),
		))

	trace, err := spectrum.Present(hdr, samples)
	if err != nil {
		return fmt.Errorf("preparing trace: %w", err)
	}

	lo, hi := trace.Span()
	r.logger.Info("rendering plot",
		slog.Group("plot",
			slog.String("mode", string(trace.Mode)),
			slog.String("minFreq", humanHz(lo*1000)),
			slog.String("maxFreq", humanHz(hi*1000)),
			slog.String("xScale", trace.Config.X.Scale.String()),
			slog.String("yScale", trace.Config.Y.Scale.String()),
			slog.String("destination", config.OutputFile),
			slog.String("format", string(config.Format)),
		))

	if err = r.render(trace, config.OutputFile); err != nil {
		return err
	}

	if stat, err := os.Stat(config.OutputFile); err == nil {
		r.logger.Info("plot written",
			slog.String("destination", config.OutputFile),
			slog.String("size", humanize.Bytes(uint64(stat.Size()))))
	}
	return nil
}

// render owns the figure for the duration of the call and always releases it
func (r *runner) render(trace *spectrum.Trace, path string) (err error) {
	fig, err := r.renderer.NewFigure(trace.Config)
	if err != nil {
		return fmt.Errorf("creating figure: %w", err)
	}
	defer func() {
		if closeErr := fig.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("releasing figure: %w", closeErr)
		}
	}()

	if err = fig.Plot(trace.X, trace.Y); err != nil {
		return fmt.Errorf("plotting trace: %w", err)
	}
	if err = fig.Save(path); err != nil {
		return fmt.Errorf("saving plot: %w", err)
	}
	return nil
}

func humanHz(hz float64) string {
	v, suffix := humanize.ComputeSI(hz)
	return fmt.Sprintf("%0.2f %sHz", v, suffix)
}
