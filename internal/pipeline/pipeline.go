// Package pipeline orchestrates the memory layout workflow stages.
package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/retroenv/espmemmap/internal/chip"
	"github.com/retroenv/espmemmap/internal/classify"
	"github.com/retroenv/espmemmap/internal/detector"
	"github.com/retroenv/espmemmap/internal/loader"
	"github.com/retroenv/espmemmap/internal/options"
	"github.com/retroenv/espmemmap/internal/render"
	"github.com/retroenv/espmemmap/internal/section"
	"github.com/retroenv/retrogolib/log"
)

// Pipeline orchestrates the complete memory layout workflow.
type Pipeline struct {
	logger   *log.Logger
	detector *detector.Detector
	loader   *loader.Loader
}

// New creates a new memory layout pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger:   logger,
		detector: detector.New(logger),
		loader:   loader.New(),
	}
}

// Execute runs the complete pipeline for the input file of the options.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program, layoutOpts options.Layout, writer io.Writer) error {
	format, err := p.detector.Detect(opts)
	if err != nil {
		return fmt.Errorf("detecting input format: %w", err)
	}

	sections, err := p.loader.Load(opts, format)
	if err != nil {
		return fmt.Errorf("loading firmware: %w", err)
	}

	p.logger.Debug("Loaded firmware",
		log.String("file", opts.Input),
		log.String("format", string(format)),
		log.Int("sections", len(sections)))

	return p.ExecuteWithSections(ctx, sections, layoutOpts, writer)
}

// ExecuteWithSections runs the pipeline with already decoded sections.
// This is useful for testing and programmatic usage where the sections are already in memory.
func (p *Pipeline) ExecuteWithSections(ctx context.Context, sections []section.Section,
	layoutOpts options.Layout, writer io.Writer) error {

	if err := ctx.Err(); err != nil {
		return err
	}

	regions, err := chip.RegionsFor(layoutOpts.Chip, layoutOpts.Flash)
	if err != nil {
		return fmt.Errorf("looking up memory regions: %w", err)
	}
	p.logRegions(layoutOpts, regions)

	layout := classify.Classify(sections, regions)

	var unmapped []section.Section
	if layoutOpts.Unmapped {
		unmapped = classify.Unmapped(sections, regions)
	}

	renderOpts := render.Options{
		Width:   layoutOpts.Width,
		Summary: layoutOpts.Summary,
	}
	if err := render.Write(writer, layout, unmapped, renderOpts); err != nil {
		return fmt.Errorf("rendering layout: %w", err)
	}
	return nil
}

func (p *Pipeline) logRegions(layoutOpts options.Layout, regions []chip.Region) {
	flash := layoutOpts.Flash
	if flash == chip.FlashUnset {
		flash = chip.DefaultFlashSize(layoutOpts.Chip)
	}
	p.logger.Debug("Memory regions",
		log.Stringer("chip", layoutOpts.Chip),
		log.Stringer("flash", flash),
		log.Int("regions", len(regions)))

	for _, r := range regions {
		p.logger.Debug("Region",
			log.Stringer("kind", r.Kind),
			log.Hex("start", r.Start),
			log.Hex("end", r.End))
	}
}
