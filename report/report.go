// Package report builds the ranked tag reports of a doc.
package report

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/revelaction/tagfreq/rank"
	sent "github.com/revelaction/tagfreq/sentence"
	"github.com/revelaction/tagfreq/tag"
)

var ErrNoCategory = errors.New("no tag category selected")

// Report is the ranking of one category.
type Report struct {
	Category tag.Category `json:"category"`

	// Requested number of entries, 0 for all
	Top int `json:"top"`

	// Short is set when Top is greater than the number of distinct keys.
	Short bool `json:"short"`

	// Sum of all counts and number of distinct keys, before truncation
	Total    int `json:"total"`
	Distinct int `json:"distinct"`

	Entries rank.List `json:"entries"`
}

// Options of Build.
type Options struct {
	Categories []tag.Category

	// Top truncates every report to its first entries, 0 for all.
	Top int

	SortFeatures bool

	Logger *slog.Logger

	// OnDone is called after each category, from the goroutine that built
	// it.
	OnDone func(tag.Category)
}

// One builds the report of category c.
func One(doc sent.Doc, c tag.Category, top int, opts tag.Options) (Report, error) {
	table, err := tag.Extract(doc, c, opts)
	if err != nil {
		return Report{}, err
	}

	ranked := rank.Rank(table)
	r := Report{
		Category: c,
		Top:      top,
		Total:    table.Total(),
		Distinct: table.Len(),
		Entries:  ranked,
	}

	if top > 0 {
		r.Entries, r.Short = rank.Top(ranked, top)
	}

	return r, nil
}

// Build builds one report per category, concurrently. The doc is only read.
// Reports are returned in the order of opts.Categories.
func Build(ctx context.Context, doc sent.Doc, opts Options) ([]Report, error) {
	if len(opts.Categories) == 0 {
		return nil, ErrNoCategory
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	tagOpts := tag.Options{SortFeatures: opts.SortFeatures}
	reports := make([]Report, len(opts.Categories))

	g, ctx := errgroup.WithContext(ctx)

	for i, c := range opts.Categories {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			start := time.Now()
			r, err := One(doc, c, opts.Top, tagOpts)
			if err != nil {
				return err
			}

			// each goroutine owns its slot
			reports[i] = r

			logger.Debug("report built",
				"category", string(c),
				"distinct", r.Distinct,
				"total", r.Total,
				"elapsed", time.Since(start),
			)

			if r.Distinct == 0 {
				logger.Warn("no tags found", "category", string(c))
			}

			if opts.OnDone != nil {
				opts.OnDone(c)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}
