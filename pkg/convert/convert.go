// Package convert runs the card export through the HMC normalizer.
package convert

import (
	"context"
	"errors"

	"github.com/sphaleron/json2hmc/pkg/hmc"
	"github.com/sphaleron/json2hmc/pkg/logger"
)

// Stats counts what happened to the input records.
type Stats struct {
	Total    int // records read
	NoCost   int // skipped as non-collectible (no cost)
	Invalid  int // failed normalization and were skipped
	Filtered int // outside the selected Collections
	Emitted  int // rows produced
}

// Converter turns source records into HMC rows.
type Converter struct {
	Normalizer *hmc.Normalizer
	// Sets limits output to these Collections. Empty means all.
	Sets []string
	// SkipInvalid logs and drops cards that fail to normalize instead of
	// stopping the run.
	SkipInvalid bool
	// Logger is used for per-card messages. nil means no logging.
	Logger logger.Logger
	// OnProgress is called every ProgressEvery records with the number of
	// processed records and the total.
	OnProgress    func(current, total int)
	ProgressEvery int
}

// NewConverter creates a Converter using n, or the default rotation if n is nil.
func NewConverter(n *hmc.Normalizer) *Converter {
	if n == nil {
		n = hmc.DefaultNormalizer()
	}
	return &Converter{
		Normalizer:    n,
		ProgressEvery: 100,
	}
}

// Convert normalizes records in order. Cards without a cost (hero portraits
// and the like) are skipped, while Death Knights, which are heroes with a
// cost, are kept.
func (c *Converter) Convert(ctx context.Context, records []hmc.SourceRecord) ([]hmc.Record, Stats, error) {
	stats := Stats{Total: len(records)}
	allowed := make(map[string]struct{}, len(c.Sets))
	for _, s := range c.Sets {
		allowed[s] = struct{}{}
	}

	var out []hmc.Record
	for i, src := range records {
		if err := ctx.Err(); err != nil {
			return out, stats, err
		}
		c.progress(i, len(records))

		if src.Cost == nil {
			stats.NoCost++
			continue
		}

		rec, err := c.Normalizer.Normalize(src)
		if err != nil {
			if !c.SkipInvalid {
				return out, stats, err
			}
			stats.Invalid++
			c.warn(err)
			continue
		}

		if len(allowed) > 0 {
			if _, ok := allowed[rec.Collection]; !ok {
				stats.Filtered++
				continue
			}
		}
		out = append(out, rec)
		stats.Emitted++
	}

	if c.OnProgress != nil {
		c.OnProgress(len(records), len(records))
	}
	return out, stats, nil
}

func (c *Converter) progress(i, total int) {
	if c.OnProgress == nil || c.ProgressEvery <= 0 || i == 0 || i%c.ProgressEvery != 0 {
		return
	}
	c.OnProgress(i, total)
}

func (c *Converter) warn(err error) {
	if c.Logger == nil {
		return
	}
	var recErr *hmc.RecordError
	if errors.As(err, &recErr) {
		c.Logger.Warn("Skipping card", "name", recErr.Name, "err", recErr.Err)
		return
	}
	c.Logger.Warn("Skipping card", "err", err)
}
