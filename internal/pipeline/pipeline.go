// Package pipeline drives the sequential fetch→flatten→accumulate run
// over the fixture enumeration.
package pipeline

import (
	"context"
	"log"
	"math/rand"
	"time"

	"github.com/jdray/lineup-stats/internal/fixtures"
	"github.com/jdray/lineup-stats/internal/lineups"
)

type Fetcher interface {
	Fetch(ctx context.Context, matchID string) (*lineups.Document, error)
}

type Options struct {
	// Randomized delay between consecutive fetches, a polite mitigation
	// against remote rate limiting. Max <= 0 disables.
	DelayMin time.Duration
	DelayMax time.Duration
}

// Run fetches and flattens every match id in order, strictly
// sequentially. A failed fetch is logged with its match id and skipped;
// it never aborts the run.
func Run(ctx context.Context, f Fetcher, ids []string, idx fixtures.Index, opts Options) []lineups.Record {
	var all []lineups.Record
	for i, id := range ids {
		log.Printf("processing match %d/%d (id %s)", i+1, len(ids), id)
		doc, err := f.Fetch(ctx, id)
		if err != nil {
			log.Printf("WARN skipping match %s: %v", id, err)
			continue
		}

		var fx *fixtures.Entry
		if e, ok := idx[id]; ok {
			fx = &e
		}
		all = append(all, lineups.Flatten(doc, id, fx)...)

		if d := jitter(opts.DelayMin, opts.DelayMax); d > 0 && i < len(ids)-1 {
			time.Sleep(d)
		}
	}
	return all
}

func jitter(min, max time.Duration) time.Duration {
	if max <= 0 || max < min {
		return 0
	}
	if max == min {
		return min
	}
	return min + time.Duration(rand.Int63n(int64(max-min)))
}
