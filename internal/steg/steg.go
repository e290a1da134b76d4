// Package steg writes and reads N-bit payload values across every color channel of a grid.
package steg

import (
	"context"
	"fmt"
	"sync"

	"github.com/yyyoichi/lsbsteg/internal/bitpack"
	"github.com/yyyoichi/lsbsteg/internal/grid"
)

// Enable reports an error if g has fewer channel slots than values.
func Enable(g *grid.Grid, values int) error {
	if slots := g.Slots(); slots < values {
		return fmt.Errorf("channel slots %d < payload values %d", slots, values)
	}
	return nil
}

// Embed writes values[i] into the low n bits of the i-th channel of the walk.
// Channels past the end of values get zero, so the whole grid is rewritten and made opaque.
// Values beyond the grid's capacity are dropped.
func Embed(ctx context.Context, g *grid.Grid, values []uint8, n, workers int) error {
	if err := bitpack.Validate(n); err != nil {
		return err
	}
	return eachRow(ctx, g.Height(), workers, func(y int) {
		for s := range grid.WalkRows(g.Width(), y, y+1) {
			var d uint8
			if s.Index < len(values) {
				d = values[s.Index]
			}
			g.Embed(s.X, s.Y, s.Channel, d, n)
		}
	})
}

// Extract reads the low n bits of every channel in walk order.
func Extract(ctx context.Context, g *grid.Grid, n, workers int) ([]uint8, error) {
	if err := bitpack.Validate(n); err != nil {
		return nil, err
	}
	values := make([]uint8, g.Slots())
	err := eachRow(ctx, g.Height(), workers, func(y int) {
		for s := range grid.WalkRows(g.Width(), y, y+1) {
			values[s.Index] = g.Extract(s.X, s.Y, s.Channel, n)
		}
	})
	if err != nil {
		return nil, err
	}
	return values, nil
}

// eachRow calls fn for every row in [0, height), splitting contiguous row ranges
// across workers. Each row is handled by exactly one goroutine.
func eachRow(ctx context.Context, height, workers int, fn func(y int)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	workers = max(1, min(workers, height))
	if workers == 1 {
		for y := range height {
			if err := ctx.Err(); err != nil {
				return err
			}
			fn(y)
		}
		return nil
	}

	var (
		per  = (height + workers - 1) / workers
		errs = make([]error, workers)
		wg   sync.WaitGroup
	)
	for w := range workers {
		from, to := w*per, min((w+1)*per, height)
		if from >= to {
			continue
		}
		wg.Add(1)
		go func(w, from, to int) {
			defer wg.Done()
			for y := from; y < to; y++ {
				if err := ctx.Err(); err != nil {
					errs[w] = err
					return
				}
				fn(y)
			}
		}(w, from, to)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
