package export

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/decentrajournal/citex/internal/reference"
)

// ExportList renders citations in format f, preserving input order.
//
// BibTeX and RIS records are separated by a blank line, plain-text entries
// are one per line, and CSL-JSON is a single JSON array. The first invalid
// citation aborts the batch; its error is wrapped with its index and ID and
// still matches reference.ErrInvalidCitation.
func (e *Exporter) ExportList(ctx context.Context, f Format, cites []reference.Citation) (string, error) {
	if f.Extension() == "" {
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}

	if f == FormatCSLJSON {
		items, err := fanOut(ctx, cites, e.cslItem)
		if err != nil {
			return "", err
		}
		return encodeJSON(items)
	}

	entries, err := fanOut(ctx, cites, func(c reference.Citation) (string, error) {
		return e.Export(f, c)
	})
	if err != nil {
		return "", err
	}

	return strings.Join(entries, "\n"), nil
}

// fanOut applies fn to every citation concurrently and collects the results
// by index.
func fanOut[T any](ctx context.Context, cites []reference.Citation, fn func(reference.Citation) (T, error)) ([]T, error) {
	out := make([]T, len(cites))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, c := range cites {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			v, err := fn(c)
			if err != nil {
				return fmt.Errorf("citation %d (%s): %w", i, c.ID, err)
			}
			out[i] = v
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
