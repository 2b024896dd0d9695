// Package ai holds the assistant-style helpers around quotation input:
// per-service description lookup, client directory suggestions and the
// recommended service template.
package ai

import (
	"context"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

// Describer resolves a marketing description for a service title. It is
// an injectable boundary so a real lookup can replace the canned one
// without touching calling code.
type Describer interface {
	Describe(ctx context.Context, serviceTitle string) (string, error)
}

// CannedDescriber matches service titles against a fixed keyword
// catalog after a fixed delay, simulating a remote lookup. Unknown
// titles resolve to an empty description.
type CannedDescriber struct {
	Delay time.Duration
}

var cannedDescriptions = map[string]string{
	"window":     "Professional window cleaning service using advanced techniques.",
	"carpet":     "Deep carpet cleaning using hot water extraction method.",
	"office":     "Comprehensive office cleaning service.",
	"sofa":       "Upholstery-safe sofa cleaning with stain treatment.",
	"deep":       "Top-to-bottom deep cleaning of the full premises.",
	"tile":       "Tile and grout restoration with professional-grade equipment.",
	"fumigation": "Certified fumigation and pest control treatment.",
	"event":      "Pre- and post-event cleanup with rapid turnaround.",
}

func NewCannedDescriber(delay time.Duration) *CannedDescriber {
	return &CannedDescriber{Delay: delay}
}

func (d *CannedDescriber) Describe(ctx context.Context, serviceTitle string) (string, error) {
	if d.Delay > 0 {
		select {
		case <-time.After(d.Delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	title := strings.ToLower(serviceTitle)
	for key, desc := range cannedDescriptions {
		if strings.Contains(title, key) {
			return desc, nil
		}
	}
	return "", nil
}

// DescribeAll resolves descriptions for all titles concurrently and
// returns them in input order. All lookups complete before it returns;
// the caller builds the document only from a fully resolved set.
func DescribeAll(ctx context.Context, d Describer, titles []string) ([]string, error) {
	out := make([]string, len(titles))
	g, ctx := errgroup.WithContext(ctx)
	for i, title := range titles {
		i, title := i, title
		g.Go(func() error {
			desc, err := d.Describe(ctx, title)
			if err != nil {
				return err
			}
			out[i] = desc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
