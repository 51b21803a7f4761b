// Package enrich attaches AI analyses to a validated report before it
// is persisted: a severity score from the report text, and, when media
// was attached, an authenticity verdict on the media.
package enrich

import (
	"context"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/echovault/echovault-api/external/ai"
	"github.com/echovault/echovault-api/schema"
)

const logPrefix = "enrich"

// Result carries the merged enrichment fields for a pending record.
// Authenticity is nil whenever no media was submitted.
type Result struct {
	Severity     *schema.Severity
	Authenticity *schema.Authenticity
}

// Enricher is the capability the submission pipeline depends on.
type Enricher interface {
	Enrich(ctx context.Context, reportText, mediaDataURI string) (*Result, error)
}

// Orchestrator fans a submission out to the two analyses and joins the
// outcomes. Either call failing fails the whole enrichment; there are
// no retries and no partial results.
type Orchestrator struct {
	scorer   ai.Scorer
	verifier ai.Verifier
}

var _ Enricher = (*Orchestrator)(nil)

func New(scorer ai.Scorer, verifier ai.Verifier) *Orchestrator {
	return &Orchestrator{
		scorer:   scorer,
		verifier: verifier,
	}
}

// Enrich scores the report text and, if mediaDataURI is non-empty,
// concurrently verifies the media. Both calls must settle before it
// returns. The per-call deadline is carried by ctx and the clients'
// own timeouts.
func (o *Orchestrator) Enrich(ctx context.Context, reportText, mediaDataURI string) (*Result, error) {
	result := &Result{}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		severity, err := o.scorer.Score(ctx, reportText)
		if err != nil {
			return err
		}
		result.Severity = severity
		return nil
	})

	if mediaDataURI != "" {
		g.Go(func() error {
			authenticity, err := o.verifier.Verify(ctx, reportText, mediaDataURI)
			if err != nil {
				return err
			}
			result.Authenticity = authenticity
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"error":  err,
		}).Error("enrichment failed")
		return nil, err
	}

	return result, nil
}
