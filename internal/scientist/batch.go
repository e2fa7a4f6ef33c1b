package scientist

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/dshills/kelly/internal/schema"
)

// DefaultWorkers bounds concurrent answers in a batch.
const DefaultWorkers = 4

// Batch answers every question with at most workers in flight. Answers are
// returned in input order, each with a fresh ID. The only error is the
// context's, when it ends before every question was started.
func (s *Scientist) Batch(ctx context.Context, questions []string, extraSuggestions []string, workers int) ([]schema.Answer, error) {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	answers := make([]schema.Answer, len(questions))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, q := range questions {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			a := s.Answer(gctx, q, extraSuggestions)
			a.ID = uuid.NewString()
			answers[i] = a
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	s.log.Debug("batch complete", "questions", len(questions), "workers", workers)
	return answers, nil
}
