package compare

import (
	"context"
	"strings"
	"sync"

	"stage-shift/internal/model"
)

// Classifier assigns each record the single most advanced stage it has
// reached. The rule chain is evaluated first-match, so rules must be ordered
// most advanced stage first; a record matching no rule gets the fallback.
// Classification never fails: a missing column, a non-string value or an
// unexpected status all mean "not completed".
type Classifier struct {
	rules     []model.StageRule
	fallback  model.Stage
	completed string
}

// NewClassifier builds the default five-stage classifier for a schema.
func NewClassifier(schema model.Schema) *Classifier {
	schema = schema.WithDefaults()
	return NewRuleClassifier(schema.Rules(), model.StageRegistered, schema.CompletedValue)
}

// NewRuleClassifier builds a classifier from a caller-supplied rule chain,
// for taxonomies beyond the default five stages.
func NewRuleClassifier(rules []model.StageRule, fallback model.Stage, completed string) *Classifier {
	return &Classifier{rules: rules, fallback: fallback, completed: completed}
}

// Classify returns exactly one stage for the record. Pure and idempotent.
func (c *Classifier) Classify(rec model.GenericRecord) model.Stage {
	for _, rule := range c.rules {
		val, ok := rec[rule.Column]
		if !ok {
			continue
		}
		if s, ok := val.(string); ok && strings.TrimSpace(s) == c.completed {
			return rule.Stage
		}
	}
	return c.fallback
}

// Stages returns every stage the classifier can produce, fallback first,
// then rule stages from least to most advanced.
func (c *Classifier) Stages() []model.Stage {
	stages := []model.Stage{c.fallback}
	for i := len(c.rules) - 1; i >= 0; i-- {
		stages = append(stages, c.rules[i].Stage)
	}
	return stages
}

// ClassifySnapshot classifies every row of a snapshot over a small worker
// pool and returns the stages aligned with snap.Rows. Rows are independent,
// so workers share nothing but the index counter.
func ClassifySnapshot(ctx context.Context, c *Classifier, snap model.Snapshot, workers int) []model.Stage {
	if workers <= 0 {
		workers = 2 // default
	}
	stages := make([]model.Stage, len(snap.Rows))
	indexes := make(chan int, workers)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range indexes {
				stages[i] = c.Classify(snap.Rows[i])
			}
		}()
	}

	for i := range snap.Rows {
		select {
		case <-ctx.Done():
			close(indexes)
			wg.Wait()
			return stages
		case indexes <- i:
		}
	}
	close(indexes)
	wg.Wait()
	return stages
}
