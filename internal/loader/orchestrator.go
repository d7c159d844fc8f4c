package loader

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sourcegraph/conc"

	"github.com/hemanthramakumar9999/scalable-modern-datastack-architecture/internal/platform/logging"
	"github.com/hemanthramakumar9999/scalable-modern-datastack-architecture/internal/staging"
)

// Result collects the per-entity reports of one full warehouse load run.
type Result struct {
	RunID    string          `json:"run_id"`
	Reports  []Report        `json:"reports"`
	byEntity map[staging.Entity]Report
}

// Report returns the report for one entity of the run.
func (r Result) Report(entity staging.Entity) (Report, bool) {
	rep, ok := r.byEntity[entity]
	return rep, ok
}

func (r Result) totals() (accepted, rejected int) {
	for _, rep := range r.Reports {
		accepted += rep.Accepted
		rejected += rep.Rejected
	}
	return accepted, rejected
}

// Orchestrator owns the sequencing contract the loader itself does not
// enforce: leagues commit fully before teams, teams before players and
// matches. Players and matches have no dependency on each other, so their
// batches run concurrently as the final stage.
type Orchestrator struct {
	loader *Loader
	logger *logging.Logger
}

func NewOrchestrator(loader *Loader, logger *logging.Logger) *Orchestrator {
	if logger == nil {
		logger = logging.Default()
	}
	return &Orchestrator{loader: loader, logger: logger}
}

// RunAll loads every staged entity in dependency order. A storage failure in
// any stage stops the run; completed reports are kept in the result so the
// caller still sees what committed before the abort.
func (o *Orchestrator) RunAll(ctx context.Context, src staging.Source) (Result, error) {
	ctx, span := startLoaderSpan(ctx, "loader.Orchestrator.RunAll")
	defer span.End()

	result := Result{
		RunID:    uuid.NewString(),
		byEntity: make(map[staging.Entity]Report, 4),
	}
	log := o.logger.With("run_id", result.RunID)
	log.InfoContext(ctx, "warehouse load run starting")

	for _, entity := range []staging.Entity{staging.EntityLeague, staging.EntityTeam} {
		rep, err := o.loadEntity(ctx, src, entity)
		result.add(rep)
		if err != nil {
			return result, err
		}
	}

	var (
		playerRep, matchRep Report
		playerErr, matchErr error
	)

	var wg conc.WaitGroup
	wg.Go(func() {
		playerRep, playerErr = o.loadEntity(ctx, src, staging.EntityPlayer)
	})
	wg.Go(func() {
		matchRep, matchErr = o.loadEntity(ctx, src, staging.EntityMatch)
	})
	wg.Wait()

	result.add(playerRep)
	result.add(matchRep)
	if playerErr != nil {
		return result, playerErr
	}
	if matchErr != nil {
		return result, matchErr
	}

	accepted, rejected := result.totals()
	log.InfoContext(ctx, "warehouse load run finished", "accepted", accepted, "rejected", rejected)
	return result, nil
}

func (o *Orchestrator) loadEntity(ctx context.Context, src staging.Source, entity staging.Entity) (Report, error) {
	rows, err := src.Rows(ctx, entity)
	if err != nil {
		return newReport(entity), fmt.Errorf("read %s staging rows: %w", entity, err)
	}

	return o.loader.Load(ctx, entity, rows)
}

func (r *Result) add(rep Report) {
	r.Reports = append(r.Reports, rep)
	r.byEntity[rep.Entity] = rep
}
