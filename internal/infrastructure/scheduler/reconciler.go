package scheduler

import (
	"context"
	"log"
	"time"

	"marketplace_payments/internal/usecase"

	"github.com/robfig/cron/v3"
)

const runTimeout = 2 * time.Minute

// Reconciler periodically repairs paid payments whose mission, booking or chat
// was left behind by a failed webhook delivery.
type Reconciler struct {
	cron       *cron.Cron
	reconciler usecase.IReconciliationUseCase
	schedule   string
}

func NewReconciler(reconciler usecase.IReconciliationUseCase, schedule string) *Reconciler {
	cronLogger := cron.PrintfLogger(log.Default())
	return &Reconciler{
		cron:       cron.New(cron.WithChain(cron.SkipIfStillRunning(cronLogger), cron.Recover(cronLogger))),
		reconciler: reconciler,
		schedule:   schedule,
	}
}

// Start registers the job and starts the cron loop. An empty schedule disables it.
func (r *Reconciler) Start() error {
	if r.schedule == "" {
		log.Printf("[reconcile][scheduler] disabled")
		return nil
	}
	if _, err := r.cron.AddFunc(r.schedule, r.RunOnce); err != nil {
		log.Printf("[reconcile][scheduler] invalid schedule=%q err=%v", r.schedule, err)
		return err
	}
	r.cron.Start()
	log.Printf("[reconcile][scheduler] started schedule=%q", r.schedule)
	return nil
}

// Stop waits for a running job to finish.
func (r *Reconciler) Stop() context.Context {
	log.Printf("[reconcile][scheduler] stopping")
	return r.cron.Stop()
}

func (r *Reconciler) RunOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	summary, err := r.reconciler.ReconcilePaid(ctx)
	if err != nil {
		log.Printf("[reconcile][scheduler] run failed err=%v", err)
		return
	}
	log.Printf("[reconcile][scheduler] run done scanned=%d repaired=%d failed=%d", summary.Scanned, summary.Repaired, len(summary.Failed))
}
