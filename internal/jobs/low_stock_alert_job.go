package jobs

import (
	"context"
	"log/slog"

	"bookstore/internal/core/application/notify"
	"bookstore/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

const DefaultLowStockSchedule = "0 0 8 * * *"

// LowStockReader lists the active books at or below a stock threshold.
type LowStockReader interface {
	Handle(ctx context.Context, query queries.GetLowStockBooksQuery) ([]queries.LowStockBook, error)
}

// LowStockNotifier sends the admin alert for a set of low-stock books.
type LowStockNotifier interface {
	LowStock(ctx context.Context, books []notify.LowStockBook)
}

// LowStockAlertJob periodically warns the admin about books running out.
type LowStockAlertJob struct {
	reader    LowStockReader
	notifier  LowStockNotifier
	threshold int
	schedule  string
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewLowStockAlertJob uses DefaultLowStockSchedule when schedule is empty.
// The schedule has a leading seconds field.
func NewLowStockAlertJob(
	reader LowStockReader,
	notifier LowStockNotifier,
	threshold int,
	schedule string,
	logger *slog.Logger,
) *LowStockAlertJob {
	if schedule == "" {
		schedule = DefaultLowStockSchedule
	}
	return &LowStockAlertJob{
		reader:    reader,
		notifier:  notifier,
		threshold: threshold,
		schedule:  schedule,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "low_stock_alert_job"),
	}
}

// Start registers the job on its schedule.
func (j *LowStockAlertJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Low stock alert job started",
		"schedule", j.schedule, "threshold", j.threshold)
	return nil
}

// Run performs one check. No alert is sent when nothing is low.
func (j *LowStockAlertJob) Run(ctx context.Context) {
	query, err := queries.NewGetLowStockBooksQuery(j.threshold)
	if err != nil {
		j.logger.ErrorContext(ctx, "Low stock alert job misconfigured", "error", err)
		return
	}

	books, err := j.reader.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Low stock alert job failed", "error", err)
		return
	}
	if len(books) == 0 {
		return
	}

	alert := make([]notify.LowStockBook, len(books))
	for i, b := range books {
		alert[i] = notify.LowStockBook{Title: b.Title, Stock: b.Stock}
	}
	j.notifier.LowStock(ctx, alert)
}

// Stop waits for a running check to finish.
func (j *LowStockAlertJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Low stock alert job stopped")
}
