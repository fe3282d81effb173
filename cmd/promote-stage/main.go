// Command promote-stage copies rows from the containers_stage import table
// into the catalog. Each row is created through the catalog service as the
// given user, so it is normalized, validated and audited. Rows whose item
// code already exists are skipped.
//
// Usage:
//
//	promote-stage --as=svc.import
//
// The user must hold the Editor role or higher (see grant-role).
//
// Exit codes: 0 = success, 1 = error, 2 = some rows failed.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/Yamaha-Motor-Manufacturing-Corp/ymmcContainerTrackerApi/internal/adapter/postgres"
	"github.com/Yamaha-Motor-Manufacturing-Corp/ymmcContainerTrackerApi/internal/adapter/postgres/audit"
	"github.com/Yamaha-Motor-Manufacturing-Corp/ymmcContainerTrackerApi/internal/adapter/postgres/container"
	stagerepo "github.com/Yamaha-Motor-Manufacturing-Corp/ymmcContainerTrackerApi/internal/adapter/postgres/staging"
	"github.com/Yamaha-Motor-Manufacturing-Corp/ymmcContainerTrackerApi/internal/adapter/postgres/userrole"
	"github.com/Yamaha-Motor-Manufacturing-Corp/ymmcContainerTrackerApi/internal/app"
	"github.com/Yamaha-Motor-Manufacturing-Corp/ymmcContainerTrackerApi/internal/config"
	"github.com/Yamaha-Motor-Manufacturing-Corp/ymmcContainerTrackerApi/internal/service/staging"
	"github.com/Yamaha-Motor-Manufacturing-Corp/ymmcContainerTrackerApi/internal/transport/middleware"
	"github.com/Yamaha-Motor-Manufacturing-Corp/ymmcContainerTrackerApi/pkg/ctxutil"
)

func main() {
	as := flag.String("as", "", "username the promotion is audited as")
	flag.Parse()

	user := middleware.StripDomain(*as)
	if user == "" {
		fmt.Fprintln(os.Stderr, "Usage: promote-stage --as=svc.import")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	// Staged rows are always promoted under a real role check.
	cfg.Auth.Enabled = true
	cfg.Metrics.Enabled = false

	svc := app.NewServices(logger, cfg, app.Stores{
		Containers: container.New(pool),
		Audit:      audit.New(pool),
		Roles:      userrole.New(pool),
		Tx:         postgres.NewTxManager(pool),
	})
	promoter := staging.NewService(logger, stagerepo.New(pool), svc.Catalog)

	ctx = ctxutil.WithUsername(ctx, user)
	ctx = ctxutil.WithClientMeta(ctx, ctxutil.ClientMeta{UserAgent: "promote-stage"})

	report, err := promoter.Promote(ctx)
	if err != nil {
		logger.Error("promotion aborted",
			slog.String("error", err.Error()),
			slog.Int("created", report.Created),
			slog.Int("skipped", report.Skipped),
		)
		os.Exit(1)
	}

	fmt.Printf("created: %d, skipped: %d, failed: %d\n", report.Created, report.Skipped, report.Failed())
	for _, f := range report.Failures {
		fmt.Printf("  row %d (%s): %v\n", f.Row, f.ItemCode, f.Err)
	}
	if report.Failed() > 0 {
		os.Exit(2)
	}
}
