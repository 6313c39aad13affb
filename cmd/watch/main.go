// Command watch signs in as one user and logs that user's household summary
// every time the records change. Run it next to the API with a shared
// REDIS_URL to see pushes from other processes.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"spendwise/internal/aggregation"
	"spendwise/internal/app"
	"spendwise/internal/config"
	"spendwise/internal/database"
	"spendwise/internal/identity"
	"spendwise/internal/logger"
	"spendwise/internal/session"
)

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	email := flag.String("email", os.Getenv("WATCH_EMAIL"), "account email")
	password := flag.String("password", os.Getenv("WATCH_PASSWORD"), "account password")
	dateFilter := flag.String("date-filter", "all", "all, today, thisWeek, thisMonth or thisYear")
	category := flag.String("category", "", "only break down this category")
	flag.Parse()

	if *email == "" || *password == "" {
		return fmt.Errorf("usage: watch -email <email> -password <password> [-date-filter f] [-category c]")
	}
	filter, err := aggregation.ParseDateFilter(*dateFilter)
	if err != nil {
		return err
	}

	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.Open(ctx, appConfig, dbConfig)
	if err != nil {
		return err
	}
	defer a.Close()

	user, err := a.Users.AttemptLogin(*email, *password)
	if err != nil {
		return fmt.Errorf("sign-in failed: %w", err)
	}

	log := logger.Named("watch")
	hub := identity.NewHub()
	manager := session.NewManager(context.Background(), a.Store, session.Options{
		Selection: aggregation.Selection{Date: filter, Category: *category},
		Location:  appConfig.Location,
	}, func(live *session.Live) {
		if live == nil {
			log.Info("signed out, no subscriptions open")
			return
		}
		go printViews(log, live)
	})
	manager.Bind(hub)
	hub.SignIn(identity.Identity{UID: user.ID, Email: user.Email})

	<-ctx.Done()
	hub.SignOut()
	manager.Close()
	return nil
}

func printViews(log *zap.SugaredLogger, live *session.Live) {
	for v := range live.Views() {
		if v.Notice != "" {
			log.Warnw("store unavailable, retrying", "owner", v.Owner, "notice", v.Notice, "loading", v.Loading)
		}
		if v.Loading {
			continue
		}
		s := v.Summary
		fields := []any{
			"owner", v.Owner,
			"income", aggregation.Display(s.TotalIncome),
			"expense", aggregation.Display(s.TotalExpense),
			"remaining", aggregation.Display(s.Remaining),
			"filter", s.Selection.Date,
			"filtered_total", aggregation.Display(s.FilteredTotal),
			"expenses", len(s.Expenses),
		}
		if s.HasBudget {
			fields = append(fields, "budget", aggregation.Display(s.MonthlyBudget), "goal", aggregation.Display(s.SpendingGoal))
		}
		if s.Unreadable > 0 {
			fields = append(fields, "unreadable", s.Unreadable)
		}
		if s.Alert != nil {
			log.Warnw(s.Alert.Message, fields...)
			continue
		}
		log.Infow("summary", fields...)
	}
}
