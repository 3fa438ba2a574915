package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"perfcore/internal/adapter/postgres"
	"perfcore/internal/adapter/usecase"
	"perfcore/internal/config"
	"perfcore/internal/core/port"
	"perfcore/internal/db"
	"perfcore/internal/generator"
)

type options struct {
	days        int
	randSeed    int64
	websiteType string
	migrate     bool
}

// runner holds what every seed subcommand needs.
type runner struct {
	svc    port.AnalyticsUseCase
	logger *slog.Logger
	opts   options
}

type runFunc func(ctx context.Context, r *runner) error

func newRootCmd() *cobra.Command {
	var opts options

	root := &cobra.Command{
		Use:   "seed",
		Short: "Seed the analytics database with synthetic metrics",
		Long: `Seed the analytics database with realistic-looking metrics.

The campaign and platform connection are reused when they already exist;
metric rows are appended on every run.

Environment Variables:
  DATABASE_URL        PostgreSQL connection string (required)
  SEED_DAYS           Days of history (default: 30)
  SEED_RAND_SEED      Random seed, 0 for time based (default: 0)
  SEED_WEBSITE_TYPE   GA4 website profile (default: ecommerce)`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().IntVar(&opts.days, "days", 0, "days of history to generate (overrides SEED_DAYS)")
	root.PersistentFlags().Int64Var(&opts.randSeed, "rand-seed", 0, "random seed for reproducible output (overrides SEED_RAND_SEED)")
	root.PersistentFlags().BoolVar(&opts.migrate, "migrate", false, "apply database migrations before seeding")

	ga4Cmd := &cobra.Command{
		Use:   "ga4",
		Short: "Seed GA4 website analytics into performance_data",
		RunE:  withRunner(&opts, seedGA4),
	}
	ga4Cmd.Flags().StringVar(&opts.websiteType, "website-type", "", "website profile: ecommerce, saas, blog, corporate, leadgen")

	linkedInCmd := &cobra.Command{
		Use:   "linkedin",
		Short: "Seed LinkedIn ad performance for five demo campaigns",
		RunE:  withRunner(&opts, seedLinkedIn),
	}

	allCmd := &cobra.Command{
		Use:   "all",
		Short: "Run the GA4 and LinkedIn seeds",
		RunE: withRunner(&opts, func(ctx context.Context, r *runner) error {
			if err := seedGA4(ctx, r); err != nil {
				return err
			}
			return seedLinkedIn(ctx, r)
		}),
	}
	allCmd.Flags().StringVar(&opts.websiteType, "website-type", "", "website profile for the GA4 seed")

	root.AddCommand(ga4Cmd, linkedInCmd, allCmd)
	return root
}

// withRunner loads configuration, connects to the database and hands a
// ready runner to fn. Failures are logged before being returned so the
// process exits with status 1.
func withRunner(opts *options, fn runFunc) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			slog.Error("failed to load config", slog.Any("error", err))
			return err
		}
		logger := cfg.NewLogger(os.Stdout)

		if !cfg.Psql.Enabled() {
			logger.Error("DATABASE_URL not set. Cannot seed data.")
			return db.ErrNoDatabaseURL
		}

		resolved := *opts
		if !cmd.Flags().Changed("days") {
			resolved.days = cfg.Seed.Days
		}
		if !cmd.Flags().Changed("rand-seed") {
			resolved.randSeed = cfg.Seed.RandSeed
		}
		if resolved.websiteType == "" {
			resolved.websiteType = cfg.Seed.WebsiteType
		}

		ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		if resolved.migrate || cfg.Psql.RunMigrations {
			if err = db.Migrate(cfg.Psql.URL); err != nil {
				logger.Error("migration error", slog.Any("error", err))
				return err
			}
		}

		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			logger.Error("database connection error", slog.Any("error", err))
			return err
		}
		defer pool.Close()

		gen := generator.New(resolved.randSeed)
		r := &runner{
			svc:    usecase.NewAnalyticsUseCase(postgres.NewAnalyticsRepository(pool), gen, logger),
			logger: logger,
			opts:   resolved,
		}
		if err = fn(ctx, r); err != nil {
			logger.Error("seed failed", slog.Any("error", err))
			return err
		}
		logger.Info("seed completed successfully")
		return nil
	}
}

func seedGA4(ctx context.Context, r *runner) error {
	s, err := r.svc.SeedGA4(ctx, port.SeedGA4Req{
		WebsiteType: r.opts.websiteType,
		Days:        r.opts.days,
	})
	if err != nil {
		return fmt.Errorf("seed GA4: %w", err)
	}
	r.logger.Info(fmt.Sprintf("%d-day GA4 summary", s.Days),
		slog.String("campaign_id", s.CampaignID),
		slog.String("campaign", s.CampaignName),
		slog.String("website", s.WebsiteName),
		slog.Int("records", s.Records),
		slog.Int64("sessions", s.Sessions),
		slog.Int64("users", s.Users),
		slog.Int64("pageviews", s.Pageviews),
		slog.Int64("conversions", s.Conversions),
		slog.Int64("ad_impressions", s.Impressions),
		slog.Int64("ad_clicks", s.Clicks),
		slog.String("ad_spend", "$"+s.Spend.StringFixed(2)),
		slog.String("avg_ctr", s.AvgCTR().StringFixed(2)+"%"),
		slog.String("avg_conversion_rate", s.AvgConversionRate().StringFixed(2)+"%"),
		slog.String("avg_cpc", "$"+s.AvgCPC().StringFixed(2)),
	)
	return nil
}

func seedLinkedIn(ctx context.Context, r *runner) error {
	s, err := r.svc.SeedLinkedIn(ctx, port.SeedLinkedInReq{Days: r.opts.days})
	if err != nil {
		return fmt.Errorf("seed LinkedIn: %w", err)
	}
	if len(s.Campaigns) == 0 {
		return errors.New("seed LinkedIn: no campaigns seeded")
	}
	for _, c := range s.Campaigns {
		r.logger.Info("LinkedIn campaign seeded",
			slog.String("linkedin_campaign_id", c.CampaignID),
			slog.String("name", c.Name),
			slog.String("objective", c.Objective),
			slog.String("daily_budget", "$"+c.Budget.StringFixed(2)),
			slog.Int64("impressions", c.Impressions),
			slog.Int64("clicks", c.Clicks),
			slog.String("spend", "$"+c.Spend.StringFixed(2)),
			slog.Int64("conversions", c.Conversions),
			slog.Int64("leads", c.Leads),
		)
	}
	r.logger.Info("LinkedIn summary",
		slog.String("campaign_id", s.CampaignID),
		slog.Int("campaigns", len(s.Campaigns)),
		slog.Int("records", s.Records),
		slog.Int("records_per_campaign", s.Records/len(s.Campaigns)),
		slog.Int("days", s.Days),
	)
	return nil
}
