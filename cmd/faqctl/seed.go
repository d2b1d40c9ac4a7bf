package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kailas-cloud/faqdex/internal/config"
	dbRedis "github.com/kailas-cloud/faqdex/internal/db/redis"
	"github.com/kailas-cloud/faqdex/internal/domain"
	"github.com/kailas-cloud/faqdex/internal/domain/faq/catalog"
	logpkg "github.com/kailas-cloud/faqdex/internal/logger"
	faqrepo "github.com/kailas-cloud/faqdex/internal/repository/faq"
	seeduc "github.com/kailas-cloud/faqdex/internal/usecase/seed"
)

func newSeedCmd() *cobra.Command {
	var force, reindex bool
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Write the built-in catalog into the configured store",
		Long: `seed writes the catalog when the store holds no FAQ items.
--force overwrites existing catalog items by ID.
--reindex drops and rebuilds the search index first, keeping stored documents.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env := config.GetEnv()
			cfg, err := config.Load(env)
			if err != nil {
				return fmt.Errorf("cannot load config: %w", err)
			}
			logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			cat, err := catalog.Load()
			if err != nil {
				return err
			}

			store, err := dbRedis.NewStore(dbRedis.Config{
				Addrs:    cfg.Database.Addrs,
				Username: cfg.Database.Username,
				Password: cfg.Database.Password,
				DB:       cfg.Database.DB,
			})
			if err != nil {
				return fmt.Errorf("connect: %w", err)
			}
			defer store.Close()

			ctx := cmd.Context()
			if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
				return err
			}

			repo := faqrepo.New(store, cfg.Storage.KeyPrefix)
			if reindex {
				if err := repo.DropIndex(ctx); err != nil {
					return err
				}
				logger.Info("Dropped FAQ index")
			}
			svc := seeduc.New(repo, store, seeduc.LockKey(cfg.Storage.KeyPrefix), cat.Items, logger)

			n, err := svc.Seed(ctx, force)
			if errors.Is(err, domain.ErrSeedInProgress) {
				return fmt.Errorf("another seeder holds the lock, retry in %s", seeduc.DefaultLockTTL)
			}
			if err != nil {
				return err
			}

			if n == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "store already populated, nothing to do (use --force to overwrite)")
				return nil
			}
			logger.Debug("seed finished", zap.Int("items", n))
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d FAQ items\n", n)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Write the catalog even if the store is not empty")
	cmd.Flags().BoolVar(&reindex, "reindex", false, "Drop and rebuild the search index before seeding")
	return cmd
}
