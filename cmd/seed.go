package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"blightwatch-be/config"
	"blightwatch-be/models"
	"blightwatch-be/repository"
	"blightwatch-be/services"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write the sample cases and the bootstrap admin into MongoDB",
	Long: `seed upserts the bundled sample cases, creates the review and user
indexes, and creates the admin account from ADMIN_EMAIL and ADMIN_PASSWORD
unless it already exists. Running it twice is harmless.`,
	RunE: runSeed,
}

func runSeed(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	client, db, err := config.ConnectDB(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		return err
	}
	defer disconnectMongo(client)

	cases := repository.NewMongoCaseStore(db)
	for _, c := range models.SampleCases() {
		if err := cases.Upsert(ctx, c); err != nil {
			return fmt.Errorf("failed to seed case %s: %w", c.ID, err)
		}
	}
	logger.Info("seeded sample cases", zap.Int("count", len(models.SampleCases())))

	if err := repository.NewMongoReviewStore(db).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("failed to create review indexes: %w", err)
	}
	users := repository.NewMongoUserStore(db)
	if err := users.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("failed to create user indexes: %w", err)
	}

	_, created, err := services.EnsureAdmin(ctx, users, cfg.AdminEmail, cfg.AdminPassword)
	if err != nil {
		return err
	}
	logger.Info("admin account ready", zap.String("email", cfg.AdminEmail), zap.Bool("created", created))
	return nil
}
