package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"mergington/internal/adapters/web"
	"mergington/internal/config"
	"mergington/internal/domain/entities"
	"mergington/internal/infrastructure/credentials"
	"mergington/internal/infrastructure/database"
	"mergington/internal/infrastructure/discord"
	"mergington/internal/infrastructure/i18n"
	"mergington/internal/infrastructure/memory"
	"mergington/internal/ports/output"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mergington",
		Short: "Mergington High School activities API",
		Long: `Serves the extracurricular activity directory of Mergington High School.
Anyone can browse activities; logged-in teachers sign students up and
unregister them. Running without a subcommand starts the HTTP server.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}
	config.RegisterFlags(cmd.PersistentFlags())
	cmd.AddCommand(newMigrateCmd(), newTeacherCmd())
	return cmd
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the teacher credential schema migrations to DATABASE_URL",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			if cfg.CredentialsSource != config.SourcePostgres {
				return fmt.Errorf("migrate: CREDENTIALS_SOURCE must be %q", config.SourcePostgres)
			}
			_, err = database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath)
			return err
		},
	}
}

func newTeacherCmd() *cobra.Command {
	var username, password string
	cmd := &cobra.Command{
		Use:   "set-teacher",
		Short: "Create or update a teacher login in the PostgreSQL credential store",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			if cfg.CredentialsSource != config.SourcePostgres {
				return fmt.Errorf("set-teacher: CREDENTIALS_SOURCE must be %q; edit %s instead", config.SourcePostgres, cfg.TeachersFile)
			}
			pool, err := database.NewPool(cmd.Context(), cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer pool.Close()
			cred := entities.TeacherCredential{Username: username, Password: password}
			if err := database.NewTeacherRepository(pool).Upsert(cmd.Context(), cred); err != nil {
				return err
			}
			log.Printf("✅ Teacher %s saved.", username)
			return nil
		},
	}
	cmd.Flags().StringVar(&username, "username", "", "teacher username")
	cmd.Flags().StringVar(&password, "password", "", "teacher password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func serve(ctx context.Context, cfg *config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}

	seed, err := memory.DefaultActivities()
	if err != nil {
		return err
	}
	activityRepo := memory.NewActivityRepository(seed)
	sessions := memory.NewSessionStore()
	translator := i18n.NewTranslator(cfg.DefaultLocale)

	creds, pool, err := credentialSource(ctx, cfg)
	if err != nil {
		log.Printf("❌ Credential source: %v", err)
		return err
	}
	if pool != nil {
		defer pool.Close()
	}

	var notifier output.RosterNotifier = discord.NoopNotifier{}
	if cfg.NotifierEnabled() {
		n, err := discord.NewNotifier(cfg.DiscordToken, cfg.DiscordChannelID, translator, cfg.DefaultLocale)
		if err != nil {
			return err
		}
		notifier = n
		log.Printf("✅ Discord roster notifications enabled (channel=%s).", cfg.DiscordChannelID)
	}

	srv := web.NewServer(cfg, activityRepo, sessions, creds, notifier, translator)
	if err := srv.Start(ctx); err != nil {
		log.Printf("❌ Server error: %v", err)
		return err
	}
	return nil
}

// credentialSource returns the configured CredentialSource. The pool is
// non-nil only for the postgres source and must be closed by the caller.
func credentialSource(ctx context.Context, cfg *config.Config) (output.CredentialSource, *pgxpool.Pool, error) {
	if cfg.CredentialsSource != config.SourcePostgres {
		log.Printf("✅ Teacher credentials read from %s.", cfg.TeachersFile)
		return credentials.NewFileSource(cfg.TeachersFile), nil, nil
	}
	if cfg.RunMigrations {
		if _, err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
			return nil, nil, err
		}
	}
	pool, err := database.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	return database.NewTeacherRepository(pool), pool, nil
}
