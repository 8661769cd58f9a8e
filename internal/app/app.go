package app

import (
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/diegoclair/slack-attendance-bot/internal/config"
	"github.com/diegoclair/slack-attendance-bot/internal/database"
	"github.com/diegoclair/slack-attendance-bot/internal/domain/contract"
	"github.com/diegoclair/slack-attendance-bot/internal/domain/service"
	"github.com/diegoclair/slack-attendance-bot/internal/secrets"
	"github.com/diegoclair/slack-attendance-bot/migrator/sqlite"
	"github.com/slack-go/slack"
)

// App holds everything the binaries need, built from one Config
type App struct {
	Config   *config.Config
	Services *service.Instance
	// Data is nil when DATABASE_PATH is empty
	Data contract.DataManager

	db *database.DB
}

func NewSlackClient(token string) contract.SlackClient {
	return slack.New(token)
}

// NewSession opens an AWS session in the configured region
func NewSession(cfg *config.Config) (*session.Session, error) {
	sess, err := session.NewSession(&aws.Config{Region: aws.String(cfg.AWSRegion)})
	if err != nil {
		return nil, fmt.Errorf("failed to create aws session: %w", err)
	}
	return sess, nil
}

func New(cfg *config.Config) (*App, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	sess, err := NewSession(cfg)
	if err != nil {
		return nil, err
	}

	a := &App{Config: cfg}

	var store contract.SecretStore
	if cfg.UseSecretsManager() {
		store = secrets.NewAWSStore(sess, cfg.SecretARN)
	} else {
		log.Println("SECRET_ARN not set, reading Slack credentials from the environment")
		store = secrets.NewEnvStore(cfg.SlackBotToken, cfg.SlackChannelID)
	}

	if cfg.ArchiveEnabled() {
		if err := a.openArchive(cfg.DatabasePath); err != nil {
			return nil, err
		}
	}

	a.Services = service.NewInstance(store, NewSlackClient, a.Data, service.Options{
		Reaction:   cfg.AttendanceReaction,
		ReportTime: cfg.ReportTime,
		Location:   loc,
	})

	return a, nil
}

func (a *App) openArchive(path string) error {
	db, err := database.New(path)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	log.Println("Running migrations...")
	if err := sqlite.Migrate(db.DB()); err != nil {
		db.Close()
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	log.Println("Migrations completed successfully")

	a.db = db
	a.Data = database.NewInstance(db)
	return nil
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}
