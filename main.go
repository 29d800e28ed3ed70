package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/dbresolver"

	api "github.com/rajnish018/portfolio-admin-backend/api"
	"github.com/rajnish018/portfolio-admin-backend/auth"
	"github.com/rajnish018/portfolio-admin-backend/config"
	"github.com/rajnish018/portfolio-admin-backend/database"
	"github.com/rajnish018/portfolio-admin-backend/models"
)

func main() {
	fmt.Println("Initializing app...")

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	cfg := config.New()

	// Optionally overlay secrets from SSM Parameter Store.
	if prefix := config.GetString(cfg, "SSM_PARAMETER_PREFIX", ""); prefix != "" {
		fmt.Printf("Hydrating config from SSM under %s\n", prefix)
		if err := config.HydrateFromSSM(context.Background(), cfg, prefix); err != nil {
			fmt.Printf("Error hydrating config from SSM: %v\n", err)
			os.Exit(1)
		}
	}

	connStr := config.GetString(cfg, "DATABASE_URL", "")
	if connStr == "" {
		connStr = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			config.GetString(cfg, "DB_HOST", "localhost"),
			config.GetString(cfg, "DB_USER", "postgres"),
			config.GetString(cfg, "DB_PASSWORD", ""),
			config.GetString(cfg, "DB_NAME", "portfolio"),
			config.GetString(cfg, "DB_PORT", "5432"),
			config.GetString(cfg, "DB_SSLMODE", "disable"),
		)
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  connStr,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		PrepareStmt:    false,
		Logger:         newLogger,
		TranslateError: true,
	})
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}

	// Route reads through a replica when one is configured.
	if replicaDSN := config.GetString(cfg, "DB_REPLICA_DSN", ""); replicaDSN != "" {
		err = db.Use(dbresolver.Register(dbresolver.Config{
			Replicas: []gorm.Dialector{postgres.Open(replicaDSN)},
		}))
		if err != nil {
			fmt.Printf("Error registering read replica: %v\n", err)
			os.Exit(1)
		}
	}

	// Test database connection
	var result int
	if err := db.Raw("SELECT 1").Scan(&result).Error; err != nil {
		fmt.Printf("Error testing database connection: %v\n", err)
		os.Exit(1)
	}

	if err := database.Migrate(db); err != nil {
		fmt.Printf("Error running migrations: %v\n", err)
		os.Exit(1)
	}

	currentDB := database.New(db)

	if err := seedAdminAccount(currentDB, cfg); err != nil {
		fmt.Printf("Error seeding admin account: %v\n", err)
		os.Exit(1)
	}

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(currentDB)
	if err != nil {
		fmt.Printf("Error initializing server: %v\n", err)
		os.Exit(1)
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	fmt.Printf("Closing server: %v\n", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

// seedAdminAccount creates the single admin account on first boot. Existing
// accounts are never modified, so changing ADMIN_PASSWORD later has no effect.
func seedAdminAccount(db database.Database, cfg map[string]string) error {
	count, err := db.AdminAccountRepo().Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	email := config.GetString(cfg, "ADMIN_EMAIL", "")
	password := config.GetString(cfg, "ADMIN_PASSWORD", "")
	if email == "" || password == "" {
		fmt.Println("ADMIN_EMAIL/ADMIN_PASSWORD not set; skipping admin seed")
		return nil
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	account := &models.AdminAccount{
		Name:     config.GetString(cfg, "ADMIN_NAME", "Admin"),
		Email:    email,
		Password: hashed,
	}
	if err := db.AdminAccountRepo().Add(account); err != nil {
		return err
	}

	fmt.Printf("Seeded admin account for %s\n", email)
	return nil
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
