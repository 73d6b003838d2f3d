package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"portfolio.backend/internal/config"
	"portfolio.backend/internal/domain/entities"
	"portfolio.backend/internal/infrastructure/datasources/postgres"
	"portfolio.backend/internal/infrastructure/repositories"
	"portfolio.backend/internal/usecases"
	"portfolio.backend/pkg/jwt"
)

var (
	openCredentialsDB = postgres.NewConnection
	migrateDB         = postgres.Migrate
	openSQLDB         = func(db *gorm.DB) (io.Closer, error) {
		return db.DB()
	}
)

type credentialsRuntime interface {
	SetCredentials(ctx context.Context, username, password string) (*entities.Admin, error)
}

type credentialsDeps struct {
	loadEnv func() error
	loadCfg func() *config.Config
	prepare func(cfg *config.Config) (credentialsRuntime, io.Closer, error)
	out     io.Writer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func defaultCredentialsDeps() credentialsDeps {
	return credentialsDeps{
		loadEnv: func() error { return godotenv.Load() },
		loadCfg: config.Load,
		prepare: prepareRuntime,
		out:     os.Stdout,
	}
}

func prepareRuntime(cfg *config.Config) (credentialsRuntime, io.Closer, error) {
	db, err := openCredentialsDB(cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect db: %w", err)
	}

	sqlDB, err := openSQLDB(db)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to init sql db: %w", err)
	}

	if err := migrateDB(db); err != nil {
		_ = sqlDB.Close()
		return nil, nil, err
	}

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.SessionExpiry)
	return usecases.NewAuthUsecase(repositories.NewAdminRepository(db), jwtService), sqlDB, nil
}

func runAdminCredentials(args []string, deps credentialsDeps) error {
	def := defaultCredentialsDeps()
	if deps.loadEnv == nil {
		deps.loadEnv = def.loadEnv
	}
	if deps.loadCfg == nil {
		deps.loadCfg = def.loadCfg
	}
	if deps.prepare == nil {
		deps.prepare = def.prepare
	}
	if deps.out == nil {
		deps.out = def.out
	}

	fs := flag.NewFlagSet("admin-credentials", flag.ContinueOnError)
	usernameFlag := fs.String("username", "", "admin username (required)")
	passwordFlag := fs.String("password", "", "new admin password (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *usernameFlag == "" || *passwordFlag == "" {
		return fmt.Errorf("--username and --password are required")
	}

	if err := deps.loadEnv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := deps.loadCfg()
	runtime, closer, err := deps.prepare(cfg)
	if err != nil {
		return err
	}
	if closer == nil {
		closer = nopCloser{}
	}
	defer closer.Close()

	admin, err := runtime.SetCredentials(context.Background(), *usernameFlag, *passwordFlag)
	if err != nil {
		return fmt.Errorf("failed updating admin credentials: %w", err)
	}

	_, _ = fmt.Fprintln(deps.out, "Admin credentials stored in DB")
	_, _ = fmt.Fprintf(deps.out, "admin_id=%s\n", admin.ID.String())
	_, _ = fmt.Fprintf(deps.out, "username=%s\n", admin.Username)
	return nil
}

func main() {
	if err := runAdminCredentials(os.Args[1:], defaultCredentialsDeps()); err != nil {
		log.Fatal(err)
	}
}
