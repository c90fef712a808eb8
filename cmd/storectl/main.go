// Command storectl runs maintenance tasks against the storefront database.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/infra/auth"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/persistence/model"
	"storefront/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
	"gorm.io/gorm"
)

func main() {
	cmd := &cli.Command{
		Name:  "storectl",
		Usage: "Storefront maintenance commands",
		Commands: []*cli.Command{
			{
				Name:   "migrate",
				Usage:  "Create or update the database schema",
				Action: runMigrate,
			},
			{
				Name:  "create-brand",
				Usage: "Add a brand",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Usage: "brand name", Required: true},
				},
				Action: runCreateBrand,
			},
			{
				Name:  "create-user",
				Usage: "Add an account with any role, e.g. the first admin",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "username", Required: true},
					&cli.StringFlag{Name: "password", Required: true},
					&cli.StringFlag{Name: "role", Value: entity.RoleUser.String(), Usage: "user, seller or admin"},
					&cli.UintFlag{Name: "brand-id", Usage: "brand managed by a seller"},
				},
				Action: runCreateUser,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type env struct {
	cfg    *config.Config
	logger *slog.Logger
	db     *gorm.DB
}

func setup() (*env, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return nil, err
	}

	db, err := postgres.Open(cfg, logger)
	if err != nil {
		return nil, err
	}

	return &env{cfg: cfg, logger: logger, db: db}, nil
}

func runMigrate(ctx context.Context, _ *cli.Command) error {
	e, err := setup()
	if err != nil {
		return err
	}

	if err := e.db.WithContext(ctx).AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "migration failed")
	}

	e.logger.Info("Migration complete")

	return nil
}

func runCreateBrand(ctx context.Context, cmd *cli.Command) error {
	e, err := setup()
	if err != nil {
		return err
	}

	brand := &entity.Brand{Name: cmd.String("name")}
	if err := postgres.NewBrandRepository(e.db).Create(ctx, brand); err != nil {
		return errors.Wrap(err, "failed to create brand")
	}

	e.logger.Info("Brand created", slog.Any("brandID", brand.ID), slog.String("name", brand.Name))

	return nil
}

func runCreateUser(ctx context.Context, cmd *cli.Command) error {
	role := entity.Role(cmd.String("role"))
	if !role.IsValid() {
		return errors.Errorf("unknown role %q", role)
	}

	var brandID *uint
	if id := cmd.Uint("brand-id"); id > 0 {
		brandID = &id
	}
	if role == entity.RoleSeller && brandID == nil {
		return errors.New("--brand-id is required for sellers")
	}

	e, err := setup()
	if err != nil {
		return err
	}

	hasher := auth.NewBcryptHasher(e.cfg)
	password := cmd.String("password")
	if err := hasher.Validate(password); err != nil {
		return err
	}
	hash, err := hasher.Hash(password)
	if err != nil {
		return err
	}

	user := &entity.User{
		Username:     cmd.String("username"),
		PasswordHash: hash,
		Role:         role,
		BrandID:      brandID,
	}
	if err := postgres.NewUserRepository(e.db).Create(ctx, user); err != nil {
		return errors.Wrap(err, "failed to create user")
	}

	e.logger.Info("User created", slog.Any("userID", user.ID), slog.String("role", role.String()))

	return nil
}
