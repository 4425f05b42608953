// admin 运维命令：建表、初始化角色、创建后台用户
package main

import (
	"context"
	"fmt"
	"os"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"catalog-admin/internal/core/config"
	"catalog-admin/internal/core/database"
	"catalog-admin/internal/core/logger"
	"catalog-admin/internal/repo"
	"catalog-admin/internal/service"
	"catalog-admin/pkg/utils"
)

func main() {
	_ = godotenv.Load()
	log, cleanup := logger.New(logger.Options{Level: "info"})
	defer cleanup()

	cmd := &cli.Command{
		Name:  "catalog-admin",
		Usage: "catalog back-office maintenance",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "path to the YAML config",
				Sources: cli.EnvVars("CONFIG_PATH"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "migrate",
				Usage: "Create or update tables",
				Action: func(ctx context.Context, c *cli.Command) error {
					_, db, err := open(c.String("config"))
					if err != nil {
						return err
					}
					if err := repo.AutoMigrate(db); err != nil {
						return err
					}
					log.Info("migration complete")
					return nil
				},
			},
			{
				Name:  "seed-roles",
				Usage: "Insert the default roles that do not exist yet",
				Action: func(ctx context.Context, c *cli.Command) error {
					_, db, err := open(c.String("config"))
					if err != nil {
						return err
					}
					n, err := service.NewRoleService(repo.NewStore(db)).Seed(ctx, service.DefaultRoles)
					if err != nil {
						return err
					}
					log.Info("roles seeded", zap.Int("created", n))
					return nil
				},
			},
			{
				Name:  "create-user",
				Usage: "Create a back-office user",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "user", Usage: "user id", Required: true},
					&cli.StringFlag{Name: "password", Usage: "login password", Sources: cli.EnvVars("ADMIN_PASSWORD"), Required: true},
					&cli.StringSliceFlag{Name: "role", Usage: "role name, repeatable"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, db, err := open(c.String("config"))
					if err != nil {
						return err
					}
					svc := service.NewUserService(repo.NewStore(db), utils.Bcrypt{Cost: cfg.Auth.BcryptCost})
					u, err := svc.Create(ctx, service.UserInput{
						UserID:    c.String("user"),
						Password:  c.String("password"),
						RoleNames: c.StringSlice("role"),
					})
					if err != nil {
						return err
					}
					names := make([]string, 0, len(u.Roles))
					for _, r := range u.Roles {
						names = append(names, r.Name)
					}
					log.Info("user created", zap.String("userId", u.UserID), zap.Strings("roles", names))
					return nil
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Error("command failed", zap.Error(err))
		cleanup()
		os.Exit(1)
	}
}

func open(path string) (*config.Config, *gorm.DB, error) {
	if path == "" {
		path = "./configs/config.local.yaml"
	}
	cfg, err := config.Read(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read config: %w", err)
	}
	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		Username:           cfg.DB.Username,
		Password:           cfg.DB.Password,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		return nil, nil, err
	}
	return cfg, db, nil
}
