package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"

	"catalog-admin/internal/core/auth"
	"catalog-admin/internal/core/config"
	"catalog-admin/internal/core/database"
	"catalog-admin/internal/core/kv"
	"catalog-admin/internal/core/logger"
	"catalog-admin/internal/core/server"
	"catalog-admin/internal/mail"
	"catalog-admin/internal/repo"
	"catalog-admin/internal/service"
	"catalog-admin/internal/storage"
	"catalog-admin/internal/transport/http/handler"
	"catalog-admin/internal/transport/http/router"
	"catalog-admin/pkg/utils"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.New(logger.Options{
		Level:     cfg.Log.Level,
		JSON:      cfg.Log.JSON,
		AddCaller: true,
		Rotate: logger.FileRotate{
			Enable:     cfg.Log.File.Enable,
			Filename:   cfg.Log.File.Filename,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	defer cleanup()
	undo := logger.RedirectStdLog(log, zapcore.InfoLevel)
	defer undo()

	production := cfg.App.Env == "prod" || cfg.App.Env == "production"
	if production && cfg.JWT.Secret == "change-me" {
		log.Fatal("jwt.secret must be changed in production")
	}

	// 数据库（失败会直接 Fatal）
	db := mustOpenDB(cfg, log)
	log.Info("database connected", zap.String("driver", cfg.DB.Driver))

	if cfg.DB.AutoMigrate {
		if err := repo.AutoMigrate(db); err != nil {
			log.Fatal("automigrate failed", zap.Error(err))
		}
		log.Info("automigrate done")
	}

	// redis 只用于 token 注销；未配置时注销只清 cookie
	rdb := kv.NewRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if rdb != nil {
		if err := kv.Ping(context.Background(), rdb); err != nil {
			log.Fatal("redis ping", zap.Error(err))
		}
		defer rdb.Close()
		log.Info("redis connected", zap.String("addr", cfg.Redis.Addr))
	} else {
		log.Warn("redis not configured, logout will not revoke tokens")
	}

	jwter := &auth.JWTer{
		Secret: []byte(cfg.JWT.Secret),
		Issuer: cfg.JWT.Issuer,
		TTL:    cfg.JWT.TTL(),
	}
	deny := &auth.Denylist{RDB: rdb, JWT: jwter}

	st := repo.NewStore(db)
	hasher := utils.Bcrypt{Cost: cfg.Auth.BcryptCost}
	uploader := &storage.Local{Dir: cfg.Upload.Dir, BaseURL: cfg.App.BaseURL}
	mailer := mail.NewSMTP(mail.Config{
		Host:     cfg.Mail.Host,
		Port:     cfg.Mail.Port,
		Username: cfg.Mail.Username,
		Password: cfg.Mail.Password,
		From:     cfg.Mail.From,
		To:       cfg.Mail.To,
	})

	h := &handler.Handlers{
		Auth:       service.NewAuthService(st, hasher, jwter, deny),
		Users:      service.NewUserService(st, hasher),
		Roles:      service.NewRoleService(st),
		Categories: service.NewCategoryService(st),
		Brands:     service.NewBrandService(st),
		Products:   service.NewProductService(st, uploader),
		Menu:       service.NewMenuService(st, cfg.Menu.Workers, log),
		Email:      service.NewEmailService(mailer),
		Cookie: handler.Cookie{
			Name:     cfg.JWT.CookieName,
			MaxAge:   int(cfg.JWT.TTL() / time.Second),
			Secure:   production,
			HTTPOnly: true,
		},
		MaxImageBytes:  int64(cfg.Upload.MaxMB) << 20,
		LoginPerMinute: cfg.Auth.LoginPerMinute,
	}
	handler.SetupValidator()

	mode := gin.DebugMode
	if production {
		mode = gin.ReleaseMode
	}
	r := router.NewAPIEngine(router.Deps{
		Log:          log,
		Mode:         mode,
		HTTP:         cfg.App.HTTP,
		Production:   production,
		JWT:          jwter,
		Deny:         deny,
		Cookie:       cfg.JWT.CookieName,
		AuthRequired: cfg.Auth.Required,
		UploadDir:    cfg.Upload.Dir,
		Ping:         pinger(db),
	}, h)

	// HTTP Server
	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.BuildServer(
		addr, r,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)
	srv.ErrorLog = logger.ToStdLogger(log, zapcore.WarnLevel)

	// 启动日志
	host4human := cfg.App.HTTP.Host
	if host4human == "" || host4human == "0.0.0.0" {
		host4human = "127.0.0.1"
	}
	baseURL := "http://" + host4human + ":" + fmt.Sprint(cfg.App.HTTP.Port)
	log.Info("catalog api starting",
		zap.String("addr", addr),
		zap.String("open", baseURL),
		zap.String("health", baseURL+"/health"),
		zap.String("api_v1", baseURL+"/api/v1"),
	)

	// 异步启动
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("catalog api start FAILED", zap.Error(err))
		}
	}()
	log.Info("catalog api started SUCCESS")

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Warn("shutdown", zap.Error(err))
	}
	log.Info("catalog api stopped gracefully")
}

func pinger(db *gorm.DB) func() error {
	return func() error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return sqlDB.PingContext(ctx)
	}
}

func mustOpenDB(cfg *config.Config, l *zap.Logger) *gorm.DB {
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
		l.Fatal("db open", zap.Error(err))
	}
	return db
}
