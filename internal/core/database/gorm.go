package database

import (
	"errors"
	"fmt"
	"strings"
	"time"

	gomysql "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
)

var ErrUnsupportedDriver = errors.New("unsupported db driver")

type Opts struct {
	Driver string // mysql / postgres / sqlite
	DSN    string
	// 仅 mysql：非空时覆盖 DSN 里的账号密码（便于从环境变量注入）
	Username           string
	Password           string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeMin int
	LogLevel           string // silent / error / warn / info
}

func NewGorm(o Opts) (*gorm.DB, error) {
	dial, err := dialector(o)
	if err != nil {
		return nil, err
	}
	db, err := gorm.Open(dial, &gorm.Config{
		Logger: logger.Default.LogMode(logLevel(o.LogLevel)),
		// 事务由 Store.WithTx 显式开启
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(o.MaxOpenConns)
	// 内存 sqlite 至少保留一个连接，否则库会被回收
	sqlDB.SetMaxIdleConns(max(1, o.MaxIdleConns))
	sqlDB.SetConnMaxLifetime(time.Duration(o.ConnMaxLifetimeMin) * time.Minute)
	return db, nil
}

func dialector(o Opts) (gorm.Dialector, error) {
	switch o.Driver {
	case "postgres":
		return postgres.Open(o.DSN), nil
	case "mysql":
		dsn, err := mysqlDSN(o.DSN, o.Username, o.Password)
		if err != nil {
			return nil, err
		}
		return mysql.Open(dsn), nil
	case "sqlite":
		return sqlite.Open(o.DSN), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, o.Driver)
	}
}

// mysqlDSN 解析 user:pass@tcp(host:port)/db 形式，覆盖账号密码并强制 parseTime
func mysqlDSN(dsn, user, pass string) (string, error) {
	cfg, err := gomysql.ParseDSN(strings.TrimSpace(dsn))
	if err != nil {
		return "", fmt.Errorf("parse mysql dsn: %w", err)
	}
	if user != "" {
		cfg.User = user
	}
	if pass != "" {
		cfg.Passwd = pass
	}
	cfg.ParseTime = true
	return cfg.FormatDSN(), nil
}

func logLevel(s string) logger.LogLevel {
	switch s {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}
