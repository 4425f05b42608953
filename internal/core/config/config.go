package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type HTTP struct {
	Host            string
	Port            int
	ReadTimeoutSec  int
	WriteTimeoutSec int
	IdleTimeoutSec  int
	// 单请求超时、请求体上限、全局限速
	RequestTimeoutSec int
	MaxBodyMB         int
	RateLimitRPS      float64
	RateLimitBurst    int
	MaxConcurrent     int64
	CORSOrigins       []string
}

type App struct {
	Name    string
	Env     string
	BaseURL string
	HTTP    HTTP
}

type LogFile struct {
	Enable     bool
	Filename   string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

type Log struct {
	Level string
	JSON  bool
	File  LogFile
}

type JWT struct {
	Secret            string
	Issuer            string
	AccessTokenTTLMin int
	// 登录后写入的 cookie 名，为空则不写 cookie
	CookieName string
}

func (j JWT) TTL() time.Duration { return time.Duration(j.AccessTokenTTLMin) * time.Minute }

type Redis struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type DB struct {
	Driver             string
	DSN                string
	Username           string
	Password           string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeMin int
	AutoMigrate        bool
	LogLevel           string
}

type Auth struct {
	// 关闭后受保护接口不再校验 token（仅本地调试）
	Required   bool
	BcryptCost int
	// 每 IP 每分钟登录次数
	LoginPerMinute int
}

type Upload struct {
	Dir   string
	MaxMB int
}

type Mail struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       string
}

type Menu struct {
	Workers int
}

type Config struct {
	App    App
	Log    Log
	JWT    JWT
	DB     DB
	Redis  Redis `mapstructure:"redis"`
	Auth   Auth
	Upload Upload
	Mail   Mail
	Menu   Menu
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "catalog-admin")
	v.SetDefault("app.http.port", 8080)
	v.SetDefault("app.http.readTimeoutSec", 10)
	v.SetDefault("app.http.writeTimeoutSec", 15)
	v.SetDefault("app.http.idleTimeoutSec", 60)
	v.SetDefault("app.http.requestTimeoutSec", 10)
	v.SetDefault("app.http.maxBodyMB", 16)
	v.SetDefault("app.http.rateLimitRPS", 200)
	v.SetDefault("app.http.rateLimitBurst", 400)
	v.SetDefault("app.http.maxConcurrent", 300)
	v.SetDefault("log.level", "info")
	v.SetDefault("jwt.issuer", "catalog-admin")
	v.SetDefault("jwt.accessTokenTTLMin", 24*60)
	v.SetDefault("jwt.cookieName", "jwt")
	v.SetDefault("db.driver", "sqlite")
	v.SetDefault("db.dsn", "file:catalog.db?cache=shared")
	v.SetDefault("db.maxOpenConns", 20)
	v.SetDefault("db.maxIdleConns", 5)
	v.SetDefault("db.connMaxLifetimeMin", 30)
	v.SetDefault("auth.required", true)
	v.SetDefault("auth.bcryptCost", 12)
	v.SetDefault("auth.loginPerMinute", 20)
	v.SetDefault("upload.dir", "./uploads")
	v.SetDefault("upload.maxMB", 5)
	v.SetDefault("menu.workers", 4)
}

// Read 读取 YAML 并叠加 APP_ 前缀的环境变量（如 APP_DB_DSN）
func Read(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

func Load(path string) *Config {
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
		if path == "" {
			path = "./configs/config.local.yaml"
		}
	}
	c, err := Read(path)
	if err != nil {
		log.Fatalf("read config: %v", err)
	}
	return c
}
