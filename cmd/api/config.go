package main

import (
	"log"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/go-yaml/yaml"
	"github.com/joho/godotenv"

	"github.com/totegamma/campsite/core"
)

type Config struct {
	Server   Server           `yaml:"server"`
	Campsite core.ConfigInput `yaml:"campsite"`
	Profile  core.Profile     `yaml:"profile"`
}

type Server struct {
	Dsn            string `yaml:"dsn"`
	RedisAddr      string `yaml:"redisAddr"`
	RedisDB        int    `yaml:"redisDB"`
	MemcachedAddr  string `yaml:"memcachedAddr"`
	MongoURI       string `yaml:"mongoURI"`
	MongoDB        string `yaml:"mongoDB"`
	MinioEndpoint  string `yaml:"minioEndpoint"`
	MinioAccessKey string `yaml:"minioAccessKey"`
	MinioSecretKey string `yaml:"minioSecretKey"`
	MinioUseSSL    bool   `yaml:"minioUseSSL"`
	EnableTrace    bool   `yaml:"enableTrace"`
	TraceEndpoint  string `yaml:"traceEndpoint"`
	CaptchaSitekey string `yaml:"captchaSitekey"`
}

// Secrets can be supplied through the environment (or a .env file) instead of the config file
type Secrets struct {
	Dsn            string `env:"CAMPSITE_DSN"`
	SessionSecret  string `env:"CAMPSITE_SESSION_SECRET"`
	InstagramToken string `env:"CAMPSITE_INSTAGRAM_TOKEN"`
	CaptchaSecret  string `env:"CAMPSITE_CAPTCHA_SECRET"`
	MinioAccessKey string `env:"CAMPSITE_MINIO_ACCESS_KEY"`
	MinioSecretKey string `env:"CAMPSITE_MINIO_SECRET_KEY"`
}

// Load loads config from given path
func (c *Config) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		log.Fatal("failed to open configuration file:", err)
		return err
	}
	defer f.Close()

	err = yaml.NewDecoder(f).Decode(c)
	if err != nil {
		log.Fatal("failed to load configuration file:", err)
		return err
	}

	return c.applySecrets()
}

func (c *Config) applySecrets() error {
	// a missing .env is fine
	_ = godotenv.Load()

	var secrets Secrets
	if err := env.Parse(&secrets); err != nil {
		return err
	}

	override := func(dst *string, value string) {
		if value != "" {
			*dst = value
		}
	}
	override(&c.Server.Dsn, secrets.Dsn)
	override(&c.Campsite.SessionSecret, secrets.SessionSecret)
	override(&c.Campsite.InstagramToken, secrets.InstagramToken)
	override(&c.Campsite.CaptchaSecret, secrets.CaptchaSecret)
	override(&c.Server.MinioAccessKey, secrets.MinioAccessKey)
	override(&c.Server.MinioSecretKey, secrets.MinioSecretKey)

	return nil
}
