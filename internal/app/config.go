package app

import (
  "os"
  "strings"
  "time"
  "gopkg.in/yaml.v3"
  "github.com/yungbote/supplycart-backend/internal/logger"
  "github.com/yungbote/supplycart-backend/internal/utils"
)

type Config struct {
  JWTSecretKey    string
  AccessTokenTTL  time.Duration
  RefreshTokenTTL time.Duration
  MediaDir        string
  AllowedOrigins  []string
  CatalogFeedURLs string
  SyncOnStart     bool
  Environment     string
  Version         string
}

// fileConfig mirrors the optional CONFIG_FILE yaml. Values from the file
// fill in whatever the environment left blank; the environment always wins.
type fileConfig struct {
  JWTSecretKey    string   `yaml:"jwt_secret_key"`
  MediaDir        string   `yaml:"media_dir"`
  AllowedOrigins  []string `yaml:"allowed_origins"`
  CatalogFeedURLs string   `yaml:"catalog_feed_urls"`
}

func LoadConfig(log *logger.Logger) Config {
  jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
  accessTokenTTLSeconds := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)
  refreshTokenTTLSeconds := utils.GetEnvAsInt("REFRESH_TOKEN_TTL", 86400, log)
  mediaDir := utils.GetEnv("MEDIA_DIR", "./media", log)
  feedURLs := utils.GetEnv("CATALOG_FEED_URLS", "", log)
  syncOnStart := strings.EqualFold(utils.GetEnv("CATALOG_SYNC_ON_START", "true", log), "true")
  environment := utils.GetEnv("APP_ENV", "development", log)
  version := utils.GetEnv("APP_VERSION", "dev", log)

  var origins []string
  for _, o := range strings.Split(utils.GetEnv("ALLOWED_ORIGINS", "", log), ",") {
    if trimmed := strings.TrimSpace(o); trimmed != "" {
      origins = append(origins, trimmed)
    }
  }

  cfg := Config{
    JWTSecretKey:    jwtSecretKey,
    AccessTokenTTL:  time.Duration(accessTokenTTLSeconds) * time.Second,
    RefreshTokenTTL: time.Duration(refreshTokenTTLSeconds) * time.Second,
    MediaDir:        mediaDir,
    AllowedOrigins:  origins,
    CatalogFeedURLs: feedURLs,
    SyncOnStart:     syncOnStart,
    Environment:     environment,
    Version:         version,
  }

  if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
    applyConfigFile(&cfg, path, log)
  }
  return cfg
}

func applyConfigFile(cfg *Config, path string, log *logger.Logger) {
  raw, err := os.ReadFile(path)
  if err != nil {
    log.Warn("Could not read config file", "path", path, "error", err)
    return
  }
  var fc fileConfig
  if err := yaml.Unmarshal(raw, &fc); err != nil {
    log.Warn("Could not parse config file", "path", path, "error", err)
    return
  }
  if cfg.JWTSecretKey == "defaultsecret" && fc.JWTSecretKey != "" {
    cfg.JWTSecretKey = fc.JWTSecretKey
  }
  if cfg.MediaDir == "./media" && fc.MediaDir != "" {
    cfg.MediaDir = fc.MediaDir
  }
  if len(cfg.AllowedOrigins) == 0 && len(fc.AllowedOrigins) > 0 {
    cfg.AllowedOrigins = fc.AllowedOrigins
  }
  if cfg.CatalogFeedURLs == "" && fc.CatalogFeedURLs != "" {
    cfg.CatalogFeedURLs = fc.CatalogFeedURLs
  }
  log.Info("Config file applied", "path", path)
}
