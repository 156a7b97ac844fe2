package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// デフォルト値
const (
	DefaultHost        = "0.0.0.0"
	DefaultPort        = 6000
	DefaultEnvironment = "development"
)

// Config はアプリケーション全体の設定を保持する構造体
// 起動時に一度だけ作成され、以降は読み取り専用として扱う
type Config struct {
	Server ServerConfig

	// 画面に表示する環境名 (NODE_ENV)。表示のみで動作は変えない
	Environment string

	// 静的ファイルのディレクトリ。空の場合はバイナリに埋め込んだファイルを使う
	StaticDir string
}

// ServerConfig はHTTPサーバーの設定
type ServerConfig struct {
	Host string // リッスンするホスト
	Port int    // リッスンするポート番号

	// タイムアウト設定
	ReadTimeout  time.Duration // 読み込みタイムアウト
	WriteTimeout time.Duration // 書き込みタイムアウト
}

// Load は環境変数から設定を読み込む
func Load() (*Config, error) {
	port, err := getEnvAsIntOrDefault("PORT", DefaultPort)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:         getEnvOrDefault("SERVER_HOST", DefaultHost),
			Port:         port,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		Environment: getEnvOrDefault("NODE_ENV", DefaultEnvironment),
		StaticDir:   os.Getenv("STATIC_DIR"),
	}

	// 設定の検証
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("設定の検証に失敗: %w", err)
	}

	return cfg, nil
}

// Validate は設定の妥当性を検証する
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("無効なポート番号: %d", c.Server.Port)
	}
	if c.Server.ReadTimeout < 0 || c.Server.WriteTimeout < 0 {
		return fmt.Errorf("タイムアウトに負の値は指定できません")
	}
	if c.StaticDir != "" {
		info, err := os.Stat(c.StaticDir)
		if err != nil {
			return fmt.Errorf("静的ファイルディレクトリを参照できません: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("静的ファイルのパスがディレクトリではありません: %s", c.StaticDir)
		}
	}

	return nil
}

// ServerAddress はサーバーのリッスンアドレスを返す
func (c *Config) ServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// getEnvOrDefault は環境変数を取得し、設定されていない場合はデフォルト値を返す
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault は環境変数を整数として取得する
// 設定されていない場合はデフォルト値、整数でない場合はエラーを返す
func getEnvAsIntOrDefault(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	intVal, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("環境変数 %s が整数ではありません: %q", key, value)
	}
	return intVal, nil
}
