package server

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"pipeline/internal/config"

	"github.com/gin-gonic/gin"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// testConfig はテスト用の設定を作成する
func testConfig(port int) *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:         "127.0.0.1",
			Port:         port,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 5 * time.Second,
		},
		Environment: "test",
	}
}

// testLogger はログを書き込むバッファとロガーを返す
func testLogger() (*bytes.Buffer, *log.Logger) {
	var buf bytes.Buffer
	return &buf, log.New(&buf, "", 0)
}

// doRequest はハンドラにリクエストを送り、レコーダーを返す
func doRequest(h http.Handler, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// TestServerStartAndShutdown はサーバーの起動とシャットダウンをテストする
func TestServerStartAndShutdown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("リスナーの作成に失敗しました: %v", err)
	}
	port := ln.Addr().(*net.TCPAddr).Port

	_, logger := testLogger()
	srv, err := New(testConfig(port), logger)
	if err != nil {
		t.Fatalf("サーバーの作成に失敗しました: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ctx, ln)
	}()

	baseURL := fmt.Sprintf("http://127.0.0.1:%d", port)

	testCases := []struct {
		name           string
		endpoint       string
		expectedStatus int
	}{
		{"ルートエンドポイント", "/", http.StatusOK},
		{"ステータスエンドポイント", "/api/status", http.StatusOK},
		{"静的ファイル", "/styles.css", http.StatusOK},
		{"存在しないパス", "/missing", http.StatusNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := http.Get(baseURL + tc.endpoint)
			if err != nil {
				t.Fatalf("HTTPリクエストでエラーが発生しました: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tc.expectedStatus {
				t.Errorf("予期しないステータスコード: got %d, want %d",
					resp.StatusCode, tc.expectedStatus)
			}
		})
	}

	t.Run("ルートページにポート番号が表示される", func(t *testing.T) {
		resp, err := http.Get(baseURL + "/")
		if err != nil {
			t.Fatalf("HTTPリクエストでエラーが発生しました: %v", err)
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			t.Fatalf("本文の読み込みに失敗しました: %v", err)
		}
		if !strings.Contains(string(body), fmt.Sprintf("%d", port)) {
			t.Errorf("ポート番号 %d が本文に含まれていません", port)
		}
	})

	// コンテキストをキャンセルしてサーバーを停止
	cancel()

	select {
	case err := <-errCh:
		if err != nil {
			t.Fatalf("サーバーの起動/停止でエラーが発生しました: %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("サーバーの停止がタイムアウトしました")
	}
}

// TestStartListenError は使用中のポートで起動した場合のエラーをテストする
func TestStartListenError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("リスナーの作成に失敗しました: %v", err)
	}
	defer ln.Close()

	_, logger := testLogger()
	srv, err := New(testConfig(ln.Addr().(*net.TCPAddr).Port), logger)
	if err != nil {
		t.Fatalf("サーバーの作成に失敗しました: %v", err)
	}

	if err := srv.Start(context.Background()); err == nil {
		t.Fatal("使用中のポートでエラーが期待されました")
	}
}

// TestPortFromEnvironment はPORT環境変数がルートページに反映されることをテストする
func TestPortFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("SERVER_HOST", "")
	t.Setenv("NODE_ENV", "")
	t.Setenv("STATIC_DIR", "")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("設定の読み込みに失敗しました: %v", err)
	}
	if !strings.HasSuffix(cfg.ServerAddress(), ":8080") {
		t.Errorf("リッスンアドレスにポートが反映されていません: %s", cfg.ServerAddress())
	}

	_, logger := testLogger()
	srv, err := New(cfg, logger)
	if err != nil {
		t.Fatalf("サーバーの作成に失敗しました: %v", err)
	}

	rec := doRequest(srv.Handler(), http.MethodGet, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("予期しないステータスコード: got %d, want %d", rec.Code, http.StatusOK)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "8080") {
		t.Error("ルートページに 8080 が表示されていません")
	}
	if !strings.Contains(body, config.DefaultEnvironment) {
		t.Errorf("ルートページに既定の環境名 %q が表示されていません", config.DefaultEnvironment)
	}
}

// TestNewWithMissingStaticDir は存在しない静的ファイルディレクトリの扱いをテストする
func TestNewWithMissingStaticDir(t *testing.T) {
	cfg := testConfig(6000)
	cfg.StaticDir = t.TempDir() + "/missing"

	_, logger := testLogger()
	if _, err := New(cfg, logger); err == nil {
		t.Fatal("存在しないディレクトリでエラーが期待されました")
	}
}

// TestUseReleaseMode はginの動作モードの設定をテストする
func TestUseReleaseMode(t *testing.T) {
	defer gin.SetMode(gin.TestMode)

	testCases := []struct {
		name     string
		ginMode  string
		expected string
	}{
		{"GIN_MODE未設定ならリリースモード", "", gin.ReleaseMode},
		{"GIN_MODEが設定されていれば変更しない", gin.DebugMode, gin.TestMode},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(gin.EnvGinMode, tc.ginMode)
			gin.SetMode(gin.TestMode)

			UseReleaseMode()

			if gin.Mode() != tc.expected {
				t.Errorf("予期しないモード: got %s, want %s", gin.Mode(), tc.expected)
			}
		})
	}
}
