package server

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pipeline/internal/config"
	"pipeline/internal/generated"

	"github.com/gin-gonic/gin"
)

// processStart はプロセスの起動時刻。稼働時間の起点になる
var processStart = time.Now()

// Server はHTTPサーバーを管理する構造体
type Server struct {
	config     *config.Config
	logger     *log.Logger
	engine     *gin.Engine
	httpServer *http.Server

	// STATIC_DIR 指定時のみ。埋め込みファイルを使う場合はnil
	staticRoot *os.Root
}

// New は新しいServerインスタンスを作成する
// logger がnilの場合は log.Default() を使う
func New(cfg *config.Config, logger *log.Logger) (*Server, error) {
	if logger == nil {
		logger = log.Default()
	}

	s := &Server{
		config: cfg,
		logger: logger,
	}

	static := embeddedStaticFS()
	if cfg.StaticDir != "" {
		root, rootFS, err := openStaticRoot(cfg.StaticDir)
		if err != nil {
			return nil, err
		}
		s.staticRoot = root
		static = rootFS
	}

	s.engine = newEngine(logger, static, NewPipelineHandler(cfg, processStart))
	s.httpServer = &http.Server{
		Addr:         cfg.ServerAddress(),
		Handler:      s.engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	return s, nil
}

// newEngine は処理段とルートを設定したginエンジンを作成する
func newEngine(logger *log.Logger, static fs.FS, handler generated.ServerInterface) *gin.Engine {
	engine := gin.New()

	// リダイレクトは処理段より前に返されログに残らないため無効化する
	// 一致しないパスはすべて処理段を通って404になる
	engine.RedirectTrailingSlash = false
	engine.RedirectFixedPath = false

	engine.Use(stages(logger, static)...)
	generated.RegisterHandlers(engine, handler)

	// GETのルートはHEADにも応答する
	wrapper := generated.ServerInterfaceWrapper{Handler: handler}
	engine.HEAD("/", wrapper.GetRoot)
	engine.HEAD("/api/status", wrapper.GetStatus)

	return engine
}

// UseReleaseMode はGIN_MODEが未設定の場合にginをリリースモードにする
// デバッグモードではルート情報が標準出力に、リクエストヘッダーがログに出力される
func UseReleaseMode() {
	if os.Getenv(gin.EnvGinMode) != "" {
		return
	}
	gin.SetMode(gin.ReleaseMode)
}

// Handler はリクエストを処理する http.Handler を返す
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start は設定されたアドレスでサーバーを起動する
// コンテキストのキャンセルかシグナル受信まで戻らない
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.ServerAddress())
	if err != nil {
		s.closeStatic()
		return fmt.Errorf("リッスンに失敗: %w", err)
	}
	return s.Serve(ctx, ln)
}

// Serve は指定されたリスナーでリクエストを受け付ける
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	defer s.closeStatic()

	// シャットダウン用のチャンネル
	shutdownCh := make(chan error, 1)

	// サーバーを別ゴルーチンで起動
	go func() {
		s.logger.Printf("HTTPサーバーを起動しています: %s (環境: %s)", ln.Addr(), s.config.Environment)
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			shutdownCh <- fmt.Errorf("サーバーの起動に失敗: %w", err)
		}
	}()

	// シグナルハンドリング
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	// コンテキストかシグナルを待つ
	select {
	case <-ctx.Done():
		s.logger.Println("コンテキストがキャンセルされました")
	case sig := <-sigCh:
		s.logger.Printf("シグナルを受信しました: %v", sig)
	case err := <-shutdownCh:
		return err
	}

	// グレースフルシャットダウン
	return s.Shutdown()
}

// Shutdown はサーバーをグレースフルにシャットダウンする
func (s *Server) Shutdown() error {
	s.logger.Println("サーバーをシャットダウンしています...")

	// 5秒のタイムアウトを設定
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("サーバーのシャットダウンに失敗: %w", err)
	}

	s.logger.Println("サーバーが正常にシャットダウンされました")
	return nil
}

func (s *Server) closeStatic() {
	if s.staticRoot == nil {
		return
	}
	if err := s.staticRoot.Close(); err != nil {
		s.logger.Printf("静的ファイルディレクトリのクローズに失敗: %v", err)
	}
	s.staticRoot = nil
}
