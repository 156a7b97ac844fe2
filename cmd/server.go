// Package main はPipelineサーバーコマンドの実装です
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"pipeline/internal/config"
	"pipeline/internal/server"
)

func main() {
	// コマンドラインオプション
	var (
		host      = flag.String("host", "", "サーバーのホスト (デフォルト: 0.0.0.0)")
		port      = flag.Int("port", 0, "サーバーのポート (デフォルト: 6000)")
		staticDir = flag.String("static", "", "静的ファイルのディレクトリ (デフォルト: 埋め込みファイル)")
		help      = flag.Bool("help", false, "ヘルプを表示")
	)

	flag.Parse()

	// ヘルプ表示
	if *help {
		fmt.Println("Pipeline Testing")
		fmt.Println()
		fmt.Println("使用方法:")
		fmt.Println("  server [オプション]")
		fmt.Println()
		fmt.Println("オプション:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("環境変数:")
		fmt.Println("  PORT, SERVER_HOST, NODE_ENV, STATIC_DIR")
		os.Exit(0)
	}

	// 設定を読み込む
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("設定の読み込みに失敗しました: %v", err)
	}

	// コマンドラインオプションで設定を上書き
	if *host != "" {
		cfg.Server.Host = *host
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *staticDir != "" {
		cfg.StaticDir = *staticDir
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("コマンドラインオプションが不正です: %v", err)
	}

	server.UseReleaseMode()

	srv, err := server.New(cfg, nil)
	if err != nil {
		log.Fatalf("サーバーの作成に失敗しました: %v", err)
	}

	// サーバーを起動
	log.Printf("Pipeline サーバーを起動します: %s", cfg.ServerAddress())
	if err := srv.Start(context.Background()); err != nil {
		log.Fatalf("サーバーの起動に失敗しました: %v", err)
	}
}
