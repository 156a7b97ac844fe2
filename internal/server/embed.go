package server

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
)

//go:embed all:public
var embedFS embed.FS

//go:embed templates/index.html
var indexTemplate string

// embeddedStaticFS はバイナリに埋め込んだ静的ファイルを返す
func embeddedStaticFS() fs.FS {
	staticFS, err := fs.Sub(embedFS, "public")
	if err != nil {
		// "public" はコンパイル時に存在が保証されている
		panic(fmt.Sprintf("埋め込み静的ファイルシステムの作成に失敗: %v", err))
	}
	return staticFS
}

// openStaticRoot はディスク上の静的ファイルディレクトリを開く
// os.Root 経由で参照するため、シンボリックリンクでもルート外には出られない
func openStaticRoot(dir string) (*os.Root, fs.FS, error) {
	root, err := os.OpenRoot(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("静的ファイルディレクトリを開けません: %w", err)
	}
	return root, root.FS(), nil
}
