package server

import (
	"fmt"
	"html/template"
	"strings"
)

var rootPageTemplate = template.Must(template.New("index").Parse(indexTemplate))

// rootPageData はルートページに埋め込む値
type rootPageData struct {
	Port        int
	Environment string
}

// RenderRootPage はポート番号と環境名を埋め込んだルートページのHTMLを返す
// 外部の状態を参照しない純粋な関数
func RenderRootPage(port int, environment string) (string, error) {
	var b strings.Builder
	data := rootPageData{
		Port:        port,
		Environment: environment,
	}
	if err := rootPageTemplate.Execute(&b, data); err != nil {
		return "", fmt.Errorf("ルートページの描画に失敗: %w", err)
	}
	return b.String(), nil
}
