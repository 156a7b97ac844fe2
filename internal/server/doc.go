// Package server は、ウェルカムページと状態APIを配信するHTTPサーバーです。
//
// 責務:
//   - HTTPサーバーの起動とグレースフルシャットダウン
//   - リクエストごとのログ出力
//   - 静的ファイルの配信
//   - ルートページ (/) と状態API (/api/status) の応答
//   - ハンドラ内部のエラーを500応答に変換
//
// 仕様:
//   - ルーティングはgin、ルート定義は api/openapi.yaml から生成したものを使用
//   - リクエストは stages が返す順序付きの処理段を通過する
//     (ログ → 障害境界 → 静的ファイル → ルート)
//   - どのルートにも静的ファイルにも一致しない場合はginの既定の404を返す
//   - エラーの詳細はサーバーログにのみ出力し、応答本文には含めない
package server
