package server

import (
	"io"
	"io/fs"
	"log"
	"mime"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader はリクエストIDを受け渡すヘッダー
	RequestIDHeader = "X-Request-ID"

	// FailureMessage はハンドラが失敗したときに返す固定メッセージ
	FailureMessage = "サーバー内部でエラーが発生しました"

	requestIDKey = "requestID"
)

// stages はリクエストが通過する処理段を順番に返す
// 各段は応答を書いて中断するか、c.Next() で次の段に渡す
func stages(logger *log.Logger, static fs.FS) []gin.HandlerFunc {
	return []gin.HandlerFunc{
		requestLogger(logger),
		recoverPanics(logger),
		reportHandlerErrors(logger),
		staticFiles(static),
	}
}

// requestLogger はリクエストごとに1行のログを出力する
// 時刻は到着時刻 (ISO-8601) を記録する
func requestLogger(logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		arrived := time.Now()

		id := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)

		c.Next()

		logger.Printf("%s - %s %s %d %s id=%s",
			arrived.UTC().Format(time.RFC3339Nano),
			c.Request.Method,
			c.Request.URL.RequestURI(),
			c.Writer.Status(),
			time.Since(arrived),
			id)
	}
}

// recoverPanics はハンドラのpanicを捕捉して500を返す
// スタックトレースはginがロガーの出力先に書き出す
func recoverPanics(logger *log.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(logger.Writer(), func(c *gin.Context, _ any) {
		writeFailure(c)
	})
}

// reportHandlerErrors は c.Error で報告されたエラーを500に変換する
func reportHandlerErrors(logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		logger.Printf("%s - エラー: %s %s id=%s\n%s",
			time.Now().UTC().Format(time.RFC3339Nano),
			c.Request.Method,
			c.Request.URL.Path,
			c.GetString(requestIDKey),
			c.Errors.String())

		writeFailure(c)
	}
}

// writeFailure は固定の失敗メッセージを返す
// すでに応答を書き始めている場合は何も追加しない
func writeFailure(c *gin.Context) {
	if c.Writer.Written() {
		c.Abort()
		return
	}
	c.Data(http.StatusInternalServerError, "text/plain; charset=utf-8", []byte(FailureMessage))
	c.Abort()
}

// staticFiles は静的ファイルのパスに一致した場合にファイルを返す
// 一致しない場合は次の段に渡す
func staticFiles(static fs.FS) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.Next()
			return
		}

		name, ok := staticName(c.Request.URL.Path)
		if !ok {
			c.Next()
			return
		}

		f, err := static.Open(name)
		if err != nil {
			c.Next()
			return
		}
		defer f.Close()

		info, err := f.Stat()
		if err != nil || info.IsDir() {
			c.Next()
			return
		}

		content, ok := f.(io.ReadSeeker)
		if !ok {
			c.Next()
			return
		}

		ctype, err := contentType(name, content)
		if err != nil {
			_ = c.Error(err)
			c.Abort()
			return
		}

		c.Header("Content-Type", ctype)
		http.ServeContent(c.Writer, c.Request, name, info.ModTime(), content)
		c.Abort()
	}
}

// staticName はURLパスを fs.FS のファイル名に変換する
// ".." を含むパスは拒否する
func staticName(urlPath string) (string, bool) {
	if strings.Contains(urlPath, "\\") || strings.Contains(urlPath, "\x00") {
		return "", false
	}
	for _, segment := range strings.Split(urlPath, "/") {
		if segment == ".." {
			return "", false
		}
	}

	name := strings.TrimPrefix(path.Clean("/"+urlPath), "/")
	if name == "" || !fs.ValidPath(name) {
		return "", false
	}
	return name, true
}

// contentType は拡張子からContent-Typeを決め、不明な場合は内容から判定する
func contentType(name string, content io.ReadSeeker) (string, error) {
	if ctype := mime.TypeByExtension(path.Ext(name)); ctype != "" {
		return ctype, nil
	}

	mtype, err := mimetype.DetectReader(content)
	if err != nil {
		return "", err
	}
	if _, err := content.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	return mtype.String(), nil
}
