package server

import (
	"net/http"
	"time"

	"pipeline/internal/config"
	"pipeline/internal/generated"

	"github.com/gin-gonic/gin"
)

// PipelineHandler は生成されたServerInterfaceを実装する
type PipelineHandler struct {
	config    *config.Config
	startedAt time.Time
	now       func() time.Time
}

var _ generated.ServerInterface = (*PipelineHandler)(nil)

// NewPipelineHandler は新しいPipelineHandlerを作成する
// startedAt は稼働時間の起点
func NewPipelineHandler(cfg *config.Config, startedAt time.Time) *PipelineHandler {
	return &PipelineHandler{
		config:    cfg,
		startedAt: startedAt,
		now:       time.Now,
	}
}

// GetRoot はルートページの実装
func (h *PipelineHandler) GetRoot(c *gin.Context) {
	page, err := RenderRootPage(h.config.Server.Port, h.config.Environment)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}

// GetStatus は状態APIの実装
func (h *PipelineHandler) GetStatus(c *gin.Context) {
	now := h.now()

	uptime := now.Sub(h.startedAt).Seconds()
	if uptime < 0 {
		uptime = 0
	}

	response := generated.StatusResponse{
		Uptime:    uptime,
		Message:   generated.OK,
		Timestamp: now.UnixMilli(),
	}

	c.JSON(http.StatusOK, response)
}
