package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kube-rca/incident-predictor/internal/model"
	"github.com/kube-rca/incident-predictor/internal/service"
)

// Ping godoc
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} model.PingResponse
// @Router /ping [get]
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, model.PingResponse{Message: "pong"})
}

// Root godoc
// @Summary Root
// @Description Server banner
// @Tags health
// @Produce json
// @Success 200 {object} model.RootResponse
// @Router / [get]
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, model.RootResponse{
		Status:  "ok",
		Message: "Incident predictor API server is running",
	})
}

// EndpointInfo - 현재 모델 provider 정보
type EndpointInfo interface {
	Name() string
	Model() string
	Endpoint() string
}

type StatusHandler struct {
	probe *service.ProbeService
	info  EndpointInfo
}

func NewStatusHandler(probe *service.ProbeService, info EndpointInfo) *StatusHandler {
	return &StatusHandler{probe: probe, info: info}
}

// GetStatus godoc
// @Summary Model endpoint connectivity
// @Description Last result of the periodic connectivity probe (unknown until the first probe finishes).
// @Tags status
// @Produce json
// @Success 200 {object} model.EndpointStatusResponse
// @Router /api/v1/status [get]
func (h *StatusHandler) GetStatus(c *gin.Context) {
	state, checkedAt := h.probe.State()
	c.JSON(http.StatusOK, model.EndpointStatusResponse{
		State:     state,
		Provider:  h.info.Name(),
		Model:     h.info.Model(),
		Endpoint:  h.info.Endpoint(),
		CheckedAt: checkedAt,
	})
}
