package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kube-rca/incident-predictor/internal/client"
	"github.com/kube-rca/incident-predictor/internal/model"
	"github.com/kube-rca/incident-predictor/internal/service"
)

type ChatHandler struct {
	svc *service.ChatService
}

func NewChatHandler(svc *service.ChatService) *ChatHandler {
	return &ChatHandler{svc: svc}
}

// Chat godoc
// @Summary Ask a question about the uploaded incidents
// @Description Sends one non-streaming request to the model endpoint. The question and the answer (or the failure) are appended to the chat history.
// @Tags chat
// @Accept json
// @Produce json
// @Param request body model.ChatRequest true "Question"
// @Success 200 {object} model.ChatResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 409 {object} model.ErrorResponse
// @Failure 502 {object} model.AnalysisErrorResponse
// @Failure 500 {object} model.AnalysisErrorResponse
// @Router /api/v1/chat [post]
func (h *ChatHandler) Chat(c *gin.Context) {
	var req model.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
		return
	}

	// 한 번 보낸 요청은 클라이언트 연결이 끊겨도 끝까지 진행
	resp, err := h.svc.Chat(context.WithoutCancel(c.Request.Context()), req)
	if err != nil {
		writeChatError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetHistory godoc
// @Summary Chat history
// @Tags chat
// @Produce json
// @Success 200 {object} model.ChatHistoryResponse
// @Router /api/v1/chat/history [get]
func (h *ChatHandler) GetHistory(c *gin.Context) {
	c.JSON(http.StatusOK, model.ChatHistoryResponse{Messages: h.svc.History()})
}

// GetPresets godoc
// @Summary Predefined analysis questions
// @Tags chat
// @Produce json
// @Success 200 {object} model.ChatPresetResponse
// @Router /api/v1/chat/presets [get]
func (h *ChatHandler) GetPresets(c *gin.Context) {
	c.JSON(http.StatusOK, model.ChatPresetResponse{Presets: h.svc.Presets()})
}

// ResetSession godoc
// @Summary Reset session
// @Description Clears the incident set and the chat history.
// @Tags chat
// @Produce json
// @Success 200 {object} model.StatusResponse
// @Router /api/v1/session [delete]
func (h *ChatHandler) ResetSession(c *gin.Context) {
	h.svc.Reset()
	c.JSON(http.StatusOK, model.StatusResponse{Status: "reset"})
}

func writeChatError(c *gin.Context, err error) {
	var statusErr *client.StatusError
	switch {
	case errors.Is(err, service.ErrInvalidChatRequest):
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrAnalysisInProgress):
		c.JSON(http.StatusConflict, model.ErrorResponse{Error: err.Error()})
	case errors.Is(err, client.ErrUnreachable):
		c.JSON(http.StatusBadGateway, model.AnalysisErrorResponse{
			Error: err.Error(),
			Kind:  "unreachable",
		})
	case errors.As(err, &statusErr):
		c.JSON(http.StatusBadGateway, model.AnalysisErrorResponse{
			Error:          err.Error(),
			Kind:           "upstream",
			UpstreamStatus: statusErr.StatusCode,
			UpstreamBody:   statusErr.Body,
		})
	default:
		c.JSON(http.StatusInternalServerError, model.AnalysisErrorResponse{
			Error: err.Error(),
			Kind:  "internal",
		})
	}
}
