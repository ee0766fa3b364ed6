package handler

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/kube-rca/incident-predictor/internal/model"
	"github.com/kube-rca/incident-predictor/internal/service"
)

const uploadFormField = "file"

type IncidentHandler struct {
	svc *service.IncidentService
}

func NewIncidentHandler(svc *service.IncidentService) *IncidentHandler {
	return &IncidentHandler{svc: svc}
}

// UploadIncidents godoc
// @Summary Upload incident CSV
// @Description Replaces the current incident set. First line is treated as a header. Accepts multipart field "file" or a raw text/csv body.
// @Tags incidents
// @Accept mpfd
// @Accept plain
// @Produce json
// @Param file formData file false "Incident CSV"
// @Success 200 {object} model.IncidentUploadResponse
// @Failure 400 {object} model.ErrorResponse
// @Router /api/v1/incidents/upload [post]
func (h *IncidentHandler) UploadIncidents(c *gin.Context) {
	text, err := readUpload(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.svc.Ingest(text))
}

// GetIncidents godoc
// @Summary List ingested incidents
// @Tags incidents
// @Produce json
// @Success 200 {object} model.IncidentListResponse
// @Router /api/v1/incidents [get]
func (h *IncidentHandler) GetIncidents(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.List())
}

// GetCharts godoc
// @Summary Chart aggregates
// @Description Top 5 services by incident count and the priority distribution, computed from the current incident set.
// @Tags incidents
// @Produce json
// @Success 200 {object} model.ChartResponse
// @Router /api/v1/incidents/charts [get]
func (h *IncidentHandler) GetCharts(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Charts())
}

// multipart 면 file 필드, 아니면 body 전체를 CSV 텍스트로 읽는다
func readUpload(c *gin.Context) (string, error) {
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		fh, err := c.FormFile(uploadFormField)
		if err != nil {
			return "", err
		}
		f, err := fh.Open()
		if err != nil {
			return "", err
		}
		defer f.Close()

		raw, err := io.ReadAll(f)
		if err != nil {
			return "", err
		}
		return string(raw), nil
	}

	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
