package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/riskgauge/backend/internal/api/middleware"
	"github.com/riskgauge/backend/internal/models"
	"github.com/riskgauge/backend/internal/risk"
	"github.com/riskgauge/backend/internal/services"
	"github.com/riskgauge/backend/internal/store"
)

const msgInvalidBody = "Invalid or missing JSON body"

var errInvalidBody = errors.New("invalid or missing JSON body")

type RiskHandler struct {
	service *services.RiskService
}

func NewRiskHandler(service *services.RiskService) *RiskHandler {
	return &RiskHandler{service: service}
}

// Assess handles POST /assess-risk
func (h *RiskHandler) Assess(c *gin.Context) {
	in, err := decodeAssessment(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidBody})
		return
	}

	row, err := h.service.Assess(c.Request.Context(), in)
	if err != nil {
		var ve *risk.ValidationError
		if errors.As(err, &ve) {
			middleware.GetRequestLogger(c).WithField("reason", ve.Kind).Debug("rejected risk submission")
			c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error()})
			return
		}
		h.storageFailure(c, err, "failed to store risk")
		return
	}

	c.JSON(http.StatusOK, row)
}

// List handles GET /risks
func (h *RiskHandler) List(c *gin.Context) {
	risks, err := h.service.List(c.Request.Context(), c.Query("level"))
	if err != nil {
		if errors.Is(err, services.ErrInvalidLevelFilter) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.storageFailure(c, err, "failed to load risks")
		return
	}
	if risks == nil {
		risks = []models.Risk{}
	}
	c.JSON(http.StatusOK, risks)
}

func (h *RiskHandler) storageFailure(c *gin.Context, err error, msg string) {
	entry := middleware.GetRequestLogger(c).WithError(err)
	var se *store.StorageError
	if errors.As(err, &se) {
		entry = entry.WithFields(logrus.Fields{"op": se.Op})
	}
	entry.Error(msg)
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}

// decodeAssessment reads the request body as a single non-empty JSON object.
// Numbers are kept as json.Number so 3 and 3.0 stay distinguishable.
// Non-string asset or threat values are treated as absent.
func decodeAssessment(c *gin.Context) (risk.Input, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return risk.Input{}, err
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var body map[string]any
	if err := dec.Decode(&body); err != nil {
		return risk.Input{}, err
	}
	if dec.More() {
		return risk.Input{}, errInvalidBody
	}
	if len(body) == 0 {
		return risk.Input{}, errInvalidBody
	}

	asset, _ := body["asset"].(string)
	threat, _ := body["threat"].(string)
	return risk.Input{
		Asset:      asset,
		Threat:     threat,
		Likelihood: body["likelihood"],
		Impact:     body["impact"],
	}, nil
}
