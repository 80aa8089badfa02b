// controllers/insight.go
package controllers

import (
	"net/http"

	"juluka-backend/services"
	"juluka-backend/utils"

	"github.com/gin-gonic/gin"
)

type InsightController struct {
	Insight *services.InsightService
}

func NewInsightController(insight *services.InsightService) *InsightController {
	return &InsightController{Insight: insight}
}

// GetCareAdvice retrieves short professional cleaning pointers for a pair,
// given its brand and material type. Falls back to the standard protocol
// sentence when the external service is unavailable.
func (ic *InsightController) GetCareAdvice(c *gin.Context) {
	brand := c.Query("brand")
	sneakerType := c.Query("type")
	if brand == "" || sneakerType == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "brand and type query parameters are required")
		return
	}

	advice := ic.Insight.CareAdvice(c.Request.Context(), sneakerType, brand)
	c.JSON(http.StatusOK, gin.H{"advice": advice})
}
