// controllers/shop.go
package controllers

import (
	"net/http"

	"juluka-backend/models"

	"github.com/gin-gonic/gin"
)

type ShopController struct{}

func NewShopController() *ShopController {
	return &ShopController{}
}

// GetShopInfo retrieves the static reference data the intake form renders:
// the technician roster, the curated brand list, service types, the rate card
// and the membership plan catalog.
func (sc *ShopController) GetShopInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"employees":    models.Employees,
		"brands":       models.SneakerBrands,
		"serviceTypes": models.ServiceTypes,
		"pricing": gin.H{
			"standardRate":  models.StandardRate,
			"bulkThreshold": models.BulkThreshold,
			"bulkRate":      models.BulkRate,
		},
		"plans": models.MembershipPlans,
	})
}
