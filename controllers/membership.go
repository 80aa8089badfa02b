// controllers/membership.go
package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"juluka-backend/models"
	"juluka-backend/store"
	"juluka-backend/utils"

	"github.com/gin-gonic/gin"
)

type MembershipController struct {
	Store *store.Store
}

func NewMembershipController(st *store.Store) *MembershipController {
	return &MembershipController{Store: st}
}

// AssignMembershipInput defines the expected JSON structure for assigning a plan
type AssignMembershipInput struct {
	Phone string                `json:"phone" binding:"required"`
	Tier  models.MembershipTier `json:"tier" binding:"required"`
}

// GetPlans retrieves the fixed membership plan catalog
func (mc *MembershipController) GetPlans(c *gin.Context) {
	c.JSON(http.StatusOK, models.MembershipPlans)
}

// AssignMembership subscribes the client with this phone number to a plan
// tier. Re-assigning the tier a client already holds is rejected, as is a
// phone that resolves to no client.
func (mc *MembershipController) AssignMembership(c *gin.Context) {
	var input AssignMembershipInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if !input.Tier.Valid() || input.Tier == models.TierNone {
		utils.RespondWithError(c, http.StatusBadRequest, "Unknown plan tier: "+string(input.Tier))
		return
	}

	client, err := mc.Store.AssignMembership(input.Phone, input.Tier)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrClientNotFound):
			utils.RespondWithError(c, http.StatusNotFound, "Client not found")
		case errors.Is(err, store.ErrTierUnchanged):
			utils.RespondWithError(c, http.StatusConflict, "Client is already on this plan")
		default:
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to assign membership")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"client":  client,
		"message": fmt.Sprintf("%s successfully subscribed to %s!", client.Name, client.Membership),
	})
}
