// controllers/client.go
package controllers

import (
	"errors"
	"net/http"

	"juluka-backend/models"
	"juluka-backend/store"
	"juluka-backend/utils"

	"github.com/gin-gonic/gin"
)

type ClientController struct {
	Store *store.Store
}

func NewClientController(st *store.Store) *ClientController {
	return &ClientController{Store: st}
}

// DirectoryEntry is a client plus its order history count as shown in the
// client hub.
type DirectoryEntry struct {
	models.Client
	OrderCount int `json:"orderCount"`
}

// GetClients retrieves the client directory, most recent first
func (cc *ClientController) GetClients(c *gin.Context) {
	counts := cc.Store.OrderCountByClient()
	clients := cc.Store.Clients()

	entries := make([]DirectoryEntry, 0, len(clients))
	for _, client := range clients {
		entries = append(entries, DirectoryEntry{
			Client:     client,
			OrderCount: counts[client.ID],
		})
	}
	c.JSON(http.StatusOK, entries)
}

// LookupClient resolves a client by exact phone string. The intake form uses
// this to prefill repeat clients and surface their membership.
func (cc *ClientController) LookupClient(c *gin.Context) {
	phone := c.Query("phone")
	if phone == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "phone query parameter is required")
		return
	}

	client, err := cc.Store.ClientByPhone(phone)
	if err != nil {
		if errors.Is(err, store.ErrClientNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Client not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to look up client")
		}
		return
	}

	c.JSON(http.StatusOK, client)
}
