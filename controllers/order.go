// controllers/order.go
package controllers

import (
	"errors"
	"net/http"
	"slices"

	"juluka-backend/metrics"
	"juluka-backend/models"
	"juluka-backend/store"
	"juluka-backend/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Store *store.Store
}

func NewOrderController(st *store.Store) *OrderController {
	return &OrderController{Store: st}
}

// SneakerInput defines one pair on the intake form
type SneakerInput struct {
	Brand    string `json:"brand"`
	Model    string `json:"model"`
	Type     string `json:"type"`
	Colorway string `json:"colorway"`
}

// CreateOrderInput defines the expected JSON structure for a drop-off intake
type CreateOrderInput struct {
	Phone              string             `json:"phone" binding:"required"`
	ClientName         string             `json:"clientName" binding:"required"`
	Email              string             `json:"email"`
	Notes              string             `json:"notes"`
	Sneakers           []SneakerInput     `json:"sneakers" binding:"required,min=1"`
	ExpectedPickupDate string             `json:"expectedPickupDate" binding:"required"`
	ServiceType        models.ServiceType `json:"serviceType" binding:"required"`
	AssignedEmployee   string             `json:"assignedEmployee" binding:"required"`
}

// UpdateOrderStatusInput defines the expected JSON structure for a status change
type UpdateOrderStatusInput struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// CreateOrder registers a drop-off: the entered client is reconciled against
// the registry by phone, the order is priced off the resolved membership tier
// and both collections are persisted.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var input CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !input.ServiceType.Valid() {
		utils.RespondWithError(c, http.StatusBadRequest, "Unknown service type: "+string(input.ServiceType))
		return
	}
	if !slices.Contains(models.Employees, input.AssignedEmployee) {
		utils.RespondWithError(c, http.StatusBadRequest, "Unknown technician: "+input.AssignedEmployee)
		return
	}

	sneakers := make([]store.SneakerInput, 0, len(input.Sneakers))
	for _, s := range input.Sneakers {
		sneakers = append(sneakers, store.SneakerInput{
			Brand:    s.Brand,
			Model:    s.Model,
			Type:     s.Type,
			Colorway: s.Colorway,
		})
	}

	order, client, err := oc.Store.PlaceOrder(store.PlaceOrderParams{
		Phone:              input.Phone,
		Name:               input.ClientName,
		Email:              input.Email,
		Notes:              input.Notes,
		Sneakers:           sneakers,
		ExpectedPickupDate: input.ExpectedPickupDate,
		ServiceType:        input.ServiceType,
		AssignedEmployee:   input.AssignedEmployee,
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create order")
		return
	}

	metrics.OrdersCreated.Inc()
	c.JSON(http.StatusCreated, gin.H{
		"order":  order,
		"client": client,
	})
}

// GetOrders retrieves the full order pipeline, most recent first
func (oc *OrderController) GetOrders(c *gin.Context) {
	c.JSON(http.StatusOK, oc.Store.Orders())
}

// UpdateOrderStatus sets an order's status to any enumerated value. No
// transition graph is enforced; staff may move jobs backwards.
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	var input UpdateOrderStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if !input.Status.Valid() {
		utils.RespondWithError(c, http.StatusBadRequest, "Unknown status: "+string(input.Status))
		return
	}

	order, err := oc.Store.UpdateOrderStatus(c.Param("id"), input.Status)
	if err != nil {
		if errors.Is(err, store.ErrOrderNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Order not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update order")
		}
		return
	}

	c.JSON(http.StatusOK, order)
}
