package controllers

import (
	"net/http"
	"sort"
	"time"

	"juluka-backend/models"
	"juluka-backend/services"
	"juluka-backend/store"
	"juluka-backend/utils"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	Store   *store.Store
	Insight *services.InsightService
}

func NewDashboardController(st *store.Store, insight *services.InsightService) *DashboardController {
	return &DashboardController{Store: st, Insight: insight}
}

// DashboardStats are the read-only summary numbers shown on the overview.
// They are derived from the full order collection on every request.
type DashboardStats struct {
	TotalRevenue    float64 `json:"totalRevenue"`
	ActiveJobs      int     `json:"activeJobs"`
	ReadyForPickup  int     `json:"readyForPickup"`
	DroppedToday    int     `json:"droppedToday"`
	StandardRevenue float64 `json:"standardRevenue"`
	BulkRevenue     float64 `json:"bulkRevenue"`
}

// ComputeStats derives the overview numbers from the order collection.
func ComputeStats(orders []models.Order, now time.Time) DashboardStats {
	var stats DashboardStats
	for _, o := range orders {
		stats.TotalRevenue += o.TotalCost
		switch o.Status {
		case models.StatusPending, models.StatusCleaning:
			stats.ActiveJobs++
		case models.StatusReady:
			stats.ReadyForPickup++
		}
		if utils.SameDay(now, o.DropOffDate) {
			stats.DroppedToday++
		}
		if len(o.Sneakers) >= models.BulkThreshold {
			stats.BulkRevenue += o.TotalCost
		} else {
			stats.StandardRevenue += o.TotalCost
		}
	}
	return stats
}

// UpcomingPickups returns the orders not yet picked up, ascending by expected
// pickup date, capped at limit. Pickup dates are ISO calendar dates, so the
// string order is the date order.
func UpcomingPickups(orders []models.Order, limit int) []models.Order {
	upcoming := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if o.Status != models.StatusPickedUp {
			upcoming = append(upcoming, o)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].ExpectedPickupDate < upcoming[j].ExpectedPickupDate
	})
	if len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}
	return upcoming
}

// GetOverview retrieves the dashboard numbers and the next pickups. The
// generated insight sentence is served separately so a slow external call
// never delays the stats.
func (dc *DashboardController) GetOverview(c *gin.Context) {
	orders := dc.Store.Orders()
	stats := ComputeStats(orders, time.Now())

	c.JSON(http.StatusOK, gin.H{
		"totalRevenue":    stats.TotalRevenue,
		"activeJobs":      stats.ActiveJobs,
		"readyForPickup":  stats.ReadyForPickup,
		"droppedToday":    stats.DroppedToday,
		"standardRevenue": stats.StandardRevenue,
		"bulkRevenue":     stats.BulkRevenue,
		"upcomingPickups": UpcomingPickups(orders, 5),
	})
}

// GetInsight retrieves the one-sentence performance summary for today. On any
// failure of the external text service the fixed fallback sentence is
// returned, never an error.
func (dc *DashboardController) GetInsight(c *gin.Context) {
	stats := ComputeStats(dc.Store.Orders(), time.Now())
	report := dc.Insight.DailyReport(c.Request.Context(), stats.DroppedToday, stats.TotalRevenue)

	c.JSON(http.StatusOK, gin.H{"insight": report})
}
