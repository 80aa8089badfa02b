package controllers

import (
	"testing"
	"time"

	"juluka-backend/models"

	"github.com/stretchr/testify/assert"
)

func testOrder(id string, status models.OrderStatus, pairs int, cost float64, dropOff time.Time, pickup string) models.Order {
	sneakers := make([]models.Sneaker, pairs)
	for i := range sneakers {
		sneakers[i] = models.Sneaker{ID: id, Brand: "Nike"}
	}
	return models.Order{
		ID:                 id,
		Sneakers:           sneakers,
		Status:             status,
		TotalCost:          cost,
		DropOffDate:        dropOff,
		ExpectedPickupDate: pickup,
	}
}

func TestComputeStats(t *testing.T) {
	now := time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)

	orders := []models.Order{
		testOrder("JK-AAAAA", models.StatusPending, 2, 4.00, now, "2026-09-03"),
		testOrder("JK-BBBBB", models.StatusCleaning, 4, 10.00, yesterday, "2026-09-02"),
		testOrder("JK-CCCCC", models.StatusReady, 1, 2.00, yesterday, "2026-09-01"),
		testOrder("JK-DDDDD", models.StatusPickedUp, 3, 7.50, yesterday, "2026-08-30"),
	}

	stats := ComputeStats(orders, now)

	assertions := assert.New(t)
	assertions.Equal(23.50, stats.TotalRevenue)
	assertions.Equal(2, stats.ActiveJobs)
	assertions.Equal(1, stats.ReadyForPickup)
	assertions.Equal(1, stats.DroppedToday)
	assertions.Equal(6.00, stats.StandardRevenue)
	assertions.Equal(17.50, stats.BulkRevenue)
}

func TestComputeStats_RevenueUnchangedByStatusMutation(t *testing.T) {
	now := time.Now()
	orders := []models.Order{
		testOrder("JK-AAAAA", models.StatusPending, 2, 4.00, now, "2026-09-03"),
		testOrder("JK-BBBBB", models.StatusReady, 4, 10.00, now, "2026-09-02"),
	}

	before := ComputeStats(orders, now).TotalRevenue

	// Status-only mutation: revenue must not move
	orders[0].Status = models.StatusPickedUp
	orders[1].Status = models.StatusPending

	assert.Equal(t, before, ComputeStats(orders, now).TotalRevenue)
}

func TestComputeStats_Empty(t *testing.T) {
	stats := ComputeStats(nil, time.Now())
	assert.Zero(t, stats.TotalRevenue)
	assert.Zero(t, stats.ActiveJobs)
}

func TestUpcomingPickups(t *testing.T) {
	now := time.Now()
	orders := []models.Order{
		testOrder("JK-AAAAA", models.StatusPending, 1, 2.00, now, "2026-09-10"),
		testOrder("JK-BBBBB", models.StatusPickedUp, 1, 2.00, now, "2026-09-01"),
		testOrder("JK-CCCCC", models.StatusReady, 1, 2.00, now, "2026-09-02"),
		testOrder("JK-DDDDD", models.StatusCleaning, 1, 2.00, now, "2026-09-06"),
		testOrder("JK-EEEEE", models.StatusPending, 1, 2.00, now, "2026-09-04"),
		testOrder("JK-FFFFF", models.StatusPending, 1, 2.00, now, "2026-09-08"),
		testOrder("JK-GGGGG", models.StatusPending, 1, 2.00, now, "2026-09-12"),
	}

	upcoming := UpcomingPickups(orders, 5)

	assertions := assert.New(t)
	assertions.Len(upcoming, 5)
	// Picked-up orders never appear
	for _, o := range upcoming {
		assertions.NotEqual(models.StatusPickedUp, o.Status)
	}
	// Ascending by expected pickup date, nearest five
	assertions.Equal([]string{"JK-CCCCC", "JK-EEEEE", "JK-DDDDD", "JK-FFFFF", "JK-AAAAA"},
		[]string{upcoming[0].ID, upcoming[1].ID, upcoming[2].ID, upcoming[3].ID, upcoming[4].ID})
}
