package store

import (
	"path/filepath"
	"testing"
	"time"

	"juluka-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestKV(t *testing.T, path string) *BoltKV {
	t.Helper()
	kv, err := OpenBolt(path)
	require.NoError(t, err)
	return kv
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	kv := openTestKV(t, filepath.Join(t.TempDir(), "juluka.db"))
	t.Cleanup(func() { kv.Close() })
	st, err := New(kv)
	require.NoError(t, err)
	return st
}

func intakeParams(phone, name string, pairs int) PlaceOrderParams {
	sneakers := make([]SneakerInput, 0, pairs)
	for i := 0; i < pairs; i++ {
		sneakers = append(sneakers, SneakerInput{Brand: "Nike", Model: "AJ1 High", Type: "Suede/Leather", Colorway: "Chicago"})
	}
	return PlaceOrderParams{
		Phone:              phone,
		Name:               name,
		Email:              name + "@example.com",
		Sneakers:           sneakers,
		ExpectedPickupDate: "2026-09-05",
		ServiceType:        models.ServiceBasic,
		AssignedEmployee:   "SEAN",
	}
}

func TestPlaceOrder_NewClientStandardRate(t *testing.T) {
	st := newTestStore(t)
	assertions := assert.New(t)

	order, client, err := st.PlaceOrder(intakeParams("0700000000", "John Doe", 2))
	require.NoError(t, err)

	assertions.Equal(4.00, order.TotalCost)
	assertions.Equal(models.StatusPending, order.Status)
	assertions.Len(order.Sneakers, 2)
	assertions.Equal(client.ID, order.ClientID)
	assertions.Equal("John Doe", order.ClientName)
	assertions.Equal(models.TierNone, client.Membership)
	assertions.NotEmpty(client.ID)
	assertions.Regexp(`^JK-[A-Z0-9]{5}$`, order.ID)
	assertions.Nil(order.ActualPickupDate)
}

func TestPlaceOrder_RepeatPhoneReusesClient(t *testing.T) {
	st := newTestStore(t)
	assertions := assert.New(t)

	_, first, err := st.PlaceOrder(intakeParams("0700000000", "John Doe", 2))
	require.NoError(t, err)

	// Same phone, different name: no new client, bulk rate kicks in at 4 pairs
	order, second, err := st.PlaceOrder(intakeParams("0700000000", "Johnny D", 4))
	require.NoError(t, err)

	assertions.Equal(first.ID, second.ID)
	assertions.Equal(first.Membership, second.Membership)
	assertions.Equal("Johnny D", second.Name)
	assertions.Equal(10.00, order.TotalCost)
	assertions.Len(st.Clients(), 1)
	assertions.Len(st.Orders(), 2)

	// Most recent order first
	assertions.Equal(order.ID, st.Orders()[0].ID)
}

func TestPlaceOrder_MemberFeeWaived(t *testing.T) {
	st := newTestStore(t)
	assertions := assert.New(t)

	_, _, err := st.PlaceOrder(intakeParams("0711111111", "Jane Member", 1))
	require.NoError(t, err)
	_, err = st.AssignMembership("0711111111", models.TierMonthlyUnlimited)
	require.NoError(t, err)

	order, client, err := st.PlaceOrder(intakeParams("0711111111", "Jane Member", 5))
	require.NoError(t, err)

	assertions.Equal(0.0, order.TotalCost)
	assertions.Equal(models.TierMonthlyUnlimited, client.Membership)
}

func TestPlaceOrder_RequiresSneakers(t *testing.T) {
	st := newTestStore(t)

	p := intakeParams("0700000000", "John Doe", 1)
	p.Sneakers = nil
	_, _, err := st.PlaceOrder(p)
	assert.ErrorIs(t, err, ErrNoSneakers)
}

func TestUpdateOrderStatus_UnconstrainedTransitions(t *testing.T) {
	st := newTestStore(t)
	assertions := assert.New(t)

	order, _, err := st.PlaceOrder(intakeParams("0700000000", "John Doe", 3))
	require.NoError(t, err)

	// Any status may follow any other, including reverting a pickup
	sequence := []models.OrderStatus{
		models.StatusReady,
		models.StatusPickedUp,
		models.StatusPending,
		models.StatusCleaning,
		models.StatusPickedUp,
	}
	for _, status := range sequence {
		updated, err := st.UpdateOrderStatus(order.ID, status)
		require.NoError(t, err)
		assertions.Equal(status, updated.Status)
		// Status changes never touch the stored total
		assertions.Equal(order.TotalCost, updated.TotalCost)
	}
}

func TestUpdateOrderStatus_StampsActualPickup(t *testing.T) {
	st := newTestStore(t)
	assertions := assert.New(t)

	order, _, err := st.PlaceOrder(intakeParams("0700000000", "John Doe", 1))
	require.NoError(t, err)

	updated, err := st.UpdateOrderStatus(order.ID, models.StatusPickedUp)
	require.NoError(t, err)
	require.NotNil(t, updated.ActualPickupDate)
	assertions.WithinDuration(time.Now(), *updated.ActualPickupDate, 5*time.Second)

	// Correcting a mistaken pickup clears the stamp
	updated, err = st.UpdateOrderStatus(order.ID, models.StatusReady)
	require.NoError(t, err)
	assertions.Nil(updated.ActualPickupDate)
}

func TestUpdateOrderStatus_UnknownOrder(t *testing.T) {
	st := newTestStore(t)

	_, err := st.UpdateOrderStatus("JK-XXXXX", models.StatusReady)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestAssignMembership(t *testing.T) {
	st := newTestStore(t)
	assertions := assert.New(t)

	_, _, err := st.PlaceOrder(intakeParams("0700000000", "John Doe", 1))
	require.NoError(t, err)

	client, err := st.AssignMembership("0700000000", models.TierMonthlyBasic)
	require.NoError(t, err)
	assertions.Equal(models.TierMonthlyBasic, client.Membership)
	assertions.Equal("John Doe", client.Name)

	// Same tier again is rejected and changes nothing
	_, err = st.AssignMembership("0700000000", models.TierMonthlyBasic)
	assertions.ErrorIs(err, ErrTierUnchanged)

	// Unknown phone
	_, err = st.AssignMembership("0799999999", models.TierVVIPLifetime)
	assertions.ErrorIs(err, ErrClientNotFound)
}

func TestRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "juluka.db")
	assertions := assert.New(t)

	kv := openTestKV(t, path)
	st, err := New(kv)
	require.NoError(t, err)

	_, _, err = st.PlaceOrder(intakeParams("0700000000", "John Doe", 2))
	require.NoError(t, err)
	_, _, err = st.PlaceOrder(intakeParams("0711111111", "Jane Roe", 4))
	require.NoError(t, err)
	_, err = st.AssignMembership("0711111111", models.TierVVIPLifetime)
	require.NoError(t, err)
	order := st.Orders()[0]
	_, err = st.UpdateOrderStatus(order.ID, models.StatusCleaning)
	require.NoError(t, err)

	wantOrders := st.Orders()
	wantClients := st.Clients()
	require.NoError(t, kv.Close())

	// A fresh store over the same file sees identical collections, in order
	kv2 := openTestKV(t, path)
	defer kv2.Close()
	reloaded, err := New(kv2)
	require.NoError(t, err)

	assertions.Equal(wantOrders, reloaded.Orders())
	assertions.Equal(wantClients, reloaded.Clients())
}

func TestLoad_MissingEntriesAreEmpty(t *testing.T) {
	st := newTestStore(t)

	assert.Empty(t, st.Orders())
	assert.Empty(t, st.Clients())
}

func TestLoad_CorruptEntryFailsClosed(t *testing.T) {
	kv := openTestKV(t, filepath.Join(t.TempDir(), "juluka.db"))
	defer kv.Close()

	require.NoError(t, kv.Put(ordersKey, []byte("{definitely not an array")))

	_, err := New(kv)
	assert.ErrorIs(t, err, ErrCorruptStore)
}
