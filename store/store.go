package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"juluka-backend/models"
	"juluka-backend/utils"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound  = errors.New("order not found")
	ErrClientNotFound = errors.New("client not found")
	// ErrTierUnchanged rejects assigning a client the membership tier it
	// already holds.
	ErrTierUnchanged = errors.New("client already holds this membership tier")
	ErrNoSneakers    = errors.New("order must contain at least one sneaker")
)

// Store is the authoritative in-memory copy of the shop's orders and clients.
// Every mutation goes through one of its command methods, which update memory
// first and then rewrite the backing entry in full. Both collections are kept
// most-recent-first.
type Store struct {
	mu      sync.RWMutex
	orders  []models.Order
	clients []models.Client
	kv      KV
}

// New builds a Store over kv and loads both collections. A key that has never
// been written loads as an empty collection; a key that is present but does
// not parse fails with ErrCorruptStore rather than silently discarding data.
func New(kv KV) (*Store, error) {
	s := &Store{kv: kv}

	orders, err := loadEntry[models.Order](kv, ordersKey)
	if err != nil {
		return nil, err
	}
	clients, err := loadEntry[models.Client](kv, clientsKey)
	if err != nil {
		return nil, err
	}

	s.orders = orders
	s.clients = clients
	return s, nil
}

func loadEntry[T any](kv KV, key string) ([]T, error) {
	data, err := kv.Get(key)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return []T{}, nil
	}
	var out []T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptStore, key, err)
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

// SneakerInput describes one pair on the intake form.
type SneakerInput struct {
	Brand    string
	Model    string
	Type     string
	Colorway string
}

// PlaceOrderParams is the intake command input: the entered client details
// plus the order being dropped off.
type PlaceOrderParams struct {
	Phone              string
	Name               string
	Email              string
	Notes              string
	Sneakers           []SneakerInput
	ExpectedPickupDate string
	ServiceType        models.ServiceType
	AssignedEmployee   string
	DropOffDate        time.Time
}

// PlaceOrder registers a drop-off. The entered client is reconciled against
// the registry by phone number: an unknown phone creates a fresh client with
// no membership, a known phone reuses the existing identifier and membership
// tier while refreshing name and email. The order total is computed from the
// resolved tier, so members get the fee waived. Both collections are
// persisted before returning.
func (s *Store) PlaceOrder(p PlaceOrderParams) (models.Order, models.Client, error) {
	if len(p.Sneakers) == 0 {
		return models.Order{}, models.Client{}, ErrNoSneakers
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	client := s.upsertClient(p.Phone, p.Name, p.Email, p.Notes)

	sneakers := make([]models.Sneaker, 0, len(p.Sneakers))
	for _, in := range p.Sneakers {
		sneakers = append(sneakers, models.Sneaker{
			ID:       uuid.NewString(),
			Brand:    in.Brand,
			Model:    in.Model,
			Type:     in.Type,
			Colorway: in.Colorway,
		})
	}

	// UTC keeps the persisted JSON form and the in-memory value identical
	// across a reload.
	dropOff := p.DropOffDate.UTC()
	if p.DropOffDate.IsZero() {
		dropOff = time.Now().UTC()
	}

	order := models.Order{
		ID:                 utils.NewOrderCode(),
		ClientID:           client.ID,
		ClientName:         client.Name,
		Sneakers:           sneakers,
		DropOffDate:        dropOff,
		ExpectedPickupDate: p.ExpectedPickupDate,
		ServiceType:        p.ServiceType,
		AssignedEmployee:   p.AssignedEmployee,
		Status:             models.StatusPending,
		TotalCost:          models.OrderTotal(len(sneakers), client.Membership),
	}

	s.orders = append([]models.Order{order}, s.orders...)

	if err := s.persistOrders(); err != nil {
		return models.Order{}, models.Client{}, err
	}
	if err := s.persistClients(); err != nil {
		return models.Order{}, models.Client{}, err
	}
	return order, client, nil
}

// upsertClient resolves the entered details against the registry. Caller
// holds the write lock.
func (s *Store) upsertClient(phone, name, email, notes string) models.Client {
	for i, c := range s.clients {
		if c.Phone == phone {
			c.Name = name
			c.Email = email
			if notes != "" {
				c.Notes = notes
			}
			s.clients[i] = c
			return c
		}
	}
	client := models.Client{
		ID:         uuid.NewString(),
		Name:       name,
		Phone:      phone,
		Email:      email,
		Membership: models.TierNone,
		Notes:      notes,
	}
	s.clients = append([]models.Client{client}, s.clients...)
	return client
}

// UpdateOrderStatus sets an order's status to any enumerated value; there is
// no transition graph, staff may move an order backwards to correct mistakes.
// Entering Picked Up stamps the actual pickup time, leaving it clears the
// stamp. Total cost is never recomputed.
func (s *Store) UpdateOrderStatus(id string, status models.OrderStatus) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, o := range s.orders {
		if o.ID != id {
			continue
		}
		o.Status = status
		if status == models.StatusPickedUp {
			if o.ActualPickupDate == nil {
				now := time.Now().UTC()
				o.ActualPickupDate = &now
			}
		} else {
			o.ActualPickupDate = nil
		}
		s.orders[i] = o
		if err := s.persistOrders(); err != nil {
			return models.Order{}, err
		}
		return o, nil
	}
	return models.Order{}, ErrOrderNotFound
}

// AssignMembership sets the tier on the client with exactly this phone
// number. Re-assigning the tier a client already holds is rejected.
func (s *Store) AssignMembership(phone string, tier models.MembershipTier) (models.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, c := range s.clients {
		if c.Phone != phone {
			continue
		}
		if c.Membership == tier {
			return models.Client{}, ErrTierUnchanged
		}
		c.Membership = tier
		s.clients[i] = c
		if err := s.persistClients(); err != nil {
			return models.Client{}, err
		}
		return c, nil
	}
	return models.Client{}, ErrClientNotFound
}

// Orders returns a snapshot copy of the order collection, most recent first.
func (s *Store) Orders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// Clients returns a snapshot copy of the client registry, most recent first.
func (s *Store) Clients() []models.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Client, len(s.clients))
	copy(out, s.clients)
	return out
}

// ClientByPhone resolves a client by exact phone string.
func (s *Store) ClientByPhone(phone string) (models.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.clients {
		if c.Phone == phone {
			return c, nil
		}
	}
	return models.Client{}, ErrClientNotFound
}

// OrderCountByClient returns how many orders each client has placed, keyed by
// client identifier.
func (s *Store) OrderCountByClient() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	counts := make(map[string]int, len(s.clients))
	for _, o := range s.orders {
		counts[o.ClientID]++
	}
	return counts
}

func (s *Store) persistOrders() error {
	data, err := json.Marshal(s.orders)
	if err != nil {
		return err
	}
	return s.kv.Put(ordersKey, data)
}

func (s *Store) persistClients() error {
	data, err := json.Marshal(s.clients)
	if err != nil {
		return err
	}
	return s.kv.Put(clientsKey, data)
}
