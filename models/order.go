package models

import "time"

// OrderStatus is the service pipeline position of an order. The pipeline reads
// Pending -> Cleaning -> Ready -> Picked Up, but transitions are deliberately
// unconstrained so staff can correct mistakes in either direction.
type OrderStatus string

const (
	StatusPending  OrderStatus = "Pending"
	StatusCleaning OrderStatus = "Cleaning"
	StatusReady    OrderStatus = "Ready"
	StatusPickedUp OrderStatus = "Picked Up"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusCleaning, StatusReady, StatusPickedUp:
		return true
	}
	return false
}

type ServiceType string

const (
	ServiceBasic       ServiceType = "Basic Clean"
	ServiceDeep        ServiceType = "Deep Clean"
	ServiceRestoration ServiceType = "Restoration"
	ServiceProtection  ServiceType = "Waterproof & Protect"
)

func (s ServiceType) Valid() bool {
	switch s {
	case ServiceBasic, ServiceDeep, ServiceRestoration, ServiceProtection:
		return true
	}
	return false
}

// ServiceTypes lists every service plan in menu order.
var ServiceTypes = []ServiceType{ServiceBasic, ServiceDeep, ServiceRestoration, ServiceProtection}

// Sneaker is a single pair dropped off as part of an order. Immutable once
// created; owned by its parent order.
type Sneaker struct {
	ID       string `json:"id"`
	Brand    string `json:"brand"`
	Model    string `json:"model"`
	Type     string `json:"type"`
	Colorway string `json:"colorway"`
}

type Order struct {
	ID                 string      `json:"id"`
	ClientID           string      `json:"clientId"`
	ClientName         string      `json:"clientName"`
	Sneakers           []Sneaker   `json:"sneakers"`
	DropOffDate        time.Time   `json:"dropOffDate"`
	ExpectedPickupDate string      `json:"expectedPickupDate"`
	ActualPickupDate   *time.Time  `json:"actualPickupDate,omitempty"`
	ServiceType        ServiceType `json:"serviceType"`
	AssignedEmployee   string      `json:"assignedEmployee"`
	Status             OrderStatus `json:"status"`
	TotalCost          float64     `json:"totalCost"`
}
