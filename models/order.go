package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Order statuses. The admin may move an order to any status from any
// status; only membership in this set is validated.
const (
	OrderStatusPending    = "Pendente"
	OrderStatusProcessing = "Processando"
	OrderStatusShipped    = "Enviado"
	OrderStatusDelivered  = "Entregue"
	OrderStatusCancelled  = "Cancelado"
)

// OrderItem is a frozen point-in-time copy of a cart line. Later
// catalog price changes never touch an already-placed order.
type OrderItem struct {
	ProductID   int64   `json:"product_id"`
	ProductName string  `json:"product_name"`
	Size        string  `json:"size"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

type OrderItemsList []OrderItem

// Order represents a placed customer order. ClientID is nullable —
// guest checkout is allowed.
type Order struct {
	ID            int64          `json:"id" gorm:"primaryKey;autoIncrement"`
	ClientID      *int64         `json:"client_id,omitempty"`
	ClientName    string         `json:"client_name" gorm:"not null"`
	ClientPhone   string         `json:"client_phone"`
	ClientAddress string         `json:"client_address"`
	Items         OrderItemsList `json:"items" gorm:"type:jsonb;not null;default:'[]'"`
	Total         float64        `json:"total" gorm:"type:numeric(12,2);not null"`
	Status        string         `json:"status" gorm:"not null;check:status IN ('Pendente', 'Processando', 'Enviado', 'Entregue', 'Cancelado');index"`
	CreatedAt     time.Time      `json:"created_at" gorm:"autoCreateTime"`
}

func (Order) TableName() string {
	return "orders"
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=Pendente Processando Enviado Entregue Cancelado"`
}

func (l *OrderItemsList) Scan(value interface{}) error {
	if value == nil {
		*l = make(OrderItemsList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan OrderItemsList")
	}
	return json.Unmarshal(bytes, l)
}

func (l OrderItemsList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]OrderItem{})
	}
	return json.Marshal(l)
}
