// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The identifier is assigned by the database on insert; the status column
// stores the workflow wire string so the rows stay readable in plain SQL.
type OrderDTO struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	ClientID     int64  `gorm:"index;not null"`
	Status       string `gorm:"type:varchar(16);not null"`
	CreationDate time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// HistoryDTO is one row of the append-only status timeline. Rows are only
// ever inserted, never updated or deleted.
type HistoryDTO struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	OrderID    int64  `gorm:"index;not null"`
	Status     string `gorm:"type:varchar(16);not null"`
	ChangeDate time.Time
}

// TableName specifies the database table name for history entries.
func (HistoryDTO) TableName() string {
	return "order_history"
}

// fromDomain converts an order domain aggregate to its database representation.
// A zero ID lets the database assign the identifier on insert.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:           aggregate.ID().Int64(),
		ClientID:     aggregate.ClientID().Int64(),
		Status:       aggregate.Status().String(),
		CreationDate: aggregate.CreationDate(),
	}
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.NewOrderID(dto.ID)
	if err != nil {
		return nil, err
	}

	clientID, err := kernel.NewClientID(dto.ClientID)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, clientID, status, dto.CreationDate)
}

// historyToDomain converts a history row to its domain value object.
func historyToDomain(dto HistoryDTO) (order.HistoryEntry, error) {
	orderID, err := kernel.NewOrderID(dto.OrderID)
	if err != nil {
		return order.HistoryEntry{}, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return order.HistoryEntry{}, err
	}

	return order.NewHistoryEntry(orderID, status, dto.ChangeDate)
}
