package model

import "time"

type Order struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID        uint      `gorm:"index" json:"user_id"`
	Status        string    `gorm:"default:pending" json:"status"`
	PaymentStatus string    `gorm:"default:unpaid" json:"payment_status"`
	Total         float64   `json:"total"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Customer *User       `gorm:"foreignKey:UserID" json:"customer,omitempty"`
	Items    []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

type OrderItem struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   uint    `gorm:"index" json:"order_id"`
	ProductID uint    `gorm:"index" json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}
