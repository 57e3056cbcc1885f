package models

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

const (
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string `gorm:"unique;not null"          json:"username"`
	PasswordHash string `gorm:"not null"                 json:"-"`
	Role         string `gorm:"not null"                 json:"role"`
}

type Product struct {
	ID    uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name  string  `gorm:"not null"                 json:"name"`
	Price float64 `gorm:"not null"                 json:"price"`
	Stock int     `gorm:"not null"                 json:"stock"`
}

type Order struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint    `gorm:"index;not null"           json:"user_id"`
	Total     float64 `gorm:"not null"                 json:"total"`
	Status    string  `gorm:"not null"                 json:"status"`
	CreatedAt int64   `gorm:"not null"                 json:"created_at"`
}

// OrderLine snapshots one cart entry at the moment of sale. The table has no
// primary key: one row per cart entry per order, immutable after checkout.
type OrderLine struct {
	OrderID   uint    `gorm:"index;not null" json:"order_id"`
	ProductID uint    `gorm:"not null"       json:"product_id"`
	Qty       int     `gorm:"not null"       json:"qty"`
	UnitPrice float64 `gorm:"not null"       json:"unit_price"`
}
