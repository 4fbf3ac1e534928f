package domain

import "time"

// Product is a catalog item owned by the user that created it. IsActive doubles
// as the soft-delete marker: a soft-deleted product keeps its row with
// IsActive=false, a hard delete removes the row.
type Product struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid"`
	Name        string    `json:"name" gorm:"not null"`
	Description *string   `json:"description"`
	Price       float64   `json:"price" gorm:"not null"`
	Stock       int       `json:"stock" gorm:"not null"`
	Category    string    `json:"category" gorm:"not null;index"`
	Image       *string   `json:"image"`
	IsActive    bool      `json:"isActive" gorm:"not null;default:true"`
	UserID      string    `json:"userId" gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// OwnedOrManagedBy reports whether the given caller may mutate this product:
// the recorded owner or an administrator.
func (p *Product) OwnedOrManagedBy(userID, role string) bool {
	return p.UserID == userID || role == RoleAdmin
}
