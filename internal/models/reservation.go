package models

import "time"

type Reservation struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	ClientID    string `gorm:"size:36;index" json:"client_id"`
	ClientName  string `gorm:"size:100;not null" json:"client_name"`
	ClientPhone string `gorm:"size:20" json:"client_phone"`

	BarberName string `gorm:"size:50;not null;index:idx_barber_date" json:"barber_name"`

	Date      string `gorm:"size:10;not null;index:idx_barber_date" json:"date"`
	StartTime string `gorm:"size:5;not null" json:"start_time"`
	EndTime   string `gorm:"size:5;not null" json:"end_time"`

	Services []ReservationService `gorm:"foreignKey:ReservationID;constraint:OnDelete:CASCADE;" json:"services"`

	TotalDuration int     `json:"total_duration"`
	TotalPrice    float64 `json:"total_price"`

	Status string `gorm:"size:20;default:'pending';index" json:"status"`

	Notes string `gorm:"size:255" json:"notes"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ReservationService is the per-reservation snapshot of a catalog service.
// Catalog edits after booking never touch these rows.
type ReservationService struct {
	ID            uint   `gorm:"primaryKey" json:"-"`
	ReservationID string `gorm:"size:36;index" json:"-"`

	ServiceID   string  `gorm:"size:36" json:"service_id"`
	ServiceName string  `gorm:"size:100" json:"service_name"`
	Duration    int     `json:"duration"`
	Price       float64 `json:"price"`

	Position int `json:"-"`
}
