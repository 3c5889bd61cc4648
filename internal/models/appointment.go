package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Appointment é o registro persistido de um horário marcado.
// Services guarda os títulos já desnormalizados (uma entrada por serviço,
// na ordem em que o cliente selecionou).
type Appointment struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Phone string `gorm:"size:20;not null" json:"phone"`

	Services pq.StringArray `gorm:"type:text[]" json:"services"`

	Date string `gorm:"size:10;not null;uniqueIndex:idx_appointments_date_time" json:"date"`
	Time string `gorm:"size:5;not null;uniqueIndex:idx_appointments_date_time" json:"time"`

	TotalValue float64 `json:"total_value"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// O id é atribuído pelo store, nunca pelo chamador.
func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
