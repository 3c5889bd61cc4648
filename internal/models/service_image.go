package models

import "time"

// Foto de divulgação de um serviço do catálogo. O catálogo em si é
// estático; só a imagem vive no banco.
type ServiceImage struct {
	ServiceID string `gorm:"size:50;primaryKey" json:"service_id"`
	URL       string `gorm:"size:255;not null" json:"url"`

	UpdatedAt time.Time `json:"updated_at"`
}
