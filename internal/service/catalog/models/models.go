package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/homeshine/HSB-BookingService/internal/domain"
)

// Response модели

// ServiceResponse ответ с данными услуги
type ServiceResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Description     *string   `json:"description,omitempty"`
	Price           float64   `json:"price"`
	DurationMinutes int       `json:"durationMinutes"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ServiceListResponse ответ со списком услуг и доступными слотами времени
type ServiceListResponse struct {
	Services  []ServiceResponse `json:"services"`
	TimeSlots []string          `json:"timeSlots"`
}

// Методы конвертации

// FromDomainService конвертирует domain модель в DTO
func FromDomainService(s *domain.Service) *ServiceResponse {
	if s == nil {
		return nil
	}

	return &ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		Description:     s.Description,
		Price:           s.Price,
		DurationMinutes: s.DurationMinutes,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

// FromDomainServiceList конвертирует список domain моделей в DTO
func FromDomainServiceList(services []*domain.Service) *ServiceListResponse {
	resp := &ServiceListResponse{
		Services:  make([]ServiceResponse, 0, len(services)),
		TimeSlots: make([]string, 0, len(domain.TimeSlots)),
	}

	for _, svc := range services {
		if svcResp := FromDomainService(svc); svcResp != nil {
			resp.Services = append(resp.Services, *svcResp)
		}
	}

	for _, slot := range domain.TimeSlots {
		resp.TimeSlots = append(resp.TimeSlots, slot.String())
	}

	return resp
}
