package dto

import (
	"github.com/escanor68/turnosya-backend/internal/domains/addons/repository"
	"github.com/escanor68/turnosya-backend/pkg/constant"
	"github.com/escanor68/turnosya-backend/pkg/helper"
)

type AddonResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

func (a AddonResponse) FromModel(model repository.Addon) AddonResponse {
	return AddonResponse{
		ID:          model.ID.String(),
		Name:        model.Name,
		Description: model.Description.String,
		Price:       helper.Float64FromPg(model.Price),
		CreatedAt:   model.CreatedAt.Time.Format(constant.DateFormat),
		UpdatedAt:   model.UpdatedAt.Time.Format(constant.DateFormat),
	}
}

type GetAddonsResponse struct {
	Addons     []AddonResponse `json:"addons"`
	TotalItems int             `json:"total_items"`
	TotalPages int             `json:"total_pages"`
}

func (a *GetAddonsResponse) FromModel(addons []repository.Addon, totalItems, limit int) {
	a.TotalItems = totalItems
	a.TotalPages = helper.CalculateTotalPages(totalItems, limit)

	if len(addons) == 0 {
		a.Addons = []AddonResponse{}

		return
	}

	a.Addons = make([]AddonResponse, len(addons))

	for i, addon := range addons {
		a.Addons[i] = AddonResponse{}.FromModel(addon)
	}
}
