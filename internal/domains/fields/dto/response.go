package dto

import (
	"github.com/escanor68/turnosya-backend/internal/domains/fields/repository"
	"github.com/escanor68/turnosya-backend/pkg/constant"
	"github.com/escanor68/turnosya-backend/pkg/helper"
)

type FieldResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Price       float64  `json:"price"`
	Duration    int      `json:"duration"`
	Players     string   `json:"players,omitempty"`
	Address     string   `json:"address"`
	City        string   `json:"city"`
	Province    string   `json:"province,omitempty"`
	Description string   `json:"description,omitempty"`
	Images      []string `json:"images"`
	HasAddons   bool     `json:"has_addons"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

func (f FieldResponse) FromModel(model repository.Field) FieldResponse {
	images := model.Images
	if images == nil {
		images = []string{}
	}

	return FieldResponse{
		ID:          model.ID.String(),
		Name:        model.Name,
		Type:        model.Type,
		Price:       helper.Float64FromPg(model.Price),
		Duration:    int(model.Duration),
		Players:     model.Players.String,
		Address:     model.Address.String,
		City:        model.City.String,
		Province:    model.Province.String,
		Description: model.Description.String,
		Images:      images,
		HasAddons:   helper.BoolFromPg(model.HasAddons),
		CreatedAt:   model.CreatedAt.Time.Format(constant.DateFormat),
		UpdatedAt:   model.UpdatedAt.Time.Format(constant.DateFormat),
	}
}

type GetFieldsResponse struct {
	Fields     []FieldResponse `json:"fields"`
	TotalItems int             `json:"total_items"`
	TotalPages int             `json:"total_pages"`
}

func (f *GetFieldsResponse) FromModel(fields []repository.Field, totalItems, limit int) {
	f.TotalItems = totalItems
	f.TotalPages = helper.CalculateTotalPages(totalItems, limit)

	if len(fields) == 0 {
		f.Fields = []FieldResponse{}

		return
	}

	f.Fields = make([]FieldResponse, len(fields))

	for i, field := range fields {
		f.Fields[i] = FieldResponse{}.FromModel(field)
	}
}
