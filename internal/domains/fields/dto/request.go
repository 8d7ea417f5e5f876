package dto

type FieldCreateRequest struct {
	Name        string  `json:"name" validate:"required,min=5,max=255"`
	Type        string  `json:"type" validate:"required,min=3,max=100"`
	Price       float64 `json:"price" validate:"required,numeric,gt=0"`
	Duration    int     `json:"duration" validate:"required,min=30,max=240"`
	Players     string  `json:"players" validate:"omitempty,max=20"`
	Address     string  `json:"address" validate:"required,max=255"`
	City        string  `json:"city" validate:"required,max=100"`
	Province    string  `json:"province" validate:"omitempty,max=100"`
	Description string  `json:"description" validate:"omitempty"`
	HasAddons   *bool   `json:"has_addons" validate:"omitempty"`
}

type FieldUpdateRequest struct {
	Name        string  `json:"name" validate:"omitempty,min=5,max=255"`
	Type        string  `json:"type" validate:"omitempty,min=3,max=100"`
	Price       float64 `json:"price" validate:"omitempty,numeric,gt=0"`
	Duration    int     `json:"duration" validate:"omitempty,min=30,max=240"`
	Players     string  `json:"players" validate:"omitempty,max=20"`
	Address     string  `json:"address" validate:"omitempty,max=255"`
	City        string  `json:"city" validate:"omitempty,max=100"`
	Province    string  `json:"province" validate:"omitempty,max=100"`
	Description string  `json:"description" validate:"omitempty"`
	HasAddons   *bool   `json:"has_addons" validate:"omitempty"`
}

type DeleteFieldImageRequest struct {
	ImageURL string `json:"image_url" validate:"required,url"`
}
