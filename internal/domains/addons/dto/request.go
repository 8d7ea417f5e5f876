package dto

type AddonCreateRequest struct {
	Name        string  `json:"name" validate:"required,min=3,max=255" example:"Paletas de pádel"`
	Description string  `json:"description" validate:"omitempty,max=500" example:"Dos paletas por turno"`
	Price       float64 `json:"price" validate:"required,gt=0" example:"1500"`
}

type AddonUpdateRequest struct {
	Name        string  `json:"name" validate:"omitempty,min=3,max=255" example:"Paletas de pádel"`
	Description string  `json:"description" validate:"omitempty,max=500" example:"Dos paletas por turno"`
	Price       float64 `json:"price" validate:"omitempty,gt=0" example:"1500"`
}
