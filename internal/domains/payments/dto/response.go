package dto

import (
	"github.com/escanor68/turnosya-backend/internal/domains/payments/repository"
	"github.com/escanor68/turnosya-backend/pkg/constant"
	"github.com/escanor68/turnosya-backend/pkg/helper"
)

type CreatePaymentResponse struct {
	ID            string  `json:"id"`
	GroupID       string  `json:"group_id"`
	PaymentMethod string  `json:"payment_method"`
	Amount        float64 `json:"amount"`
	Status        string  `json:"status"`
	ExpiryDate    string  `json:"expiry_date,omitempty"`
	PaymentURL    string  `json:"payment_url,omitempty"`
}

type PaymentResponse struct {
	ID            string  `json:"id"`
	GroupID       string  `json:"group_id"`
	PaymentMethod string  `json:"payment_method"`
	Status        string  `json:"status"`
	TransactionID string  `json:"transaction_id"`
	Amount        float64 `json:"amount"`
	PaidAt        string  `json:"paid_at,omitempty"`
	CreatedAt     string  `json:"created_at"`
}

func (p PaymentResponse) FromModel(model repository.Payment) PaymentResponse {
	paidAt := ""
	if model.PaidAt.Valid {
		paidAt = model.PaidAt.Time.Format(constant.FullDateFormat)
	}

	return PaymentResponse{
		ID:            model.ID.String(),
		GroupID:       model.GroupID.String(),
		PaymentMethod: model.PaymentMethod,
		Status:        model.PaymentStatus,
		TransactionID: model.TransactionID,
		Amount:        helper.Float64FromPg(model.Amount),
		PaidAt:        paidAt,
		CreatedAt:     model.CreatedAt.Time.Format(constant.FullDateFormat),
	}
}
