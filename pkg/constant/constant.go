package constant

import (
	"errors"
	"time"
)

const (
	CacheParentKey = "turnosya-backend"
)

const (
	RequestParamID = "id"

	RequestValidateUUID = "required,uuid"
)

const (
	BookingStatusPending   = "pending"
	BookingStatusPaid      = "paid"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCanceled  = "canceled"
	BookingStatusExpired   = "expired"

	BookingCanceledByUser   = "user"
	BookingCanceledByAdmin  = "admin"
	BookingCanceledBySystem = "system"
)

const (
	PaymentMethodMercadoPago = "mercadopago"
	PaymentMethodTransfer    = "transfer"

	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusFailed  = "failed"
	PaymentStatusExpired = "expired"

	PaymentCurrencyARS = "ARS"
)

const (
	RequestHeaderCallback = "x-callback-token"
)

const (
	FullDateFormat = time.RFC3339
	DateFormat     = "2006-01-02"
	HoursFormat    = "15:04"

	SecondsPerHour     = 3600
	MinutesPerHour     = 60
	MicrosecondsPerSec = 1000000
)

const (
	UserRoleUser  = "1"
	UserRoleOwner = "2"
	UserRoleAdmin = "9"
)

const (
	JwtFieldUser  = "user_id"
	JwtFieldEmail = "email"
	JwtFieldLevel = "level"
)

const (
	PaginationDefaultLimit = 10
	PaginationDefaultPage  = 1
)

var (
	ErrInvalidContextUserType = errors.New("invalid user type in context")
)
