package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"
	"github.com/xendit/xendit-go/v7"
	"github.com/xendit/xendit-go/v7/invoice"

	"github.com/escanor68/turnosya-backend/config"
	bookingRepository "github.com/escanor68/turnosya-backend/internal/domains/bookings/repository"
	"github.com/escanor68/turnosya-backend/internal/domains/payments/dto"
	"github.com/escanor68/turnosya-backend/internal/domains/payments/repository"
	userRepository "github.com/escanor68/turnosya-backend/internal/domains/user/repository"
	"github.com/escanor68/turnosya-backend/pkg/constant"
	"github.com/escanor68/turnosya-backend/pkg/failure"
	"github.com/escanor68/turnosya-backend/pkg/helper"
	"github.com/escanor68/turnosya-backend/pkg/logger"
	"github.com/escanor68/turnosya-backend/pkg/mail"
	"github.com/escanor68/turnosya-backend/pkg/postgres"
	"github.com/escanor68/turnosya-backend/pkg/redis"
	xenditClient "github.com/escanor68/turnosya-backend/pkg/xendit"
)

type PaymentService interface {
	CreateInvoice(ctx context.Context, req dto.CreatePaymentInvoice) (dto.CreatePaymentResponse, error)
	CreateManualPayment(ctx context.Context, req dto.CreateManualPaymentRequest) (dto.CreatePaymentResponse, error)
	GetPaymentByGroup(ctx context.Context, groupID string) (dto.PaymentResponse, error)
	ConfirmTransfer(ctx context.Context, groupID string) error
	Callbacks(ctx context.Context, req dto.PaymentCallbackRequest, token string) error
}

type paymentService struct {
	db          postgres.PgxIface
	repo        repository.Querier
	bookingRepo bookingRepository.Querier
	userRepo    userRepository.Querier
	cache       redis.IRedisCache
	mail        mail.Service
	cfg         *config.Config
	logger      logger.Interface
	xendit      *xendit.APIClient
	validator   *validator.Validate
}

func New(db postgres.PgxIface, r repository.Querier, b bookingRepository.Querier, u userRepository.Querier, c redis.IRedisCache, m mail.Service, cfg *config.Config, l logger.Interface) PaymentService {
	return &paymentService{
		db:          db,
		repo:        r,
		bookingRepo: b,
		userRepo:    u,
		cache:       c,
		mail:        m,
		cfg:         cfg,
		logger:      l,
		xendit:      xenditClient.New(cfg),
		validator:   validator.New(),
	}
}

const (
	cacheGetBookingsKey   = "bookings"
	cacheCountBookingsKey = "bookings:count"

	identifier = "service - payments - %s"
)

func (s *paymentService) CreateInvoice(ctx context.Context, req dto.CreatePaymentInvoice) (res dto.CreatePaymentResponse, err error) {
	if err := s.validator.Struct(req); err != nil {
		s.logger.Error(identifier, "create invoice - validation error: %v", err)

		return res, failure.BadRequestFromString("validation error: " + err.Error())
	}

	createInvoice := *invoice.NewCreateInvoiceRequest(req.GroupID, req.Amount)
	createInvoice.SetPayerEmail(req.PayerEmail)
	createInvoice.SetCurrency(constant.PaymentCurrencyARS)

	invoiceResult, _, erro := s.xendit.InvoiceApi.CreateInvoice(ctx).CreateInvoiceRequest(createInvoice).Execute()
	if erro != nil {
		s.logger.Error(identifier, "create invoice - failed to create invoice: %v", erro)

		return res, failure.InternalError(erro)
	}

	paymentStatus := constant.PaymentStatusPending
	if invoiceResult.Status != "" {
		paymentStatus = invoiceResult.Status.String()
	}

	transactionID := ""
	if invoiceResult.Id != nil {
		transactionID = *invoiceResult.Id
	} else {
		s.logger.Error(identifier, "create invoice - invoice ID is nil")

		return res, failure.InternalError(errors.New("invoice ID is nil"))
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		s.logger.Error(identifier, "create invoice - failed to begin transaction: %v", err)

		return res, failure.InternalError(err)
	}

	defer func(tx pgx.Tx, ctx context.Context) {
		err := tx.Rollback(ctx)
		if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			s.logger.Error(identifier, "create invoice - failed to rollback transaction: %v", err)
		}
	}(tx, ctx)

	model, err := s.repo.InsertPayment(ctx, tx, repository.InsertPaymentParams{
		GroupID:       helper.PgUUID(req.GroupID),
		PaymentMethod: constant.PaymentMethodMercadoPago,
		PaymentStatus: paymentStatus,
		TransactionID: transactionID,
		PayerEmail:    helper.PgString(req.PayerEmail),
		Amount:        helper.PgNumericFromFloat(req.Amount),
	})
	if err != nil {
		s.logger.Error(identifier, "create invoice - failed to insert payment: %v", err)

		return res, failure.InternalError(err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error(identifier, "create invoice - failed to commit transaction: %v", err)

		return res, failure.InternalError(err)
	}

	res = dto.CreatePaymentResponse{
		ID:            model.String(),
		GroupID:       req.GroupID,
		PaymentMethod: constant.PaymentMethodMercadoPago,
		Amount:        req.Amount,
		Status:        paymentStatus,
		ExpiryDate:    invoiceResult.ExpiryDate.Format(constant.DateFormat),
		PaymentURL:    invoiceResult.InvoiceUrl,
	}

	return res, nil
}

func (s *paymentService) CreateManualPayment(ctx context.Context, req dto.CreateManualPaymentRequest) (res dto.CreatePaymentResponse, err error) {
	if err := s.validator.Struct(req); err != nil {
		s.logger.Error(identifier, "create manual payment - validation error: %v", err)

		return res, failure.BadRequestFromString("validation error: " + err.Error())
	}

	model, err := s.repo.InsertPayment(ctx, s.db, repository.InsertPaymentParams{
		GroupID:       helper.PgUUID(req.GroupID),
		PaymentMethod: req.PaymentMethod,
		PaymentStatus: constant.PaymentStatusPending,
		TransactionID: req.PaymentMethod + "-" + req.GroupID,
		PayerEmail:    helper.PgString(req.PayerEmail),
		Amount:        helper.PgNumericFromFloat(req.Amount),
	})
	if err != nil {
		s.logger.Error(identifier, "create manual payment - failed to insert payment: %v", err)

		return res, failure.InternalError(err)
	}

	res = dto.CreatePaymentResponse{
		ID:            model.String(),
		GroupID:       req.GroupID,
		PaymentMethod: req.PaymentMethod,
		Amount:        req.Amount,
		Status:        constant.PaymentStatusPending,
	}

	return res, nil
}

func (s *paymentService) GetPaymentByGroup(ctx context.Context, groupID string) (res dto.PaymentResponse, err error) {
	payment, err := s.repo.GetPaymentByGroupId(ctx, s.db, helper.PgUUID(groupID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.logger.Error(identifier, "get payment - payment not found for group: "+groupID)

			return res, failure.NotFound("payment not found")
		}

		s.logger.Error(identifier, "get payment - error getting payment by group: %v", err)

		return res, failure.InternalError(err)
	}

	return res.FromModel(payment), nil
}

func (s *paymentService) ConfirmTransfer(ctx context.Context, groupID string) (err error) {
	payment, err := s.repo.GetPaymentByGroupId(ctx, s.db, helper.PgUUID(groupID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return failure.NotFound("payment not found for group: " + groupID)
		}

		s.logger.Error(identifier, "confirm transfer - error getting payment: %v", err)

		return failure.InternalError(err)
	}

	if payment.PaymentMethod != constant.PaymentMethodTransfer {
		return failure.BadRequestFromString("payment is not a bank transfer")
	}

	if payment.PaymentStatus == constant.PaymentStatusPaid {
		return failure.Conflict("payment already confirmed")
	}

	if err = s.settleGroup(ctx, groupID, constant.PaymentStatusPaid, constant.BookingStatusPaid); err != nil {
		return err
	}

	s.sendConfirmationEmail(context.WithoutCancel(ctx), groupID)

	return nil
}

func (s *paymentService) Callbacks(ctx context.Context, req dto.PaymentCallbackRequest, token string) (err error) {
	if s.cfg.Xendit.CallbackToken != token {
		s.logger.Error(identifier, "callbacks - invalid callback token: %s", token)

		return failure.Unauthorized("invalid callback token")
	}

	paymentStatus, bookingStatus := mapCallbackStatus(req.Status)

	if err = s.settleGroup(ctx, req.ExternalID, paymentStatus, bookingStatus); err != nil {
		return err
	}

	s.logger.Info(identifier, "callbacks - payment status updated for group: %s", req.ExternalID)

	if paymentStatus == constant.PaymentStatusPaid {
		s.sendConfirmationEmail(context.WithoutCancel(ctx), req.ExternalID)
	}

	return nil
}

func mapCallbackStatus(status string) (paymentStatus, bookingStatus string) {
	switch status {
	case "PAID", "SETTLED":
		return constant.PaymentStatusPaid, constant.BookingStatusPaid
	case "EXPIRED":
		return constant.PaymentStatusExpired, constant.BookingStatusExpired
	default:
		return constant.PaymentStatusFailed, constant.BookingStatusPending
	}
}

// settleGroup updates the payment and every booking row of the group in one transaction.
func (s *paymentService) settleGroup(ctx context.Context, groupID, paymentStatus, bookingStatus string) (err error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		s.logger.Error(identifier, "settle group - failed to begin transaction: %v", err)

		return failure.InternalError(err)
	}

	defer func(tx pgx.Tx, ctx context.Context) {
		err := tx.Rollback(ctx)
		if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			s.logger.Error(identifier, "settle group - failed to rollback transaction: %v", err)
		}
	}(tx, ctx)

	if err = s.repo.UpdatePaymentStatusByGroup(ctx, tx, repository.UpdatePaymentStatusByGroupParams{
		GroupID:       helper.PgUUID(groupID),
		PaymentStatus: paymentStatus,
		PaidAt:        helper.PgTimestamp(time.Now()),
	}); err != nil {
		s.logger.Error(identifier, "settle group - failed to update payment status: %v", err)

		return failure.InternalError(err)
	}

	if err = s.bookingRepo.UpdateBookingStatusByGroup(ctx, tx, bookingRepository.UpdateBookingStatusByGroupParams{
		GroupID: helper.PgUUID(groupID),
		Status:  bookingStatus,
	}); err != nil {
		s.logger.Error(identifier, "settle group - failed to update booking status: %v", err)

		return failure.InternalError(err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error(identifier, "settle group - failed to commit transaction: %v", err)

		return failure.InternalError(err)
	}

	go func() {
		ctx := context.WithoutCancel(ctx)

		if err := s.cache.Clear(ctx, helper.BuildCacheKey(cacheGetBookingsKey, "*")); err != nil {
			s.logger.Error(identifier, "settle group - error clearing bookings cache: %v", err)
		}

		if err := s.cache.Clear(ctx, helper.BuildCacheKey(cacheCountBookingsKey, "*")); err != nil {
			s.logger.Error(identifier, "settle group - error clearing bookings count cache: %v", err)
		}
	}()

	return nil
}

func (s *paymentService) sendConfirmationEmail(ctx context.Context, groupID string) {
	payment, err := s.repo.GetPaymentByGroupId(ctx, s.db, helper.PgUUID(groupID))
	if err != nil {
		s.logger.Error(identifier, "confirmation email - error getting payment: %v", err)

		return
	}

	bookings, err := s.bookingRepo.GetBookingsByGroupId(ctx, s.db, helper.PgUUID(groupID))
	if err != nil || len(bookings) == 0 {
		s.logger.Error(identifier, "confirmation email - error getting bookings for group %s: %v", groupID, err)

		return
	}

	first := bookings[0]

	customerName := payment.PayerEmail.String
	if user, err := s.userRepo.GetUserById(ctx, s.db, first.UserID); err == nil && user.FullName.Valid {
		customerName = user.FullName.String
	}

	startTime, _ := helper.PgTimeToString(first.StartTime)
	endTime, _ := helper.PgTimeToString(first.EndTime)

	data := mail.BookingConfirmationData{
		CustomerName:     customerName,
		BookingID:        groupID,
		Status:           first.Status,
		BookingDate:      first.BookingDate.Time.Format(constant.DateFormat),
		StartTime:        startTime,
		EndTime:          endTime,
		TotalAmount:      helper.FormatMoney(helper.Float64FromPg(payment.Amount)),
		PaymentMethod:    payment.PaymentMethod,
		ConfirmationDate: time.Now().Format(constant.FullDateFormat),
	}

	if err := s.mail.SendBookingConfirmationEmail(payment.PayerEmail.String, data); err != nil {
		s.logger.Error(identifier, "confirmation email - failed to send email: %v", err)
	}
}
