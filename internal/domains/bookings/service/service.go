package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/escanor68/turnosya-backend/config"
	addonRepository "github.com/escanor68/turnosya-backend/internal/domains/addons/repository"
	"github.com/escanor68/turnosya-backend/internal/domains/bookings/dto"
	"github.com/escanor68/turnosya-backend/internal/domains/bookings/pricing"
	"github.com/escanor68/turnosya-backend/internal/domains/bookings/recurrence"
	"github.com/escanor68/turnosya-backend/internal/domains/bookings/repository"
	fieldRepository "github.com/escanor68/turnosya-backend/internal/domains/fields/repository"
	paymentDto "github.com/escanor68/turnosya-backend/internal/domains/payments/dto"
	paymentService "github.com/escanor68/turnosya-backend/internal/domains/payments/service"
	"github.com/escanor68/turnosya-backend/pkg/constant"
	"github.com/escanor68/turnosya-backend/pkg/failure"
	"github.com/escanor68/turnosya-backend/pkg/gdto"
	"github.com/escanor68/turnosya-backend/pkg/helper"
	"github.com/escanor68/turnosya-backend/pkg/logger"
	"github.com/escanor68/turnosya-backend/pkg/postgres"
	"github.com/escanor68/turnosya-backend/pkg/redis"
)

type BookingService interface {
	CreateBooking(ctx context.Context, req dto.CreateBookingRequest, userID, email string) (dto.CreateBookingResponse, error)
	QuoteBooking(ctx context.Context, req dto.QuoteBookingRequest) (dto.QuoteResponse, error)
	GetRecurrenceOptions() dto.GetRecurrenceOptionsResponse
	GetBookingByID(ctx context.Context, id string) (dto.BookingResponse, error)
	GetBookingsByGroup(ctx context.Context, groupID string) (dto.GetBookingsResponse, error)
	GetUserBookings(ctx context.Context, userID string, req gdto.PaginationRequest) (dto.GetBookingsResponse, error)
	CountUserBookings(ctx context.Context, userID string, req gdto.PaginationRequest) (int, error)
	GetAllBookings(ctx context.Context, req gdto.PaginationRequest) (dto.GetBookingsResponse, error)
	CountAllBookings(ctx context.Context, req gdto.PaginationRequest) (int, error)
	GetBookedSlots(ctx context.Context, req dto.GetBookedSlotsRequest) (dto.GetBookedSlotsResponse, error)
	CancelUserBooking(ctx context.Context, req dto.CancelUserBookingRequest) error
}

type bookingService struct {
	db             postgres.PgxIface
	repo           repository.Querier
	fieldRepo      fieldRepository.Querier
	addonRepo      addonRepository.Querier
	paymentService paymentService.PaymentService
	cache          redis.IRedisCache
	cfg            *config.Config
	logger         logger.Interface
}

func New(db postgres.PgxIface, r repository.Querier, f fieldRepository.Querier, a addonRepository.Querier, p paymentService.PaymentService, c redis.IRedisCache, cfg *config.Config, l logger.Interface) BookingService {
	return &bookingService{
		db:             db,
		repo:           r,
		fieldRepo:      f,
		addonRepo:      a,
		paymentService: p,
		cache:          c,
		cfg:            cfg,
		logger:         l,
	}
}

const (
	cacheGetBookingKey    = "booking"
	cacheCountBookingsKey = "bookings:count"
	cacheGetBookingsKey   = "bookings"

	identifier = "service - booking - %s"
)

// occurrences expands a booking request into its occurrence dates. A request
// without recurrence yields the start date alone; otherwise the requested
// count is clamped and exception dates are skipped without replacement.
func (s *bookingService) occurrences(date, freqStr string, count int, exceptions []string) ([]time.Time, pricing.Option, int, error) {
	start, err := time.Parse(constant.DateFormat, date)
	if err != nil {
		return nil, pricing.Option{}, 0, failure.BadRequestFromString("invalid booking date format")
	}

	freq := recurrence.ParseFrequency(freqStr)
	opt := pricing.OptionFor(freq)

	if freq == recurrence.None {
		return []time.Time{start}, opt, 1, nil
	}

	clamped := recurrence.ClampCount(count, recurrence.MinWizardCount)

	exc := make(map[string]struct{}, len(exceptions))
	for _, e := range exceptions {
		exc[e] = struct{}{}
	}

	occ := recurrence.Periodic(start, freq, clamped, exc)

	return occ, opt, clamped, nil
}

func (s *bookingService) addonCatalog(ctx context.Context, ids []string) ([]pricing.Addon, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	addonIDs := make([]pgtype.UUID, len(ids))
	for i, id := range ids {
		addonIDs[i] = helper.PgUUID(id)
	}

	addons, err := s.addonRepo.GetAddonsByIds(ctx, s.db, addonIDs)
	if err != nil {
		return nil, err
	}

	catalog := make([]pricing.Addon, len(addons))
	for i, addon := range addons {
		catalog[i] = pricing.Addon{
			ID:          addon.ID.String(),
			Name:        addon.Name,
			Description: addon.Description.String,
			Price:       helper.Float64FromPg(addon.Price),
		}
	}

	return catalog, nil
}

func (s *bookingService) CreateBooking(ctx context.Context, req dto.CreateBookingRequest, userID, email string) (res dto.CreateBookingResponse, err error) {
	isValid, err := helper.IsBookingTimeValid(req.Date, req.StartTime)
	if err != nil {
		s.logger.Error(identifier, "error validating booking time: "+err.Error())

		return res, failure.BadRequestFromString("invalid booking time format")
	}

	if !isValid {
		s.logger.Error(identifier, "booking time is in the past")

		return res, failure.BadRequestFromString("booking time cannot be in the past")
	}

	occ, opt, count, err := s.occurrences(req.Date, req.Recurrence, req.RecurrenceCount, req.RecurrenceExceptions)
	if err != nil {
		return res, err
	}

	if len(occ) == 0 {
		s.logger.Error(identifier, "all occurrences fall on exception dates")

		return res, failure.BadRequestFromString("all occurrences fall on exception dates")
	}

	catalog, err := s.addonCatalog(ctx, req.AddonIDs)
	if err != nil {
		s.logger.Error(identifier, "error loading addons: "+err.Error())

		return res, err
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		s.logger.Error(identifier, "error starting transaction: "+err.Error())

		return res, err
	}

	defer func(tx pgx.Tx, ctx context.Context) {
		err := tx.Rollback(ctx)
		if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			s.logger.Error(identifier, "error rolling back transaction: "+err.Error())
		}
	}(tx, ctx)

	fieldID := helper.PgUUID(req.FieldID.String())

	field, err := s.fieldRepo.GetFieldById(ctx, tx, fieldID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.logger.Error(identifier, "field not found with ID: "+fieldID.String())

			return res, failure.NotFound("field not found")
		}

		s.logger.Error(identifier, "error getting field by ID: "+err.Error())

		return res, err
	}

	startTime, err := helper.PgTimeFromString(req.StartTime)
	if err != nil {
		s.logger.Error(identifier, "error parsing start time: "+err.Error())

		return res, failure.BadRequestFromString("invalid start time format")
	}

	parsedStartTime := helper.TimeFromString(req.StartTime)
	endTimeObj := helper.CalculateEndTime(parsedStartTime, int(field.Duration))
	endTime := helper.PgTimeFromTime(endTimeObj)

	for _, day := range occ {
		overlaps, err := s.repo.CountOverlaps(ctx, tx, repository.CountOverlapsParams{
			FieldID:     fieldID,
			BookingDate: helper.PgDate(recurrence.DateKey(day)),
			Column3:     startTime,
			Column4:     endTime,
		})
		if err != nil {
			s.logger.Error(identifier, "error checking booking overlaps: "+err.Error())

			return res, err
		}

		if overlaps > 0 {
			s.logger.Error(identifier, "booking overlaps with existing bookings on "+recurrence.DateKey(day))

			return res, failure.Conflict("field is already booked on " + recurrence.DateKey(day) + " at this time")
		}
	}

	quote := pricing.Quote(helper.Float64FromPg(field.Price), opt, count, req.AddonIDs, catalog)

	players := req.Players
	if players < 1 {
		players = 1
	}

	groupID := uuid.New().String()
	bookingIDs := make([]string, 0, len(occ))

	for _, day := range occ {
		booking, err := s.repo.InsertBooking(ctx, tx, repository.InsertBookingParams{
			UserID:          helper.PgUUID(userID),
			FieldID:         field.ID,
			GroupID:         helper.PgUUID(groupID),
			BookingDate:     helper.PgDate(recurrence.DateKey(day)),
			StartTime:       startTime,
			EndTime:         endTime,
			Players:         int32(players),
			Recurrence:      string(opt.ID),
			RecurrenceCount: int32(count),
			TotalPrice:      helper.PgNumericFromFloat(quote.UnitPrice),
			AddonIds:        req.AddonIDs,
			Notes:           helper.PgString(req.Notes),
			Status:          constant.BookingStatusPending,
		})
		if err != nil {
			s.logger.Error(identifier, "error inserting booking: "+err.Error())

			return res, err
		}

		bookingIDs = append(bookingIDs, booking.String())
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error(identifier, "error committing transaction: "+err.Error())

		return res, err
	}

	var payment paymentDto.CreatePaymentResponse

	switch req.PaymentMethod {
	case constant.PaymentMethodMercadoPago:
		payment, err = s.paymentService.CreateInvoice(ctx, paymentDto.CreatePaymentInvoice{
			GroupID:    groupID,
			Amount:     quote.Total,
			PayerEmail: email,
		})
	case constant.PaymentMethodTransfer:
		payment, err = s.paymentService.CreateManualPayment(ctx, paymentDto.CreateManualPaymentRequest{
			GroupID:       groupID,
			PaymentMethod: constant.PaymentMethodTransfer,
			Amount:        quote.Total,
			PayerEmail:    email,
		})
	default:
		err = failure.BadRequestFromString("unsupported payment method")
	}

	if err != nil {
		s.logger.Error(identifier, "error creating payment: "+err.Error())

		return res, err
	}

	res.GroupID = groupID
	res.BookingIDs = bookingIDs
	res.Quote.FromBreakdown(quote, occ)
	res.Payment = payment

	go func() {
		ctx := context.WithoutCancel(ctx)

		if err := s.cache.Clear(ctx, helper.BuildCacheKey(cacheGetBookingsKey, "*")); err != nil {
			s.logger.Error(identifier, "error clearing bookings cache: "+err.Error())
		}

		if err := s.cache.Clear(ctx, helper.BuildCacheKey(cacheCountBookingsKey, "*")); err != nil {
			s.logger.Error(identifier, "error clearing bookings cache: "+err.Error())
		}
	}()

	return res, nil
}

func (s *bookingService) QuoteBooking(ctx context.Context, req dto.QuoteBookingRequest) (res dto.QuoteResponse, err error) {
	occ, opt, count, err := s.occurrences(req.Date, req.Recurrence, req.RecurrenceCount, req.RecurrenceExceptions)
	if err != nil {
		return res, err
	}

	field, err := s.fieldRepo.GetFieldById(ctx, s.db, helper.PgUUID(req.FieldID.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return res, failure.NotFound("field not found")
		}

		s.logger.Error(identifier, "quote - error getting field by ID: "+err.Error())

		return res, err
	}

	catalog, err := s.addonCatalog(ctx, req.AddonIDs)
	if err != nil {
		s.logger.Error(identifier, "quote - error loading addons: "+err.Error())

		return res, err
	}

	quote := pricing.Quote(helper.Float64FromPg(field.Price), opt, count, req.AddonIDs, catalog)
	res.FromBreakdown(quote, occ)

	return res, nil
}

func (s *bookingService) GetRecurrenceOptions() dto.GetRecurrenceOptionsResponse {
	var res dto.GetRecurrenceOptionsResponse
	res.FromCatalog(pricing.Options())

	return res
}

func (s *bookingService) GetBookingByID(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	bookingID := helper.PgUUID(id)

	booking, err := s.repo.GetBookingById(ctx, s.db, bookingID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.logger.Error(identifier, "booking not found with ID: "+bookingID.String())

			return res, failure.NotFound("booking not found")
		}

		s.logger.Error(identifier, "error getting booking by ID: "+err.Error())

		return res, err
	}

	res = res.FromModel(booking)

	// Get field name
	field, err := s.fieldRepo.GetFieldById(ctx, s.db, booking.FieldID)
	if err == nil {
		res.FieldName = field.Name
	} else {
		s.logger.Error(identifier, "error getting field name for ID %s: %w", booking.FieldID.String(), err)
	}

	return res, nil
}

func (s *bookingService) GetBookingsByGroup(ctx context.Context, groupID string) (res dto.GetBookingsResponse, err error) {
	bookings, err := s.repo.GetBookingsByGroupId(ctx, s.db, helper.PgUUID(groupID))
	if err != nil {
		s.logger.Error(identifier, "error getting bookings by group ID: "+err.Error())

		return res, err
	}

	if len(bookings) == 0 {
		return res, failure.NotFound("booking group not found")
	}

	res.FromModel(bookings, len(bookings), len(bookings))

	field, err := s.fieldRepo.GetFieldById(ctx, s.db, bookings[0].FieldID)
	if err == nil {
		res.EnrichWithFieldNames(map[string]string{bookings[0].FieldID.String(): field.Name})
	}

	return res, nil
}

func (s *bookingService) GetUserBookings(ctx context.Context, userID string, req gdto.PaginationRequest) (res dto.GetBookingsResponse, err error) {
	page, limit := helper.DefaultPagination(req.Page, req.Limit)

	keyArgs := map[string]string{}
	keyArgs["user"] = userID
	keyArgs["page"] = strconv.Itoa(page)
	keyArgs["limit"] = strconv.Itoa(limit)
	keyArgs["filter"] = req.Filter
	cacheKey := helper.BuildCacheKey(cacheGetBookingsKey, helper.GenerateUniqueKey(keyArgs))

	var cacheRes dto.GetBookingsResponse

	err = s.cache.Get(ctx, cacheKey, &cacheRes)
	if err == nil {
		s.logger.Info(identifier, "get user bookings - cache hit for user: %s", userID)

		return cacheRes, nil
	}

	totalItems, err := s.CountUserBookings(ctx, userID, req)
	if err != nil {
		s.logger.Error(identifier, "get user bookings - error counting user bookings: %w", err)

		return res, err
	}

	offset := helper.CalculateOffset(page, limit)

	bookings, err := s.repo.GetBookingsByUserId(ctx, s.db, repository.GetBookingsByUserIdParams{
		UserID:  helper.PgUUID(userID),
		Column2: req.Filter,
		Limit:   int32(limit),
		Offset:  int32(offset),
	})
	if err != nil {
		s.logger.Error(identifier, "get user bookings - error getting bookings by user ID: %w", err)

		return res, err
	}

	res.FromModel(bookings, totalItems, limit)
	s.enrichFieldNames(ctx, &res, bookings)

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.Duration); err != nil {
			s.logger.Error(identifier, "get user bookings - failed to save user bookings to cache: %w", err)
		}
	}()

	return res, nil
}

func (s *bookingService) CountUserBookings(ctx context.Context, userID string, req gdto.PaginationRequest) (total int, err error) {
	page, limit := helper.DefaultPagination(req.Page, req.Limit)

	keyArgs := map[string]string{}
	keyArgs["user"] = userID
	keyArgs["page"] = strconv.Itoa(page)
	keyArgs["limit"] = strconv.Itoa(limit)
	keyArgs["filter"] = req.Filter
	cacheKey := helper.BuildCacheKey(cacheCountBookingsKey, helper.GenerateUniqueKey(keyArgs))

	var cacheRes int

	err = s.cache.Get(ctx, cacheKey, &cacheRes)
	if err == nil {
		s.logger.Info(identifier, "count - cache hit for user bookings: %s", cacheKey)

		return cacheRes, nil
	}

	totalItems, err := s.repo.CountBookingsByUserId(ctx, s.db, repository.CountBookingsByUserIdParams{
		UserID:  helper.PgUUID(userID),
		Column2: req.Filter,
	})
	if err != nil {
		s.logger.Error(identifier, "count - error counting user bookings: %s", err.Error())

		return total, err
	}

	total = int(totalItems)

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, total, s.cfg.Cache.Duration); err != nil {
			s.logger.Error(identifier, "count - error saving user bookings count to cache: %s", err.Error())
		}
	}()

	return total, nil
}

func (s *bookingService) GetAllBookings(ctx context.Context, req gdto.PaginationRequest) (res dto.GetBookingsResponse, err error) {
	page, limit := helper.DefaultPagination(req.Page, req.Limit)

	keyArgs := map[string]string{}
	keyArgs["page"] = strconv.Itoa(page)
	keyArgs["limit"] = strconv.Itoa(limit)
	keyArgs["filter"] = req.Filter
	cacheKey := helper.BuildCacheKey(cacheGetBookingsKey, "all:"+helper.GenerateUniqueKey(keyArgs))

	var cacheRes dto.GetBookingsResponse

	err = s.cache.Get(ctx, cacheKey, &cacheRes)
	if err == nil {
		s.logger.Info(identifier, "get all bookings - cache hit for key: %s", cacheKey)

		return cacheRes, nil
	}

	totalItems, err := s.CountAllBookings(ctx, req)
	if err != nil {
		s.logger.Error(identifier, "get all bookings - error counting all bookings: %w", err)

		return res, err
	}

	offset := helper.CalculateOffset(page, limit)

	bookings, err := s.repo.GetAllBookings(ctx, s.db, repository.GetAllBookingsParams{
		Column1: req.Filter,
		Limit:   int32(limit),
		Offset:  int32(offset),
	})
	if err != nil {
		s.logger.Error(identifier, "get all bookings - error getting all bookings: %w", err)

		return res, err
	}

	res.FromModel(bookings, totalItems, limit)
	s.enrichFieldNames(ctx, &res, bookings)

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.Duration); err != nil {
			s.logger.Error(identifier, "get all bookings - failed to save all bookings to cache: %w", err)
		}
	}()

	return res, nil
}

func (s *bookingService) CountAllBookings(ctx context.Context, req gdto.PaginationRequest) (total int, err error) {
	page, limit := helper.DefaultPagination(req.Page, req.Limit)

	keyArgs := map[string]string{}
	keyArgs["page"] = strconv.Itoa(page)
	keyArgs["limit"] = strconv.Itoa(limit)
	keyArgs["filter"] = req.Filter
	cacheKey := helper.BuildCacheKey(cacheCountBookingsKey, "all:"+helper.GenerateUniqueKey(keyArgs))

	var cacheRes int

	err = s.cache.Get(ctx, cacheKey, &cacheRes)
	if err == nil {
		s.logger.Info(identifier, "count all bookings - cache hit for key: %s", cacheKey)

		return cacheRes, nil
	}

	totalItems, err := s.repo.CountAllBookings(ctx, s.db, req.Filter)
	if err != nil {
		s.logger.Error(identifier, "count all bookings - error counting all bookings: %s", err.Error())

		return total, err
	}

	total = int(totalItems)

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, total, s.cfg.Cache.Duration); err != nil {
			s.logger.Error(identifier, "count all bookings - error saving all bookings count to cache: %s", err.Error())
		}
	}()

	return total, nil
}

func (s *bookingService) GetBookedSlots(ctx context.Context, req dto.GetBookedSlotsRequest) (res dto.GetBookedSlotsResponse, err error) {
	fieldID := helper.PgUUID(req.FieldID)

	keyArgs := map[string]string{}
	keyArgs["field_id"] = fieldID.String()
	keyArgs["date"] = req.Date
	cacheKey := helper.BuildCacheKey(cacheGetBookingsKey, helper.GenerateUniqueKey(keyArgs))

	var cacheRes dto.GetBookedSlotsResponse

	err = s.cache.Get(ctx, cacheKey, &cacheRes)
	if err == nil {
		s.logger.Info(identifier, "get booked slots - cache hit for key: %s", cacheKey)

		return cacheRes, nil
	}

	slots, err := s.repo.GetBookedTimeSlots(ctx, s.db, repository.GetBookedTimeSlotsParams{
		FieldID:     fieldID,
		BookingDate: helper.PgDate(req.Date),
	})
	if err != nil {
		s.logger.Error(identifier, "get booked slots - error getting booked time slots: %s", err.Error())

		return res, failure.InternalError(err)
	}

	res.FromModel(slots, fieldID.String())

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.Duration); err != nil {
			s.logger.Error(identifier, "get booked slots - error saving booked slots to cache: %s", err.Error())
		}
	}()

	return res, nil
}

func (s *bookingService) CancelUserBooking(ctx context.Context, req dto.CancelUserBookingRequest) (err error) {
	err = s.repo.CancelBooking(ctx, s.db, repository.CancelBookingParams{
		ID:         helper.PgUUID(req.BookingID),
		UserID:     helper.PgUUID(req.UserID),
		CanceledBy: helper.PgString(constant.BookingCanceledByUser),
	})
	if err != nil {
		s.logger.Error(identifier, "cancel user booking - error canceling booking: %s", err.Error())

		return failure.InternalError(err)
	}

	go func() {
		ctx := context.WithoutCancel(ctx)

		if err := s.cache.Delete(ctx, helper.BuildCacheKey(cacheGetBookingKey, req.BookingID)); err != nil {
			s.logger.Error(identifier, "cancel user booking - error deleting booking from cache: %s", err.Error())
		}

		if err := s.cache.Clear(ctx, helper.BuildCacheKey(cacheGetBookingsKey, "*")); err != nil {
			s.logger.Error(identifier, "cancel user booking - error clearing bookings cache: %s", err.Error())
		}

		if err := s.cache.Clear(ctx, helper.BuildCacheKey(cacheCountBookingsKey, "*")); err != nil {
			s.logger.Error(identifier, "cancel user booking - error clearing bookings count cache: %s", err.Error())
		}
	}()

	return nil
}

func (s *bookingService) enrichFieldNames(ctx context.Context, res *dto.GetBookingsResponse, bookings []repository.Booking) {
	fieldIDs := make(map[string]struct{})

	for _, booking := range bookings {
		fieldIDs[booking.FieldID.String()] = struct{}{}
	}

	fieldNames := make(map[string]string)

	for fieldID := range fieldIDs {
		field, err := s.fieldRepo.GetFieldById(ctx, s.db, helper.PgUUID(fieldID))
		if err == nil {
			fieldNames[fieldID] = field.Name
		} else {
			s.logger.Error(identifier, "error getting field name for ID %s: %w", fieldID, err)
		}
	}

	res.EnrichWithFieldNames(fieldNames)
}
