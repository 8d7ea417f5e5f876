package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/escanor68/turnosya-backend/config"
	bookingDto "github.com/escanor68/turnosya-backend/internal/domains/bookings/dto"
	"github.com/escanor68/turnosya-backend/internal/domains/bookings/recurrence"
	bookingService "github.com/escanor68/turnosya-backend/internal/domains/bookings/service"
	fieldRepository "github.com/escanor68/turnosya-backend/internal/domains/fields/repository"
	userRepository "github.com/escanor68/turnosya-backend/internal/domains/user/repository"
	"github.com/escanor68/turnosya-backend/internal/domains/wizard/dto"
	"github.com/escanor68/turnosya-backend/pkg/constant"
	"github.com/escanor68/turnosya-backend/pkg/failure"
	"github.com/escanor68/turnosya-backend/pkg/helper"
	"github.com/escanor68/turnosya-backend/pkg/logger"
	"github.com/escanor68/turnosya-backend/pkg/postgres"
	"github.com/escanor68/turnosya-backend/pkg/redis"
)

type WizardService interface {
	Start(ctx context.Context, req dto.StartWizardRequest, userID, email string) (dto.DraftResponse, error)
	Get(ctx context.Context, id, userID string) (dto.DraftResponse, error)
	Update(ctx context.Context, id, userID string, req dto.UpdateDraftRequest) (dto.DraftResponse, error)
	Next(ctx context.Context, id, userID string) (dto.DraftResponse, error)
	Prev(ctx context.Context, id, userID string) (dto.DraftResponse, error)
	Quote(ctx context.Context, id, userID string) (bookingDto.QuoteResponse, error)
	Submit(ctx context.Context, id, userID string) (dto.SubmitWizardResponse, error)
}

type wizardService struct {
	db             postgres.PgxIface
	fieldRepo      fieldRepository.Querier
	userRepo       userRepository.Querier
	bookingService bookingService.BookingService
	cache          redis.IRedisCache
	cfg            *config.Config
	logger         logger.Interface
}

func New(db postgres.PgxIface, f fieldRepository.Querier, u userRepository.Querier, b bookingService.BookingService, c redis.IRedisCache, cfg *config.Config, l logger.Interface) WizardService {
	return &wizardService{
		db:             db,
		fieldRepo:      f,
		userRepo:       u,
		bookingService: b,
		cache:          c,
		cfg:            cfg,
		logger:         l,
	}
}

const (
	cacheDraftKey = "wizard:draft"

	identifier = "service - wizard - %s"
)

func (s *wizardService) Start(ctx context.Context, req dto.StartWizardRequest, userID, email string) (res dto.DraftResponse, err error) {
	fieldID := helper.PgUUID(req.FieldID.String())

	if _, err = s.fieldRepo.GetFieldById(ctx, s.db, fieldID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.logger.Error(identifier, "start - field not found with ID: "+fieldID.String())

			return res, failure.NotFound("field not found")
		}

		s.logger.Error(identifier, "start - error getting field: "+err.Error())

		return res, err
	}

	now := time.Now().Format(constant.FullDateFormat)

	draft := dto.Draft{
		ID:              uuid.New().String(),
		UserID:          userID,
		FieldID:         req.FieldID.String(),
		Step:            dto.StepSchedule,
		Players:         1,
		ContactEmail:    email,
		Recurrence:      string(recurrence.None),
		RecurrenceCount: recurrence.MinWizardCount,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	// Prefill contact data from the user profile when available.
	if user, err := s.userRepo.GetUserByEmail(ctx, s.db, email); err == nil {
		draft.ContactName = user.FullName.String
		draft.ContactPhone = user.Phone.String
	}

	if err = s.saveDraft(ctx, &draft); err != nil {
		return res, err
	}

	res.Draft = draft

	return res, nil
}

func (s *wizardService) Get(ctx context.Context, id, userID string) (res dto.DraftResponse, err error) {
	draft, err := s.loadDraft(ctx, id, userID)
	if err != nil {
		return res, err
	}

	res.Draft = draft

	return res, nil
}

func (s *wizardService) Update(ctx context.Context, id, userID string, req dto.UpdateDraftRequest) (res dto.DraftResponse, err error) {
	draft, err := s.loadDraft(ctx, id, userID)
	if err != nil {
		return res, err
	}

	if draft.Submitting {
		return res, failure.Conflict("submission already in progress")
	}

	draft.Apply(req)

	if draft.RecurrenceCount != 0 && recurrence.ParseFrequency(draft.Recurrence) != recurrence.None {
		draft.RecurrenceCount = recurrence.ClampCount(draft.RecurrenceCount, recurrence.MinWizardCount)
	}

	if err = s.saveDraft(ctx, &draft); err != nil {
		return res, err
	}

	res.Draft = draft
	res.Errors = ValidateStep(draft.Step, draft)

	return res, nil
}

func (s *wizardService) Next(ctx context.Context, id, userID string) (res dto.DraftResponse, err error) {
	draft, err := s.loadDraft(ctx, id, userID)
	if err != nil {
		return res, err
	}

	if errs := ValidateStep(draft.Step, draft); errs != nil {
		res.Draft = draft
		res.Errors = errs

		return res, nil
	}

	if draft.Step < dto.StepConfirm {
		draft.Step++

		if err = s.saveDraft(ctx, &draft); err != nil {
			return res, err
		}
	}

	res.Draft = draft

	return res, nil
}

func (s *wizardService) Prev(ctx context.Context, id, userID string) (res dto.DraftResponse, err error) {
	draft, err := s.loadDraft(ctx, id, userID)
	if err != nil {
		return res, err
	}

	if draft.Step > dto.StepSchedule {
		draft.Step--

		if err = s.saveDraft(ctx, &draft); err != nil {
			return res, err
		}
	}

	res.Draft = draft

	return res, nil
}

func (s *wizardService) Quote(ctx context.Context, id, userID string) (res bookingDto.QuoteResponse, err error) {
	draft, err := s.loadDraft(ctx, id, userID)
	if err != nil {
		return res, err
	}

	if errs := ValidateStep(dto.StepSchedule, draft); errs != nil {
		return res, failure.BadRequestFromString("schedule step is incomplete")
	}

	req, err := s.bookingRequest(draft)
	if err != nil {
		return res, err
	}

	return s.bookingService.QuoteBooking(ctx, bookingDto.QuoteBookingRequest{
		FieldID:              req.FieldID,
		Date:                 req.Date,
		Recurrence:           req.Recurrence,
		RecurrenceCount:      req.RecurrenceCount,
		RecurrenceExceptions: req.RecurrenceExceptions,
		AddonIDs:             req.AddonIDs,
	})
}

func (s *wizardService) Submit(ctx context.Context, id, userID string) (res dto.SubmitWizardResponse, err error) {
	draft, err := s.loadDraft(ctx, id, userID)
	if err != nil {
		return res, err
	}

	if draft.Step != dto.StepConfirm {
		return res, failure.Conflict("wizard is not on the confirmation step")
	}

	if errs := ValidateThrough(dto.StepConfirm, draft); errs != nil {
		return res, failure.BadRequestFromString("draft is incomplete")
	}

	if draft.Submitting {
		s.logger.Error(identifier, "submit - submission already in progress for draft: "+draft.ID)

		return res, failure.Conflict("submission already in progress")
	}

	req, err := s.bookingRequest(draft)
	if err != nil {
		return res, err
	}

	draft.Submitting = true
	if err = s.saveDraft(ctx, &draft); err != nil {
		return res, err
	}

	booking, err := s.bookingService.CreateBooking(ctx, req, draft.UserID, draft.ContactEmail)
	if err != nil {
		draft.Submitting = false

		if saveErr := s.saveDraft(ctx, &draft); saveErr != nil {
			s.logger.Error(identifier, "submit - error releasing draft after failure: "+saveErr.Error())
		}

		return res, err
	}

	if err := s.cache.Delete(ctx, s.draftKey(draft.ID)); err != nil {
		s.logger.Error(identifier, "submit - error deleting draft: "+err.Error())
	}

	res.Booking = booking

	return res, nil
}

// bookingRequest converts a draft into a booking request. A weekday anchor
// moves the start date forward to the chosen weekday before the recurrence
// expands from it.
func (s *wizardService) bookingRequest(draft dto.Draft) (req bookingDto.CreateBookingRequest, err error) {
	fieldID, err := uuid.Parse(draft.FieldID)
	if err != nil {
		return req, failure.BadRequestFromString("invalid field id in draft")
	}

	date := draft.Date

	if draft.RecurrenceWeekday != nil && recurrence.ParseFrequency(draft.Recurrence) != recurrence.None {
		start, err := time.Parse(constant.DateFormat, draft.Date)
		if err != nil {
			return req, failure.BadRequestFromString("invalid draft date")
		}

		anchored := recurrence.AnchorWeekday(start, time.Weekday(*draft.RecurrenceWeekday), recurrence.MinSelectorCount)
		date = recurrence.DateKey(anchored[0])
	}

	return bookingDto.CreateBookingRequest{
		FieldID:              fieldID,
		Date:                 date,
		StartTime:            draft.Time,
		Players:              draft.Players,
		Recurrence:           draft.Recurrence,
		RecurrenceCount:      draft.RecurrenceCount,
		RecurrenceExceptions: draft.RecurrenceExceptions,
		AddonIDs:             draft.AddonIDs,
		Notes:                draft.Notes,
		PaymentMethod:        draft.PaymentMethod,
	}, nil
}

func (s *wizardService) draftKey(id string) string {
	return helper.BuildCacheKey(cacheDraftKey, id)
}

func (s *wizardService) loadDraft(ctx context.Context, id, userID string) (draft dto.Draft, err error) {
	if err = s.cache.Get(ctx, s.draftKey(id), &draft); err != nil {
		s.logger.Error(identifier, "draft not found or expired: "+id)

		return draft, failure.NotFound("draft not found or expired")
	}

	// Drafts are private to the user who started them.
	if draft.UserID != userID {
		return dto.Draft{}, failure.NotFound("draft not found or expired")
	}

	return draft, nil
}

func (s *wizardService) saveDraft(ctx context.Context, draft *dto.Draft) error {
	draft.UpdatedAt = time.Now().Format(constant.FullDateFormat)

	if err := s.cache.Save(ctx, s.draftKey(draft.ID), draft, s.cfg.Wizard.DraftTTL); err != nil {
		s.logger.Error(identifier, "error saving draft: "+err.Error())

		return failure.InternalError(err)
	}

	return nil
}
