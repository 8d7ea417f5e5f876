package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/escanor68/turnosya-backend/pkg/helper"
)

var bookingColumns = []string{
	"id", "user_id", "field_id", "group_id", "booking_date",
	"start_time", "end_time", "players", "recurrence", "recurrence_count",
	"total_price", "addon_ids", "notes", "status", "canceled_by",
	"created_at", "updated_at",
}

func bookingRowValues(id, userID, groupID pgtype.UUID, players int32) []any {
	return []any{
		id,
		userID,
		helper.PgUUID(uuid.NewString()),
		groupID,
		helper.PgDate("2026-01-05"),
		pgtype.Time{Microseconds: 18 * 3600 * 1e6, Valid: true},
		pgtype.Time{Microseconds: 19 * 3600 * 1e6, Valid: true},
		players,
		"weekly",
		int32(4),
		helper.PgNumericFromFloat(12000),
		[]string{},
		pgtype.Text{},
		"pending",
		pgtype.Text{},
		helper.PgTimestampNow(),
		helper.PgTimestampNow(),
	}
}

func TestQueries_GetBookingsByUserId(t *testing.T) {
	ctx := context.Background()
	q := New()

	userID := helper.PgUUID(uuid.NewString())
	arg := GetBookingsByUserIdParams{
		UserID:  userID,
		Column2: "",
		Limit:   10,
		Offset:  0,
	}

	t.Run("error: query failure", func(t *testing.T) {
		mockPgx, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherEqual))
		assert.NoError(t, err)
		defer mockPgx.Close()

		mockPgx.ExpectQuery(getBookingsByUserId).
			WithArgs(userID, "", int32(10), int32(0)).
			WillReturnError(errors.New("error"))

		res, err := q.GetBookingsByUserId(ctx, mockPgx, arg)

		assert.Error(t, err)
		assert.Nil(t, res)
	})

	t.Run("success: rows scanned", func(t *testing.T) {
		mockPgx, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherEqual))
		assert.NoError(t, err)
		defer mockPgx.Close()

		firstID := helper.PgUUID(uuid.NewString())
		secondID := helper.PgUUID(uuid.NewString())
		groupID := helper.PgUUID(uuid.NewString())

		mockPgx.ExpectQuery(getBookingsByUserId).
			WithArgs(userID, "", int32(10), int32(0)).
			WillReturnRows(pgxmock.NewRows(bookingColumns).
				AddRow(bookingRowValues(firstID, userID, groupID, 10)...).
				AddRow(bookingRowValues(secondID, userID, groupID, 14)...))

		res, err := q.GetBookingsByUserId(ctx, mockPgx, arg)

		assert.NoError(t, err)
		assert.Len(t, res, 2)
		assert.Equal(t, firstID, res[0].ID)
		assert.Equal(t, int32(10), res[0].Players)
		assert.Equal(t, int32(14), res[1].Players)
		assert.Equal(t, "weekly", res[0].Recurrence)
		assert.Equal(t, "pending", res[1].Status)
		assert.NoError(t, mockPgx.ExpectationsWereMet())
	})
}

func TestQueries_GetAllBookings(t *testing.T) {
	ctx := context.Background()
	q := New()

	arg := GetAllBookingsParams{
		Column1: "paid",
		Limit:   10,
		Offset:  0,
	}

	t.Run("success: rows scanned", func(t *testing.T) {
		mockPgx, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherEqual))
		assert.NoError(t, err)
		defer mockPgx.Close()

		bookingID := helper.PgUUID(uuid.NewString())
		userID := helper.PgUUID(uuid.NewString())
		groupID := helper.PgUUID(uuid.NewString())

		mockPgx.ExpectQuery(getAllBookings).
			WithArgs("paid", int32(10), int32(0)).
			WillReturnRows(pgxmock.NewRows(bookingColumns).
				AddRow(bookingRowValues(bookingID, userID, groupID, 22)...))

		res, err := q.GetAllBookings(ctx, mockPgx, arg)

		assert.NoError(t, err)
		assert.Len(t, res, 1)
		assert.Equal(t, bookingID, res[0].ID)
		assert.Equal(t, int32(22), res[0].Players)
		assert.Equal(t, int32(4), res[0].RecurrenceCount)
		assert.NoError(t, mockPgx.ExpectationsWereMet())
	})
}

func TestQueries_GetBookingsByGroupId(t *testing.T) {
	ctx := context.Background()
	q := New()

	groupID := helper.PgUUID(uuid.NewString())

	t.Run("success: rows scanned", func(t *testing.T) {
		mockPgx, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherEqual))
		assert.NoError(t, err)
		defer mockPgx.Close()

		firstID := helper.PgUUID(uuid.NewString())
		secondID := helper.PgUUID(uuid.NewString())
		userID := helper.PgUUID(uuid.NewString())

		mockPgx.ExpectQuery(getBookingsByGroupId).
			WithArgs(groupID).
			WillReturnRows(pgxmock.NewRows(bookingColumns).
				AddRow(bookingRowValues(firstID, userID, groupID, 10)...).
				AddRow(bookingRowValues(secondID, userID, groupID, 10)...))

		res, err := q.GetBookingsByGroupId(ctx, mockPgx, groupID)

		assert.NoError(t, err)
		assert.Len(t, res, 2)
		assert.Equal(t, groupID, res[0].GroupID)
		assert.Equal(t, groupID, res[1].GroupID)
		assert.Equal(t, int32(10), res[0].Players)
		assert.NoError(t, mockPgx.ExpectationsWereMet())
	})
}
