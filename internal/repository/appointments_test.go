package repository_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NihalDR/Lingam-Aabharanam/internal/model"
	"github.com/NihalDR/Lingam-Aabharanam/internal/repository"
)

func validAppointmentInput() model.AppointmentInput {
	return model.AppointmentInput{
		Name:    "Priya Nair",
		Email:   "priya@example.com",
		Phone:   "+91 98765 43210",
		Date:    time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		Time:    "10:00",
		Purpose: model.PurposeGeneralViewing,
	}
}

func TestCreateAppointmentValidation(t *testing.T) {
	repo := repository.NewAppointmentRepository(newTestStore(t))

	cases := []struct {
		name   string
		mutate func(*model.AppointmentInput)
	}{
		{"missing name", func(in *model.AppointmentInput) { in.Name = " " }},
		{"missing email", func(in *model.AppointmentInput) { in.Email = "" }},
		{"missing phone", func(in *model.AppointmentInput) { in.Phone = "" }},
		{"missing date", func(in *model.AppointmentInput) { in.Date = time.Time{} }},
		{"missing time", func(in *model.AppointmentInput) { in.Time = "  " }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validAppointmentInput()
			tc.mutate(&in)
			_, err := repo.Create(in)
			require.Error(t, err)
			assert.True(t, repository.IsValidation(err))
		})
	}
}

func TestCreateAppointmentNormalizesFields(t *testing.T) {
	repo := repository.NewAppointmentRepository(newTestStore(t))

	in := validAppointmentInput()
	in.Name = "  Priya Nair "
	in.Email = "  Priya@Example.COM "
	created, err := repo.Create(in)
	require.NoError(t, err)

	assert.Equal(t, "Priya Nair", created.Name)
	assert.Equal(t, "priya@example.com", created.Email)
	assert.Equal(t, model.AppointmentPending, created.Status)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestAppointmentRoundTrip(t *testing.T) {
	repo := repository.NewAppointmentRepository(newTestStore(t))

	created, err := repo.Create(validAppointmentInput())
	require.NoError(t, err)

	got := repo.GetByID(created.ID)
	require.NotNil(t, got)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.Email, got.Email)
	assert.True(t, created.Date.Equal(got.Date))
}

func TestListSortedByCreatedAtDescending(t *testing.T) {
	repo := repository.NewAppointmentRepository(newTestStore(t))

	first, err := repo.Create(validAppointmentInput())
	require.NoError(t, err)
	second, err := repo.Create(validAppointmentInput())
	require.NoError(t, err)
	third, err := repo.Create(validAppointmentInput())
	require.NoError(t, err)

	list := repo.List()
	require.Len(t, list, 3)
	assert.Equal(t, third.ID, list[0].ID)
	assert.Equal(t, second.ID, list[1].ID)
	assert.Equal(t, first.ID, list[2].ID)

	// idempotent with no intervening writes
	assert.Equal(t, list, repo.List())
}

func TestAvailableSlotsExcludesBookedTimes(t *testing.T) {
	repo := repository.NewAppointmentRepository(newTestStore(t))
	day := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	all := repo.AvailableSlots(day)
	require.Len(t, all, 16)
	assert.Equal(t, repository.TimeSlots(), all)

	_, err := repo.Create(validAppointmentInput())
	require.NoError(t, err)

	slots := repo.AvailableSlots(day)
	require.Len(t, slots, 15)
	assert.NotContains(t, slots, "10:00")
	for _, slot := range repository.TimeSlots() {
		if slot != "10:00" {
			assert.Contains(t, slots, slot)
		}
	}

	// bookings on another day do not affect availability
	other := repo.AvailableSlots(day.AddDate(0, 0, 1))
	assert.Len(t, other, 16)
}

func TestCancellingFreesTheSlot(t *testing.T) {
	repo := repository.NewAppointmentRepository(newTestStore(t))
	day := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	created, err := repo.Create(validAppointmentInput())
	require.NoError(t, err)
	require.Len(t, repo.AvailableSlots(day), 15)

	updated := repo.UpdateStatus(created.ID, model.AppointmentCancelled)
	require.NotNil(t, updated)
	assert.Equal(t, model.AppointmentCancelled, updated.Status)

	slots := repo.AvailableSlots(day)
	assert.Len(t, slots, 16)
	assert.Contains(t, slots, "10:00")
}

// The data layer does not enforce slot uniqueness: a second booking for
// the same date and time succeeds.
func TestDoubleBookingIsAccepted(t *testing.T) {
	repo := repository.NewAppointmentRepository(newTestStore(t))

	_, err := repo.Create(validAppointmentInput())
	require.NoError(t, err)
	_, err = repo.Create(validAppointmentInput())
	require.NoError(t, err)

	assert.Len(t, repo.List(), 2)
}

func TestUpdateStatusNotFound(t *testing.T) {
	repo := repository.NewAppointmentRepository(newTestStore(t))
	assert.Nil(t, repo.UpdateStatus("no-such-id", model.AppointmentConfirmed))
}

func TestDeleteAppointment(t *testing.T) {
	repo := repository.NewAppointmentRepository(newTestStore(t))

	created, err := repo.Create(validAppointmentInput())
	require.NoError(t, err)

	assert.True(t, repo.Delete(created.ID))
	assert.Nil(t, repo.GetByID(created.ID))
	assert.False(t, repo.Delete(created.ID))
}
