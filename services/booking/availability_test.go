package booking

import (
	"context"
	"testing"

	"clinicbook/models"
	"clinicbook/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testMonday = "2026-08-31"
	testSunday = "2026-08-30"
)

func mondayBand(id string, start, end string, capacity int) models.WeeklySchedule {
	return models.WeeklySchedule{
		ID:            id,
		DoctorID:      "doc-1",
		DayOfWeek:     "monday",
		StartTime:     start,
		EndTime:       end,
		Capacity:      capacity,
		EffectiveFrom: "2026-01-01",
		IsActive:      true,
	}
}

func TestListAvailableSlotsSteps(t *testing.T) {
	svc, _, scheds := newTestService()
	scheds.schedules = []models.WeeklySchedule{mondayBand("band-1", "09:00", "12:00", 1)}

	slots, err := svc.ListAvailableSlots(context.Background(), "doc-1", testMonday, "consult")
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"}, slots)
}

func TestListAvailableSlotsLongerTreatmentDropsTail(t *testing.T) {
	svc, _, scheds := newTestService()
	scheds.schedules = []models.WeeklySchedule{mondayBand("band-1", "09:00", "12:00", 1)}

	// 60-minute treatment: 11:30 would end at 12:30, past the band.
	slots, err := svc.ListAvailableSlots(context.Background(), "doc-1", testMonday, "cleaning")
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30", "11:00"}, slots)
}

func TestListAvailableSlotsExcludesBookedAtCapacityOne(t *testing.T) {
	svc, appts, scheds := newTestService()
	scheds.schedules = []models.WeeklySchedule{mondayBand("band-1", "09:00", "12:00", 1)}
	appts.appointments = append(appts.appointments, &models.Appointment{
		ID: "a1", DoctorID: "doc-1", AppointmentDate: testMonday,
		StartTime: "10:00", EndTime: "10:30", Status: models.StatusConfirmed, QueueNumber: 1,
	})

	slots, err := svc.ListAvailableSlots(context.Background(), "doc-1", testMonday, "consult")
	require.NoError(t, err)
	assert.NotContains(t, slots, "10:00")
	assert.Contains(t, slots, "09:30")
	assert.Contains(t, slots, "10:30")
}

func TestListAvailableSlotsCapacityTwoKeepsSlot(t *testing.T) {
	svc, appts, scheds := newTestService()
	scheds.schedules = []models.WeeklySchedule{mondayBand("band-1", "09:00", "12:00", 2)}
	appts.appointments = append(appts.appointments, &models.Appointment{
		ID: "a1", DoctorID: "doc-1", AppointmentDate: testMonday,
		StartTime: "10:00", EndTime: "10:30", Status: models.StatusConfirmed, QueueNumber: 1,
	})

	slots, err := svc.ListAvailableSlots(context.Background(), "doc-1", testMonday, "consult")
	require.NoError(t, err)
	assert.Contains(t, slots, "10:00")
}

func TestListAvailableSlotsCancelledDoesNotBlock(t *testing.T) {
	svc, appts, scheds := newTestService()
	scheds.schedules = []models.WeeklySchedule{mondayBand("band-1", "09:00", "12:00", 1)}
	appts.appointments = append(appts.appointments, &models.Appointment{
		ID: "a1", DoctorID: "doc-1", AppointmentDate: testMonday,
		StartTime: "10:00", EndTime: "10:30", Status: models.StatusCancelled, QueueNumber: 1,
	})

	slots, err := svc.ListAvailableSlots(context.Background(), "doc-1", testMonday, "consult")
	require.NoError(t, err)
	assert.Contains(t, slots, "10:00")
}

func TestListAvailableSlotsNoScheduleDay(t *testing.T) {
	svc, _, scheds := newTestService()
	scheds.schedules = []models.WeeklySchedule{mondayBand("band-1", "09:00", "12:00", 1)}

	slots, err := svc.ListAvailableSlots(context.Background(), "doc-1", testSunday, "consult")
	require.NoError(t, err)
	assert.Empty(t, slots)
	assert.NotNil(t, slots)
}

func TestListAvailableSlotsFullDayException(t *testing.T) {
	svc, _, scheds := newTestService()
	scheds.schedules = []models.WeeklySchedule{mondayBand("band-1", "09:00", "12:00", 1)}
	scheds.exceptions["doc-1|"+testMonday] = &models.ScheduleException{
		ID: "exc-1", DoctorID: "doc-1", ExceptionDate: testMonday, Reason: "conference",
	}

	slots, err := svc.ListAvailableSlots(context.Background(), "doc-1", testMonday, "consult")
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestListAvailableSlotsPartialException(t *testing.T) {
	svc, _, scheds := newTestService()
	scheds.schedules = []models.WeeklySchedule{mondayBand("band-1", "09:00", "12:00", 1)}
	scheds.exceptions["doc-1|"+testMonday] = &models.ScheduleException{
		ID: "exc-1", DoctorID: "doc-1", ExceptionDate: testMonday,
		StartTime: "10:00", EndTime: "11:00", Reason: "rounds",
	}

	slots, err := svc.ListAvailableSlots(context.Background(), "doc-1", testMonday, "consult")
	require.NoError(t, err)
	// 09:30 ends exactly when the block starts and 11:00 starts when it ends.
	assert.Equal(t, []string{"09:00", "09:30", "11:00", "11:30"}, slots)
}

func TestListAvailableSlotsAvailableExceptionIsAnnotationOnly(t *testing.T) {
	svc, _, scheds := newTestService()
	scheds.schedules = []models.WeeklySchedule{mondayBand("band-1", "09:00", "12:00", 1)}
	scheds.exceptions["doc-1|"+testMonday] = &models.ScheduleException{
		ID: "exc-1", DoctorID: "doc-1", ExceptionDate: testMonday,
		IsAvailable: true, StartTime: "10:00", EndTime: "11:00",
	}

	slots, err := svc.ListAvailableSlots(context.Background(), "doc-1", testMonday, "consult")
	require.NoError(t, err)
	assert.Len(t, slots, 6)
}

func TestListAvailableSlotsOverlappingBandsDeduped(t *testing.T) {
	svc, _, scheds := newTestService()
	scheds.schedules = []models.WeeklySchedule{
		mondayBand("band-1", "09:00", "11:00", 1),
		mondayBand("band-2", "10:00", "12:00", 1),
	}

	slots, err := svc.ListAvailableSlots(context.Background(), "doc-1", testMonday, "consult")
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"}, slots)
}

func TestListAvailableSlotsRejectsBadInput(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.ListAvailableSlots(context.Background(), "doc-1", "31-08-2026", "consult")
	assert.Equal(t, CodeValidation, CodeOf(err))

	_, err = svc.ListAvailableSlots(context.Background(), "nope", testMonday, "consult")
	assert.Equal(t, CodeNotFound, CodeOf(err))

	// Inactive doctors are treated as unknown.
	_, err = svc.ListAvailableSlots(context.Background(), "doc-2", testMonday, "consult")
	assert.Equal(t, CodeNotFound, CodeOf(err))

	_, err = svc.ListAvailableSlots(context.Background(), "doc-1", testMonday, "nope")
	assert.Equal(t, CodeNotFound, CodeOf(err))

	// Inactive treatments too.
	_, err = svc.ListAvailableSlots(context.Background(), "doc-1", testMonday, "retired")
	assert.Equal(t, CodeNotFound, CodeOf(err))
}

func TestIsSlotBookableOutsideBand(t *testing.T) {
	svc, _, scheds := newTestService()
	scheds.schedules = []models.WeeklySchedule{
		mondayBand("band-1", "09:00", "12:00", 1),
		mondayBand("band-2", "13:00", "17:00", 1),
	}

	cases := []struct {
		start, end string
		want       bool
	}{
		{"09:00", "09:30", true},
		{"11:30", "12:00", true},
		{"11:45", "12:15", false}, // spans the lunch gap
		{"12:00", "12:30", false},
		{"08:30", "09:00", false},
		{"16:30", "17:00", true},
	}
	for _, c := range cases {
		ok, err := svc.IsSlotBookable(context.Background(), "doc-1", testMonday, c.start, c.end)
		require.NoError(t, err)
		assert.Equal(t, c.want, ok, "%s-%s", c.start, c.end)
	}
}

// Every slot the resolver emits must pass the validator it is booked through.
func TestGeneratedSlotsAreBookable(t *testing.T) {
	svc, appts, scheds := newTestService()
	scheds.schedules = []models.WeeklySchedule{
		mondayBand("band-1", "09:00", "11:00", 2),
		mondayBand("band-2", "10:00", "12:00", 1),
	}
	appts.appointments = append(appts.appointments,
		&models.Appointment{ID: "a1", DoctorID: "doc-1", AppointmentDate: testMonday,
			StartTime: "09:30", EndTime: "10:00", Status: models.StatusConfirmed, QueueNumber: 1},
		&models.Appointment{ID: "a2", DoctorID: "doc-1", AppointmentDate: testMonday,
			StartTime: "10:30", EndTime: "11:00", Status: models.StatusPending, QueueNumber: 2},
	)
	scheds.exceptions["doc-1|"+testMonday] = &models.ScheduleException{
		ID: "exc-1", DoctorID: "doc-1", ExceptionDate: testMonday,
		StartTime: "11:00", EndTime: "11:30",
	}

	slots, err := svc.ListAvailableSlots(context.Background(), "doc-1", testMonday, "consult")
	require.NoError(t, err)
	require.NotEmpty(t, slots)

	for _, start := range slots {
		end, err := utils.AddMinutes(start, 30)
		require.NoError(t, err)
		ok, err := svc.IsSlotBookable(context.Background(), "doc-1", testMonday, start, end)
		require.NoError(t, err)
		assert.True(t, ok, "listed slot %s rejected by validation", start)
	}
}
