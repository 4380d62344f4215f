package booking

import (
	"context"
	"sort"

	"clinicbook/models"
	"clinicbook/utils"

	"go.uber.org/zap"
)

// ListAvailableSlots resolves the full list of bookable start times for a
// doctor/date/treatment: recurring weekday bands, minus the day's exception
// windows, capacity-tested against existing appointments. Candidates step at
// the configured stride from each band's start; a candidate whose treatment
// end would run past the band's end is dropped.
func (s *DefaultBookingService) ListAvailableSlots(ctx context.Context, doctorID, date, treatmentID string) ([]string, error) {
	logger := utils.GetLogger()

	if !utils.IsValidDate(date) {
		return nil, NewValidationError("date must be YYYY-MM-DD")
	}

	doctor, err := s.Doctors.GetByID(ctx, doctorID)
	if err != nil {
		return nil, NewStoreError(err)
	}
	if doctor == nil || !doctor.IsActive {
		return nil, NewNotFoundError("doctor not found")
	}

	treatment, err := s.Treatments.GetByID(ctx, treatmentID)
	if err != nil {
		return nil, NewStoreError(err)
	}
	if treatment == nil || !treatment.IsActive {
		return nil, NewNotFoundError("treatment not found")
	}

	day, err := utils.WeekdayOf(date)
	if err != nil {
		return nil, NewValidationError(err.Error())
	}

	schedules, err := s.Schedules.GetSchedulesInEffect(ctx, doctorID, day, date)
	if err != nil {
		return nil, NewStoreError(err)
	}
	if len(schedules) == 0 {
		return []string{}, nil
	}

	exception, err := s.Schedules.GetException(ctx, doctorID, date)
	if err != nil {
		return nil, NewStoreError(err)
	}
	if exception != nil && exception.BlocksWholeDay() {
		logger.Debug("date fully blocked by exception",
			zap.String("doctorID", doctorID), zap.String("date", date))
		return []string{}, nil
	}

	booked, err := s.Appointments.GetBookedIntervals(ctx, doctorID, date)
	if err != nil {
		return nil, NewStoreError(err)
	}

	seen := make(map[string]struct{})
	var slots []string
	for _, band := range schedules {
		for _, start := range s.bandCandidates(band, treatment.DurationMinutes, exception, booked) {
			if _, dup := seen[start]; dup {
				continue
			}
			seen[start] = struct{}{}
			slots = append(slots, start)
		}
	}

	sort.Strings(slots)
	if slots == nil {
		slots = []string{}
	}
	return slots, nil
}

// bandCandidates walks one band at the slot stride and returns the start
// times that survive exception and capacity checks.
func (s *DefaultBookingService) bandCandidates(
	band models.WeeklySchedule,
	durationMinutes int,
	exception *models.ScheduleException,
	booked []models.BookedInterval,
) []string {
	capacity := band.Capacity
	if capacity < 1 {
		capacity = 1
	}

	var out []string
	start := utils.NormalizeClock(band.StartTime)
	bandEnd := utils.NormalizeClock(band.EndTime)

	for {
		end, err := utils.AddMinutes(start, durationMinutes)
		if err != nil {
			break
		}
		// AddMinutes wraps at midnight; a wrapped end shows up as end <= start.
		if end <= start || end > bandEnd {
			break
		}

		if exception == nil || !exception.BlocksInterval(start, end) {
			if IsSlotAvailable(booked, start, end, capacity) {
				out = append(out, start)
			}
		}

		next, err := utils.AddMinutes(start, s.stride())
		if err != nil || next <= start {
			break
		}
		start = next
	}
	return out
}

// IsSlotBookable validates one candidate interval using the same rules as
// ListAvailableSlots. It fails closed: no containing band, a full-day
// exception, or an intersecting partial exception all return false. When
// overlapping bands both contain the interval, admission by any band's
// capacity is sufficient, matching what slot generation emits.
func (s *DefaultBookingService) IsSlotBookable(ctx context.Context, doctorID, date, startTime, endTime string) (bool, error) {
	day, err := utils.WeekdayOf(date)
	if err != nil {
		return false, NewValidationError(err.Error())
	}

	schedules, err := s.Schedules.GetSchedulesInEffect(ctx, doctorID, day, date)
	if err != nil {
		return false, NewStoreError(err)
	}

	startTime = utils.NormalizeClock(startTime)
	endTime = utils.NormalizeClock(endTime)

	var containing []models.WeeklySchedule
	for _, band := range schedules {
		if startTime >= utils.NormalizeClock(band.StartTime) && endTime <= utils.NormalizeClock(band.EndTime) {
			containing = append(containing, band)
		}
	}
	if len(containing) == 0 {
		return false, nil
	}

	exception, err := s.Schedules.GetException(ctx, doctorID, date)
	if err != nil {
		return false, NewStoreError(err)
	}
	if exception != nil && exception.BlocksInterval(startTime, endTime) {
		return false, nil
	}

	booked, err := s.Appointments.GetBookedIntervals(ctx, doctorID, date)
	if err != nil {
		return false, NewStoreError(err)
	}

	for _, band := range containing {
		capacity := band.Capacity
		if capacity < 1 {
			capacity = 1
		}
		if IsSlotAvailable(booked, startTime, endTime, capacity) {
			return true, nil
		}
	}
	return false, nil
}
