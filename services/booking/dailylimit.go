package booking

import (
	"context"

	"clinicbook/utils"

	"go.uber.org/zap"
)

// HasDailyCapacity enforces the clinic-wide per-doctor daily cap: true iff
// the doctor's non-cancelled appointment count for the date is below the
// configured limit. This ceiling is independent of per-slot capacity — a
// doctor with roomy bands can still be capped for the day.
func (s *DefaultBookingService) HasDailyCapacity(ctx context.Context, doctorID, date string) (bool, error) {
	count, err := s.Appointments.CountForDoctorDate(ctx, doctorID, date)
	if err != nil {
		return false, NewStoreError(err)
	}

	limit := s.DailyLimits.GetDailyLimit(ctx)
	if count >= int64(limit) {
		utils.GetLogger().Debug("daily limit reached",
			zap.String("doctorID", doctorID),
			zap.String("date", date),
			zap.Int64("count", count),
			zap.Int("limit", limit))
		return false, nil
	}
	return true, nil
}
