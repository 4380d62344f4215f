package clinic

import (
	"context"
	"strconv"
	"time"

	settingsRepo "clinicbook/database/repository/settings"
	"clinicbook/models"
	"clinicbook/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	dailyLimitCacheKey = "clinic:daily_limit"
	dailyLimitCacheTTL = time.Minute
)

// SettingsService exposes staff-tunable clinic configuration.
type SettingsService interface {
	// GetDailyLimit returns the per-doctor daily appointment cap. It never
	// fails: an unset or unreadable setting falls back to the default.
	GetDailyLimit(ctx context.Context) int
	// UpdateDailyLimit validates bounds (1-100) and persists a new cap.
	UpdateDailyLimit(ctx context.Context, limit int) error
}

// DefaultSettingsService reads settings through a short-lived Redis cache so
// the daily-capacity gate does not hit the store on every booking.
type DefaultSettingsService struct {
	Repo  settingsRepo.SettingsRepository
	Cache *redis.Client
}

func (s *DefaultSettingsService) GetDailyLimit(ctx context.Context) int {
	logger := utils.GetLogger()

	if s.Cache != nil {
		if cached, err := s.Cache.Get(ctx, dailyLimitCacheKey).Result(); err == nil {
			if limit, convErr := strconv.Atoi(cached); convErr == nil && limit > 0 {
				return limit
			}
		} else if err != redis.Nil {
			logger.Warn("daily limit cache read failed", zap.Error(err))
		}
	}

	setting, err := s.Repo.Get(ctx, models.DailyLimitSettingKey)
	if err != nil {
		logger.Error("failed to read daily limit setting, using default", zap.Error(err))
		return models.DefaultDailyLimit
	}

	limit := models.DefaultDailyLimit
	if setting != nil && setting.SettingValue.Limit > 0 {
		limit = setting.SettingValue.Limit
	}

	if s.Cache != nil {
		if err := s.Cache.Set(ctx, dailyLimitCacheKey, strconv.Itoa(limit), dailyLimitCacheTTL).Err(); err != nil {
			logger.Warn("daily limit cache write failed", zap.Error(err))
		}
	}
	return limit
}

func (s *DefaultSettingsService) UpdateDailyLimit(ctx context.Context, limit int) error {
	if limit < 1 || limit > 100 {
		return ErrLimitOutOfRange
	}

	setting := &models.ClinicSetting{
		SettingKey:   models.DailyLimitSettingKey,
		SettingValue: models.SettingValue{Limit: limit},
	}
	if err := s.Repo.Upsert(ctx, setting); err != nil {
		return err
	}

	if s.Cache != nil {
		if err := s.Cache.Set(ctx, dailyLimitCacheKey, strconv.Itoa(limit), dailyLimitCacheTTL).Err(); err != nil {
			utils.GetLogger().Warn("daily limit cache refresh failed", zap.Error(err))
		}
	}
	return nil
}
