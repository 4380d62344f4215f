package models

import "time"

// DailyLimitSettingKey is the clinic_settings key holding the per-doctor
// daily appointment cap.
const DailyLimitSettingKey = "daily_appointment_limit_per_doctor"

// DefaultDailyLimit applies when the setting is missing or unreadable.
const DefaultDailyLimit = 30

// ClinicSetting is a keyed configuration record mutated by staff.
type ClinicSetting struct {
	SettingKey   string       `bson:"setting_key" json:"setting_key"`
	SettingValue SettingValue `bson:"setting_value" json:"setting_value"`
	UpdatedAt    time.Time    `bson:"updated_at" json:"updated_at"`
}

type SettingValue struct {
	Limit int `bson:"limit" json:"limit"`
}
