package domain

import "time"

type BackupFrequency string

const (
	BackupManual  BackupFrequency = "manual"
	BackupDaily   BackupFrequency = "daily"
	BackupWeekly  BackupFrequency = "weekly"
	BackupMonthly BackupFrequency = "monthly"
)

func (f BackupFrequency) Valid() bool {
	switch f {
	case BackupManual, BackupDaily, BackupWeekly, BackupMonthly:
		return true
	}
	return false
}

// DueOn indica se o backup deve rodar na data informada.
// Semanal roda às segundas e mensal no primeiro dia do mês.
func (f BackupFrequency) DueOn(date time.Time) bool {
	switch f {
	case BackupDaily:
		return true
	case BackupWeekly:
		return date.Weekday() == time.Monday
	case BackupMonthly:
		return date.Day() == 1
	}
	return false
}

const (
	CurrencyBRL = "BRL"
	CurrencyUSD = "USD"
	CurrencyEUR = "EUR"
)

var CurrencySymbols = map[string]string{
	CurrencyBRL: "R$",
	CurrencyUSD: "$",
	CurrencyEUR: "€",
}

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Settings são as preferências do usuário
type Settings struct {
	Currency        string          `json:"currency"`
	DecimalPlaces   int             `json:"decimalPlaces"`
	AutoSave        bool            `json:"autoSave"`
	BackupFrequency BackupFrequency `json:"backupFrequency"`
	Theme           string          `json:"theme"`
	UpdatedAt       *time.Time      `json:"updatedAt,omitempty"`
}

func DefaultSettings() *Settings {
	return &Settings{
		Currency:        CurrencyBRL,
		DecimalPlaces:   2,
		AutoSave:        true,
		BackupFrequency: BackupDaily,
		Theme:           ThemeLight,
	}
}

// UpdateSettingsRequest contém apenas os campos que devem ser alterados
type UpdateSettingsRequest struct {
	Currency        *string          `json:"currency"`
	DecimalPlaces   *int             `json:"decimalPlaces"`
	AutoSave        *bool            `json:"autoSave"`
	BackupFrequency *BackupFrequency `json:"backupFrequency"`
	Theme           *string          `json:"theme"`
}
