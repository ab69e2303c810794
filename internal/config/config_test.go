package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const completeConfig = `
[server]
http_port = 9090

[database]
host = "localhost"
port = 5432
user = "booking"
password = "secret"
dbname = "elitejetskis"

[logs]
file = "logs/app.log"
level = "debug"

[booking]
open_time = "09:00"
close_time = "18:00"
slot_step_minutes = 60
advance_booking_days = 30

[whatsapp]
number = "971526977676"
location = "Fishing Harbour 2, Umm Suqueim 1, Main Entrance Jumeirah 4"
`

func TestLoad_Complete(t *testing.T) {
	cfg, err := Load(writeConfig(t, completeConfig))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.Equal(t, "09:00", cfg.Booking.OpenTime)
	assert.Equal(t, "18:00", cfg.Booking.CloseTime)
	assert.Equal(t, 60, cfg.Booking.SlotStepMinutes)
	assert.Equal(t, 30, cfg.Booking.AdvanceBookingDays)
	assert.Equal(t, "971526977676", cfg.WhatsApp.Number)
}

func TestLoad_AppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
[database]
host = "localhost"
port = 5432
user = "booking"
dbname = "elitejetskis"
`))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "08:00", cfg.Booking.OpenTime)
	assert.Equal(t, "17:00", cfg.Booking.CloseTime)
	assert.Equal(t, 30, cfg.Booking.SlotStepMinutes)
	assert.Equal(t, 60, cfg.Booking.AdvanceBookingDays)
}

func TestLoad_FailsClosedOnIncompleteDatabase(t *testing.T) {
	tests := []struct {
		name string
		toml string
	}{
		{"empty file", ``},
		{"missing host", "[database]\nport = 5432\nuser = \"booking\"\ndbname = \"elitejetskis\"\n"},
		{"missing user", "[database]\nhost = \"localhost\"\nport = 5432\ndbname = \"elitejetskis\"\n"},
		{"missing dbname", "[database]\nhost = \"localhost\"\nport = 5432\nuser = \"booking\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Сервис отказывается стартовать вместо тихой работы без хранилища
			_, err := Load(writeConfig(t, tt.toml))
			require.ErrorIs(t, err, ErrIncompleteDatabaseConfig)
		})
	}
}

func TestLoad_RejectsInvertedWindow(t *testing.T) {
	_, err := Load(writeConfig(t, `
[database]
host = "localhost"
port = 5432
user = "booking"
dbname = "elitejetskis"

[booking]
open_time = "18:00"
close_time = "09:00"
`))
	require.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	dsn := DatabaseConfig{
		Host:     "db.internal",
		Port:     5432,
		User:     "booking",
		Password: "secret",
		DBName:   "elitejetskis",
		SSLMode:  "require",
	}.DSN()

	assert.Equal(t, "host=db.internal port=5432 user=booking password=secret dbname=elitejetskis sslmode=require", dsn)
}
