package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"mongo": map[string]any{
			"uri":            "",
			"connectTimeout": "5s",
		},
		"notification": map[string]any{
			"resend": map[string]any{
				"apiKey": "",
			},
			"twilio": map[string]any{
				"accountSid": "",
			},
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "MONGO_URI", want: "mongo.uri"},
		{envKey: "MONGO_CONNECTTIMEOUT", want: "mongo.connectTimeout"},
		{envKey: "NOTIFICATION_RESEND_APIKEY", want: "notification.resend.apiKey"},
		{envKey: "NOTIFICATION_TWILIO_ACCOUNTSID", want: "notification.twilio.accountSid"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestLoadWithEnv_OverridesYAML(t *testing.T) {
	dir := t.TempDir()
	yamlBody := `
env:
  serviceName: gymdesk
mongo:
  uri: mongodb://localhost:27017
  database: gymdesk
ledger:
  maxSaveAttempts: 3
reminder:
  daysBefore: [7, 3, 1]
  lockExpiry: 5m
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), []byte(yamlBody), 0o600))

	t.Setenv("MONGO_DATABASE", "gymdesk_test")
	t.Setenv("LEDGER_MAXSAVEATTEMPTS", "5")

	wd, err := os.Getwd()
	require.NoError(t, err)
	rel, err := filepath.Rel(wd, dir)
	require.NoError(t, err)

	cfg, err := LoadWithEnv[Config]("test", rel)
	require.NoError(t, err)

	assert.Equal(t, "gymdesk_test", cfg.Mongo.Database)
	assert.Equal(t, 5, cfg.Ledger.MaxSaveAttempts)
	assert.Equal(t, []int{7, 3, 1}, cfg.Reminder.DaysBefore)
	assert.Equal(t, 5*time.Minute, cfg.Reminder.LockExpiry)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config]("does-not-exist")
	assert.Error(t, err)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.Env.ServiceName = "gymdesk"

	cfg.applyDefaults()

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "FLM", cfg.Ledger.RegularPrefix)
	assert.Equal(t, "VIS", cfg.Ledger.VisitorPrefix)
	assert.Equal(t, int64(1000), cfg.Ledger.RegistrationFloor)
	assert.Equal(t, defaultMaxSaveAttempts, cfg.Ledger.MaxSaveAttempts)
	assert.Equal(t, defaultImportMaxRows, cfg.Import.MaxRows)
	assert.Equal(t, "gymdesk", cfg.Notification.GymName)
	assert.Equal(t, []int{7, 3, 1}, cfg.Reminder.DaysBefore)
	assert.Equal(t, defaultReminderSchedule, cfg.Reminder.Schedule)
	assert.Equal(t, 256, cfg.QRCode.Size)
	assert.NotNil(t, cfg.Redis)
}
