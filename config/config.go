package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "10MB"
	defaultMaxSaveAttempts    = 3
	defaultImportMaxRows      = 5000
	defaultAccessTokenTTL     = 12 * time.Hour
	defaultReminderSchedule   = "0 0 10 * * *"
	defaultRefreshSchedule    = "0 30 0 * * *"
	defaultLockExpiry         = 10 * time.Minute
	defaultExpiringWithinDays = 7
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Mongo *MongoConfig `json:"mongo" yaml:"mongo"`

	Redis *RedisConfig `json:"redis" yaml:"redis"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Ledger configuration for member package bookkeeping
	Ledger *LedgerConfig `json:"ledger" yaml:"ledger"`

	// Import configuration for bulk spreadsheet imports
	Import *ImportConfig `json:"import" yaml:"import"`

	// Notification configuration for receipts and reminders
	Notification *NotificationConfig `json:"notification" yaml:"notification"`

	// Reminder configuration for the expiry reminder job
	Reminder *ReminderConfig `json:"reminder" yaml:"reminder"`

	// QRCode configuration for member cards
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

// MongoConfig defines the document store connection.
type MongoConfig struct {
	URI            string        `json:"uri" yaml:"uri"`
	Database       string        `json:"database" yaml:"database"`
	ConnectTimeout time.Duration `json:"connectTimeout" yaml:"connectTimeout"`
	// Migrate creates collections indexes on startup.
	Migrate bool `json:"migrate" yaml:"migrate"`
}

// RedisConfig defines the redis connection used for distributed job locks.
// An empty Addr falls back to in-process locks.
type RedisConfig struct {
	Addr         string        `json:"addr" yaml:"addr"`
	Password     string        `json:"password" yaml:"password"`
	DB           int           `json:"db" yaml:"db"`
	PoolSize     int           `json:"poolSize" yaml:"poolSize"`
	MinIdleConns int           `json:"minIdleConns" yaml:"minIdleConns"`
	DialTimeout  time.Duration `json:"dialTimeout" yaml:"dialTimeout"`
	ReadTimeout  time.Duration `json:"readTimeout" yaml:"readTimeout"`
	WriteTimeout time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost     int           `json:"bcryptCost" yaml:"bcryptCost"`
	AccessTokenTTL time.Duration `json:"accessTokenTTL" yaml:"accessTokenTTL"`
	// BootstrapAdmin is created on startup when no employee exists yet.
	BootstrapAdmin *BootstrapAdminConfig `json:"bootstrapAdmin" yaml:"bootstrapAdmin"`
}

// BootstrapAdminConfig is the first administrator account.
type BootstrapAdminConfig struct {
	FullName string `json:"fullName" yaml:"fullName"`
	Email    string `json:"email" yaml:"email"`
	Password string `json:"password" yaml:"password"`
}

// LedgerConfig defines member ledger behaviour.
type LedgerConfig struct {
	RegularPrefix string `json:"regularPrefix" yaml:"regularPrefix"`
	VisitorPrefix string `json:"visitorPrefix" yaml:"visitorPrefix"`
	// RegistrationFloor is the counter seed when no numbers exist for a prefix.
	RegistrationFloor int64 `json:"registrationFloor" yaml:"registrationFloor"`
	// MaxSaveAttempts bounds retries when a concurrent writer changed the member.
	MaxSaveAttempts    int `json:"maxSaveAttempts" yaml:"maxSaveAttempts"`
	ExpiringWithinDays int `json:"expiringWithinDays" yaml:"expiringWithinDays"`
}

// ImportConfig defines bulk import limits.
type ImportConfig struct {
	MaxRows int `json:"maxRows" yaml:"maxRows"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// NotificationConfig selects the email and SMS providers. A provider without
// credentials is replaced by one that only logs.
type NotificationConfig struct {
	Resend *ResendConfig `json:"resend" yaml:"resend"`
	Twilio *TwilioConfig `json:"twilio" yaml:"twilio"`
	// GymName is used in message subjects and signatures.
	GymName string `json:"gymName" yaml:"gymName"`
}

// ResendConfig defines the transactional email provider.
type ResendConfig struct {
	APIKey  string `json:"apiKey" yaml:"apiKey"`
	From    string `json:"from" yaml:"from"`
	ReplyTo string `json:"replyTo" yaml:"replyTo"`
}

// TwilioConfig defines the SMS provider.
type TwilioConfig struct {
	AccountSID  string `json:"accountSid" yaml:"accountSid"`
	AuthToken   string `json:"authToken" yaml:"authToken"`
	From        string `json:"from" yaml:"from"`
	CountryCode string `json:"countryCode" yaml:"countryCode"`
}

// ReminderConfig defines the expiry reminder job.
type ReminderConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
	// Schedule is a six-field cron expression, seconds first.
	Schedule string `json:"schedule" yaml:"schedule"`
	// DaysBefore lists how many days ahead of expiry a reminder is sent.
	DaysBefore []int         `json:"daysBefore" yaml:"daysBefore"`
	SendSMS    bool          `json:"sendSms" yaml:"sendSms"`
	LockExpiry time.Duration `json:"lockExpiry" yaml:"lockExpiry"`
	// RefreshSchedule re-derives stored member statuses as dates pass.
	RefreshSchedule string `json:"refreshSchedule" yaml:"refreshSchedule"`
}

// QRCodeConfig defines member card QR code generation
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: NOTIFICATION_RESEND_APIKEY -> notification.resend.apiKey
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if cfg.Mongo == nil || cfg.Mongo.URI == "" {
		return nil, errors.New("mongo.uri must be configured")
	}

	cfg.applyDefaults()

	return cfg, nil
}

// applyDefaults fills optional sections so consumers never see nil pointers.
func (cfg *Config) applyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.Redis == nil {
		cfg.Redis = &RedisConfig{}
	}
	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.AccessTokenTTL <= 0 {
		cfg.Auth.AccessTokenTTL = defaultAccessTokenTTL
	}

	if cfg.Ledger == nil {
		cfg.Ledger = &LedgerConfig{}
	}
	if cfg.Ledger.RegularPrefix == "" {
		cfg.Ledger.RegularPrefix = "FLM"
	}
	if cfg.Ledger.VisitorPrefix == "" {
		cfg.Ledger.VisitorPrefix = "VIS"
	}
	if cfg.Ledger.RegistrationFloor <= 0 {
		cfg.Ledger.RegistrationFloor = 1000
	}
	if cfg.Ledger.MaxSaveAttempts <= 0 {
		cfg.Ledger.MaxSaveAttempts = defaultMaxSaveAttempts
	}
	if cfg.Ledger.ExpiringWithinDays <= 0 {
		cfg.Ledger.ExpiringWithinDays = defaultExpiringWithinDays
	}

	if cfg.Import == nil {
		cfg.Import = &ImportConfig{}
	}
	if cfg.Import.MaxRows <= 0 {
		cfg.Import.MaxRows = defaultImportMaxRows
	}

	if cfg.Notification == nil {
		cfg.Notification = &NotificationConfig{}
	}
	if cfg.Notification.GymName == "" {
		cfg.Notification.GymName = cfg.Env.ServiceName
	}

	if cfg.Reminder == nil {
		cfg.Reminder = &ReminderConfig{}
	}
	if cfg.Reminder.Schedule == "" {
		cfg.Reminder.Schedule = defaultReminderSchedule
	}
	if cfg.Reminder.RefreshSchedule == "" {
		cfg.Reminder.RefreshSchedule = defaultRefreshSchedule
	}
	if len(cfg.Reminder.DaysBefore) == 0 {
		cfg.Reminder.DaysBefore = []int{7, 3, 1}
	}
	if cfg.Reminder.LockExpiry <= 0 {
		cfg.Reminder.LockExpiry = defaultLockExpiry
	}

	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{Size: 256, ErrorCorrectionLevel: "M"}
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
