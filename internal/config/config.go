package config

type Config struct {
	Storage    StorageConfig `mapstructure:"storage"`
	SMTP       SMTPConfig    `mapstructure:"smtp"`
	ConfigPath string        `mapstructure:"-"`
}

type StorageConfig struct {
	// Dir holds the snapshot and credential files. Empty means the platform
	// app-data directory.
	Dir string `mapstructure:"dir"`
}

// SMTPConfig configures the account-creation mail. Mail is disabled when
// Host or Sender is empty; the password is best set via BANKCTL_SMTP_PASSWORD.
type SMTPConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Sender   string `mapstructure:"sender"`
}

func NewDefault() *Config {
	return &Config{
		Storage: StorageConfig{Dir: ""},
		SMTP:    SMTPConfig{Port: 587},
	}
}
