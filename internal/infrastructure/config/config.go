package config

// Config holds all configuration for the kiosk
type Config struct {
	Environment string       `mapstructure:"environment"`
	Data        DataConfig   `mapstructure:"data"`
	Logger      LoggerConfig `mapstructure:"logger"`
	Kiosk       KioskConfig  `mapstructure:"kiosk"`
}

// DataConfig names the directory and files backing the ledger
type DataConfig struct {
	Dir            string `mapstructure:"dir"`
	UserFile       string `mapstructure:"userFile"`
	BeverageFile   string `mapstructure:"beverageFile"`
	SystemFile     string `mapstructure:"systemFile"`
	TransactionLog string `mapstructure:"transactionLog"`
	DepositLog     string `mapstructure:"depositLog"`
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// KioskConfig contains kiosk behavior settings
type KioskConfig struct {
	// DefaultPassphrase seeds the system account on first run; the setup
	// gate holds until it is changed.
	DefaultPassphrase string `mapstructure:"defaultPassphrase"`
}
