package config

// Config holds all configuration for the pipeline
type Config struct {
	Environment  string             `mapstructure:"environment"`
	Input        InputConfig        `mapstructure:"input"`
	Output       OutputConfig       `mapstructure:"output"`
	Logger       LoggerConfig       `mapstructure:"logger"`
	FeatureStore FeatureStoreConfig `mapstructure:"featureStore"`
}

// InputConfig locates the externally supplied tables
type InputConfig struct {
	TransactionsPath string `mapstructure:"transactionsPath"`
	LabelsPath       string `mapstructure:"labelsPath"`
	// CategoriesPath points at the keyword rule file; empty means the
	// compiled-in default categories
	CategoriesPath string `mapstructure:"categoriesPath"`
}

// OutputConfig locates the produced artifacts
type OutputConfig struct {
	FeaturesPath string `mapstructure:"featuresPath"`
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level string `mapstructure:"level"`
}

// FeatureStoreConfig contains the optional Postgres feature-store settings
type FeatureStoreConfig struct {
	Enabled             bool   `mapstructure:"enabled"`
	Host                string `mapstructure:"host"`
	Port                int    `mapstructure:"port"`
	Username            string `mapstructure:"username"`
	Password            string `mapstructure:"password"`
	Database            string `mapstructure:"database"`
	SSLMode             string `mapstructure:"sslMode"`
	MaxOpenConns        int    `mapstructure:"maxOpenConns"`
	MaxIdleConns        int    `mapstructure:"maxIdleConns"`
	ConnMaxLifetimeMins int    `mapstructure:"connMaxLifetimeMinutes"`
	QueryTimeoutSecs    int    `mapstructure:"queryTimeoutSeconds"`
}
