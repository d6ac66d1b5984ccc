// Package config loads runtime settings from defaults, an optional TOML file, .env and HEALTHSNAKE_ environment variables
package config

import (
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/lixenwraith/health-snake/constants"
	"github.com/lixenwraith/health-snake/core"
	"github.com/lixenwraith/health-snake/engine"
)

// EnvPrefix namespaces environment overrides, e.g. HEALTHSNAKE_DIFFICULTY=hard
const EnvPrefix = "HEALTHSNAKE"

// DefaultConfigName is the config file looked up in the working directory when none is given
const DefaultConfigName = "healthsnake"

// Grid edge bounds, in cells
const (
	MinGridCells = 5
	MaxGridCells = 100
)

// Config is the validated runtime configuration
type Config struct {
	BoardSize    int    `mapstructure:"board_size" validate:"gt=0"`
	CellSize     int    `mapstructure:"cell_size" validate:"gt=0"`
	Difficulty   string `mapstructure:"difficulty" validate:"oneof=easy medium hard"`
	Audio        bool   `mapstructure:"audio"`
	Seed         uint64 `mapstructure:"seed"`
	Catalog      string `mapstructure:"catalog"`
	SpectateAddr string `mapstructure:"spectate_addr"`
	Debug        bool   `mapstructure:"debug"`
	RollbarToken string `mapstructure:"rollbar_token"`
	Environment  string `mapstructure:"environment" validate:"oneof=dev test prod"`
	Keymap       Keymap `mapstructure:"keymap"`
}

// Keymap holds key binding overrides, key name to action name
type Keymap struct {
	Runes map[string]string `mapstructure:"runes"`
	Keys  map[string]string `mapstructure:"keys"`
}

// Options selects the files Load reads
type Options struct {
	ConfigFile string // explicit TOML path, must exist when set
	EnvFile    string // .env path, ignored when missing
}

// Load resolves configuration: defaults < config file < environment
func Load(opts Options) (*Config, error) {
	if err := loadEnvFile(opts.EnvFile); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetTypeByDefaultValue(true)
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", opts.ConfigFile)
		}
	} else {
		v.SetConfigName(DefaultConfigName)
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, errors.Wrap(err, "read config")
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	cfg.Difficulty = strings.ToLower(strings.TrimSpace(cfg.Difficulty))
	cfg.Environment = strings.ToLower(strings.TrimSpace(cfg.Environment))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("board_size", constants.BoardSize)
	v.SetDefault("cell_size", constants.CellSize)
	v.SetDefault("difficulty", "medium")
	v.SetDefault("audio", true)
	v.SetDefault("seed", uint64(0))
	v.SetDefault("catalog", "")
	v.SetDefault("spectate_addr", "")
	v.SetDefault("debug", false)
	v.SetDefault("rollbar_token", "")
	v.SetDefault("environment", "dev")
}

func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, "stat %s", path)
	}
	// Existing environment variables win over the file
	if err := godotenv.Load(path); err != nil {
		return errors.Wrapf(err, "load %s", path)
	}
	return nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterStructValidation(validateGrid, Config{})
	return v
}

// validateGrid requires the board to split evenly into a playable square grid
func validateGrid(sl validator.StructLevel) {
	cfg := sl.Current().Interface().(Config)
	if cfg.CellSize <= 0 {
		return
	}
	if cfg.BoardSize%cfg.CellSize != 0 {
		sl.ReportError(cfg.BoardSize, "BoardSize", "board_size", "divisible", "")
	}
	n := cfg.BoardSize / cfg.CellSize
	if n < MinGridCells || n > MaxGridCells {
		sl.ReportError(cfg.CellSize, "CellSize", "cell_size", "gridcells", "")
	}
}

// Validate checks field ranges and grid geometry
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	return nil
}

// Grid returns the board grid
func (c *Config) Grid() core.Grid {
	return core.NewGrid(c.BoardSize, c.CellSize)
}

// Level returns the configured difficulty, medium when unrecognized
func (c *Config) Level() engine.Difficulty {
	d, _ := engine.ParseDifficulty(c.Difficulty)
	return d
}
