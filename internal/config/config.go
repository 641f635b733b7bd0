// Package config resolves generator settings from defaults, an optional YAML
// file named by GENERATOR_CONFIG, and environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"itinerary-dataset/internal/domain"
)

type Config struct {
	Seed        uint64    `yaml:"seed"`
	RosterPath  string    `yaml:"roster_path"`
	OutputPath  string    `yaml:"output_path"`
	WindowStart time.Time `yaml:"window_start"`
	WindowEnd   time.Time `yaml:"window_end"`

	AvgSpeedKmh     float64       `yaml:"avg_speed_kmh"`
	OverheadHours   float64       `yaml:"overhead_hours"`
	MaxTrips        int           `yaml:"max_trips"`
	StartWindowDays float64       `yaml:"start_window_days"`
	JitterSD        time.Duration `yaml:"jitter_sd"`

	DesignatedID     string    `yaml:"designated_id"`
	DesignatedName   string    `yaml:"designated_name"`
	TargetLocation   string    `yaml:"target_location"`
	TargetInstant    time.Time `yaml:"target_instant"`
	MinPresent       int       `yaml:"min_present"`
	MaxPresent       int       `yaml:"max_present"`
	ResolverAttempts int       `yaml:"resolver_attempts"`
}

const minWindow = 7 * 24 * time.Hour

func Default() Config {
	return Config{
		Seed:        42,
		RosterPath:  "agent_ssns.json",
		OutputPath:  "data.sqlite",
		WindowStart: time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
		WindowEnd:   time.Date(2025, 11, 13, 14, 59, 59, 0, time.UTC),

		AvgSpeedKmh:     900,
		OverheadHours:   2,
		MaxTrips:        12,
		StartWindowDays: 10,
		JitterSD:        48 * time.Hour,

		DesignatedID:     "002-05-1849",
		DesignatedName:   "Buckingham Web",
		TargetInstant:    time.Date(2025, 10, 8, 20, 37, 0, 0, time.UTC),
		MinPresent:       5,
		MaxPresent:       10,
		ResolverAttempts: 500,
	}
}

// Get returns the environment value for key, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// Load builds the configuration and validates it.
func Load() (Config, error) {
	cfg := Default()

	if path := Get("GENERATOR_CONFIG", ""); path != "" {
		if err := cfg.mergeYAML(path); err != nil {
			return Config{}, err
		}
	}

	if err := cfg.mergeEnv(); err != nil {
		return Config{}, err
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) mergeYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("load config: read %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("load config: parse %q: %w", path, err)
	}
	return nil
}

func (c *Config) mergeEnv() error {
	var errs []error
	setUint := func(key string, dst *uint64) {
		if v := Get(key, ""); v != "" {
			n, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
				return
			}
			*dst = n
		}
	}
	setInt := func(key string, dst *int) {
		if v := Get(key, ""); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
				return
			}
			*dst = n
		}
	}
	setFloat := func(key string, dst *float64) {
		if v := Get(key, ""); v != "" {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
				return
			}
			*dst = f
		}
	}
	setTime := func(key string, dst *time.Time) {
		if v := Get(key, ""); v != "" {
			t, err := time.Parse(time.RFC3339, v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
				return
			}
			*dst = t
		}
	}
	setDuration := func(key string, dst *time.Duration) {
		if v := Get(key, ""); v != "" {
			d, err := time.ParseDuration(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
				return
			}
			*dst = d
		}
	}
	setString := func(key string, dst *string) {
		if v := Get(key, ""); v != "" {
			*dst = v
		}
	}

	setUint("GENERATOR_SEED", &c.Seed)
	setString("ROSTER_PATH", &c.RosterPath)
	setString("OUTPUT_PATH", &c.OutputPath)
	setTime("WINDOW_START", &c.WindowStart)
	setTime("WINDOW_END", &c.WindowEnd)
	setFloat("AVG_SPEED_KMH", &c.AvgSpeedKmh)
	setFloat("OVERHEAD_HOURS", &c.OverheadHours)
	setInt("MAX_TRIPS", &c.MaxTrips)
	setFloat("START_WINDOW_DAYS", &c.StartWindowDays)
	setDuration("JITTER_SD", &c.JitterSD)
	setString("DESIGNATED_ID", &c.DesignatedID)
	setString("DESIGNATED_NAME", &c.DesignatedName)
	setString("TARGET_LOCATION", &c.TargetLocation)
	setTime("TARGET_INSTANT", &c.TargetInstant)
	setInt("MIN_PRESENT", &c.MinPresent)
	setInt("MAX_PRESENT", &c.MaxPresent)
	setInt("RESOLVER_ATTEMPTS", &c.ResolverAttempts)

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("load config: environment: %w", err)
	}
	return nil
}

// normalize puts every instant in UTC at second precision, matching what the
// stores can represent.
func (c *Config) normalize() {
	c.WindowStart = c.WindowStart.UTC().Truncate(time.Second)
	c.WindowEnd = c.WindowEnd.UTC().Truncate(time.Second)
	c.TargetInstant = c.TargetInstant.UTC().Truncate(time.Second)
	c.DesignatedID = strings.TrimSpace(c.DesignatedID)
}

// Validate rejects settings the pipeline cannot honour.
func (c Config) Validate() error {
	var errs []error

	if c.WindowEnd.Sub(c.WindowStart) < minWindow {
		errs = append(errs, fmt.Errorf("window %s..%s must span at least %s",
			domain.FormatISO(c.WindowStart), domain.FormatISO(c.WindowEnd), minWindow))
	}
	if c.TargetInstant.Before(c.WindowStart) || !c.TargetInstant.Before(c.WindowEnd) {
		errs = append(errs, fmt.Errorf("target instant %s must lie in [window_start, window_end)",
			domain.FormatISO(c.TargetInstant)))
	}
	if c.AvgSpeedKmh <= 0 {
		errs = append(errs, errors.New("avg_speed_kmh must be positive"))
	}
	if c.OverheadHours < 0 {
		errs = append(errs, errors.New("overhead_hours must not be negative"))
	}
	if c.MaxTrips < 1 {
		errs = append(errs, errors.New("max_trips must be at least 1"))
	}
	if c.StartWindowDays < 0 {
		errs = append(errs, errors.New("start_window_days must not be negative"))
	}
	if c.JitterSD < 0 {
		errs = append(errs, errors.New("jitter_sd must not be negative"))
	}
	if c.MinPresent < 0 || c.MinPresent > c.MaxPresent {
		errs = append(errs, fmt.Errorf("presence range [%d,%d] is invalid", c.MinPresent, c.MaxPresent))
	}
	if c.ResolverAttempts < 0 {
		errs = append(errs, errors.New("resolver_attempts must not be negative"))
	}
	if c.DesignatedID == "" {
		errs = append(errs, errors.New("designated_id is required"))
	}
	if strings.TrimSpace(c.RosterPath) == "" || strings.TrimSpace(c.OutputPath) == "" {
		errs = append(errs, errors.New("roster_path and output_path are required"))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Window returns the generation window.
func (c Config) Window() (domain.Window, error) {
	return domain.NewWindow(c.WindowStart, c.WindowEnd)
}
