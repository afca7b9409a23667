// Package config defines the data structures related to configuration and
// includes functions for loading, validating and watching the config.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/iwvelando/sem-planner/internal/keywords"
	"github.com/iwvelando/sem-planner/pkg/constants"
	"github.com/iwvelando/sem-planner/pkg/validation"
)

// Configuration holds all configuration for sem-planner.
type Configuration struct {
	Campaign         Campaign          `mapstructure:"campaign" yaml:"campaign"`
	Allocation       Allocation        `mapstructure:"allocation" yaml:"allocation,omitempty"`
	KeywordTemplates []KeywordTemplate `mapstructure:"keywordTemplates" yaml:"keywordTemplates,omitempty"`
	Classification   Classification    `mapstructure:"classification" yaml:"classification,omitempty"`
	Products         []Product         `mapstructure:"products" yaml:"products,omitempty"`
	Discovery        Discovery         `mapstructure:"discovery" yaml:"discovery,omitempty"`
	Logging          LoggingConfig     `mapstructure:"logging" yaml:"logging,omitempty"`
	Output           OutputConfig      `mapstructure:"output" yaml:"output,omitempty"`
}

// Campaign holds the marketer's inputs for one plan.
type Campaign struct {
	BrandWebsite      string   `mapstructure:"brandWebsite" yaml:"brandWebsite"`
	CompetitorWebsite string   `mapstructure:"competitorWebsite" yaml:"competitorWebsite"`
	Locations         []string `mapstructure:"locations" yaml:"locations"`
	TotalBudget       float64  `mapstructure:"totalBudget" yaml:"totalBudget"`
	TargetCPA         float64  `mapstructure:"targetCPA" yaml:"targetCPA"`
	ConversionRate    float64  `mapstructure:"conversionRate" yaml:"conversionRate"`
}

// Allocation holds the channel split of the monthly budget.
type Allocation struct {
	Shopping     float64 `mapstructure:"shopping" yaml:"shopping"`
	Search       float64 `mapstructure:"search" yaml:"search"`
	PMax         float64 `mapstructure:"pmax" yaml:"pmax"`
	DaysPerMonth float64 `mapstructure:"daysPerMonth" yaml:"daysPerMonth"`
}

// KeywordTemplate is one seed keyword row. Pattern must contain {domain}.
type KeywordTemplate struct {
	Pattern      string  `mapstructure:"pattern" yaml:"pattern"`
	SearchVolume int     `mapstructure:"searchVolume" yaml:"searchVolume"`
	Competition  string  `mapstructure:"competition" yaml:"competition"`
	CPCLow       float64 `mapstructure:"cpcLow" yaml:"cpcLow"`
	CPCHigh      float64 `mapstructure:"cpcHigh" yaml:"cpcHigh"`
}

// Classification tunes the ad group rules.
type Classification struct {
	BrandTerms       []string `mapstructure:"brandTerms" yaml:"brandTerms,omitempty"`
	CompetitorTerms  []string `mapstructure:"competitorTerms" yaml:"competitorTerms,omitempty"`
	LongTailMinWords int      `mapstructure:"longTailMinWords" yaml:"longTailMinWords,omitempty"`
}

// Product is one shopping catalog entry.
type Product struct {
	Name     string  `mapstructure:"name" yaml:"name"`
	PriceMin float64 `mapstructure:"priceMin" yaml:"priceMin"`
	PriceMax float64 `mapstructure:"priceMax" yaml:"priceMax"`
	Priority string  `mapstructure:"priority" yaml:"priority"`
}

// Discovery lists local HTML pages to mine for keyword ideas.
type Discovery struct {
	Pages           []string `mapstructure:"pages" yaml:"pages,omitempty"`
	MinSearchVolume int      `mapstructure:"minSearchVolume" yaml:"minSearchVolume,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `mapstructure:"level" yaml:"level,omitempty"`           // debug, info, warn, error
	Format     string `mapstructure:"format" yaml:"format,omitempty"`         // json, console
	OutputFile string `mapstructure:"outputFile" yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format,omitempty"` // pretty, json, csv, xlsx
	Path   string `mapstructure:"path" yaml:"path,omitempty"`     // empty writes to stdout
}

// SetDefaults registers the built-in values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("campaign.brandWebsite", "")
	v.SetDefault("campaign.competitorWebsite", "")
	v.SetDefault("campaign.locations", []string{})
	v.SetDefault("campaign.totalBudget", constants.DefaultTotalBudget)
	v.SetDefault("campaign.targetCPA", constants.DefaultTargetCPA)
	v.SetDefault("campaign.conversionRate", constants.DefaultConversionRate)

	v.SetDefault("allocation.shopping", constants.ShoppingRatio)
	v.SetDefault("allocation.search", constants.SearchRatio)
	v.SetDefault("allocation.pmax", constants.PMaxRatio)
	v.SetDefault("allocation.daysPerMonth", constants.DaysPerMonth)

	v.SetDefault("classification.longTailMinWords", constants.DefaultLongTailMinWords)
	v.SetDefault("discovery.minSearchVolume", constants.DefaultMinSearchVolume)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.outputFile", "")
	v.SetDefault("output.format", constants.OutputFormatPretty)
	v.SetDefault("output.path", "")
}

// New returns a viper instance with defaults and SEM_PLANNER_ environment
// overrides (e.g. SEM_PLANNER_CAMPAIGN_TOTALBUDGET).
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := New()
	v.SetConfigFile(configPath)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %w", err)
	}
	return Decode(v)
}

// LoadConfigurationFromReader loads YAML configuration from r.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := New()
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config, %w", err)
	}
	return Decode(v)
}

// Default returns the configuration built from defaults and environment only.
func Default() (*Configuration, error) {
	return Decode(New())
}

// Decode unmarshals the current state of v.
func Decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}
	return &configuration, nil
}

// Validate checks the configuration tables and returns the first hard error.
func (c *Configuration) Validate() error {
	if err := c.ToRatios().Validate(); err != nil {
		return fmt.Errorf("allocation: %w", err)
	}
	templates, err := c.ToTemplates()
	if err != nil {
		return err
	}
	if len(c.KeywordTemplates) > 0 {
		if err := keywords.ValidateTemplates(templates); err != nil {
			return err
		}
	}
	if _, err := c.ToCatalog(); err != nil {
		return err
	}
	if c.Classification.LongTailMinWords < 0 {
		return fmt.Errorf("classification: longTailMinWords must be non-negative, got %d", c.Classification.LongTailMinWords)
	}
	if c.Discovery.MinSearchVolume < 0 {
		return fmt.Errorf("discovery: minSearchVolume must be non-negative, got %d", c.Discovery.MinSearchVolume)
	}
	if err := validation.ValidateOutputFormat(c.Output.Format); err != nil {
		return fmt.Errorf("output: %w", err)
	}
	return nil
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (c *Configuration) ValidateConfiguration() []string {
	warnings := validation.LocationWarnings(c.Campaign.Locations)

	brand := keywords.ExtractDomain(c.Campaign.BrandWebsite)
	competitor := keywords.ExtractDomain(c.Campaign.CompetitorWebsite)
	if brand == keywords.PlaceholderDomain {
		warnings = append(warnings, fmt.Sprintf("Brand website '%s' has no usable domain, keywords will use '%s'", c.Campaign.BrandWebsite, keywords.PlaceholderDomain))
	}
	if competitor == keywords.PlaceholderDomain {
		warnings = append(warnings, fmt.Sprintf("Competitor website '%s' has no usable domain, keywords will use '%s'", c.Campaign.CompetitorWebsite, keywords.PlaceholderDomain))
	}
	if brand == competitor && brand != keywords.PlaceholderDomain {
		warnings = append(warnings, fmt.Sprintf("Brand and competitor share the domain '%s' - keywords will be duplicated", brand))
	}

	for _, page := range c.Discovery.Pages {
		if _, err := os.Stat(page); err != nil {
			warnings = append(warnings, fmt.Sprintf("Discovery page '%s' is not readable: %v", page, err))
		}
	}
	return warnings
}
