// Package constants provides shared constants for the sem-planner application.
package constants

// Budget allocation constants
const (
	// ShoppingRatio is the share of the monthly budget given to Shopping campaigns
	ShoppingRatio = 0.333

	// SearchRatio is the share of the monthly budget given to Search campaigns
	SearchRatio = 0.467

	// PMaxRatio is the share of the monthly budget given to Performance Max campaigns
	PMaxRatio = 0.200

	// DaysPerMonth is the divisor used to turn monthly budgets into daily budgets
	DaysPerMonth = 30

	// RatioTolerance is the allowed deviation when checking that ratios sum to 1
	RatioTolerance = 1e-9
)

// Channel names
const (
	ChannelShopping = "shopping"
	ChannelSearch   = "search"
	ChannelPMax     = "pmax"
)

// Bidding constants
const (
	// DefaultTargetCPA is the target cost per acquisition used when none is given
	DefaultTargetCPA = 50.0

	// DefaultConversionRate is the 2% conversion rate assumed by all estimates
	DefaultConversionRate = 0.02

	// ShoppingCPCPriceShare is the share of a product's average price used as a CPC base
	ShoppingCPCPriceShare = 0.1

	// DecimalPlaces is the number of decimals kept when rounding currency
	DecimalPlaces = 2

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01
)

// Input range constants
const (
	MinTotalBudget = 1000.0
	MaxTotalBudget = 100000.0
	MinTargetCPA   = 10.0
	MaxTargetCPA   = 200.0

	// DefaultTotalBudget is the monthly budget used when none is given
	DefaultTotalBudget = 15000.0
)

// Keyword constants
const (
	// DefaultLongTailMinWords is the word count at which a keyword becomes long-tail
	DefaultLongTailMinWords = 4

	// ExactMatchMaxWords is the longest keyword that still gets Exact match
	ExactMatchMaxWords = 2

	// DefaultMinSearchVolume drops discovered keywords below this monthly volume
	DefaultMinSearchVolume = 500
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatJSON is the full plan JSON format
	OutputFormatJSON = "json"

	// OutputFormatCSV is the flat keyword table format
	OutputFormatCSV = "csv"

	// OutputFormatXLSX is the multi-sheet spreadsheet format
	OutputFormatXLSX = "xlsx"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"

	// EnvPrefix is the prefix for environment variable overrides
	EnvPrefix = "SEM_PLANNER"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxRequestSizeBytes is the default maximum request body size (256 KB)
	DefaultMaxRequestSizeBytes int64 = 256 * 1024
)
