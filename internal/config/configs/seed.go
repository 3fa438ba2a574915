package configs

// Seed configures the synthetic metrics seeding. Command line flags of the
// seed command take precedence over these values.
type Seed struct {
	// Days is the number of days of history to generate, counting back
	// from today.
	Days int `env:"DAYS" envDefault:"30"`
	// RandSeed seeds the metrics generator. Zero seeds from the clock, so
	// every run produces different numbers.
	RandSeed int64 `env:"RAND_SEED" envDefault:"0"`
	// WebsiteType selects the GA4 website profile.
	WebsiteType string `env:"WEBSITE_TYPE" envDefault:"ecommerce"`
}
