package models

// CityStats is the per-city slice of the coverage statistics
type CityStats struct {
	City       string  `db:"city" json:"city"`
	Country    string  `db:"country" json:"country"`
	UserCount  int64   `db:"user_count" json:"user_count"`
	Percentage float64 `json:"percentage"`
}

// CountryStats is the per-country slice of the coverage statistics
type CountryStats struct {
	Country    string  `db:"country" json:"country"`
	UserCount  int64   `db:"user_count" json:"user_count"`
	Percentage float64 `json:"percentage"`
}

// Update-histogram bucket labels. The buckets are mutually exclusive: every
// user falls into exactly one.
const (
	PeriodToday     = "today"
	PeriodThisWeek  = "this_week"
	PeriodThisMonth = "this_month"
	PeriodOlder     = "older"
	PeriodNever     = "never"
)

// UpdatePeriod is one bucket of the location-update histogram
type UpdatePeriod struct {
	Period     string  `json:"period"`
	UserCount  int64   `json:"user_count"`
	Percentage float64 `json:"percentage"`
}

// LocationStats is the population-wide coverage aggregate, recomputed on every
// request from a single "now" reference
type LocationStats struct {
	TotalUsers           int64          `json:"total_users"`
	UsersWithLocation    int64          `json:"users_with_location"`
	UsersWithoutLocation int64          `json:"users_without_location"`
	LocationCoverage     float64        `json:"location_coverage"`
	UpdatedToday         int64          `json:"locations_updated_today"`
	UpdatedThisWeek      int64          `json:"locations_updated_this_week"`
	UpdatedThisMonth     int64          `json:"locations_updated_this_month"`
	TopCities            []CityStats    `json:"top_cities"`
	TopCountries         []CountryStats `json:"top_countries"`
	UpdateDistribution   []UpdatePeriod `json:"update_distribution"`
}
