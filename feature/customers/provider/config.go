package provider

// Config holds configuration for the remote customer data provider.
type Config struct {
	// APIURL is the randomuser-compatible endpoint. Empty fails every fetch.
	APIURL string `mapstructure:"api_url" default:"" validate:"omitempty,url"`
	// Nationality is the nat filter sent with every request.
	Nationality string `mapstructure:"nationality" default:"AU"`
	// TimeoutSeconds bounds each request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30" validate:"gte=0"`
}
