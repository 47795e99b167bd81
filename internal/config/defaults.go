package config

const (
	defaultDataDir            = "~/.local/share/cinewatch"
	defaultLogDir             = "~/.local/share/cinewatch/logs"
	defaultLetterboxdBaseURL  = "https://letterboxd.com/"
	defaultAllocineBaseURL    = "https://www.allocine.fr"
	defaultShowtimesURL       = "https://www.allocine.fr/_/showtimes/"
	defaultCatalogPages       = 500
	defaultWindowDays         = 30
	defaultLocale             = "fr_FR"
	defaultSMTPHost           = "smtp.gmail.com"
	defaultSMTPPort           = 465
	defaultFetchRetryMax      = 5
	defaultFetchTimeout       = 30
	defaultFetchMinDelay      = 10
	defaultFetchMaxDelay      = 30
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"
	defaultFilmsFilename      = "allocine_films.json"
	defaultCitiesFilename     = "allocine_cities_id.json"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		Letterboxd: Letterboxd{
			BaseURL: defaultLetterboxdBaseURL,
		},
		Allocine: Allocine{
			BaseURL:      defaultAllocineBaseURL,
			ShowtimesURL: defaultShowtimesURL,
			CatalogPages: defaultCatalogPages,
		},
		Subscriber: Subscriber{
			WindowDays: defaultWindowDays,
			Locale:     defaultLocale,
		},
		SMTP: SMTP{
			Host: defaultSMTPHost,
			Port: defaultSMTPPort,
		},
		Fetch: Fetch{
			RetryMax:        defaultFetchRetryMax,
			TimeoutSeconds:  defaultFetchTimeout,
			MinDelaySeconds: defaultFetchMinDelay,
			MaxDelaySeconds: defaultFetchMaxDelay,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
