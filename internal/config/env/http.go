package env

import (
	"os"
	"strings"

	"baccarat_sim/internal/config"
)

const (
	httpAddressEnvName        = "HTTP_ADDRESS"
	httpAllowedOriginsEnvName = "HTTP_ALLOWED_ORIGINS"
	defaultHTTPAddress        = ":8080"
)

type httpConfig struct {
	address        string
	allowedOrigins []string
}

func NewHTTPConfig() (config.HTTPConfig, error) {
	address := os.Getenv(httpAddressEnvName)
	if len(address) == 0 {
		address = defaultHTTPAddress
	}

	// Список через запятую, по умолчанию все
	origins := []string{"*"}
	if raw := os.Getenv(httpAllowedOriginsEnvName); len(raw) > 0 {
		origins = origins[:0]
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	return &httpConfig{
		address:        address,
		allowedOrigins: origins,
	}, nil
}

func (cfg *httpConfig) Address() string {
	return cfg.address
}

func (cfg *httpConfig) AllowedOrigins() []string {
	return cfg.allowedOrigins
}
