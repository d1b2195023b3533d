package api

import "fmt"

// connection defaults for a local walletd
const (
	DefaultHost     = "http://127.0.0.1"
	DefaultPort     = 8070
	DefaultPassword = "test"

	// every call is posted to this path
	EndpointPath = "/json_rpc"
)

// Config holds the walletd connection settings.
// Host must include the scheme.
type Config struct {
	Host     string
	Port     int
	Password string
	Logging  bool
}

// DefaultConfig returns the settings of a walletd started with its defaults
func DefaultConfig() Config {
	return Config{
		Host:     DefaultHost,
		Port:     DefaultPort,
		Password: DefaultPassword,
		Logging:  true,
	}
}

// Endpoint returns the URL requests are posted to
func (c Config) Endpoint() string {
	return fmt.Sprintf("%s:%d%s", c.Host, c.Port, EndpointPath)
}
