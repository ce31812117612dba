package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	ApiKey string `mapstructure:"api_key" default:""`
	// ReadOnly disables the mutating roster endpoints.
	ReadOnly bool `mapstructure:"read_only" default:"false"`
}

// Methods that mutate rosters; blocked when ReadOnly is set.
var mutatingMethods = map[string]struct{}{
	"POST":   {},
	"PUT":    {},
	"PATCH":  {},
	"DELETE": {},
}

// AllowsMethod reports whether requests with the given HTTP method may be served.
func (c Config) AllowsMethod(method string) bool {
	if !c.ReadOnly {
		return true
	}
	_, mutating := mutatingMethods[method]
	return !mutating
}
