package upstream

import "time"

const (
	DefaultBaseURL = "https://api.revenuecat.com/v2/"
	ForwardPrefix  = "rc."
)

// WindowParams are passed through to chart requests.
var WindowParams = []string{"period", "granularity", "start", "end", "app_id"}

type Config struct {
	BaseURL      string
	EndpointPath string
	Timeout      time.Duration

	// WindowDefaults supplies chart window parameters absent from a request.
	WindowDefaults map[string]string
}
