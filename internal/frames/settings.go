package frames

// Settings are deployment-wide fallbacks for request parameters. Empty
// values count as unset.
type Settings struct {
	DefaultMetric    string
	DefaultScope     string
	DefaultLabel     string
	DefaultSuffix    string
	DefaultIcon      string
	DefaultPrecision string
}
