// Copyright (c) 2026 latticeforge contributors
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package gridgen

// Option configures a CellGrid construction beyond what CellParameters
// carries.
type Option func(*config)

type config struct {
	strictAreaThreshold bool
}

func newConfig(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithStrictAreaThreshold forces the retention threshold to 1.0 regardless
// of CellParameters.ThresholdArea, discarding every cell the boundary
// clips at all. Useful for callers that want only whole, unclipped cells
// and would rather not duplicate that threshold value at every call site.
func WithStrictAreaThreshold() Option {
	return func(c *config) {
		c.strictAreaThreshold = true
	}
}
