// SPDX-License-Identifier: MIT

package indian

import "fmt"

// Option customizes the rendered string.
type Option func(*formatConfig)

// formatConfig: places < 0 means "keep the fraction verbatim".
type formatConfig struct {
	symbol string
	places int
}

func newFormatConfig(opts ...Option) formatConfig {
	cfg := formatConfig{places: -1}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSymbol prefixes the digits with a currency symbol, after the sign:
// "-₹1,23,456".
func WithSymbol(symbol string) Option {
	return func(c *formatConfig) {
		c.symbol = symbol
	}
}

// WithPlaces rounds to exactly n fractional digits (half away from zero) and
// pads with zeros. Panics on n < 0.
func WithPlaces(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("indian: WithPlaces(%d)", n))
	}

	return func(c *formatConfig) {
		c.places = n
	}
}
