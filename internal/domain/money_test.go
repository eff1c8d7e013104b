package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatIDR(t *testing.T) {
	cases := map[int64]string{
		0:        "Rp 0",
		950:      "Rp 950",
		1000:     "Rp 1.000",
		145000:   "Rp 145.000",
		1905000:  "Rp 1.905.000",
		18500000: "Rp 18.500.000",
		-20000:   "Rp -20.000",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatIDR(in))
	}
}
