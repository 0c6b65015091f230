package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSupportsTensorFlow(t *testing.T) {
	tests := []struct {
		goos, goarch string
		want         bool
	}{
		{"linux", "amd64", true},
		{"linux", "arm64", true},
		{"darwin", "arm64", true},
		{"darwin", "amd64", true},
		{"windows", "amd64", true},
		{"windows", "arm64", false},
		{"linux", "riscv64", false},
		{"freebsd", "amd64", false},
	}

	for _, tt := range tests {
		t.Run(tt.goos+"/"+tt.goarch, func(t *testing.T) {
			assert.Equal(t, tt.want, supportsTensorFlow(tt.goos, tt.goarch))
		})
	}
}
