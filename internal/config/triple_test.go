package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTriple(t *testing.T) {
	tests := []struct {
		in   string
		want Triple
	}{
		{"aarch64-apple-darwin", Triple{Arch: "aarch64", Vendor: "apple", OS: "macos"}},
		{"x86_64-unknown-linux-gnu", Triple{Arch: "x86_64", Vendor: "unknown", OS: "linux", Env: "gnu"}},
		{"armv7-unknown-linux-gnueabihf", Triple{Arch: "arm", Vendor: "unknown", OS: "linux", Env: "gnu"}},
		{"x86_64-pc-windows-msvc", Triple{Arch: "x86_64", Vendor: "pc", OS: "windows", Env: "msvc"}},
		{"wasm32-unknown-unknown", Triple{Arch: "wasm32", Vendor: "unknown", OS: "unknown"}},
		{"i686-linux-android", Triple{Arch: "x86", OS: "linux", Env: "android"}},
		{"riscv64gc-unknown-linux-musl", Triple{Arch: "riscv64", Vendor: "unknown", OS: "linux", Env: "musl"}},
		{"thumbv7em-none-eabi", Triple{Arch: "arm", OS: "none", Env: "eabi"}},
		{"x86_64-linux", Triple{Arch: "x86_64", OS: "linux"}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTriple(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTripleRejectsMalformed(t *testing.T) {
	for _, in := range []string{"", "x86_64", "a-b-c-d-e", "x86_64--linux"} {
		_, err := ParseTriple(in)
		assert.Error(t, err, "input %q", in)
	}
}
