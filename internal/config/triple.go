package config

import (
	"fmt"
	"strings"
)

// Triple is a parsed target triple, normalized to the value spellings cfg
// atoms use: the OS component "darwin" becomes "macos", "armv7" and friends
// collapse to "arm", and ABI suffixes like "eabihf" are stripped from the
// environment.
type Triple struct {
	Arch   string
	Vendor string
	OS     string
	Env    string
}

// ParseTriple splits a target triple lexically into its four axes. Two-part
// triples are arch-os, three-part are arch-vendor-os or arch-os-env depending
// on whether the middle component is a known vendor, four-part are
// arch-vendor-os-env.
func ParseTriple(s string) (Triple, error) {
	parts := strings.Split(s, "-")
	var t Triple
	switch len(parts) {
	case 2:
		t = Triple{Arch: parts[0], OS: parts[1]}
	case 3:
		if knownVendors[parts[1]] {
			t = Triple{Arch: parts[0], Vendor: parts[1], OS: parts[2]}
		} else {
			t = Triple{Arch: parts[0], OS: parts[1], Env: parts[2]}
		}
	case 4:
		t = Triple{Arch: parts[0], Vendor: parts[1], OS: parts[2], Env: parts[3]}
	default:
		return Triple{}, fmt.Errorf("malformed target triple %q", s)
	}
	for _, p := range parts {
		if p == "" {
			return Triple{}, fmt.Errorf("malformed target triple %q", s)
		}
	}

	t.Arch = normalizeArch(t.Arch)
	t.OS = normalizeOS(t.OS)
	t.Env = normalizeEnv(t.Env)
	return t, nil
}

var knownVendors = map[string]bool{
	"unknown":  true,
	"apple":    true,
	"pc":       true,
	"sun":      true,
	"nvidia":   true,
	"sony":     true,
	"wrs":      true,
	"fortanix": true,
}

// normalizeArch maps sub-architecture spellings onto the cfg value, e.g.
// armv7 and armv7s both report target_arch = "arm".
func normalizeArch(arch string) string {
	switch {
	case strings.HasPrefix(arch, "armv"), arch == "armeb":
		return "arm"
	case strings.HasPrefix(arch, "thumbv"):
		return "arm"
	case arch == "i386", arch == "i586", arch == "i686":
		return "x86"
	case strings.HasPrefix(arch, "riscv32"):
		return "riscv32"
	case strings.HasPrefix(arch, "riscv64"):
		return "riscv64"
	}
	return arch
}

func normalizeOS(os string) string {
	if os == "darwin" {
		return "macos"
	}
	return os
}

// normalizeEnv strips ABI suffixes: gnueabihf, gnueabi, musleabi and the
// like all report their base environment.
func normalizeEnv(env string) string {
	for _, base := range []string{"gnu", "musl", "uclibc"} {
		if strings.HasPrefix(env, base) {
			return base
		}
	}
	return env
}
