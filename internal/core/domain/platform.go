package domain

import "runtime"

// Platform identifiers as recorded in project configs and archive headers.
const (
	OSLinux   = "linux"
	OSMacOS   = "macos"
	OSWindows = "win"

	ArchX8664   = "x86_64"
	ArchAarch64 = "aarch64"
	ArchArm64   = "arm64"
	ArchI386    = "i386"
)

// Platform is an OS family plus CPU architecture.
type Platform struct {
	OS   string
	Arch string
}

// String returns "os/arch".
func (p Platform) String() string {
	return p.OS + "/" + p.Arch
}

// HostPlatform returns the platform of the running process.
func HostPlatform() Platform {
	return PlatformFor(runtime.GOOS, runtime.GOARCH)
}

// PlatformFor maps Go's GOOS/GOARCH pair to reso's platform identifiers.
func PlatformFor(goos, goarch string) Platform {
	var p Platform
	switch goos {
	case "darwin":
		p.OS = OSMacOS
	case "windows":
		p.OS = OSWindows
	default:
		p.OS = goos
	}
	switch goarch {
	case "amd64":
		p.Arch = ArchX8664
	case "386":
		p.Arch = ArchI386
	case "arm64":
		if p.OS == OSMacOS {
			p.Arch = ArchArm64
		} else {
			p.Arch = ArchAarch64
		}
	default:
		p.Arch = goarch
	}
	return p
}

// Compatibility tells whether a source environment can be reproduced bit for
// bit on a target.
type Compatibility uint8

const (
	// Identical means same OS family and CPU architecture.
	Identical Compatibility = iota
	// Foreign means the platforms differ.
	Foreign
)

// String returns the class name.
func (c Compatibility) String() string {
	if c == Identical {
		return "identical"
	}
	return "foreign"
}

// Classify compares two platforms.
func Classify(source, target Platform) Compatibility {
	if source.OS == target.OS && source.Arch == target.Arch {
		return Identical
	}
	return Foreign
}
