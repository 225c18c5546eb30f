package version

import "runtime/debug"

// Version is set at build time via -ldflags.
var Version = "unknown"

// Binaries installed with `go install` carry no -ldflags but do embed the
// module version, which is used instead.
func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		Version = v
	}
}
