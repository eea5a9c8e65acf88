package main

import (
	"runtime/debug"

	merge "github.com/merge-api/merge-go-client"
)

type VersionCmd struct{}

func (c *VersionCmd) Run(_ *Globals, e *env) error {
	_, err := e.out.Write([]byte(Version() + "\n"))
	return err
}

// Version returns the version string.
//
// When installed via `go install ...@version`, returns the module version
// (e.g. "v0.1.0"). Development builds return "devel-0.1.0+abc1234" with the
// VCS revision when available.
func Version() string {
	info, ok := debug.ReadBuildInfo()
	return versionFrom(merge.Version(), info, ok)
}

func versionFrom(base string, info *debug.BuildInfo, ok bool) string {
	if !ok {
		return base
	}
	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}

	var rev string
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 7 {
			rev = s.Value[:7]
			break
		}
	}
	if rev != "" {
		return "devel-" + base + "+" + rev
	}
	return "devel-" + base
}
