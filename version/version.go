package version

import (
	"fmt"
	"runtime"
)

var (
	// NAME is app name
	NAME = "memsize"
	// VERSION is app version
	VERSION = "unknown"
	// REVISION is app revision
	REVISION = "HEAD"
	// BUILTAT is app built info
	BUILTAT = "now"
)

// String show version thing
func String() string {
	return fmt.Sprintf("%s\n", NAME) +
		fmt.Sprintf("Version:        %s\n", VERSION) +
		fmt.Sprintf("Git hash:       %s\n", REVISION) +
		fmt.Sprintf("Built:          %s\n", BUILTAT) +
		fmt.Sprintf("Golang version: %s\n", runtime.Version()) +
		fmt.Sprintf("OS/Arch:        %s/%s\n", runtime.GOOS, runtime.GOARCH)
}
