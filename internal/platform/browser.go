package platform

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// Command constants
const (
	OpenCommand    = "open"
	XDGOpenCommand = "xdg-open"
	CmdCommand     = "cmd"
	WindowsCmdFlag = "/c"
	StartCommand   = "start"
)

// OpenURLInBrowser opens url with the platform's default browser. Only http
// and https links are accepted.
func OpenURLInBrowser(url string) error {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return fmt.Errorf("refusing to open non-http URL: %s", url)
	}

	name, args, err := browserCommand(runtime.GOOS, url)
	if err != nil {
		return err
	}

	return exec.Command(name, args...).Start()
}

// browserCommand returns the command and arguments used to open url on goos
func browserCommand(goos, url string) (string, []string, error) {
	switch goos {
	case OSDarwin:
		return OpenCommand, []string{url}, nil
	case OSWindows:
		return CmdCommand, []string{WindowsCmdFlag, StartCommand, url}, nil
	case OSLinux:
		return XDGOpenCommand, []string{url}, nil
	default:
		return "", nil, fmt.Errorf("unsupported operating system: %s", goos)
	}
}
