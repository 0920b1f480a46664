package browser

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// OpenMeetingLink launches the default browser on a meeting URL. Only http
// and https links are accepted; anything else is bad stored data and must
// not reach a shell.
func OpenMeetingLink(url string) error {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return fmt.Errorf("refusing to open non-http link %q", url)
	}
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "linux":
		return exec.Command("xdg-open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	default:
		return fmt.Errorf("unsupported OS: %s", runtime.GOOS)
	}
}
