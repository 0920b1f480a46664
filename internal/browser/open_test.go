package browser

import "testing"

func TestOpenMeetingLinkRejectsNonHTTP(t *testing.T) {
	for _, url := range []string{"", "ftp://meet.example.com", "javascript:alert(1)", "file:///etc/passwd"} {
		if err := OpenMeetingLink(url); err == nil {
			t.Errorf("OpenMeetingLink(%q) = nil, want error", url)
		}
	}
}
