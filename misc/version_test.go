package misc

import "testing"

func TestGetAppName_UnderTest(t *testing.T) {
	// test binaries are named <pkg>.test, must not leak into file names
	if got := GetAppName(); got != appName {
		t.Errorf("GetAppName() = %q, want %q", got, appName)
	}
}

func TestVersionDefaults(t *testing.T) {
	if GetVersion() == "" {
		t.Error("GetVersion() returned empty string")
	}
	if GetGitHash() == "" {
		t.Error("GetGitHash() returned empty string")
	}
}
