package config

import (
	"os"
	"testing"
)

func TestEnableColorOutput(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if EnableColorOutput(f) {
		t.Error("EnableColorOutput() = true for regular file")
	}

	t.Setenv("NO_COLOR", "1")
	if EnableColorOutput(os.Stdout) {
		t.Error("EnableColorOutput() = true with NO_COLOR set")
	}
}
