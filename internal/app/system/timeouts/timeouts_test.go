package timeouts

import (
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	Reset()
	if Ping() != DefaultPing {
		t.Errorf("Ping() = %v, want %v", Ping(), DefaultPing)
	}
	if Short() != DefaultShort {
		t.Errorf("Short() = %v, want %v", Short(), DefaultShort)
	}
	if Medium() != DefaultMedium {
		t.Errorf("Medium() = %v, want %v", Medium(), DefaultMedium)
	}
}

func TestConfigure_PartialOverride(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	Configure(Config{Medium: 20 * time.Second})

	if Medium() != 20*time.Second {
		t.Errorf("Medium() = %v, want 20s", Medium())
	}
	// Zero values keep defaults.
	if Ping() != DefaultPing {
		t.Errorf("Ping() = %v, want %v", Ping(), DefaultPing)
	}
	if Short() != DefaultShort {
		t.Errorf("Short() = %v, want %v", Short(), DefaultShort)
	}
}
