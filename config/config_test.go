package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CEE_DEFAULT_LED_WATT", "")
	t.Setenv("CEE_DEFAULT_BONIFICATION", "")

	cfg := Load()
	if cfg.DefaultLedWatt != 0 {
		t.Errorf("DefaultLedWatt = %v, want 0 (unconfigured)", cfg.DefaultLedWatt)
	}
	if cfg.DefaultBonification != 2 {
		t.Errorf("DefaultBonification = %v, want 2", cfg.DefaultBonification)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("CEE_DEFAULT_LED_WATT", "9")
	t.Setenv("CEE_DEFAULT_BONIFICATION", "2,5")

	cfg := Load()
	if cfg.DefaultLedWatt != 9 {
		t.Errorf("DefaultLedWatt = %v, want 9", cfg.DefaultLedWatt)
	}
	if cfg.DefaultBonification != 2.5 {
		t.Errorf("DefaultBonification = %v, want 2.5 (decimal comma accepted)", cfg.DefaultBonification)
	}
}

func TestLoad_MalformedEnvFallsBack(t *testing.T) {
	t.Setenv("CEE_DEFAULT_LED_WATT", "neuf")

	cfg := Load()
	if cfg.DefaultLedWatt != 0 {
		t.Errorf("DefaultLedWatt = %v, want fallback 0", cfg.DefaultLedWatt)
	}
}
