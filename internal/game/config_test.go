package game

import "testing"

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"smallest board", func(c *Config) { c.BoardSize = 2 }, false},
		{"zero size", func(c *Config) { c.BoardSize = 0 }, true},
		{"one cell", func(c *Config) { c.BoardSize = 1 }, true},
		{"negative size", func(c *Config) { c.BoardSize = -4 }, true},
		{"no player AP", func(c *Config) { c.PlayerAP = 0 }, true},
		{"no NPC AP", func(c *Config) { c.NPCAP = 0 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
