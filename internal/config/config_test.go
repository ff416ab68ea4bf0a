package config

import (
	"flag"
	"io"
	"os"
	"testing"
)

// unsetenv clears key for the duration of the test.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"MONTY_TRIALS", "MONTY_DOORS", "MONTY_SEED", "LOG_LEVEL", "LOG_FORMAT"} {
		unsetenv(t, key)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Trials != 100000 {
		t.Errorf("Trials = %d, want 100000", cfg.Trials)
	}
	want := []int{3, 4, 30, 100, 200}
	if len(cfg.DoorCounts) != len(want) {
		t.Fatalf("DoorCounts = %v, want %v", cfg.DoorCounts, want)
	}
	for i := range want {
		if cfg.DoorCounts[i] != want[i] {
			t.Fatalf("DoorCounts = %v, want %v", cfg.DoorCounts, want)
		}
	}
	if cfg.Seed != 0 {
		t.Errorf("Seed = %d, want 0", cfg.Seed)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("MONTY_TRIALS", "500")
	t.Setenv("MONTY_DOORS", "3,10")
	t.Setenv("MONTY_SEED", "42")
	t.Setenv("LOG_FORMAT", "console")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Trials != 500 || cfg.Seed != 42 || cfg.LogFormat != "console" {
		t.Errorf("Load() = %+v", cfg)
	}
	if len(cfg.DoorCounts) != 2 || cfg.DoorCounts[0] != 3 || cfg.DoorCounts[1] != 10 {
		t.Errorf("DoorCounts = %v, want [3 10]", cfg.DoorCounts)
	}
}

func TestLoad_BadEnv(t *testing.T) {
	t.Setenv("MONTY_TRIALS", "many")
	if _, err := Load(); err == nil {
		t.Error("Load() accepted a non-numeric trial count")
	}
}

func TestBindFlags(t *testing.T) {
	cfg := &Config{Trials: 100000, DoorCounts: []int{3, 4}, Seed: 1, LogFormat: "json"}
	fs := flag.NewFlagSet("montyhall", flag.ContinueOnError)
	cfg.BindFlags(fs)

	if err := fs.Parse([]string{"-trials", "10", "-doors", "5, 6,7"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg.Trials != 10 {
		t.Errorf("Trials = %d, want 10", cfg.Trials)
	}
	if cfg.Seed != 1 {
		t.Errorf("Seed = %d, want unchanged 1", cfg.Seed)
	}
	if got := (*intList)(&cfg.DoorCounts).String(); got != "5,6,7" {
		t.Errorf("DoorCounts = %s, want 5,6,7", got)
	}
}

func TestBindFlags_BadDoors(t *testing.T) {
	cfg := &Config{}
	fs := flag.NewFlagSet("montyhall", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.BindFlags(fs)
	if err := fs.Parse([]string{"-doors", "3,x"}); err == nil {
		t.Error("Parse() accepted a non-numeric door count")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "ok", cfg: Config{Trials: 1, DoorCounts: []int{3}, LogFormat: "json"}},
		{name: "zero trials", cfg: Config{Trials: 0, DoorCounts: []int{3}, LogFormat: "json"}, wantErr: true},
		{name: "no doors", cfg: Config{Trials: 1, LogFormat: "json"}, wantErr: true},
		{name: "two doors", cfg: Config{Trials: 1, DoorCounts: []int{3, 2}, LogFormat: "json"}, wantErr: true},
		{name: "bad format", cfg: Config{Trials: 1, DoorCounts: []int{3}, LogFormat: "xml"}, wantErr: true},
		{name: "debug level", cfg: Config{Trials: 1, DoorCounts: []int{3}, LogLevel: "debug", LogFormat: "console"}},
		{name: "bad level", cfg: Config{Trials: 1, DoorCounts: []int{3}, LogLevel: "loud", LogFormat: "json"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
