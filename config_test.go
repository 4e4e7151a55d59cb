package execlogger

import (
	"errors"
	"testing"
)

// fakeIdentity is a test identity source with controllable failures.
type fakeIdentity struct {
	exe, host, user string
	fail            bool
}

func (f fakeIdentity) ExecutableName() (string, error) {
	if f.fail {
		return "", errors.New("lookup failed")
	}
	return f.exe, nil
}

func (f fakeIdentity) Hostname() (string, error) {
	if f.fail {
		return "", errors.New("lookup failed")
	}
	return f.host, nil
}

func (f fakeIdentity) Username() (string, error) {
	if f.fail {
		return "", errors.New("lookup failed")
	}
	return f.user, nil
}

func testConfig(t *testing.T, filter *LogLevel) *Config {
	t.Helper()
	t.Setenv("USERDOMAIN", "")
	return NewConfigWithIdentity(t.TempDir(), "txt", 0, 0, filter,
		fakeIdentity{exe: "app.exe", host: "build-host", user: "alice"})
}

func TestNewConfigIdentity(t *testing.T) {
	t.Setenv("USERDOMAIN", "")
	cfg := NewConfigWithIdentity("./logs", "txt", 0, 0, nil,
		fakeIdentity{exe: "app.exe", host: "build-host", user: "alice"})

	if got := cfg.ExeName(); got != "app.exe" {
		t.Errorf("ExeName() = %q, want %q", got, "app.exe")
	}
	if got := cfg.SystemName(); got != "build-host" {
		t.Errorf("SystemName() = %q, want %q", got, "build-host")
	}
	if got := cfg.UserName(); got != "alice" {
		t.Errorf("UserName() = %q, want %q", got, "alice")
	}
}

func TestNewConfigIdentityLookupFailure(t *testing.T) {
	t.Setenv("USERDOMAIN", "CORP")
	cfg := NewConfigWithIdentity("./logs", "txt", 0, 0, nil, fakeIdentity{fail: true})

	if got := cfg.ExeName(); got != "Unknown" {
		t.Errorf("ExeName() = %q, want Unknown", got)
	}
	if got := cfg.SystemName(); got != "Unknown" {
		t.Errorf("SystemName() = %q, want Unknown", got)
	}
	// The domain prefix is not applied when the user lookup itself fails.
	if got := cfg.UserName(); got != "Unknown" {
		t.Errorf("UserName() = %q, want Unknown", got)
	}
}

func TestNewConfigUserDomainPrefix(t *testing.T) {
	t.Setenv("USERDOMAIN", "CORP")
	cfg := NewConfigWithIdentity("./logs", "txt", 0, 0, nil,
		fakeIdentity{exe: "app.exe", host: "build-host", user: "alice"})

	if got := cfg.UserName(); got != `CORP\alice` {
		t.Errorf("UserName() = %q, want %q", got, `CORP\alice`)
	}
}

func TestNewConfigClampsNegativeLimits(t *testing.T) {
	cfg := testConfig(t, nil)
	if cfg.DaysStored() != 0 || cfg.ExecutionsStored() != 0 {
		t.Fatalf("expected disabled policies, got days=%d executions=%d",
			cfg.DaysStored(), cfg.ExecutionsStored())
	}

	t.Setenv("USERDOMAIN", "")
	cfg = NewConfigWithIdentity("./logs", "txt", -1, -5, nil, fakeIdentity{})
	if cfg.DaysStored() != 0 {
		t.Errorf("DaysStored() = %d, want 0", cfg.DaysStored())
	}
	if cfg.ExecutionsStored() != 0 {
		t.Errorf("ExecutionsStored() = %d, want 0", cfg.ExecutionsStored())
	}
}

func TestFilterLevel(t *testing.T) {
	cfg := testConfig(t, nil)
	if _, ok := cfg.FilterLevel(); ok {
		t.Fatal("expected no filter level on a fresh config")
	}

	cfg.SetFilterLevel(LevelWarn)
	filter, ok := cfg.FilterLevel()
	if !ok {
		t.Fatal("expected a filter level after SetFilterLevel")
	}
	if filter != LevelWarn {
		t.Errorf("FilterLevel() = %v, want %v", filter, LevelWarn)
	}

	// Any level is acceptable, including custom ones.
	cfg.SetFilterLevel(NewCustomLevel("STAT", 25))
	filter, _ = cfg.FilterLevel()
	if filter.Severity() != 25 {
		t.Errorf("FilterLevel().Severity() = %d, want 25", filter.Severity())
	}
}

func TestSetMessageFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{"default-like", "{TIMESTAMP} | {LEVEL} | {MESSAGE}", false},
		{"both placeholders only", "{LEVEL}{MESSAGE}", false},
		{"extra content allowed", ">> {LEVEL} [{MESSAGE}] <<", false},
		{"missing message", "{TIMESTAMP} | {LEVEL}", true},
		{"missing level", "{TIMESTAMP} | {MESSAGE}", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t, nil)
			err := cfg.SetMessageFormat(tt.format)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SetMessageFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidFormat) {
					t.Errorf("error = %v, want ErrInvalidFormat", err)
				}
				// The previous template is retained on rejection.
				if got := cfg.MessageFormat(); got != DefaultMessageFormat {
					t.Errorf("MessageFormat() = %q, want default retained", got)
				}
			} else if got := cfg.MessageFormat(); got != tt.format {
				t.Errorf("MessageFormat() = %q, want %q", got, tt.format)
			}
		})
	}
}

func TestSetMessageFormatKeepsPreviousValue(t *testing.T) {
	cfg := testConfig(t, nil)
	if err := cfg.SetMessageFormat("{LEVEL} {MESSAGE}"); err != nil {
		t.Fatalf("SetMessageFormat() error = %v", err)
	}
	if err := cfg.SetMessageFormat("{TIMESTAMP}"); err == nil {
		t.Fatal("expected rejection of template without {MESSAGE} and {LEVEL}")
	}
	if got := cfg.MessageFormat(); got != "{LEVEL} {MESSAGE}" {
		t.Errorf("MessageFormat() = %q, want previous template retained", got)
	}
}

func TestSetTimestampFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{"default", DefaultTimestampFormat, false},
		{"date only", "%Y-%m-%d", false},
		{"short year", "%y-%m-%d", false},
		{"unknown directive", "%Q", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t, nil)
			err := cfg.SetTimestampFormat(tt.format)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SetTimestampFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidFormat) {
					t.Errorf("error = %v, want ErrInvalidFormat", err)
				}
				if got := cfg.TimestampFormat(); got != DefaultTimestampFormat {
					t.Errorf("TimestampFormat() = %q, want default retained", got)
				}
			} else if got := cfg.TimestampFormat(); got != tt.format {
				t.Errorf("TimestampFormat() = %q, want %q", got, tt.format)
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if got := cfg.LogDir(); got != "./logs" {
		t.Errorf("LogDir() = %q, want ./logs", got)
	}
	if got := cfg.FileExtension(); got != "txt" {
		t.Errorf("FileExtension() = %q, want txt", got)
	}
	if cfg.DaysStored() != 0 || cfg.ExecutionsStored() != 0 {
		t.Error("expected retention disabled by default")
	}
	if _, ok := cfg.FilterLevel(); ok {
		t.Error("expected no filter level by default")
	}
	if got := cfg.MessageFormat(); got != DefaultMessageFormat {
		t.Errorf("MessageFormat() = %q, want built-in default", got)
	}
	if got := cfg.TimestampFormat(); got != DefaultTimestampFormat {
		t.Errorf("TimestampFormat() = %q, want built-in default", got)
	}
}
