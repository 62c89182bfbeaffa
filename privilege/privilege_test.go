package privilege

import (
	"errors"
	"testing"
)

type fakeElevation struct {
	elevated bool
	err      error
}

func (f fakeElevation) IsElevated() (bool, error) {
	return f.elevated, f.err
}

func TestLevel_Elevated(t *testing.T) {
	tests := []struct {
		level Level
		want  bool
	}{
		{level: "root", want: true},
		{level: "ROOT", want: true},
		{level: "admin", want: true},
		{level: "Administrator", want: true},
		{level: "user", want: false},
		{level: "", want: false},
		{level: "superuser", want: false},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			if got := tt.level.Elevated(); got != tt.want {
				t.Errorf("Level(%q).Elevated() = %v, want %v", tt.level, got, tt.want)
			}
		})
	}
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name    string
		level   Level
		elev    Elevation
		wantOK  bool
		wantMsg string
	}{
		{
			name:   "non-elevated level always satisfied",
			level:  "user",
			elev:   fakeElevation{elevated: false},
			wantOK: true,
		},
		{
			name:   "unknown level always satisfied",
			level:  "wheel",
			elev:   fakeElevation{elevated: false},
			wantOK: true,
		},
		{
			name:   "elevated level with elevated process",
			level:  "root",
			elev:   fakeElevation{elevated: true},
			wantOK: true,
		},
		{
			name:    "elevated level without elevation",
			level:   "root",
			elev:    fakeElevation{elevated: false},
			wantOK:  false,
			wantMsg: deniedMessage,
		},
		{
			name:    "query failure treated as not elevated",
			level:   "admin",
			elev:    fakeElevation{err: errors.New("token query failed")},
			wantOK:  false,
			wantMsg: "elevation status could not be determined",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, msg := Check(tt.level, tt.elev)
			if ok != tt.wantOK {
				t.Errorf("Check() ok = %v, want %v", ok, tt.wantOK)
			}
			if msg != tt.wantMsg {
				t.Errorf("Check() msg = %q, want %q", msg, tt.wantMsg)
			}
		})
	}
}

func TestOS_ReturnsQuery(t *testing.T) {
	// The real query must answer without error on the host platform.
	if _, err := OS().IsElevated(); err != nil {
		t.Errorf("OS().IsElevated() error: %v", err)
	}
}
