package dashboard

import "testing"

func TestLookupFee(t *testing.T) {
	fees := map[string]float64{
		"Passport Issue":    20000,
		"Birth Certificate": 1200,
	}

	tests := []struct {
		name    string
		service string
		want    float64
	}{
		{"exact match", "Passport Issue", 20000},
		{"partial match", "Passport Issue (Express)", 20000},
		{"unknown falls back", "Moon Lease", defaultFee},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lookupFee(fees, tt.service); got != tt.want {
				t.Errorf("lookupFee(%q) = %v, want %v", tt.service, got, tt.want)
			}
		})
	}
}

func TestToInt64(t *testing.T) {
	// aggregation counts come back as int32 from the driver
	if got := toInt64(int32(7)); got != 7 {
		t.Errorf("int32: got %d", got)
	}
	if got := toInt64(int64(9)); got != 9 {
		t.Errorf("int64: got %d", got)
	}
	if got := toInt64(float64(3)); got != 3 {
		t.Errorf("float64: got %d", got)
	}
	if got := toInt64("not a number"); got != 0 {
		t.Errorf("unknown type should yield 0, got %d", got)
	}
}
