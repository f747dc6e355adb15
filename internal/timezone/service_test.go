package timezone

import (
	"testing"
)

func TestService_GetTimezone(t *testing.T) {
	svc, err := NewService()
	if err != nil {
		t.Fatalf("Failed to create service: %v", err)
	}

	tests := []struct {
		name      string
		latitude  float64
		longitude float64
		want      string
		wantParam string
	}{
		{
			name:      "Aspen, Colorado",
			latitude:  39.11539,
			longitude: -107.65840,
			want:      "America/Denver",
			wantParam: "America%2FDenver",
		},
		{
			name:      "New York City",
			latitude:  40.7128,
			longitude: -74.0060,
			want:      "America/New_York",
			wantParam: "America%2FNew_York",
		},
		{
			name:      "London, UK",
			latitude:  51.5074,
			longitude: -0.1278,
			want:      "Europe/London",
			wantParam: "Europe%2FLondon",
		},
		{
			name:      "Tokyo, Japan",
			latitude:  35.6762,
			longitude: 139.6503,
			want:      "Asia/Tokyo",
			wantParam: "Asia%2FTokyo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.GetTimezone(tt.latitude, tt.longitude)
			if err != nil {
				t.Errorf("GetTimezone() error = %v", err)
				return
			}
			if got != tt.want {
				t.Errorf("GetTimezone() = %v, want %v", got, tt.want)
			}

			tz, err := svc.Resolve(tt.latitude, tt.longitude)
			if err != nil {
				t.Errorf("Resolve() error = %v", err)
				return
			}
			if tz.String() != tt.wantParam {
				t.Errorf("Resolve().String() = %v, want %v", tz.String(), tt.wantParam)
			}
		})
	}
}

func TestNewService_ReturnsSharedInstance(t *testing.T) {
	a, err := NewService()
	if err != nil {
		t.Fatalf("Failed to create service: %v", err)
	}
	b, err := NewService()
	if err != nil {
		t.Fatalf("Failed to create service: %v", err)
	}
	if a != b {
		t.Error("NewService() returned different instances")
	}
}
