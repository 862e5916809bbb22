package validator

import "testing"

type sample struct {
	Date string `validate:"required,dateonly"`
	Time string `validate:"required,clocktime"`
}

func TestCustomRules(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		in      sample
		wantErr bool
	}{
		{"valid", sample{Date: "2025-03-10", Time: "08:24:00"}, false},
		{"midnight", sample{Date: "2025-01-01", Time: "00:00:00"}, false},
		{"unpadded time", sample{Date: "2025-03-10", Time: "8:24:00"}, true},
		{"missing seconds", sample{Date: "2025-03-10", Time: "08:24"}, true},
		{"hour out of range", sample{Date: "2025-03-10", Time: "24:00:00"}, true},
		{"bad date", sample{Date: "2025-13-40", Time: "08:00:00"}, true},
		{"date with time", sample{Date: "2025-03-10T00:00:00Z", Time: "08:00:00"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.in)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate(%+v) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
		})
	}
}

func TestFormatValidationErrors(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&sample{Date: "", Time: "not-a-time"})
	if err == nil {
		t.Fatal("expected validation error")
	}

	formatted := v.FormatValidationErrors(err)
	if formatted["Date"] == "" {
		t.Error("expected a message for Date")
	}
	if formatted["Time"] == "" {
		t.Error("expected a message for Time")
	}
}
