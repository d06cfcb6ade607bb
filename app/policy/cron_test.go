package policy

import "testing"

func TestValidateSchedule(t *testing.T) {
	testCases := []struct {
		name     string
		expr     string
		expectOK bool
	}{
		{"daily midnight", "cron(0 0 * * ? *)", true},
		{"weekly sunday", "cron(0 0 ? * SUN *)", true},
		{"monthly first", "cron(0 0 1 * ? *)", true},
		{"yearly january first", "cron(0 0 1 1 ? *)", true},
		{"last weekday", "cron(0 0 LW * ? *)", true},
		{"nth weekday", "cron(0 0 ? * 6#3 *)", true},
		{"missing wrapper", "0 0 * * ? *", false},
		{"five fields", "cron(0 0 * * ?)", false},
		{"seven fields", "cron(0 0 * * ? * *)", false},
		{"shell injection", "cron(0 0 * * ? $(id))", false},
		{"empty", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateSchedule(tc.expr)
			if tc.expectOK && err != nil {
				t.Fatalf("expected %s to validate, got: %v", tc.expr, err)
			}
			if !tc.expectOK && err == nil {
				t.Fatalf("expected %s to be rejected", tc.expr)
			}
		})
	}
}
