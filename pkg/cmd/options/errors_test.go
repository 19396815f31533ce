package options

import "testing"

func TestFlagIsRequiredError(t *testing.T) {
	err := FlagIsRequiredError("workspace-id")
	if err.Error() != "--workspace-id is required" {
		t.Errorf("FlagIsRequiredError() = %v, want %v", err, "--workspace-id is required")
	}
}

func TestOneOfFlagsIsRequiredError(t *testing.T) {
	tests := []struct {
		name      string
		flagNames []string
		errorMsg  string
	}{
		{
			name:      "one flag",
			flagNames: []string{"dataset-id"},
			errorMsg:  "--dataset-id is required",
		},
		{
			name:      "two flags",
			flagNames: []string{"dataset-id", "dataset-name"},
			errorMsg:  "--dataset-id or --dataset-name is required",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := OneOfFlagsIsRequiredError(test.flagNames...)
			if err.Error() != test.errorMsg {
				t.Errorf("OneOfFlagsIsRequiredError() = %v, want %v", err, test.errorMsg)
			}
		})
	}
}
