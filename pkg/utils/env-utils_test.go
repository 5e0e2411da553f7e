package utils

import (
	"reflect"
	"testing"
)

func TestOverrideFromEnv(t *testing.T) {
	t.Setenv("FORMS_TEST_SECRET", "from-env")
	t.Setenv("FORMS_TEST_EMPTY", "")

	value := "from-file"
	OverrideFromEnv(&value, "FORMS_TEST_SECRET")
	if value != "from-env" {
		t.Errorf("OverrideFromEnv() = %q, want %q", value, "from-env")
	}

	value = "from-file"
	OverrideFromEnv(&value, "FORMS_TEST_EMPTY")
	if value != "from-file" {
		t.Errorf("OverrideFromEnv() = %q, want %q", value, "from-file")
	}
}

func TestListFromEnv(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected []string
	}{
		{name: "unset", value: "", expected: nil},
		{name: "single", value: "key1", expected: []string{"key1"}},
		{name: "multiple with spaces", value: " key1, key2 ,key3", expected: []string{"key1", "key2", "key3"}},
		{name: "blank entries", value: "key1,, ,key2,", expected: []string{"key1", "key2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("FORMS_TEST_LIST", tt.value)
			result := ListFromEnv("FORMS_TEST_LIST")
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("ListFromEnv() = %v, want %v", result, tt.expected)
			}
		})
	}
}
