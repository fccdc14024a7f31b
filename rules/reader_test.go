package rules

import (
	"io"
	"reflect"
	"strings"
	"testing"
)

func TestReader(t *testing.T) {
	src := strings.NewReader("\uFEFF# comment\n1\tone\n\nx00\thundred\r\ns1\tu\tignored tab\n")
	r := NewReader(src)
	tests := []struct {
		key, value string
	}{
		{"1", "one"},
		{"x00", "hundred"},
		{"s1", "u\tignored tab"},
	}
	for _, tt := range tests {
		key, value, err := r.Next()
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		if key != tt.key || value != tt.value {
			t.Fatalf("entry mismatch: got (%q,%q), want (%q,%q)", key, value, tt.key, tt.value)
		}
	}
	if _, _, err := r.Next(); err != io.EOF {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}

func TestReaderRejectsMissingTab(t *testing.T) {
	r := NewReader(strings.NewReader("1\tone\n2 two\n"))
	if _, _, err := r.Next(); err != nil {
		t.Fatalf("first line should be fine: %v", err)
	}
	_, _, err := r.Next()
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Fatalf("expected error for line 2, got %v", err)
	}
}

func TestListReader(t *testing.T) {
	r := NewListReader(strings.NewReader("Dr\tDr.\n# skip\n\nProf\n\t\t\n"))
	group, err := r.Next()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(group, []string{"Dr", "Dr."}) {
		t.Fatalf("first group mismatch: %v", group)
	}
	group, err = r.Next()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(group, []string{"Prof"}) {
		t.Fatalf("second group mismatch: %v", group)
	}
	if _, err = r.Next(); err != io.EOF {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}
