package textutil

import "testing"

func TestNormalizeURLList(t *testing.T) {
	got := NormalizeURLList([]string{" https://a ", "", "https://a", "https://b"})
	if len(got) != 2 || got[0] != "https://a" || got[1] != "https://b" {
		t.Fatalf("got %v", got)
	}
	if NormalizeURLList(nil) != nil {
		t.Fatal("nil input must stay nil")
	}
	if NormalizeURLList([]string{"  ", ""}) != nil {
		t.Fatal("all-empty input must collapse to nil")
	}
}
