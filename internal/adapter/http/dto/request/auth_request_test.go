package request

import "testing"

func TestNormalizedEmail(t *testing.T) {
	r := RegisterRequest{Email: "  Ana@Mail.COM "}
	if got := r.NormalizedEmail(); got != "ana@mail.com" {
		t.Fatalf("expected ana@mail.com, got %q", got)
	}

	l := LoginRequest{Email: "BIA@mail.com"}
	if got := l.NormalizedEmail(); got != "bia@mail.com" {
		t.Fatalf("expected bia@mail.com, got %q", got)
	}
}
