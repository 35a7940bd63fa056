package orders

import "testing"

func TestExternalRefRoundTrip(t *testing.T) {
	for _, id := range []int64{1, 7, 42, 1<<31 + 5} {
		ref := ExternalRef(id)
		got, err := ParseExternalRef(ref)
		if err != nil {
			t.Fatalf("ParseExternalRef(%q): %v", ref, err)
		}
		if got != id {
			t.Fatalf("round trip %d -> %q -> %d", id, ref, got)
		}
	}
}

func TestParseExternalRefRejectsGarbage(t *testing.T) {
	for _, ref := range []string{"", "order-", "order-abc", "order-0", "order--3", "pedido-7", "7"} {
		if _, err := ParseExternalRef(ref); err == nil {
			t.Fatalf("ParseExternalRef(%q) accepted invalid input", ref)
		}
	}
}

func TestVerifySignature(t *testing.T) {
	body := []byte(`{"type":"payment"}`)
	if !VerifySignature(testSecret, body, sign(body)) {
		t.Fatal("valid signature rejected")
	}
	if VerifySignature(testSecret, body, "00ff") {
		t.Fatal("invalid signature accepted")
	}
	if VerifySignature("", body, sign(body)) {
		t.Fatal("empty secret accepted")
	}
	if VerifySignature(testSecret, body, "") {
		t.Fatal("empty signature accepted")
	}
}
