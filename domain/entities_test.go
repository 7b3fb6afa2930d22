package domain

import (
	"testing"
	"time"
)

func TestVerification_Expired(t *testing.T) {
	now := time.Now()

	v := &Verification{Code: 4821, ExpiresAt: now.Add(time.Hour)}
	if v.Expired(now) {
		t.Error("expected live verification to be unexpired")
	}
	if !v.Expired(now.Add(2 * time.Hour)) {
		t.Error("expected verification to expire after its window")
	}
	if v.Expired(v.ExpiresAt) {
		t.Error("expected the boundary instant to still validate")
	}
}
