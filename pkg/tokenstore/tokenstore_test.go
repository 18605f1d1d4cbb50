package tokenstore

import (
	"strings"
	"testing"
	"time"
)

func TestKeyLayout(t *testing.T) {
	store := NewTokenStore(nil, "refresh:", time.Hour)

	tk := store.tokenKey("some-refresh-token")
	if !strings.HasPrefix(tk, "refresh:token:") {
		t.Fatalf("Token键前缀不符: %q", tk)
	}
	if strings.Contains(tk, "some-refresh-token") {
		t.Fatalf("Token不应以明文入键: %q", tk)
	}

	uk := store.userKey(42)
	if uk != "refresh:user:42" {
		t.Fatalf("用户键不符: %q", uk)
	}
}

func TestHashTokenDeterministic(t *testing.T) {
	a := hashToken("token-a")
	if a != hashToken("token-a") {
		t.Fatal("同一Token的摘要应一致")
	}
	if a == hashToken("token-b") {
		t.Fatal("不同Token的摘要不应相同")
	}
	if len(a) != 64 {
		t.Fatalf("摘要应为64位十六进制, got %d", len(a))
	}
}
