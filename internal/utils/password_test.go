package utils

import "testing"

func TestPasswordHashAndCheck(t *testing.T) {
	hash, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("哈希失败: %v", err)
	}
	if hash == "secret123" {
		t.Fatal("密码不应明文存储")
	}
	if !IsBcryptHash(hash) {
		t.Fatalf("应为bcrypt哈希: %s", hash)
	}

	if err := CheckPassword("secret123", hash); err != nil {
		t.Fatalf("正确密码校验失败: %v", err)
	}
	if err := CheckPassword("wrong9999", hash); err == nil {
		t.Fatal("错误密码应校验失败")
	}
}

func TestIsBcryptHash(t *testing.T) {
	if IsBcryptHash("plaintext") {
		t.Fatal("明文不应识别为bcrypt哈希")
	}
	if !IsBcryptHash("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy") {
		t.Fatal("标准bcrypt哈希应被识别")
	}
}

func TestValidateStructCustomTags(t *testing.T) {
	type form struct {
		Username string `validate:"username"`
		Password string `validate:"password_strength"`
	}

	good := form{Username: "alice_01", Password: "secret123"}
	if err := ValidateStruct(&good); err != nil {
		t.Fatalf("合法输入不应报错: %v", err)
	}

	bad := []form{
		{Username: "ab", Password: "secret123"},        // 用户名过短
		{Username: "有中文", Password: "secret123"},       // 非法字符
		{Username: "alice_01", Password: "short1"},     // 密码过短
		{Username: "alice_01", Password: "allletters"}, // 缺少数字
	}
	for _, f := range bad {
		if err := ValidateStruct(&f); err == nil {
			t.Fatalf("非法输入应报错: %+v", f)
		}
	}
}
