package message

import "testing"

func TestI18nTextOnlyEnglishPopulated(t *testing.T) {
	text := NewI18nText().EN("hello")

	if got := text.For(LangEN); got != "hello" {
		t.Fatalf("EN: got %q, want %q", got, "hello")
	}

	for _, l := range []Lang{LangJA, LangZH, LangKO} {
		if got := text.For(l); got != "" {
			t.Fatalf("lang %v: got %q, want empty", l, got)
		}
	}
}

func TestI18nTextIsEmpty(t *testing.T) {
	if !NewI18nText().IsEmpty() {
		t.Fatal("zero value should be empty")
	}
	if NewI18nText().JA("こんにちは").IsEmpty() {
		t.Fatal("populated text should not be empty")
	}
}

func TestParseLangDefaultsToJapanese(t *testing.T) {
	cases := []struct {
		in   string
		want Lang
	}{
		{"en-US", LangEN},
		{"ja-JP", LangJA},
		{"zh-CN", LangZH},
		{"ko-KR", LangKO},
		{"", LangJA},
		{"garbage", LangJA},
	}
	for _, c := range cases {
		if got := ParseLang(c.in); got != c.want {
			t.Errorf("ParseLang(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestActorIdString(t *testing.T) {
	if ActorCore.String() != "Core" {
		t.Fatalf("got %q, want Core", ActorCore.String())
	}
	if ActorId(999).String() != "Unknown" {
		t.Fatalf("unknown actor id should stringify to Unknown")
	}
}
