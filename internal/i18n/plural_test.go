package i18n

import "testing"

func TestPluralDaysRussian(t *testing.T) {
	cases := []struct {
		n    int
		want string
	}{
		{1, "день"},
		{2, "дня"},
		{3, "дня"},
		{4, "дня"},
		{5, "дней"},
		{11, "дней"},
		{12, "дней"},
		{14, "дней"},
		{21, "день"},
		{22, "дня"},
		{25, "дней"},
		{100, "дней"},
		{101, "день"},
		{111, "дней"},
		{0, "дней"},
	}

	for _, tc := range cases {
		if got := PluralDays(tc.n, RU); got != tc.want {
			t.Fatalf("PluralDays(%d, ru) = %q; want %q", tc.n, got, tc.want)
		}
	}
}

func TestPluralDaysEnglish(t *testing.T) {
	cases := []struct {
		n    int
		want string
	}{
		{0, "days"},
		{1, "day"},
		{2, "days"},
		{21, "days"},
	}

	for _, tc := range cases {
		if got := PluralDays(tc.n, EN); got != tc.want {
			t.Fatalf("PluralDays(%d, en) = %q; want %q", tc.n, got, tc.want)
		}
	}
}

func TestPluralDaysKazakhInvariant(t *testing.T) {
	for _, n := range []int{0, 1, 2, 5, 11, 21, 100} {
		if got := PluralDays(n, KK); got != "күн" {
			t.Fatalf("PluralDays(%d, kk) = %q; want күн", n, got)
		}
	}
}

func TestParse(t *testing.T) {
	if lang, ok := Parse("kk"); !ok || lang != KK {
		t.Fatalf("Parse(kk) = (%v, %v)", lang, ok)
	}
	if _, ok := Parse("de"); ok {
		t.Fatal("Parse(de) accepted an unsupported language")
	}
}
