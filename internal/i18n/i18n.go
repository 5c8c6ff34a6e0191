package i18n

import "net/http"

// Lang is one of the three supported interface languages.
type Lang string

const (
	RU Lang = "ru"
	KK Lang = "kk"
	EN Lang = "en"
)

// CookieName stores the visitor's language preference.
const CookieName = "dx_lang"

// Parse validates a language tag coming from a cookie or form value.
func Parse(s string) (Lang, bool) {
	switch Lang(s) {
	case RU, KK, EN:
		return Lang(s), true
	}
	return "", false
}

// FromRequest resolves the active language: preference cookie first, then
// the configured default.
func FromRequest(r *http.Request, fallback Lang) Lang {
	if ck, err := r.Cookie(CookieName); err == nil {
		if lang, ok := Parse(ck.Value); ok {
			return lang
		}
	}
	return fallback
}

var messages = map[Lang]map[string]string{
	RU: {
		"err.full_name":        "Введите имя (минимум 2 символа)",
		"err.iin":              "ИИН должен состоять из 12 цифр",
		"err.phone":            "Телефон в формате +7XXXXXXXXXX",
		"err.email":            "Введите корректный email",
		"err.password":         "Пароль минимум 6 символов",
		"err.password_confirm": "Пароли не совпадают",
		"err.server":           "Что-то пошло не так, попробуйте ещё раз",
		"err.credentials":      "Неверный email или пароль",
	},
	KK: {
		"err.full_name":        "Атыңызды енгізіңіз (кемінде 2 таңба)",
		"err.iin":              "ЖСН 12 цифрдан тұруы керек",
		"err.phone":            "Телефон +7XXXXXXXXXX форматында",
		"err.email":            "Дұрыс email енгізіңіз",
		"err.password":         "Құпиясөз кемінде 6 таңба",
		"err.password_confirm": "Құпиясөздер сәйкес емес",
		"err.server":           "Қате кетті, қайталап көріңіз",
		"err.credentials":      "Email немесе құпиясөз қате",
	},
	EN: {
		"err.full_name":        "Enter your name (at least 2 characters)",
		"err.iin":              "IIN must be exactly 12 digits",
		"err.phone":            "Phone in +7XXXXXXXXXX format",
		"err.email":            "Enter a valid email",
		"err.password":         "Password must be at least 6 characters",
		"err.password_confirm": "Passwords do not match",
		"err.server":           "Something went wrong, please try again",
		"err.credentials":      "Wrong email or password",
	},
}

// T translates a message key. Unknown keys come back verbatim so a missing
// translation is visible instead of silent.
func T(lang Lang, key string) string {
	if m, ok := messages[lang]; ok {
		if s, ok := m[key]; ok {
			return s
		}
	}
	if s, ok := messages[RU][key]; ok {
		return s
	}
	return key
}
