package i18n

// PluralDays returns the day-unit word for a count in the active language.
//
// Russian follows the Slavic three-form rule (день/дня/дней), English has
// singular/plural, Kazakh uses one invariant form.
func PluralDays(n int, lang Lang) string {
	switch lang {
	case EN:
		if n == 1 {
			return "day"
		}
		return "days"
	case KK:
		return "күн"
	default:
		if m := n % 100; m >= 11 && m <= 14 {
			return "дней"
		}
		switch n % 10 {
		case 1:
			return "день"
		case 2, 3, 4:
			return "дня"
		default:
			return "дней"
		}
	}
}
