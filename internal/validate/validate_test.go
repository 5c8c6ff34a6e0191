package validate

import (
	"testing"

	"drivexam_web/internal/domain"
)

func validDraft() domain.RegistrationDraft {
	return domain.RegistrationDraft{
		FullName:        "Aidos Seitkali",
		IIN:             "990101350123",
		Phone:           "+77011234567",
		Email:           "aidos@example.kz",
		Password:        "secret1",
		PasswordConfirm: "secret1",
	}
}

func TestDraftValid(t *testing.T) {
	if errs := Draft(validDraft()); len(errs) != 0 {
		t.Fatalf("valid draft rejected: %v", errs)
	}
}

func TestDraftReferralCodeUnconstrained(t *testing.T) {
	d := validDraft()
	d.ReferralCode = "!!! anything goes ###"
	if errs := Draft(d); len(errs) != 0 {
		t.Fatalf("referral code must not be validated: %v", errs)
	}
}

func TestDraftFieldFailures(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*domain.RegistrationDraft)
		field  string
	}{
		{"empty name", func(d *domain.RegistrationDraft) { d.FullName = "" }, "full_name"},
		{"one-char name", func(d *domain.RegistrationDraft) { d.FullName = "A" }, "full_name"},
		{"whitespace name", func(d *domain.RegistrationDraft) { d.FullName = "  " }, "full_name"},
		{"short iin", func(d *domain.RegistrationDraft) { d.IIN = "12345" }, "iin"},
		{"long iin", func(d *domain.RegistrationDraft) { d.IIN = "1234567890123" }, "iin"},
		{"iin with letters", func(d *domain.RegistrationDraft) { d.IIN = "99010135012a" }, "iin"},
		{"phone without plus", func(d *domain.RegistrationDraft) { d.Phone = "77011234567" }, "phone"},
		{"phone wrong country", func(d *domain.RegistrationDraft) { d.Phone = "+87011234567" }, "phone"},
		{"phone too short", func(d *domain.RegistrationDraft) { d.Phone = "+7701123456" }, "phone"},
		{"phone too long", func(d *domain.RegistrationDraft) { d.Phone = "+770112345678" }, "phone"},
		{"email without at", func(d *domain.RegistrationDraft) { d.Email = "aidos.example.kz" }, "email"},
		{"email double at", func(d *domain.RegistrationDraft) { d.Email = "a@b@c.kz" }, "email"},
		{"email no local part", func(d *domain.RegistrationDraft) { d.Email = "@example.kz" }, "email"},
		{"email no dot in domain", func(d *domain.RegistrationDraft) { d.Email = "aidos@examplekz" }, "email"},
		{"email with space", func(d *domain.RegistrationDraft) { d.Email = "ai dos@example.kz" }, "email"},
		{"short password", func(d *domain.RegistrationDraft) { d.Password = "12345"; d.PasswordConfirm = "12345" }, "password"},
		{"mismatched confirm", func(d *domain.RegistrationDraft) { d.PasswordConfirm = "secret2" }, "password_confirm"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := validDraft()
			tc.mutate(&d)
			errs := Draft(d)
			if _, ok := errs[tc.field]; !ok {
				t.Fatalf("expected error on %s, got %v", tc.field, errs)
			}
		})
	}
}

func TestDraftReportsAllFailingFields(t *testing.T) {
	d := domain.RegistrationDraft{}
	errs := Draft(d)
	for _, field := range []string{"full_name", "iin", "phone", "email", "password"} {
		if _, ok := errs[field]; !ok {
			t.Fatalf("empty draft missing error for %s: %v", field, errs)
		}
	}
}
