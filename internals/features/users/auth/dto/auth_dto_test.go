package dto

import "testing"

func TestRegisterRequestEmailRule(t *testing.T) {
	cases := []struct {
		email string
		ok    bool
	}{
		{"john.2021001@bouesti.edu.ng", true},
		{"ada.450112@bouesti.edu.ng", true},
		{"john.doe@bouesti.edu.ng", false},   // staff pattern, not a matric no
		{"john.2021001@gmail.com", false},    // wrong domain
		{"2021001@bouesti.edu.ng", false},    // missing name part
		{"john2021001@bouesti.edu.ng", false},
	}
	for _, tc := range cases {
		req := RegisterRequest{
			UserName:     "John",
			UserEmail:    tc.email,
			UserPassword: "secret-pass",
			UserMatricNo: "2021001",
		}
		err := req.Validate()
		if tc.ok && err != nil {
			t.Errorf("%s: unexpected error %v", tc.email, err)
		}
		if !tc.ok && err == nil {
			t.Errorf("%s: expected rejection", tc.email)
		}
	}
}

func TestValidateStaffEmail(t *testing.T) {
	if err := ValidateStaffEmail("jane.doe@bouesti.edu.ng"); err != nil {
		t.Fatalf("valid staff email rejected: %v", err)
	}
	if err := ValidateStaffEmail("jane.450112@bouesti.edu.ng"); err == nil {
		t.Fatal("student pattern accepted as staff email")
	}
	if err := ValidateStaffEmail("jane.doe@other.edu.ng"); err == nil {
		t.Fatal("foreign domain accepted as staff email")
	}
}

func TestToModelNormalizes(t *testing.T) {
	req := RegisterRequest{
		UserName:     "  John Ade  ",
		UserEmail:    "John.2021001@BOUESTI.edu.ng",
		UserPassword: "secret-pass",
		UserMatricNo: " 2021001 ",
	}
	m := req.ToModel()
	if m.UserEmail != "john.2021001@bouesti.edu.ng" {
		t.Errorf("email not lowercased: %q", m.UserEmail)
	}
	if m.UserName != "John Ade" {
		t.Errorf("name not trimmed: %q", m.UserName)
	}
	if m.UserRole != "student" {
		t.Errorf("self-registration must always produce a student, got %q", m.UserRole)
	}
	if m.UserMatricNo == nil || *m.UserMatricNo != "2021001" {
		t.Errorf("matric no not trimmed: %v", m.UserMatricNo)
	}
}
