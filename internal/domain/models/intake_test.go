package models

import "testing"

func boolPtr(b bool) *bool { return &b }

func validDonation() DonationIntent {
	return DonationIntent{
		Amount:    50,
		FirstName: "Amina",
		LastName:  "Diallo",
		Email:     "amina@example.org",
		Consent:   boolPtr(true),
	}
}

func TestDonationIntent_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*DonationIntent)
		wantField string
	}{
		{"valid", func(d *DonationIntent) {}, ""},
		{"zero amount", func(d *DonationIntent) { d.Amount = 0 }, "amount"},
		{"negative amount", func(d *DonationIntent) { d.Amount = -5 }, "amount"},
		{"missing first name", func(d *DonationIntent) { d.FirstName = "" }, "first_name"},
		{"missing last name", func(d *DonationIntent) { d.LastName = "" }, "last_name"},
		{"missing email", func(d *DonationIntent) { d.Email = "" }, "email"},
		{"bad email", func(d *DonationIntent) { d.Email = "not-an-email" }, "email"},
		{"bad frequency", func(d *DonationIntent) { d.Frequency = "weekly" }, "frequency"},
		{"monthly frequency ok", func(d *DonationIntent) { d.Frequency = FrequencyMonthly }, ""},
		{"missing consent", func(d *DonationIntent) { d.Consent = nil }, "consent"},
		{"explicit false consent ok", func(d *DonationIntent) { d.Consent = boolPtr(false) }, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := validDonation()
			tc.mutate(&d)
			err := d.Validate()
			checkValidation(t, err, tc.wantField)
		})
	}
}

func TestDonationIntent_ApplyDefaults(t *testing.T) {
	d := validDonation()
	d.ApplyDefaults()

	if d.Currency != "USD" {
		t.Errorf("currency: got %q, want USD", d.Currency)
	}
	if d.Frequency != FrequencyOneTime {
		t.Errorf("frequency: got %q, want %q", d.Frequency, FrequencyOneTime)
	}
}

func TestDonationIntent_ApplyDefaultsKeepsExplicitValues(t *testing.T) {
	d := validDonation()
	d.Currency = "EUR"
	d.Frequency = FrequencyMonthly
	d.ApplyDefaults()

	if d.Currency != "EUR" {
		t.Errorf("currency: got %q, want EUR", d.Currency)
	}
	if d.Frequency != FrequencyMonthly {
		t.Errorf("frequency: got %q, want %q", d.Frequency, FrequencyMonthly)
	}
}

func validVolunteer() VolunteerApplication {
	return VolunteerApplication{
		Name:    "Kofi Mensah",
		Email:   "kofi@example.org",
		Consent: boolPtr(true),
	}
}

func TestVolunteerApplication_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*VolunteerApplication)
		wantField string
	}{
		{"valid", func(v *VolunteerApplication) {}, ""},
		{"missing name", func(v *VolunteerApplication) { v.Name = "" }, "name"},
		{"missing email", func(v *VolunteerApplication) { v.Email = "" }, "email"},
		{"bad email", func(v *VolunteerApplication) { v.Email = "kofi@@example.org" }, "email"},
		{"missing consent", func(v *VolunteerApplication) { v.Consent = nil }, "consent"},
		{"bad status", func(v *VolunteerApplication) { v.Status = "pending" }, "status"},
		{"screening status ok", func(v *VolunteerApplication) { v.Status = VolunteerScreening }, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := validVolunteer()
			tc.mutate(&v)
			err := v.Validate()
			checkValidation(t, err, tc.wantField)
		})
	}
}

func TestVolunteerApplication_ApplyDefaults(t *testing.T) {
	v := validVolunteer()
	v.ApplyDefaults()

	if v.Status != VolunteerReceived {
		t.Errorf("status: got %q, want %q", v.Status, VolunteerReceived)
	}
}

func validPartner() PartnerInquiry {
	return PartnerInquiry{
		Organization:  "Health Alliance",
		ContactName:   "Li Wei",
		Email:         "li@example.org",
		ComplianceAck: boolPtr(true),
	}
}

func TestPartnerInquiry_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*PartnerInquiry)
		wantField string
	}{
		{"valid", func(p *PartnerInquiry) {}, ""},
		{"missing organization", func(p *PartnerInquiry) { p.Organization = "" }, "organization"},
		{"missing contact name", func(p *PartnerInquiry) { p.ContactName = "" }, "contact_name"},
		{"missing email", func(p *PartnerInquiry) { p.Email = "" }, "email"},
		{"bad email", func(p *PartnerInquiry) { p.Email = "li at example" }, "email"},
		{"missing compliance ack", func(p *PartnerInquiry) { p.ComplianceAck = nil }, "compliance_ack"},
		{"bad status", func(p *PartnerInquiry) { p.Status = "open" }, "status"},
		{"mou draft status ok", func(p *PartnerInquiry) { p.Status = PartnerMOUDraft }, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := validPartner()
			tc.mutate(&p)
			err := p.Validate()
			checkValidation(t, err, tc.wantField)
		})
	}
}

func TestPartnerInquiry_ApplyDefaults(t *testing.T) {
	p := validPartner()
	p.ApplyDefaults()

	if p.Status != PartnerReceived {
		t.Errorf("status: got %q, want %q", p.Status, PartnerReceived)
	}
}

func validContact() ContactMessage {
	return ContactMessage{
		Name:    "Sara Novak",
		Email:   "sara@example.org",
		Message: "How can my school get involved?",
		Consent: boolPtr(true),
	}
}

func TestContactMessage_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*ContactMessage)
		wantField string
	}{
		{"valid", func(c *ContactMessage) {}, ""},
		{"missing name", func(c *ContactMessage) { c.Name = "" }, "name"},
		{"missing email", func(c *ContactMessage) { c.Email = "" }, "email"},
		{"bad email", func(c *ContactMessage) { c.Email = ".sara@example.org" }, "email"},
		{"missing message", func(c *ContactMessage) { c.Message = "" }, "message"},
		{"missing consent", func(c *ContactMessage) { c.Consent = nil }, "consent"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := validContact()
			tc.mutate(&c)
			err := c.Validate()
			checkValidation(t, err, tc.wantField)
		})
	}
}

// checkValidation asserts err is nil when wantField is empty, otherwise
// that err names that field.
func checkValidation(t *testing.T, err *ValidationError, wantField string) {
	t.Helper()
	if wantField == "" {
		if err != nil {
			t.Fatalf("unexpected validation error: %v", err)
		}
		return
	}
	if err == nil {
		t.Fatalf("expected validation error on %q, got nil", wantField)
	}
	if err.Field != wantField {
		t.Errorf("field: got %q, want %q", err.Field, wantField)
	}
}
