// internal/domain/models/intake.go
package models

import (
	"time"

	"github.com/caprecon/backend/internal/app/system/inputval"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Donation frequencies.
const (
	FrequencyOneTime = "one_time"
	FrequencyMonthly = "monthly"
)

// Volunteer application statuses, mutated by an out-of-band admin process.
const (
	VolunteerReceived  = "received"
	VolunteerScreening = "screening"
	VolunteerAccepted  = "accepted"
	VolunteerDeclined  = "declined"
)

// Partner inquiry statuses.
const (
	PartnerReceived     = "received"
	PartnerInDiscussion = "in_discussion"
	PartnerMOUDraft     = "mou_draft"
	PartnerClosed       = "closed"
)

// DonationIntent records a donor's intent submitted through the public
// donation form. Collection: "donationintent". Consent is a pointer so a
// missing field is distinguishable from an explicit false.
type DonationIntent struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Amount      float64            `bson:"amount" json:"amount"`
	Currency    string             `bson:"currency" json:"currency"`
	Frequency   string             `bson:"frequency" json:"frequency"`
	Fund        string             `bson:"fund,omitempty" json:"fund,omitempty"`
	FirstName   string             `bson:"first_name" json:"first_name"`
	LastName    string             `bson:"last_name" json:"last_name"`
	Email       string             `bson:"email" json:"email"`
	Country     string             `bson:"country,omitempty" json:"country,omitempty"`
	Message     string             `bson:"message,omitempty" json:"message,omitempty"`
	Consent     *bool              `bson:"consent" json:"consent"`
	Reference   string             `bson:"reference,omitempty" json:"reference,omitempty"`
	SubmittedAt time.Time          `bson:"submitted_at,omitempty" json:"submitted_at,omitempty"`
}

func (d *DonationIntent) ApplyDefaults() {
	if d.Currency == "" {
		d.Currency = "USD"
	}
	if d.Frequency == "" {
		d.Frequency = FrequencyOneTime
	}
}

func (d *DonationIntent) Validate() *ValidationError {
	if d.Amount <= 0 {
		return invalid("amount", "must be greater than zero")
	}
	if d.FirstName == "" {
		return required("first_name")
	}
	if d.LastName == "" {
		return required("last_name")
	}
	if d.Email == "" {
		return required("email")
	}
	if !inputval.IsValidEmail(d.Email) {
		return invalid("email", "must be a valid email address")
	}
	if d.Frequency != "" && !oneOf(d.Frequency, FrequencyOneTime, FrequencyMonthly) {
		return invalid("frequency", "must be one_time or monthly")
	}
	if d.Consent == nil {
		return required("consent")
	}
	return nil
}

// VolunteerApplication is a public volunteer sign-up.
// Collection: "volunteerapplication".
type VolunteerApplication struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	Phone        string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Location     string             `bson:"location,omitempty" json:"location,omitempty"`
	RoleInterest string             `bson:"role_interest,omitempty" json:"role_interest,omitempty"`
	Availability string             `bson:"availability,omitempty" json:"availability,omitempty"`
	Experience   string             `bson:"experience,omitempty" json:"experience,omitempty"`
	References   string             `bson:"references,omitempty" json:"references,omitempty"`
	Consent      *bool              `bson:"consent" json:"consent"`
	Status       string             `bson:"status" json:"status"`
	Reference    string             `bson:"reference,omitempty" json:"reference,omitempty"`
	SubmittedAt  time.Time          `bson:"submitted_at,omitempty" json:"submitted_at,omitempty"`
}

func (v *VolunteerApplication) ApplyDefaults() {
	if v.Status == "" {
		v.Status = VolunteerReceived
	}
}

func (v *VolunteerApplication) Validate() *ValidationError {
	if v.Name == "" {
		return required("name")
	}
	if v.Email == "" {
		return required("email")
	}
	if !inputval.IsValidEmail(v.Email) {
		return invalid("email", "must be a valid email address")
	}
	if v.Consent == nil {
		return required("consent")
	}
	if v.Status != "" && !oneOf(v.Status, VolunteerReceived, VolunteerScreening, VolunteerAccepted, VolunteerDeclined) {
		return invalid("status", "must be received, screening, accepted or declined")
	}
	return nil
}

// PartnerInquiry is an organization asking to collaborate.
// Collection: "partnerinquiry".
type PartnerInquiry struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Organization       string             `bson:"organization" json:"organization"`
	PartnerType        string             `bson:"partner_type,omitempty" json:"partner_type,omitempty"`
	ContactName        string             `bson:"contact_name" json:"contact_name"`
	Email              string             `bson:"email" json:"email"`
	Phone              string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Country            string             `bson:"country,omitempty" json:"country,omitempty"`
	CollaborationAreas string             `bson:"collaboration_areas,omitempty" json:"collaboration_areas,omitempty"`
	Message            string             `bson:"message,omitempty" json:"message,omitempty"`
	ComplianceAck      *bool              `bson:"compliance_ack" json:"compliance_ack"`
	Status             string             `bson:"status" json:"status"`
	Reference          string             `bson:"reference,omitempty" json:"reference,omitempty"`
	SubmittedAt        time.Time          `bson:"submitted_at,omitempty" json:"submitted_at,omitempty"`
}

func (p *PartnerInquiry) ApplyDefaults() {
	if p.Status == "" {
		p.Status = PartnerReceived
	}
}

func (p *PartnerInquiry) Validate() *ValidationError {
	if p.Organization == "" {
		return required("organization")
	}
	if p.ContactName == "" {
		return required("contact_name")
	}
	if p.Email == "" {
		return required("email")
	}
	if !inputval.IsValidEmail(p.Email) {
		return invalid("email", "must be a valid email address")
	}
	if p.ComplianceAck == nil {
		return required("compliance_ack")
	}
	if p.Status != "" && !oneOf(p.Status, PartnerReceived, PartnerInDiscussion, PartnerMOUDraft, PartnerClosed) {
		return invalid("status", "must be received, in_discussion, mou_draft or closed")
	}
	return nil
}

// ContactMessage is a general contact-form submission.
// Collection: "contactmessage".
type ContactMessage struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Topic       string             `bson:"topic,omitempty" json:"topic,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Email       string             `bson:"email" json:"email"`
	Message     string             `bson:"message" json:"message"`
	Consent     *bool              `bson:"consent" json:"consent"`
	Reference   string             `bson:"reference,omitempty" json:"reference,omitempty"`
	SubmittedAt time.Time          `bson:"submitted_at,omitempty" json:"submitted_at,omitempty"`
}

func (c *ContactMessage) Validate() *ValidationError {
	if c.Name == "" {
		return required("name")
	}
	if c.Email == "" {
		return required("email")
	}
	if !inputval.IsValidEmail(c.Email) {
		return invalid("email", "must be a valid email address")
	}
	if c.Message == "" {
		return required("message")
	}
	if c.Consent == nil {
		return required("consent")
	}
	return nil
}
