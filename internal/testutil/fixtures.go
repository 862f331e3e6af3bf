package testutil

import (
	"context"
	"testing"

	"github.com/caprecon/backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateProgram inserts a program with the given title and status.
func (f *Fixtures) CreateProgram(ctx context.Context, title, status string) models.Program {
	f.t.Helper()

	p := models.Program{
		Title:   title,
		Summary: "Summary for " + title,
		Status:  status,
	}
	p.ApplyDefaults()
	p.Status = status

	res, err := f.db.Collection("program").InsertOne(ctx, p)
	if err != nil {
		f.t.Fatalf("failed to create test program: %v", err)
	}
	p.ID = res.InsertedID.(primitive.ObjectID)
	return p
}

// CreateStory inserts a story with the given title and status.
func (f *Fixtures) CreateStory(ctx context.Context, title, status string) models.Story {
	f.t.Helper()

	s := models.Story{
		Title:   title,
		Excerpt: "Excerpt for " + title,
		Author:  "Field Team",
		Status:  status,
	}
	s.ApplyDefaults()
	s.Status = status

	res, err := f.db.Collection("story").InsertOne(ctx, s)
	if err != nil {
		f.t.Fatalf("failed to create test story: %v", err)
	}
	s.ID = res.InsertedID.(primitive.ObjectID)
	return s
}

// CreatePost inserts a post with the given title and status.
func (f *Fixtures) CreatePost(ctx context.Context, title, status string) models.Post {
	f.t.Helper()

	p := models.Post{
		Title:    title,
		Excerpt:  "Excerpt for " + title,
		Category: "news",
		Status:   status,
	}
	p.ApplyDefaults()
	p.Status = status

	res, err := f.db.Collection("post").InsertOne(ctx, p)
	if err != nil {
		f.t.Fatalf("failed to create test post: %v", err)
	}
	p.ID = res.InsertedID.(primitive.ObjectID)
	return p
}

// ValidDonation returns a donation intent that passes validation.
func ValidDonation() models.DonationIntent {
	consent := true
	return models.DonationIntent{
		Amount:    50,
		Currency:  "USD",
		Frequency: models.FrequencyOneTime,
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Consent:   &consent,
	}
}

// ValidVolunteer returns a volunteer application that passes validation.
func ValidVolunteer() models.VolunteerApplication {
	consent := true
	return models.VolunteerApplication{
		Name:    "Grace Hopper",
		Email:   "grace@example.com",
		Consent: &consent,
	}
}

// ValidPartner returns a partner inquiry that passes validation.
func ValidPartner() models.PartnerInquiry {
	ack := true
	return models.PartnerInquiry{
		Organization:  "Example Org",
		ContactName:   "Jean Bartik",
		Email:         "jean@example.org",
		ComplianceAck: &ack,
	}
}

// ValidContact returns a contact message that passes validation.
func ValidContact() models.ContactMessage {
	consent := true
	return models.ContactMessage{
		Name:    "Katherine Johnson",
		Email:   "katherine@example.com",
		Message: "Hello, I have a question about your programs.",
		Consent: &consent,
	}
}
