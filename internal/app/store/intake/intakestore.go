// internal/app/store/intake/intakestore.go
package intakestore

import (
	"context"
	"errors"
	"time"

	"github.com/caprecon/backend/internal/app/system/htmlsanitize"
	"github.com/caprecon/backend/internal/domain/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrUnavailable is returned when the store was constructed without a
// database (degraded startup, see bootstrap.ConnectDB).
var ErrUnavailable = errors.New("intake store: database unavailable")

// Receipt identifies a stored submission: the Mongo-assigned id plus the
// reference token shown to the submitter.
type Receipt struct {
	ID        string
	Reference string
}

// Store writes intake submissions (donations, volunteer applications,
// partner inquiries, contact messages). Submissions are insert-only; there
// is no read API for them. Document ids are assigned by Mongo on insert:
// any id arriving on the submission is discarded, like Reference and
// SubmittedAt.
type Store struct {
	db *mongo.Database
}

// New creates an intake store. db may be nil; Create operations then fail
// with ErrUnavailable.
func New(db *mongo.Database) *Store {
	return &Store{db: db}
}

// CreateDonation stores a validated donation intent.
func (s *Store) CreateDonation(ctx context.Context, d models.DonationIntent) (Receipt, error) {
	d.ID = primitive.NilObjectID
	d.ApplyDefaults()
	d.Message = htmlsanitize.Strip(d.Message)
	d.Reference = uuid.NewString()
	d.SubmittedAt = time.Now().UTC()
	return create(ctx, s.db, "donationintent", d, d.Reference)
}

// CreateVolunteer stores a validated volunteer application.
func (s *Store) CreateVolunteer(ctx context.Context, v models.VolunteerApplication) (Receipt, error) {
	v.ID = primitive.NilObjectID
	v.ApplyDefaults()
	v.Experience = htmlsanitize.Strip(v.Experience)
	v.References = htmlsanitize.Strip(v.References)
	v.Reference = uuid.NewString()
	v.SubmittedAt = time.Now().UTC()
	return create(ctx, s.db, "volunteerapplication", v, v.Reference)
}

// CreatePartner stores a validated partner inquiry.
func (s *Store) CreatePartner(ctx context.Context, p models.PartnerInquiry) (Receipt, error) {
	p.ID = primitive.NilObjectID
	p.ApplyDefaults()
	p.CollaborationAreas = htmlsanitize.Strip(p.CollaborationAreas)
	p.Message = htmlsanitize.Strip(p.Message)
	p.Reference = uuid.NewString()
	p.SubmittedAt = time.Now().UTC()
	return create(ctx, s.db, "partnerinquiry", p, p.Reference)
}

// CreateContact stores a validated contact message.
func (s *Store) CreateContact(ctx context.Context, c models.ContactMessage) (Receipt, error) {
	c.ID = primitive.NilObjectID
	c.Message = htmlsanitize.Strip(c.Message)
	c.Reference = uuid.NewString()
	c.SubmittedAt = time.Now().UTC()
	return create(ctx, s.db, "contactmessage", c, c.Reference)
}

func create[T any](ctx context.Context, db *mongo.Database, coll string, doc T, reference string) (Receipt, error) {
	if db == nil {
		return Receipt{}, ErrUnavailable
	}
	res, err := db.Collection(coll).InsertOne(ctx, doc)
	if err != nil {
		return Receipt{}, err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return Receipt{}, errors.New("intake store: unexpected inserted id type")
	}
	return Receipt{ID: id.Hex(), Reference: reference}, nil
}
