package intake_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/caprecon/backend/internal/app/features/intake"
	intakestore "github.com/caprecon/backend/internal/app/store/intake"
	"github.com/caprecon/backend/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type createdResponse struct {
	ID        string `json:"id"`
	Reference string `json:"reference"`
	Message   string `json:"message"`
}

func newTestHandler(t *testing.T) (*intake.Handler, *mongo.Database) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return intake.NewHandler(intakestore.New(db), zap.NewNop()), db
}

func collectionCount(t *testing.T, db *mongo.Database, coll string) int64 {
	t.Helper()
	ctx, cancel := testutil.TestContext()
	defer cancel()
	n, err := db.Collection(coll).CountDocuments(ctx, bson.M{})
	if err != nil {
		t.Fatalf("count %s failed: %v", coll, err)
	}
	return n
}

func TestCreateDonation_Valid(t *testing.T) {
	handler, db := newTestHandler(t)

	req := testutil.NewJSONRequest(t, "POST", "/api/donations", testutil.ValidDonation())
	rec := httptest.NewRecorder()

	handler.CreateDonation(rec, req)

	testutil.AssertStatus(t, rec, http.StatusOK)

	var resp createdResponse
	testutil.DecodeJSON(t, rec, &resp)
	if resp.ID == "" {
		t.Error("expected assigned id in response")
	}
	if resp.Reference == "" {
		t.Error("expected submission reference in response")
	}
	if resp.Message != "Donation intent recorded" {
		t.Errorf("message: got %q, want %q", resp.Message, "Donation intent recorded")
	}
	if n := collectionCount(t, db, "donationintent"); n != 1 {
		t.Errorf("expected 1 stored donation, got %d", n)
	}
}

func TestCreateDonation_DefaultsApplied(t *testing.T) {
	handler, db := newTestHandler(t)

	in := testutil.ValidDonation()
	in.Currency = ""
	in.Frequency = ""

	req := testutil.NewJSONRequest(t, "POST", "/api/donations", in)
	rec := httptest.NewRecorder()
	handler.CreateDonation(rec, req)
	testutil.AssertStatus(t, rec, http.StatusOK)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	var stored bson.M
	if err := db.Collection("donationintent").FindOne(ctx, bson.M{}).Decode(&stored); err != nil {
		t.Fatalf("failed to read stored donation: %v", err)
	}
	if stored["currency"] != "USD" {
		t.Errorf("currency: got %v, want USD", stored["currency"])
	}
	if stored["frequency"] != "one_time" {
		t.Errorf("frequency: got %v, want one_time", stored["frequency"])
	}
	if stored["submitted_at"] == nil {
		t.Error("expected submitted_at to be stamped")
	}
}

func TestCreateDonation_NonPositiveAmount(t *testing.T) {
	handler, db := newTestHandler(t)

	in := testutil.ValidDonation()
	in.Amount = 0

	req := testutil.NewJSONRequest(t, "POST", "/api/donations", in)
	rec := httptest.NewRecorder()

	handler.CreateDonation(rec, req)

	testutil.AssertStatus(t, rec, http.StatusBadRequest)
	if n := collectionCount(t, db, "donationintent"); n != 0 {
		t.Errorf("expected no stored donation, got %d", n)
	}
}

func TestCreateDonation_MissingConsent(t *testing.T) {
	handler, db := newTestHandler(t)

	in := testutil.ValidDonation()
	in.Consent = nil

	req := testutil.NewJSONRequest(t, "POST", "/api/donations", in)
	rec := httptest.NewRecorder()

	handler.CreateDonation(rec, req)

	testutil.AssertStatus(t, rec, http.StatusBadRequest)

	var resp struct {
		Error string `json:"error"`
	}
	testutil.DecodeJSON(t, rec, &resp)
	if resp.Error != "consent is required" {
		t.Errorf("error: got %q, want %q", resp.Error, "consent is required")
	}
	if n := collectionCount(t, db, "donationintent"); n != 0 {
		t.Errorf("expected no stored donation, got %d", n)
	}
}

func TestCreateDonation_ClientSuppliedIDIgnored(t *testing.T) {
	handler, db := newTestHandler(t)

	suppliedHex := "507f1f77bcf86cd799439011"
	body := map[string]any{
		"id":         suppliedHex,
		"amount":     50,
		"first_name": "Ada",
		"last_name":  "Lovelace",
		"email":      "ada@example.com",
		"consent":    true,
	}

	req := testutil.NewJSONRequest(t, "POST", "/api/donations", body)
	rec := httptest.NewRecorder()

	handler.CreateDonation(rec, req)

	testutil.AssertStatus(t, rec, http.StatusOK)

	var resp createdResponse
	testutil.DecodeJSON(t, rec, &resp)
	if resp.ID == suppliedHex {
		t.Error("expected store-assigned id, got the caller's")
	}

	ctx, cancel := testutil.TestContext()
	defer cancel()
	supplied, err := primitive.ObjectIDFromHex(suppliedHex)
	if err != nil {
		t.Fatalf("bad test id: %v", err)
	}
	n, err := db.Collection("donationintent").CountDocuments(ctx, bson.M{"_id": supplied})
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if n != 0 {
		t.Errorf("expected no document under the caller-chosen id, got %d", n)
	}
	if total := collectionCount(t, db, "donationintent"); total != 1 {
		t.Errorf("expected 1 stored donation, got %d", total)
	}
}

func TestCreateDonation_ReplayedIDDoesNotCollide(t *testing.T) {
	handler, db := newTestHandler(t)

	body := map[string]any{
		"id":         "507f1f77bcf86cd799439011",
		"amount":     25,
		"first_name": "Ada",
		"last_name":  "Lovelace",
		"email":      "ada@example.com",
		"consent":    true,
	}

	for i := 0; i < 2; i++ {
		req := testutil.NewJSONRequest(t, "POST", "/api/donations", body)
		rec := httptest.NewRecorder()
		handler.CreateDonation(rec, req)
		testutil.AssertStatus(t, rec, http.StatusOK)
	}

	if n := collectionCount(t, db, "donationintent"); n != 2 {
		t.Errorf("expected 2 stored donations, got %d", n)
	}
}

func TestCreateDonation_MalformedEmail(t *testing.T) {
	handler, _ := newTestHandler(t)

	in := testutil.ValidDonation()
	in.Email = "not-an-email"

	req := testutil.NewJSONRequest(t, "POST", "/api/donations", in)
	rec := httptest.NewRecorder()

	handler.CreateDonation(rec, req)

	testutil.AssertStatus(t, rec, http.StatusBadRequest)
}

func TestCreateDonation_InvalidJSON(t *testing.T) {
	handler, _ := newTestHandler(t)

	req := httptest.NewRequest("POST", "/api/donations", nil)
	rec := httptest.NewRecorder()

	handler.CreateDonation(rec, req)

	testutil.AssertStatus(t, rec, http.StatusBadRequest)
}

func TestCreateVolunteer_Valid(t *testing.T) {
	handler, db := newTestHandler(t)

	req := testutil.NewJSONRequest(t, "POST", "/api/volunteers", testutil.ValidVolunteer())
	rec := httptest.NewRecorder()

	handler.CreateVolunteer(rec, req)

	testutil.AssertStatus(t, rec, http.StatusOK)

	var resp createdResponse
	testutil.DecodeJSON(t, rec, &resp)
	if resp.Message != "Volunteer application received" {
		t.Errorf("message: got %q, want %q", resp.Message, "Volunteer application received")
	}

	ctx, cancel := testutil.TestContext()
	defer cancel()
	var stored bson.M
	if err := db.Collection("volunteerapplication").FindOne(ctx, bson.M{}).Decode(&stored); err != nil {
		t.Fatalf("failed to read stored application: %v", err)
	}
	if stored["status"] != "received" {
		t.Errorf("status: got %v, want received", stored["status"])
	}
}

func TestCreateVolunteer_InvalidStatus(t *testing.T) {
	handler, _ := newTestHandler(t)

	in := testutil.ValidVolunteer()
	in.Status = "approved"

	req := testutil.NewJSONRequest(t, "POST", "/api/volunteers", in)
	rec := httptest.NewRecorder()

	handler.CreateVolunteer(rec, req)

	testutil.AssertStatus(t, rec, http.StatusBadRequest)
}

func TestCreatePartner_Valid(t *testing.T) {
	handler, db := newTestHandler(t)

	req := testutil.NewJSONRequest(t, "POST", "/api/partners", testutil.ValidPartner())
	rec := httptest.NewRecorder()

	handler.CreatePartner(rec, req)

	testutil.AssertStatus(t, rec, http.StatusOK)

	var resp createdResponse
	testutil.DecodeJSON(t, rec, &resp)
	if resp.Message != "Partner inquiry submitted" {
		t.Errorf("message: got %q, want %q", resp.Message, "Partner inquiry submitted")
	}
	if n := collectionCount(t, db, "partnerinquiry"); n != 1 {
		t.Errorf("expected 1 stored inquiry, got %d", n)
	}
}

func TestCreatePartner_MissingComplianceAck(t *testing.T) {
	handler, db := newTestHandler(t)

	in := testutil.ValidPartner()
	in.ComplianceAck = nil

	req := testutil.NewJSONRequest(t, "POST", "/api/partners", in)
	rec := httptest.NewRecorder()

	handler.CreatePartner(rec, req)

	testutil.AssertStatus(t, rec, http.StatusBadRequest)
	if n := collectionCount(t, db, "partnerinquiry"); n != 0 {
		t.Errorf("expected no stored inquiry, got %d", n)
	}
}

func TestCreateContact_Valid(t *testing.T) {
	handler, db := newTestHandler(t)

	req := testutil.NewJSONRequest(t, "POST", "/api/contact", testutil.ValidContact())
	rec := httptest.NewRecorder()

	handler.CreateContact(rec, req)

	testutil.AssertStatus(t, rec, http.StatusOK)

	var resp createdResponse
	testutil.DecodeJSON(t, rec, &resp)
	if resp.Message != "Message received" {
		t.Errorf("message: got %q, want %q", resp.Message, "Message received")
	}
	if n := collectionCount(t, db, "contactmessage"); n != 1 {
		t.Errorf("expected 1 stored message, got %d", n)
	}
}

func TestCreateContact_MessageSanitized(t *testing.T) {
	handler, db := newTestHandler(t)

	in := testutil.ValidContact()
	in.Message = "Hello<script>alert('xss')</script>"

	req := testutil.NewJSONRequest(t, "POST", "/api/contact", in)
	rec := httptest.NewRecorder()
	handler.CreateContact(rec, req)
	testutil.AssertStatus(t, rec, http.StatusOK)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	var stored bson.M
	if err := db.Collection("contactmessage").FindOne(ctx, bson.M{}).Decode(&stored); err != nil {
		t.Fatalf("failed to read stored message: %v", err)
	}
	if stored["message"] != "Hello" {
		t.Errorf("message: got %q, want %q", stored["message"], "Hello")
	}
}

func TestCreateDonation_StoreUnavailable(t *testing.T) {
	handler := intake.NewHandler(intakestore.New(nil), zap.NewNop())

	req := testutil.NewJSONRequest(t, "POST", "/api/donations", testutil.ValidDonation())
	rec := httptest.NewRecorder()

	handler.CreateDonation(rec, req)

	testutil.AssertStatus(t, rec, http.StatusServiceUnavailable)
}
