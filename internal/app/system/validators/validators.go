// internal/app/system/validators/validators.go
package validators

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// EnsureAll creates the collections this app uses (if missing) and tries to
// attach JSON-Schema validators to the intake collections. On servers that
// don't support collMod/validators (e.g. some DocumentDB versions), we log
// and skip gracefully.
func EnsureAll(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	var problems []string

	ensure := func(coll string, schema bson.M) {
		if err := ensureCollection(ctx, db, coll, logger); err != nil {
			problems = append(problems, coll+": "+err.Error())
			return
		}
		if schema == nil {
			return
		}
		if err := setValidator(ctx, db, coll, schema, logger); err != nil {
			if isNoSuchCommand(err) || isNotImplemented(err) {
				logger.Info("validator skipped (unsupported)", zap.String("collection", coll))
				return
			}
			problems = append(problems, coll+": "+err.Error())
		}
	}

	// Content collections: schema is enforced at the application layer only,
	// since an administrative process writes them directly.
	ensure("program", nil)
	ensure("story", nil)
	ensure("post", nil)
	ensure("report", nil)
	ensure("metric", nil)

	// Intake collections take writes from the public internet, so they also
	// get a server-side required-field check where the server supports it.
	ensure("donationintent", donationSchema())
	ensure("volunteerapplication", volunteerSchema())
	ensure("partnerinquiry", partnerSchema())
	ensure("contactmessage", contactSchema())

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

/* ---------------------- collection helpers ---------------------- */

func collectionExists(ctx context.Context, db *mongo.Database, name string) (bool, error) {
	names, err := db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return false, err
	}
	for _, n := range names {
		if n == name {
			return true, nil
		}
	}
	return false, nil
}

// ensureCollection idempotently makes sure <name> exists.
func ensureCollection(ctx context.Context, db *mongo.Database, name string, logger *zap.Logger) error {
	exists, listErr := collectionExists(ctx, db, name)
	if listErr == nil && exists {
		return nil
	}
	// If listing failed, fall back to create-and-handle-race.
	if err := db.CreateCollection(ctx, name); err != nil {
		if isNamespaceExistsErr(err) {
			return nil
		}
		logger.Warn("createCollection failed", zap.String("collection", name), zap.Error(err))
		return err
	}
	logger.Info("created collection", zap.String("collection", name))
	return nil
}

func setValidator(ctx context.Context, db *mongo.Database, name string, validator bson.M, logger *zap.Logger) error {
	cmd := bson.D{
		{Key: "collMod", Value: name},
		{Key: "validator", Value: validator},
		{Key: "validationLevel", Value: "moderate"},
		{Key: "validationAction", Value: "error"},
	}
	var out bson.M
	if err := db.RunCommand(ctx, cmd).Decode(&out); err != nil {
		return err
	}
	logger.Info("validator ensured", zap.String("collection", name))
	return nil
}

/* ------------------------------ schemas ------------------------------- */

func donationSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": []string{"amount", "first_name", "last_name", "email", "consent"},
			"properties": bson.M{
				"amount":     bson.M{"bsonType": []string{"double", "int", "long", "decimal"}, "exclusiveMinimum": true, "minimum": 0},
				"first_name": bson.M{"bsonType": "string"},
				"last_name":  bson.M{"bsonType": "string"},
				"email":      bson.M{"bsonType": "string"},
				"consent":    bson.M{"bsonType": "bool"},
				"frequency":  bson.M{"enum": []string{"one_time", "monthly"}},
			},
		},
	}
}

func volunteerSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": []string{"name", "email", "consent"},
			"properties": bson.M{
				"name":    bson.M{"bsonType": "string"},
				"email":   bson.M{"bsonType": "string"},
				"consent": bson.M{"bsonType": "bool"},
				"status":  bson.M{"enum": []string{"received", "screening", "accepted", "declined"}},
			},
		},
	}
}

func partnerSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": []string{"organization", "contact_name", "email", "compliance_ack"},
			"properties": bson.M{
				"organization":   bson.M{"bsonType": "string"},
				"contact_name":   bson.M{"bsonType": "string"},
				"email":          bson.M{"bsonType": "string"},
				"compliance_ack": bson.M{"bsonType": "bool"},
				"status":         bson.M{"enum": []string{"received", "in_discussion", "mou_draft", "closed"}},
			},
		},
	}
}

func contactSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": []string{"name", "email", "message", "consent"},
			"properties": bson.M{
				"name":    bson.M{"bsonType": "string"},
				"email":   bson.M{"bsonType": "string"},
				"message": bson.M{"bsonType": "string"},
				"consent": bson.M{"bsonType": "bool"},
			},
		},
	}
}

/* ------------------------- error helpers ------------------------- */

func isNamespaceExistsErr(err error) bool {
	if err == nil {
		return false
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && (ce.Code == 48 || strings.Contains(strings.ToLower(ce.Message), "already exists")) {
		return true
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "already exists") || strings.Contains(s, "namespace exists")
}

func isNoSuchCommand(err error) bool {
	if err == nil {
		return false
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && (ce.Code == 59 || strings.Contains(strings.ToLower(ce.Message), "no such command")) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "no such command")
}

func isNotImplemented(err error) bool {
	if err == nil {
		return false
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && (ce.Code == 238 || strings.Contains(strings.ToLower(ce.Message), "not implemented")) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "not implemented")
}
