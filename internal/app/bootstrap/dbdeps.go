// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds database dependencies for the app. Both fields are nil when
// the app runs in degraded mode (no configured or reachable store).
type DBDeps struct {
	MongoClient   *mongo.Client
	MongoDatabase *mongo.Database
}
