// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	bucketstore "github.com/igor-siergiej/jewellery-catalogue/internal/app/store/bucket"
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds database/back-end dependencies for the app.
type DBDeps struct {
	MongoClient   *mongo.Client
	MongoDatabase *mongo.Database
	Bucket        *bucketstore.Store
}
