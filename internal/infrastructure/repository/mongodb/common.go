// Package mongodb implements the application layer repository ports on MongoDB.
package mongodb

import (
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/stkrizh/conduit/internal/domain/errs"
)

// Collection names.
const (
	UsersCollection   = "users"
	FollowsCollection = "follows"
)

// HandleMongoError converts a MongoDB driver error into a domain error:
//   - nil if err == nil
//   - errs.ErrNotFound if no document matched
//   - errs.ErrAlreadyExists if a unique constraint was violated
//   - a wrapped error otherwise
//
// Lookups whose port contract models absence as (nil, nil) must check for
// mongo.ErrNoDocuments themselves instead of calling this helper.
func HandleMongoError(err error, resourceType string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, mongo.ErrNoDocuments) {
		return errs.ErrNotFound
	}

	if mongo.IsDuplicateKeyError(err) {
		return errs.ErrAlreadyExists
	}

	return fmt.Errorf("failed to operate on %s: %w", resourceType, err)
}

// baseDocument contains timestamp fields shared by all documents.
type baseDocument struct {
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}
