package mongodb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	profileapp "github.com/stkrizh/conduit/internal/application/profile"
	"github.com/stkrizh/conduit/internal/domain/errs"
	profiledomain "github.com/stkrizh/conduit/internal/domain/profile"
	"github.com/stkrizh/conduit/internal/domain/uuid"
)

// followDocument is one directed follow edge.
type followDocument struct {
	FollowerID string    `bson:"follower_id"`
	FolloweeID string    `bson:"followee_id"`
	CreatedAt  time.Time `bson:"created_at"`
}

// MongoProfileRepository implements the profile application Repository port.
//
// Profiles are a projection over the users collection joined with the follows
// collection for the viewing actor. The unique (follower_id, followee_id)
// index plus upsert/delete mutations guarantee at most one edge per pair
// under concurrent follow calls, each mutation being a single atomic
// document operation.
type MongoProfileRepository struct {
	users   *mongo.Collection
	follows *mongo.Collection
	logger  *slog.Logger
}

// ProfileRepoOption configures MongoProfileRepository.
type ProfileRepoOption func(*MongoProfileRepository)

// WithProfileRepoLogger sets the logger for the profile repository.
func WithProfileRepoLogger(logger *slog.Logger) ProfileRepoOption {
	return func(r *MongoProfileRepository) {
		r.logger = logger
	}
}

// NewMongoProfileRepository creates a new MongoDB profile repository.
func NewMongoProfileRepository(users, follows *mongo.Collection, opts ...ProfileRepoOption) *MongoProfileRepository {
	r := &MongoProfileRepository{
		users:   users,
		follows: follows,
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// EnsureIndexes creates the unique follow-edge index.
func (r *MongoProfileRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.follows.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "follower_id", Value: 1},
			{Key: "followee_id", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create follow indexes: %w", err)
	}
	return nil
}

// GetByUsername returns the profile with the given username as seen by
// viewedBy, or (nil, nil) when no account has that username.
func (r *MongoProfileRepository) GetByUsername(
	ctx context.Context,
	username string,
	viewedBy uuid.UUID,
) (*profiledomain.Profile, error) {
	doc, err := r.findUser(ctx, bson.M{"username": username})
	if err != nil || doc == nil {
		return nil, err
	}

	return r.buildProfile(ctx, doc, viewedBy)
}

// Update applies a follow-relationship change from actor by and returns the
// refreshed viewer-relative profile.
func (r *MongoProfileRepository) Update(
	ctx context.Context,
	profileID uuid.UUID,
	input profileapp.UpdateProfileInput,
	by uuid.UUID,
) (*profiledomain.Profile, error) {
	if profileID.IsZero() || by.IsZero() {
		return nil, errs.ErrInvalidInput
	}

	if input.IsFollowing != nil {
		if *input.IsFollowing {
			if err := r.insertEdge(ctx, by, profileID); err != nil {
				return nil, err
			}
		} else {
			if err := r.deleteEdge(ctx, by, profileID); err != nil {
				return nil, err
			}
		}
	}

	doc, err := r.findUser(ctx, bson.M{"user_id": profileID.String()})
	if err != nil {
		return nil, err
	}
	if doc == nil {
		// Update is only called with an id obtained from a previous read;
		// a vanished account here is an anomaly, not a normal absence.
		return nil, fmt.Errorf("profile %s: %w", profileID, errs.ErrNotFound)
	}

	return r.buildProfile(ctx, doc, by)
}

// Unfollow removes the edge from followingBy toward the account with the
// given username, or returns (nil, nil) when no such account exists.
func (r *MongoProfileRepository) Unfollow(
	ctx context.Context,
	username string,
	followingBy uuid.UUID,
) (*profiledomain.Profile, error) {
	if followingBy.IsZero() {
		return nil, errs.ErrInvalidInput
	}

	doc, err := r.findUser(ctx, bson.M{"username": username})
	if err != nil || doc == nil {
		return nil, err
	}

	followeeID, err := uuid.ParseUUID(doc.UserID)
	if err != nil {
		return nil, fmt.Errorf("corrupt user document: %w", err)
	}

	if err = r.deleteEdge(ctx, followingBy, followeeID); err != nil {
		return nil, err
	}

	return r.buildProfile(ctx, doc, followingBy)
}

// insertEdge materializes a follow edge. The upsert combined with the unique
// index makes repeated follows a no-op instead of a duplicate or an error.
func (r *MongoProfileRepository) insertEdge(ctx context.Context, follower, followee uuid.UUID) error {
	filter := bson.M{
		"follower_id": follower.String(),
		"followee_id": followee.String(),
	}
	update := bson.M{
		"$setOnInsert": followDocument{
			FollowerID: follower.String(),
			FolloweeID: followee.String(),
			CreatedAt:  time.Now().UTC(),
		},
	}
	_, err := r.follows.UpdateOne(ctx, filter, update, options.UpdateOne().SetUpsert(true))
	if err != nil {
		// A concurrent upsert may still race into a duplicate key; the edge
		// exists then, which is exactly the desired state.
		if mongo.IsDuplicateKeyError(err) {
			return nil
		}
		r.logger.ErrorContext(ctx, "failed to insert follow edge",
			slog.String("follower_id", follower.String()),
			slog.String("followee_id", followee.String()),
			slog.String("error", err.Error()),
		)
		return HandleMongoError(err, "follow")
	}
	return nil
}

// deleteEdge removes a follow edge; removing an absent edge is a no-op.
func (r *MongoProfileRepository) deleteEdge(ctx context.Context, follower, followee uuid.UUID) error {
	filter := bson.M{
		"follower_id": follower.String(),
		"followee_id": followee.String(),
	}
	_, err := r.follows.DeleteOne(ctx, filter)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to delete follow edge",
			slog.String("follower_id", follower.String()),
			slog.String("followee_id", followee.String()),
			slog.String("error", err.Error()),
		)
		return HandleMongoError(err, "follow")
	}
	return nil
}

func (r *MongoProfileRepository) findUser(ctx context.Context, filter bson.M) (*userDocument, error) {
	var doc userDocument
	err := r.users.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		r.logger.ErrorContext(ctx, "failed to find user for profile",
			slog.String("error", err.Error()),
		)
		return nil, HandleMongoError(err, "profile")
	}
	return &doc, nil
}

// buildProfile assembles the viewer-relative projection. IsFollowing is read
// from the follows collection at call time; an anonymous viewer (zero id)
// skips the lookup and sees false.
func (r *MongoProfileRepository) buildProfile(
	ctx context.Context,
	doc *userDocument,
	viewedBy uuid.UUID,
) (*profiledomain.Profile, error) {
	id, err := uuid.ParseUUID(doc.UserID)
	if err != nil {
		return nil, fmt.Errorf("corrupt user document: %w", err)
	}

	isFollowing := false
	if !viewedBy.IsZero() {
		count, countErr := r.follows.CountDocuments(ctx, bson.M{
			"follower_id": viewedBy.String(),
			"followee_id": doc.UserID,
		})
		if countErr != nil {
			return nil, HandleMongoError(countErr, "follow")
		}
		isFollowing = count > 0
	}

	return &profiledomain.Profile{
		ID:          id,
		Username:    doc.Username,
		Bio:         doc.Bio,
		Image:       doc.Image,
		IsFollowing: isFollowing,
	}, nil
}
