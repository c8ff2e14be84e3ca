package mongodb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/stkrizh/conduit/internal/domain/errs"
	userdomain "github.com/stkrizh/conduit/internal/domain/user"
	"github.com/stkrizh/conduit/internal/domain/uuid"
)

// PasswordComparer checks a plaintext password against a stored hash.
// Declared on the consumer side; implemented by auth.BcryptHasher.
type PasswordComparer interface {
	Compare(hash, password string) bool
}

// userDocument is the MongoDB representation of a user account.
type userDocument struct {
	UserID       string `bson:"user_id"`
	Username     string `bson:"username"`
	Email        string `bson:"email"`
	Bio          string `bson:"bio"`
	Image        string `bson:"image"`
	PasswordHash string `bson:"password_hash"`
	baseDocument `bson:",inline"`
}

// MongoUserRepository implements the user application Repository port.
type MongoUserRepository struct {
	collection *mongo.Collection
	passwords  PasswordComparer
	logger     *slog.Logger
}

// UserRepoOption configures MongoUserRepository.
type UserRepoOption func(*MongoUserRepository)

// WithUserRepoLogger sets the logger for the user repository.
func WithUserRepoLogger(logger *slog.Logger) UserRepoOption {
	return func(r *MongoUserRepository) {
		r.logger = logger
	}
}

// NewMongoUserRepository creates a new MongoDB user repository.
func NewMongoUserRepository(
	collection *mongo.Collection,
	passwords PasswordComparer,
	opts ...UserRepoOption,
) *MongoUserRepository {
	r := &MongoUserRepository{
		collection: collection,
		passwords:  passwords,
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// EnsureIndexes creates the unique username and email indexes.
func (r *MongoUserRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create user indexes: %w", err)
	}
	return nil
}

// FindByCredentials finds the account matching email and password.
// The bcrypt comparison runs even though the document lookup already matched
// the email; whether the email exists or the password is wrong, the caller
// sees the same (nil, nil).
func (r *MongoUserRepository) FindByCredentials(
	ctx context.Context,
	email, password string,
) (*userdomain.User, error) {
	doc, err := r.findOne(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, nil
	}

	if !r.passwords.Compare(doc.PasswordHash, password) {
		return nil, nil
	}

	return r.documentToUser(doc)
}

// FindByID finds an account by id, or (nil, nil) when absent.
func (r *MongoUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*userdomain.User, error) {
	if id.IsZero() {
		return nil, errs.ErrInvalidInput
	}

	doc, err := r.findOne(ctx, bson.M{"user_id": id.String()})
	if err != nil || doc == nil {
		return nil, err
	}
	return r.documentToUser(doc)
}

// FindByEmail finds an account by email, or (nil, nil) when absent.
func (r *MongoUserRepository) FindByEmail(ctx context.Context, email string) (*userdomain.User, error) {
	doc, err := r.findOne(ctx, bson.M{"email": email})
	if err != nil || doc == nil {
		return nil, err
	}
	return r.documentToUser(doc)
}

// FindByUsername finds an account by username, or (nil, nil) when absent.
func (r *MongoUserRepository) FindByUsername(ctx context.Context, username string) (*userdomain.User, error) {
	doc, err := r.findOne(ctx, bson.M{"username": username})
	if err != nil || doc == nil {
		return nil, err
	}
	return r.documentToUser(doc)
}

// Save persists a new or updated account.
func (r *MongoUserRepository) Save(ctx context.Context, u *userdomain.User) error {
	doc := userDocument{
		UserID:       u.ID().String(),
		Username:     u.Username(),
		Email:        u.Email(),
		Bio:          u.Bio(),
		Image:        u.Image(),
		PasswordHash: u.PasswordHash(),
		baseDocument: baseDocument{
			CreatedAt: u.CreatedAt(),
			UpdatedAt: u.UpdatedAt(),
		},
	}

	filter := bson.M{"user_id": doc.UserID}
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, filter, doc, opts)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to save user",
			slog.String("user_id", doc.UserID),
			slog.String("error", err.Error()),
		)
		return HandleMongoError(err, "user")
	}

	return nil
}

func (r *MongoUserRepository) findOne(ctx context.Context, filter bson.M) (*userDocument, error) {
	var doc userDocument
	err := r.collection.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		r.logger.ErrorContext(ctx, "failed to find user",
			slog.String("error", err.Error()),
		)
		return nil, HandleMongoError(err, "user")
	}
	return &doc, nil
}

func (r *MongoUserRepository) documentToUser(doc *userDocument) (*userdomain.User, error) {
	id, err := uuid.ParseUUID(doc.UserID)
	if err != nil {
		return nil, fmt.Errorf("corrupt user document: %w", err)
	}

	return userdomain.Reconstruct(
		id,
		doc.Username,
		doc.Email,
		doc.Bio,
		doc.Image,
		doc.PasswordHash,
		doc.CreatedAt,
		doc.UpdatedAt,
	), nil
}
