// Package session is the authentication surface: signup, sign-in,
// sign-out and token verification. Identity is a signed HS256 bearer
// token; sign-out pushes the token id onto a Redis revocation list
// that expires with the token itself.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/rueidis"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"golang.org/x/crypto/bcrypt"

	"eventplanner/internal/repository"
	"eventplanner/model"
)

type Service struct {
	log    *slog.Logger
	users  *mongo.Collection
	redis  rueidis.Client
	secret []byte
	ttl    time.Duration
}

func New(log *slog.Logger, db *mongo.Database, redis rueidis.Client, secret string, ttl time.Duration) *Service {
	return &Service{
		log:    log,
		users:  db.Collection("users"),
		redis:  redis,
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Identity is the verified principal attached to a request.
type Identity struct {
	UID  string
	Role string
	JTI  string
	Exp  time.Time
}

// SignUp creates the profile document and signs the caller in. The
// role is fixed at signup; there is no promotion flow.
func (s *Service) SignUp(ctx context.Context, name, email, password, role string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	email = strings.TrimSpace(strings.ToLower(email))
	id, err := repository.InsertUser(ctx, s.users, model.UserProfile{
		Name:         strings.TrimSpace(name),
		Email:        email,
		Role:         role,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		return "", err
	}

	s.log.Info("user signed up", "uid", id.Hex(), "role", role)
	return s.issue(id.Hex(), role)
}

// SignIn verifies credentials and returns a fresh token.
func (s *Service) SignIn(ctx context.Context, email, password string) (string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	user, err := repository.FetchUserByEmail(ctx, s.users, email)
	if err != nil {
		return "", model.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", model.ErrInvalidCredentials
	}
	return s.issue(user.ID.Hex(), user.Role)
}

// SignOut revokes the presented token. The revocation marker carries
// the token's own remaining lifetime, so the list cleans itself up.
func (s *Service) SignOut(ctx context.Context, ident Identity) error {
	ttl := time.Until(ident.Exp)
	if ttl <= 0 {
		return nil
	}
	cmd := s.redis.B().Set().Key(revokedKey(ident.JTI)).Value("1").Ex(ttl).Build()
	return s.redis.Do(ctx, cmd).Error()
}

// Verify parses and validates a bearer token, rejecting revoked ones.
func (s *Service) Verify(ctx context.Context, tokenStr string) (Identity, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims,
		func(t *jwt.Token) (any, error) {
			if t.Method != jwt.SigningMethodHS256 {
				return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
			}
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil || !token.Valid {
		return Identity{}, fmt.Errorf("invalid token")
	}

	ident := Identity{}
	ident.UID, _ = claims["sub"].(string)
	ident.Role, _ = claims["role"].(string)
	ident.JTI, _ = claims["jti"].(string)
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		ident.Exp = exp.Time
	}
	if ident.UID == "" {
		return Identity{}, fmt.Errorf("missing sub claim")
	}

	revoked, err := s.redis.Do(ctx, s.redis.B().Exists().Key(revokedKey(ident.JTI)).Build()).AsInt64()
	if err != nil {
		return Identity{}, err
	}
	if revoked > 0 {
		return Identity{}, fmt.Errorf("token revoked")
	}
	return ident, nil
}

// Profile loads the caller's profile document.
func (s *Service) Profile(ctx context.Context, uid string) (model.UserProfile, error) {
	oid, err := bson.ObjectIDFromHex(uid)
	if err != nil {
		return model.UserProfile{}, model.ErrUserNotFound
	}
	return repository.FetchUserByID(ctx, s.users, oid)
}

func (s *Service) issue(uid, role string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  uid,
		"role": role,
		"jti":  uuid.NewString(),
		"iat":  now.Unix(),
		"exp":  now.Add(s.ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func revokedKey(jti string) string {
	return "session:revoked:" + jti
}
