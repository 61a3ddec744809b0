package auth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/frahmantamala/hr-management/internal"
	companyDatamodel "github.com/frahmantamala/hr-management/internal/core/datamodel/company"
	userDatamodel "github.com/frahmantamala/hr-management/internal/core/datamodel/user"
)

type ServiceAPI interface {
	Register(dto RegisterDTO) (*UserResponse, error)
	Authenticate(dto LoginDTO) (TokenResponse, error)
	ValidateAccessToken(tokenString string) (*Claims, error)
	GetUserByUsername(username string) (*User, error)
	Profile(userID int64) (*UserResponse, error)
}

type RepositoryAPI interface {
	GetUserByUsername(username string) (*userDatamodel.User, error)
	GetUserByID(userID int64) (*userDatamodel.User, error)
	UsernameOrEmailTaken(username, email string) (bool, error)
	GetCompanyByName(name string) (*companyDatamodel.Company, error)
	CreateCompany(c *companyDatamodel.Company) error
	GetCompanyName(companyID int64) (string, error)
	CreateUser(u *userDatamodel.User) error
}

type TokenGeneratorAPI interface {
	GenerateAccessToken(username string, companyID int64) (token string, err error)
	ValidateToken(tokenString string) (*Claims, error)
}

// User is the authenticated principal attached to the request context.
// CompanyID is the tenancy filter for everything downstream.
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	CompanyID int64  `json:"company_id"`
}

// Claims is the token payload: the subject is the username, the tenant
// travels as the company_id claim.
type Claims struct {
	CompanyID int64 `json:"company_id"`
	jwt.RegisteredClaims
}

type JWTTokenGenerator struct {
	Secret         []byte
	AccessTokenTTL time.Duration
}

var ErrUserNotFound = errors.New("user not found")

type ctxKey string

const ContextUserKey ctxKey = "currentUser"

func UserFromContext(ctx context.Context) (*User, bool) {
	u, ok := ctx.Value(ContextUserKey).(*User)
	return u, ok
}

func ContextWithUser(ctx context.Context, u *User) context.Context {
	return context.WithValue(ctx, ContextUserKey, u)
}

// bcrypt ignores everything past 72 bytes, and newer versions reject
// longer inputs outright. Truncation is pinned here so hashing and
// verification always see the same bytes.
const maxPasswordBytes = 72

func truncatePassword(password string) []byte {
	b := []byte(password)
	if len(b) > maxPasswordBytes {
		b = b[:maxPasswordBytes]
	}
	return b
}

func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(truncatePassword(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether password matches the stored hash. A
// malformed stored hash counts as a mismatch, never a failure.
func VerifyPassword(hashedPassword, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), truncatePassword(password)) == nil
}

// NewJWTTokenGenerator builds the token generator from injected security
// config; there is no file-level secret.
func NewJWTTokenGenerator(cfg internal.SecurityConfig) *JWTTokenGenerator {
	ttl := cfg.AccessTokenDuration
	if ttl <= 0 {
		ttl = 60 * time.Minute
	}
	return &JWTTokenGenerator{
		Secret:         []byte(cfg.JWTSecret),
		AccessTokenTTL: ttl,
	}
}

// GenerateAccessToken mints an HS256 token for username under companyID.
func (j *JWTTokenGenerator) GenerateAccessToken(username string, companyID int64) (string, error) {
	now := time.Now()

	claims := &Claims{
		CompanyID: companyID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.AccessTokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.Secret)
}

// ValidateToken verifies signature and expiry and requires a subject.
// There is no revocation list: a stolen token stays valid until expiry
// unless the secret is rotated.
func (j *JWTTokenGenerator) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, internal.ErrInvalidToken
		}
		return j.Secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, internal.ErrTokenExpired
		}
		return nil, internal.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, internal.ErrInvalidToken
	}

	if claims.Subject == "" {
		return nil, internal.ErrInvalidToken
	}

	return claims, nil
}
