package auth_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/frahmantamala/hr-management/internal"
	"github.com/frahmantamala/hr-management/internal/auth"
	authPostgres "github.com/frahmantamala/hr-management/internal/auth/postgres"
	companyDatamodel "github.com/frahmantamala/hr-management/internal/core/datamodel/company"
	userDatamodel "github.com/frahmantamala/hr-management/internal/core/datamodel/user"
)

var _ = Describe("Auth Handler Integration", func() {
	var (
		db      *gorm.DB
		handler *auth.Handler
	)

	registerBody := `{
		"username": "alice",
		"email": "alice@acme.example",
		"password": "pw123",
		"company_name": "Acme"
	}`

	register := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
		w := httptest.NewRecorder()
		handler.Register(w, req)
		return w
	}

	login := func(username, password string) *httptest.ResponseRecorder {
		form := url.Values{}
		form.Set("username", username)
		form.Set("password", password)

		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		handler.Login(w, req)
		return w
	}

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&companyDatamodel.Company{}, &userDatamodel.User{})
		Expect(err).NotTo(HaveOccurred())

		repo := authPostgres.NewRepository(db)
		generator := auth.NewJWTTokenGenerator(internal.SecurityConfig{
			JWTSecret:           "test-secret",
			AccessTokenDuration: time.Hour,
		})
		slogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service := auth.NewService(repo, generator, bcrypt.MinCost, slogger)
		handler = auth.NewHandler(service)
	})

	Describe("POST /auth/register", func() {
		It("creates the user and its company", func() {
			w := register(registerBody)

			Expect(w.Code).To(Equal(http.StatusOK))

			var user auth.UserResponse
			Expect(json.NewDecoder(w.Body).Decode(&user)).To(Succeed())
			Expect(user.Username).To(Equal("alice"))
			Expect(user.CompanyName).To(Equal("Acme"))
			Expect(user.CompanyID).NotTo(BeZero())
		})

		It("answers 400 for a duplicate username", func() {
			Expect(register(registerBody).Code).To(Equal(http.StatusOK))

			w := register(registerBody)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(w.Body.String()).To(ContainSubstring("Username or email already exists"))
		})

		It("answers 400 for a malformed body", func() {
			Expect(register(`{`).Code).To(Equal(http.StatusBadRequest))
		})

		It("answers 400 when required fields are missing", func() {
			w := register(`{"username":"alice"}`)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("POST /auth/login", func() {
		BeforeEach(func() {
			Expect(register(registerBody).Code).To(Equal(http.StatusOK))
		})

		It("answers a bearer token for valid form credentials", func() {
			w := login("alice", "pw123")

			Expect(w.Code).To(Equal(http.StatusOK))

			var tokens auth.TokenResponse
			Expect(json.NewDecoder(w.Body).Decode(&tokens)).To(Succeed())
			Expect(tokens.TokenType).To(Equal("bearer"))
			Expect(tokens.AccessToken).NotTo(BeEmpty())
		})

		It("answers 401 with a challenge header for a wrong password", func() {
			w := login("alice", "wrong")

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(w.Header().Get("WWW-Authenticate")).To(Equal("Bearer"))
			Expect(w.Body.String()).To(ContainSubstring("Incorrect username or password"))
		})

		It("answers 401 for an unknown user", func() {
			Expect(login("mallory", "pw123").Code).To(Equal(http.StatusUnauthorized))
		})
	})

	Describe("AuthMiddleware", func() {
		var protected http.Handler

		BeforeEach(func() {
			Expect(register(registerBody).Code).To(Equal(http.StatusOK))

			protected = handler.AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				user, ok := auth.UserFromContext(r.Context())
				Expect(ok).To(BeTrue())
				Expect(user.Username).To(Equal("alice"))
				w.WriteHeader(http.StatusOK)
			}))
		})

		It("passes a valid bearer token through with the user attached", func() {
			loginResp := login("alice", "pw123")
			var tokens auth.TokenResponse
			Expect(json.NewDecoder(loginResp.Body).Decode(&tokens)).To(Succeed())

			req := httptest.NewRequest(http.MethodGet, "/api/departments", nil)
			req.Header.Set("Authorization", "Bearer "+tokens.AccessToken)
			w := httptest.NewRecorder()

			protected.ServeHTTP(w, req)
			Expect(w.Code).To(Equal(http.StatusOK))
		})

		It("answers 401 without a token", func() {
			req := httptest.NewRequest(http.MethodGet, "/api/departments", nil)
			w := httptest.NewRecorder()

			protected.ServeHTTP(w, req)
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(w.Header().Get("WWW-Authenticate")).To(Equal("Bearer"))
		})

		It("answers 401 for a garbage token", func() {
			req := httptest.NewRequest(http.MethodGet, "/api/departments", nil)
			req.Header.Set("Authorization", "Bearer not-a-token")
			w := httptest.NewRecorder()

			protected.ServeHTTP(w, req)
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})

		It("answers 401 when the token subject no longer exists", func() {
			generator := auth.NewJWTTokenGenerator(internal.SecurityConfig{
				JWTSecret:           "test-secret",
				AccessTokenDuration: time.Hour,
			})
			token, err := generator.GenerateAccessToken("ghost", 1)
			Expect(err).NotTo(HaveOccurred())

			req := httptest.NewRequest(http.MethodGet, "/api/departments", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			w := httptest.NewRecorder()

			protected.ServeHTTP(w, req)
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})
	})
})
