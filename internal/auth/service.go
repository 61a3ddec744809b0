package auth

import (
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/frahmantamala/hr-management/internal"
	companyDatamodel "github.com/frahmantamala/hr-management/internal/core/datamodel/company"
	userDatamodel "github.com/frahmantamala/hr-management/internal/core/datamodel/user"
)

// Service is the main auth service with dependencies
type Service struct {
	repo           RepositoryAPI
	tokenGenerator TokenGeneratorAPI
	bcryptCost     int
	logger         *slog.Logger
}

// NewService creates a new auth service
func NewService(repo RepositoryAPI, tokenGen TokenGeneratorAPI, bcryptCost int, logger *slog.Logger) *Service {
	if bcryptCost <= 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		repo:           repo,
		tokenGenerator: tokenGen,
		bcryptCost:     bcryptCost,
		logger:         logger,
	}
}

// Register creates the HR user, finding or creating the company by name.
func (s *Service) Register(dto RegisterDTO) (*UserResponse, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	taken, err := s.repo.UsernameOrEmailTaken(dto.Username, dto.Email)
	if err != nil {
		s.logger.Error("register: user existence check failed", "error", err)
		return nil, internal.NewInternalError("could not check existing users", err)
	}
	if taken {
		return nil, internal.ErrCredentialsTaken
	}

	company, err := s.repo.GetCompanyByName(dto.CompanyName)
	if err != nil {
		s.logger.Error("register: company lookup failed", "company", dto.CompanyName, "error", err)
		return nil, internal.NewInternalError("could not look up company", err)
	}
	if company == nil {
		company = &companyDatamodel.Company{Name: dto.CompanyName}
		if err := s.repo.CreateCompany(company); err != nil {
			s.logger.Error("register: company create failed", "company", dto.CompanyName, "error", err)
			return nil, internal.NewInternalError("could not create company", err)
		}
	}

	hash, err := HashPassword(dto.Password, s.bcryptCost)
	if err != nil {
		s.logger.Error("register: password hashing failed", "error", err)
		return nil, internal.NewInternalError("could not hash password", err)
	}

	newUser := &userDatamodel.User{
		Username:     dto.Username,
		Email:        dto.Email,
		PasswordHash: hash,
		CompanyID:    company.ID,
	}
	if err := s.repo.CreateUser(newUser); err != nil {
		s.logger.Error("register: user create failed", "username", dto.Username, "error", err)
		return nil, internal.NewInternalError("could not create user", err)
	}

	s.logger.Info("registered user", "username", newUser.Username, "company_id", newUser.CompanyID)

	return &UserResponse{
		ID:          newUser.ID,
		Username:    newUser.Username,
		Email:       newUser.Email,
		CompanyID:   newUser.CompanyID,
		CompanyName: company.Name,
	}, nil
}

// Authenticate validates credentials and returns a bearer token carrying
// the username as subject and the company id as tenant claim.
func (s *Service) Authenticate(dto LoginDTO) (TokenResponse, error) {
	if err := dto.Validate(); err != nil {
		return TokenResponse{}, err
	}

	user, err := s.repo.GetUserByUsername(dto.Username)
	if err != nil {
		return TokenResponse{}, internal.ErrInvalidCredentials
	}

	if !VerifyPassword(user.PasswordHash, dto.Password) {
		return TokenResponse{}, internal.ErrInvalidCredentials
	}

	accessToken, err := s.tokenGenerator.GenerateAccessToken(user.Username, user.CompanyID)
	if err != nil {
		s.logger.Error("authenticate: token generation failed", "username", user.Username, "error", err)
		return TokenResponse{}, internal.NewInternalError("could not issue token", err)
	}

	return TokenResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
	}, nil
}

// ValidateAccessToken validates access token and returns claims
func (s *Service) ValidateAccessToken(tokenString string) (*Claims, error) {
	return s.tokenGenerator.ValidateToken(tokenString)
}

// GetUserByUsername resolves the token subject to a live user record.
// A valid token for a deleted user resolves to nothing.
func (s *Service) GetUserByUsername(username string) (*User, error) {
	u, err := s.repo.GetUserByUsername(username)
	if err != nil {
		return nil, err
	}
	return &User{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CompanyID: u.CompanyID,
	}, nil
}

// Profile returns the caller's profile with the company name resolved.
func (s *Service) Profile(userID int64) (*UserResponse, error) {
	u, err := s.repo.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	companyName, err := s.repo.GetCompanyName(u.CompanyID)
	if err != nil {
		s.logger.Warn("profile: company name lookup failed", "company_id", u.CompanyID, "error", err)
	}

	return &UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		CompanyID:   u.CompanyID,
		CompanyName: companyName,
	}, nil
}
