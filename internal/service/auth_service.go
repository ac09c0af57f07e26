package service

import (
	"errors"

	"condo-portal/internal/model"
	"condo-portal/internal/pkg"
	"condo-portal/internal/repository/postgres"
	"condo-portal/internal/repository/redis"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	users       *postgres.UserRepository
	communities *postgres.CommunityRepository
	sessions    *redis.SessionRepository
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{
		users:       &postgres.UserRepository{DB: db},
		communities: &postgres.CommunityRepository{DB: db},
		sessions:    &redis.SessionRepository{},
	}
}

type RegisterInput struct {
	Email       string
	Password    string
	Name        string
	Flat        string
	AddressRef  string
	AddressLine string
	City        string
	PostalCode  string
}

// Register creates a pending resident profile. The first registration for an
// unknown address reference also creates the community row; every profile
// still starts pending (admin bootstrap is the create-admin command).
func (s *AuthService) Register(in RegisterInput) error {
	if in.Email == "" || in.Password == "" || in.Name == "" {
		return errors.New("email, password and name required")
	}
	if in.AddressRef == "" {
		return errors.New("address reference required")
	}

	name := in.AddressLine
	if name == "" {
		name = in.AddressRef
	}
	community, err := s.communities.FindOrCreateByAddressRef(&model.Community{
		Name:        name,
		AddressRef:  in.AddressRef,
		AddressLine: in.AddressLine,
		City:        in.City,
		PostalCode:  in.PostalCode,
	})
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &model.User{
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         pkg.SanitizeText(in.Name),
		Flat:         pkg.SanitizeText(in.Flat),
		Role:         model.RoleResident,
		Status:       model.StatusPending,
		CommunityID:  &community.ID,
	}
	return s.users.Create(user)
}

func (s *AuthService) Login(email, password string) (*pkg.Pair, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, errors.New("user not found")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, errors.New("invalid password")
	}

	token, err := pkg.GeneratePair(user.ID)
	if err != nil {
		return nil, err
	}
	if err = s.sessions.AddUserToken(user.ID, token.AccessToken); err != nil {
		return nil, err
	}
	return token, nil
}

func (s *AuthService) Logout(usrID uint64) error {
	return s.sessions.DeleteUserToken(usrID)
}

func (s *AuthService) Refresh(refreshToken string) (*pkg.Pair, error) {
	return pkg.Refresh(refreshToken)
}
