package services

import (
	"errors"
	"fmt"
	"time"

	"gin-shop/config"
	"gin-shop/models"
	"gin-shop/repositories"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Signup(email string, password string) (*models.User, error)
	Login(email string, password string) (*string, error)
	GetUserFromToken(tokenString string) (*models.User, error)
	Logout(tokenString string) error
}

type AuthService struct {
	repository      repositories.IAuthRepository
	tokenRepository repositories.ITokenRepository
	cfg             *config.Config
}

func NewAuthService(repository repositories.IAuthRepository, tokenRepository repositories.ITokenRepository, cfg *config.Config) IAuthService {
	return &AuthService{
		repository:      repository,
		tokenRepository: tokenRepository,
		cfg:             cfg,
	}
}

func (s *AuthService) Signup(email string, password string) (*models.User, error) {
	existing, err := s.repository.FindUser(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:    email,
		Password: string(hashedPassword),
	}
	return s.repository.CreateUser(user)
}

// Login collapses unknown email and a wrong password into the same error so
// the response does not reveal which one it was.
func (s *AuthService) Login(email string, password string) (*string, error) {
	foundUser, err := s.repository.FindUser(email)
	if err != nil {
		return nil, err
	}
	if foundUser == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.CreateToken(foundUser)
}

func (s *AuthService) CreateToken(user *models.User) (*string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": user.Email,
		"exp": time.Now().Add(s.cfg.TokenTTL).Unix(),
	})

	tokenString, err := token.SignedString([]byte(s.cfg.SecretKey))
	if err != nil {
		return nil, err
	}
	return &tokenString, nil
}

func (s *AuthService) parseToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SecretKey), nil
	})
}

// GetUserFromToken maps every failure mode (bad signature, malformed claims,
// expiry, blacklist, deleted user) to a plain error; callers answer 401
// without learning which check failed.
func (s *AuthService) GetUserFromToken(tokenString string) (*models.User, error) {
	token, err := s.parseToken(tokenString)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}

	exp, ok := claims["exp"].(float64)
	if !ok || float64(time.Now().Unix()) > exp {
		return nil, jwt.ErrTokenExpired
	}

	isBlacklisted, err := s.tokenRepository.IsTokenBlacklisted(tokenString)
	if err != nil {
		return nil, err
	}
	if isBlacklisted {
		return nil, errors.New("token is blacklisted")
	}

	subject, ok := claims["sub"].(string)
	if !ok {
		return nil, errors.New("invalid subject")
	}

	user, err := s.repository.FindUser(subject)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user no longer exists")
	}
	return user, nil
}

func (s *AuthService) Logout(tokenString string) error {
	token, err := s.parseToken(tokenString)
	if err != nil {
		return err
	}

	expiresAt := time.Now().Add(s.cfg.TokenTTL).Unix()
	if claims, ok := token.Claims.(jwt.MapClaims); ok {
		if exp, ok := claims["exp"].(float64); ok {
			expiresAt = int64(exp)
		}
	}

	return s.tokenRepository.AddBlacklistedToken(tokenString, expiresAt)
}
