package user

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"

	"github.com/google/uuid"
	"github.com/saulo-duarte/dailyquiz-lambda/internal/config"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

var ErrUserNotFound = errors.New("user not found")

type googleUserInfo struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

type UserService interface {
	LoginWithGoogle(ctx context.Context, code string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
}

type userService struct {
	repo        UserRepository
	oauthConfig *oauth2.Config
}

func NewService(repo UserRepository) UserService {
	oauthConfig := &oauth2.Config{
		ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		RedirectURL:  os.Getenv("GOOGLE_REDIRECT_URL"),
		Scopes:       []string{"openid", "email", "profile"},
		Endpoint:     google.Endpoint,
	}
	return &userService{repo: repo, oauthConfig: oauthConfig}
}

// LoginWithGoogle exchanges the OAuth code, loads the Google profile and
// creates or updates the matching user row. Tokens are stored encrypted.
func (s *userService) LoginWithGoogle(ctx context.Context, code string) (*User, error) {
	log := config.WithContext(ctx)

	token, err := s.oauthConfig.Exchange(ctx, code)
	if err != nil {
		log.WithError(err).Error("Failed to exchange Google OAuth code")
		return nil, err
	}

	info, err := s.fetchUserInfo(ctx, token)
	if err != nil {
		log.WithError(err).Error("Failed to fetch Google user info")
		return nil, err
	}

	encryptedAccess, err := config.Encrypt(token.AccessToken)
	if err != nil {
		return nil, err
	}
	encryptedRefresh := ""
	if token.RefreshToken != "" {
		if encryptedRefresh, err = config.Encrypt(token.RefreshToken); err != nil {
			return nil, err
		}
	}

	u, err := s.repo.GetByEmail(info.Email)
	if err != nil {
		return nil, err
	}

	if u == nil {
		u = &User{
			ID:                         uuid.New(),
			Email:                      info.Email,
			Name:                       info.Name,
			AvatarURL:                  info.Picture,
			EncryptedGoogleAccessToken: encryptedAccess,
		}
		if encryptedRefresh != "" {
			u.EncryptedGoogleRefreshToken = encryptedRefresh
		}
		if err := s.repo.Create(u); err != nil {
			log.WithError(err).Error("Failed to create user")
			return nil, err
		}
		log.WithField("user_id", u.ID.String()).Info("New user created")
		return u, nil
	}

	u.Name = info.Name
	u.AvatarURL = info.Picture
	u.EncryptedGoogleAccessToken = encryptedAccess
	if encryptedRefresh != "" {
		u.EncryptedGoogleRefreshToken = encryptedRefresh
	}
	if err := s.repo.Update(u); err != nil {
		log.WithError(err).Error("Failed to update user after login")
		return nil, err
	}
	return u, nil
}

func (s *userService) fetchUserInfo(ctx context.Context, token *oauth2.Token) (*googleUserInfo, error) {
	client := s.oauthConfig.Client(ctx, token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New("google userinfo request failed")
	}

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, err
	}
	if info.Email == "" {
		return nil, errors.New("google userinfo returned no email")
	}
	return &info, nil
}

func (s *userService) GetByID(ctx context.Context, id string) (*User, error) {
	u, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}
