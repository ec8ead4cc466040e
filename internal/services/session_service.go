package services

import (
	"fmt"
	"time"

	"github.com/arscholarpoint/scholarpoint-server/internal/config"
	"github.com/arscholarpoint/scholarpoint-server/internal/dto"
	"github.com/golang-jwt/jwt/v5"
)

// SessionService issues signed, time-bounded session credentials. The claim
// is caller-supplied and not verified against stored identities; the server
// only vouches for the signature and expiry.
type SessionService struct {
	cfg *config.Config
}

func NewSessionService(cfg *config.Config) *SessionService {
	return &SessionService{cfg: cfg}
}

// IssueSession signs an HS256 token carrying the identity claim. Expiry is
// the single configured constant (see config.SessionExpiry).
func (s *SessionService) IssueSession(req *dto.SessionRequest) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"email": req.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(s.cfg.SessionExpiry).Unix(),
	}
	if req.Name != "" {
		claims["name"] = req.Name
	}
	if req.PhotoURL != "" {
		claims["photoURL"] = req.PhotoURL
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}
