package demo

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"metroems/internal/app/errors"
)

const (
	demoRole = "admin"
	demoOrg  = "metro"
)

// Claims defines the demo token claims
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
	Role     string `json:"role"`
	Org      string `json:"org"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token    string `json:"token"`
	Role     string `json:"role"`
	Org      string `json:"org"`
	Username string `json:"username"`
}

// credentials is the single operator accepted when a demo password is configured
type credentials struct {
	username string
	hash     []byte
}

func newCredentials(username, password string) (*credentials, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return &credentials{username: username}, fmt.Errorf("failed to hash password: %w", err)
	}

	return &credentials{username: username, hash: hash}, nil
}

// verify fails closed when the hash could not be created
func (c *credentials) verify(username, password string) error {
	if c.hash == nil || username != c.username {
		return errors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(c.hash, []byte(password)); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrInvalidCredentials, err)
	}

	return nil
}

// IssueToken signs a token for the given operator
func IssueToken(secret, username string, now time.Time, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Username: username,
		Role:     demoRole,
		Org:      demoOrg,
	})

	return token.SignedString([]byte(secret))
}

// ParseToken verifies a demo token and returns its claims
func ParseToken(secret, raw string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(raw, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.ErrInvalidToken
	}

	return claims, nil
}

func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "username is required"})
		return
	}

	if s.credentials != nil {
		if err := s.credentials.verify(req.Username, req.Password); err != nil {
			s.log.Info().Msgf("Rejected login for '%s'", req.Username)
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Invalid credentials"})

			return
		}
	}

	token, err := IssueToken(s.secret, req.Username, s.now(), s.tokenTTL)
	if err != nil {
		s.log.Error().Err(err).Msg("Failed to sign token")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to issue token"})

		return
	}

	s.log.Info().Msgf("Issued token for '%s'", req.Username)

	c.JSON(http.StatusOK, loginResponse{
		Token:    token,
		Role:     demoRole,
		Org:      demoOrg,
		Username: req.Username,
	})
}

func (s *Server) authMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "missing Authorization header"})
		return
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "invalid Authorization header format"})
		return
	}

	claims, err := ParseToken(s.secret, parts[1])
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "invalid or expired token"})
		return
	}

	c.Set("operator", claims.Username)
	c.Next()
}
