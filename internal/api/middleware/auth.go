package middleware

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	apierrors "github.com/RonenBerka/TWNG-APP-sub000/internal/api/shared/errors"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/logger"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	AUTH_SUBJECT_KEY contextKey = "auth_subject"
	AUTH_ROLE_KEY    contextKey = "auth_role"
	JWT_CLAIMS_KEY   contextKey = "jwt_claims"
)

const (
	// DefaultRoleClaim is the token claim carrying the user's role
	DefaultRoleClaim = "role"
	// DefaultAdminRole is the role value granted access to admin routes
	DefaultAdminRole = "admin"
)

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string // RSA public key in PEM format
	RoleClaim    string
	AdminRole    string
}

// AuthResult holds the result of authentication
type AuthResult struct {
	Success bool
	Claims  jwt.MapClaims
	Subject string
	Role    string
	Error   error
}

// Authenticator verifies bearer tokens against a parsed RSA public key
type Authenticator struct {
	publicKey *rsa.PublicKey
	roleClaim string
	adminRole string
}

// NewAuthenticator parses the configured public key once for all requests
func NewAuthenticator(cfg AuthConfig) (*Authenticator, error) {
	if cfg.JWTPublicKey == "" {
		return nil, errors.New("JWT public key not configured")
	}

	publicKey, err := parseRSAPublicKey(cfg.JWTPublicKey)
	if err != nil {
		return nil, fmt.Errorf("failed to parse RSA public key: %w", err)
	}

	roleClaim := cfg.RoleClaim
	if roleClaim == "" {
		roleClaim = DefaultRoleClaim
	}
	adminRole := cfg.AdminRole
	if adminRole == "" {
		adminRole = DefaultAdminRole
	}

	return &Authenticator{
		publicKey: publicKey,
		roleClaim: roleClaim,
		adminRole: adminRole,
	}, nil
}

// Authenticate validates the Authorization header and returns the authentication result
func (a *Authenticator) Authenticate(authHeader string) AuthResult {
	result := AuthResult{
		Success: false,
	}

	if authHeader == "" {
		result.Error = errors.New("missing Authorization header")
		return result
	}

	// Parse the authorization header
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		result.Error = errors.New("invalid Authorization header format")
		return result
	}

	if !strings.EqualFold(parts[0], "bearer") {
		result.Error = fmt.Errorf("unsupported authorization type: %s", parts[0])
		return result
	}

	claims, err := a.validateJWT(parts[1])
	if err != nil {
		result.Error = err
		return result
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		result.Error = errors.New("token has no subject")
		return result
	}

	result.Success = true
	result.Claims = claims
	result.Subject = subject
	if role, ok := claims[a.roleClaim].(string); ok {
		result.Role = role
	}

	return result
}

// Auth returns a gin middleware that requires a valid bearer token
func (a *Authenticator) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		result := a.Authenticate(authHeader)

		if !result.Success {
			logger.WarnCtx(c.Request.Context(), "Authentication failed",
				zap.Error(result.Error),
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
			)
			apiErr := apierrors.NewUnauthorizedError("Authentication failed", result.Error.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, apiErr)
			return
		}

		// Store authentication info in context
		c.Set(string(JWT_CLAIMS_KEY), result.Claims)
		c.Set(string(AUTH_SUBJECT_KEY), result.Subject)
		c.Set(string(AUTH_ROLE_KEY), result.Role)
		logger.DebugCtx(c.Request.Context(), "JWT authentication successful",
			zap.String("path", c.Request.URL.Path),
			zap.String("subject", result.Subject),
			zap.String("role", result.Role),
		)

		c.Next()
	}
}

// RequireAdmin returns a gin middleware that rejects authenticated users without the admin role.
// It must run after Auth.
func (a *Authenticator) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if Role(c) != a.adminRole {
			logger.WarnCtx(c.Request.Context(), "Admin access denied",
				zap.String("path", c.Request.URL.Path),
				zap.String("subject", Subject(c)),
			)
			c.AbortWithStatusJSON(http.StatusForbidden, apierrors.NewForbiddenError("Admin role required"))
			return
		}
		c.Next()
	}
}

// Subject returns the authenticated user id, empty when unauthenticated
func Subject(c *gin.Context) string {
	return c.GetString(string(AUTH_SUBJECT_KEY))
}

// Role returns the authenticated user's role, empty when absent
func Role(c *gin.Context) string {
	return c.GetString(string(AUTH_ROLE_KEY))
}

// validateJWT validates a JWT token with RSA signature and returns claims.
// Expiry and not-before are enforced by the parser.
func (a *Authenticator) validateJWT(tokenString string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Validate the signing method is RSA
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.publicKey, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// parseRSAPublicKey parses an RSA public key from PEM format
func parseRSAPublicKey(publicKeyPEM string) (*rsa.PublicKey, error) {
	block, _ := pem.Decode([]byte(publicKeyPEM))
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing public key")
	}

	// Try parsing as PKIX (most common format)
	pub, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		// Try parsing as PKCS1 format
		return x509.ParsePKCS1PublicKey(block.Bytes)
	}

	rsaKey, ok := pub.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("public key is not an RSA key")
	}

	return rsaKey, nil
}
