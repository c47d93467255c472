package jwt

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/eduforum-dev/eduforum/internal/domain"
	internal_errors "github.com/eduforum-dev/eduforum/internal/errors"
)

// JwtService verifies tokens issued by the external auth system and extracts
// the principal they assert. NewToken exists for tests and local tooling;
// production tokens come from outside.
type JwtService interface {
	NewToken(principal domain.Principal) (string, error)
	DecodePrincipal(jwtStr string) (*domain.Principal, error)
}

type Jwt struct {
	secretKey string
	ttl       time.Duration
}

func New(secretKey string, ttl time.Duration) JwtService {
	return &Jwt{secretKey, ttl}
}

func (j *Jwt) NewToken(principal domain.Principal) (string, error) {
	claims := jwt.MapClaims{}
	claims["uid"] = principal.Id
	claims["name"] = principal.Name
	claims["role"] = string(principal.Role)
	claims["exp"] = time.Now().Add(j.ttl).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		log.Print(err.Error())
		return "", errors.New("Can't create token")
	}

	return tokenString, nil
}

func (j *Jwt) DecodePrincipal(jwtStr string) (*domain.Principal, error) {
	token, err := jwt.Parse(jwtStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, &internal_errors.ErrorWithStatusCode{Message: fmt.Sprintf("Unexpected signing method: %v", token.Header["alg"]), StatusCode: http.StatusUnauthorized}
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return nil, &internal_errors.ErrorWithStatusCode{Message: "Invalid token signature", StatusCode: http.StatusUnauthorized}
	}
	if !token.Valid {
		return nil, &internal_errors.ErrorWithStatusCode{Message: "Invalid access token", StatusCode: http.StatusUnauthorized}
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, &internal_errors.ErrorWithStatusCode{Message: "Invalid token claims", StatusCode: http.StatusUnauthorized}
	}

	uid, _ := claims["uid"].(string)
	name, _ := claims["name"].(string)
	roleStr, _ := claims["role"].(string)
	role := domain.Role(roleStr)
	if uid == "" || !role.Valid() {
		return nil, &internal_errors.ErrorWithStatusCode{Message: "Invalid token claims", StatusCode: http.StatusUnauthorized}
	}

	return &domain.Principal{Id: uid, Name: name, Role: role}, nil
}
