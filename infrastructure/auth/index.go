package auth

import (
	"errors"
	"fmt"
	"os"
	"time"

	"certverify.io/infrastructure/cryptography"
	"certverify.io/infrastructure/database/repository/cache"
	"certverify.io/infrastructure/logger"
	"github.com/golang-jwt/jwt/v4"
)

var ErrInvalidToken = errors.New("invalid token used")

func SessionKey(userID string) string {
	return fmt.Sprintf("%s-session", userID)
}

func GenerateAuthToken(claimsData ClaimsData) (*string, error) {
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iss":       os.Getenv("JWT_ISSUER"),
		"userID":    claimsData.UserID,
		"exp":       claimsData.ExpiresAt,
		"email":     claimsData.Email,
		"name":      claimsData.Name,
		"role":      claimsData.Role,
		"iat":       claimsData.IssuedAt,
		"deviceID":  claimsData.DeviceID,
		"userAgent": claimsData.UserAgent,
	}).SignedString([]byte(os.Getenv("JWT_SIGNING_KEY")))
	if err != nil {
		return nil, err
	}
	return &tokenString, nil
}

func DecodeAuthToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(os.Getenv("JWT_SIGNING_KEY")), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrSignatureInvalid) {
			return nil, errors.New("invalid token signature used")
		}
		logger.Error("error decoding jwt", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return nil, err
	}
	if !token.Valid {
		logger.Error(ErrInvalidToken.Error())
		return nil, ErrInvalidToken
	}
	return token, nil
}

// ClaimsFromToken reads the claims written by GenerateAuthToken.
func ClaimsFromToken(token *jwt.Token) (*ClaimsData, error) {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	str := func(key string) string {
		v, _ := claims[key].(string)
		return v
	}
	num := func(key string) int64 {
		v, _ := claims[key].(float64)
		return int64(v)
	}
	data := &ClaimsData{
		Issuer:    str("iss"),
		UserID:    str("userID"),
		Name:      str("name"),
		Email:     str("email"),
		Role:      str("role"),
		ExpiresAt: num("exp"),
		IssuedAt:  num("iat"),
		UserAgent: str("userAgent"),
		DeviceID:  str("deviceID"),
	}
	if data.UserID == "" {
		return nil, ErrInvalidToken
	}
	return data, nil
}

// StartSession stores a hash of the token so a single live session exists per user.
func StartSession(userID string, token string, ttl time.Duration) error {
	hashedToken, err := cryptography.CryptoHahser.HashString(token, nil)
	if err != nil {
		return err
	}
	if !cache.Cache.CreateEntry(SessionKey(userID), string(hashedToken), ttl) {
		return errors.New("could not store session")
	}
	return nil
}

// SessionIsActive reports whether token is the live session for userID.
func SessionIsActive(userID string, token string) bool {
	hash := cache.Cache.FindOne(SessionKey(userID))
	if hash == nil {
		return false
	}
	return cryptography.CryptoHahser.VerifyHashData(*hash, token)
}

func SignOutUser(userID string, reason string) {
	logger.Info("user signout initiated", logger.LoggerOptions{
		Key:  "reason",
		Data: reason,
	})
	deleted := cache.Cache.DeleteOne(SessionKey(userID))
	if !deleted {
		logger.Error("failed to sign out user", logger.LoggerOptions{
			Key:  "userID",
			Data: userID,
		})
	}
}
