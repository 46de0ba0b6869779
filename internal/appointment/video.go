package appointment

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// videoTokenTTL bounds how long a join link stays valid.
const videoTokenTTL = 2 * time.Hour

// VideoClaims are the JWT claims embedded in a video call join token.
type VideoClaims struct {
	Room string `json:"room"`
	jwt.RegisteredClaims
}

// NewVideoToken signs a join token for an appointment's video room. The room
// name is the appointment ID so both participants land in the same call.
func NewVideoToken(secret, appointmentID, userID string, now time.Time) (string, error) {
	claims := VideoClaims{
		Room: appointmentID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(videoTokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign video token: %w", err)
	}
	return signed, nil
}

// ParseVideoToken validates a join token and returns its claims.
func ParseVideoToken(secret, tokenString string) (*VideoClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &VideoClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid video token: %w", err)
	}

	claims, ok := token.Claims.(*VideoClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid video token claims")
	}
	return claims, nil
}
