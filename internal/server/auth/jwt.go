package auth

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/dmitrijs2005/lockbox/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateToken mints a signed HS256 token for the given subject carrying
// the permissions as an array claim (the multi-claim Auth0 encoding).
func GenerateToken(subject string, permissions []string, secretKey []byte, validityDuration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub": subject,
		"exp": jwt.NewNumericDate(time.Now().Add(validityDuration)),
	}
	if len(permissions) > 0 {
		claims[common.PermissionsClaimType] = permissions
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParsePrincipal validates tokenString against secretKey and converts its
// claim set into a Principal.
//
// Claim values that are JSON arrays become one Claim per element, so both
// Auth0 permission encodings (array of values, or a single comma-joined
// value) survive the conversion unchanged. Expired tokens yield
// common.ErrTokenExpired; any other validation failure, including a missing
// subject, yields common.ErrInvalidToken.
func ParsePrincipal(tokenString string, secretKey []byte) (*Principal, error) {
	claims := jwt.MapClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}
	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return nil, common.ErrInvalidToken
	}

	return &Principal{Subject: subject, Claims: claimList(claims)}, nil
}

// claimList flattens a decoded claim map into an ordered claim multimap.
// Map iteration order is not stable, so claim types are sorted; elements of
// an array claim keep their array order.
func claimList(claims jwt.MapClaims) []Claim {
	types := make([]string, 0, len(claims))
	for t := range claims {
		types = append(types, t)
	}
	sort.Strings(types)

	var list []Claim
	for _, t := range types {
		switch v := claims[t].(type) {
		case []interface{}:
			for _, item := range v {
				list = append(list, Claim{Type: t, Value: fmt.Sprintf("%v", item)})
			}
		default:
			list = append(list, Claim{Type: t, Value: fmt.Sprintf("%v", v)})
		}
	}
	return list
}
