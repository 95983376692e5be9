package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const (
	OfficerIDKey contextKey = "officer_id"
	RoleKey      contextKey = "role"
)

// JWTMiddleware validates the bearer token issued by the external auth
// system and injects the authenticated officer id and role into the
// request context. This service never issues or refreshes tokens.
func JWTMiddleware(secretKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "authorization header missing", http.StatusUnauthorized)
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				http.Error(w, "authorization header format must be Bearer {token}", http.StatusUnauthorized)
				return
			}
			tokenString := parts[1]

			token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method")
				}
				return []byte(secretKey), nil
			})

			if err != nil || !token.Valid {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				http.Error(w, "invalid token claims", http.StatusUnauthorized)
				return
			}

			rawOfficerID, ok := claims["officer_id"]
			if !ok {
				http.Error(w, "officer_id missing in token claims", http.StatusUnauthorized)
				return
			}

			var officerID int64
			switch v := rawOfficerID.(type) {
			case float64:
				officerID = int64(v)
			case string:
				officerID, err = strconv.ParseInt(v, 10, 64)
				if err != nil {
					http.Error(w, "invalid officer_id format in token claims", http.StatusUnauthorized)
					return
				}
			default:
				http.Error(w, "invalid officer_id type in token claims", http.StatusUnauthorized)
				return
			}

			role, _ := claims["role"].(string)

			ctx := context.WithValue(r.Context(), OfficerIDKey, officerID)
			ctx = context.WithValue(ctx, RoleKey, role)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole gates a subtree on the role claim.
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if got, ok := GetRole(r.Context()); !ok || got != role {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func GetOfficerID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(OfficerIDKey).(int64)
	return id, ok
}

func GetRole(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(RoleKey).(string)
	return role, ok
}
