package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/PetSymptomTracker/internal/domain/apperror"
	"github.com/mikiasgoitom/PetSymptomTracker/internal/domain/entity"
	"github.com/mikiasgoitom/PetSymptomTracker/internal/handler/http/dto"
)

const (
	currentUserKey = "currentUser"
	accessTokenKey = "accessToken"
)

// Authenticator resolves a bearer token to the current state of its account.
type Authenticator interface {
	Authenticate(ctx context.Context, accessToken string) (*entity.User, error)
}

// RequireAuth rejects requests without a valid bearer token. The caller is
// reloaded on every request, so a disabled or locked account is cut off
// before its token expires.
func RequireAuth(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "missing or malformed bearer token"})
			return
		}

		user, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			if apperror.KindOf(err) == apperror.KindInternal {
				_ = c.Error(err)
				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{Error: apperror.ErrInternal.Message})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})
			return
		}

		c.Set(currentUserKey, user)
		c.Set(accessTokenKey, token)
		c.Next()
	}
}

// CurrentUser returns the caller stored by RequireAuth.
func CurrentUser(c *gin.Context) (*entity.User, bool) {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*entity.User)
	return user, ok && user != nil
}

// AccessToken returns the raw bearer token stored by RequireAuth.
func AccessToken(c *gin.Context) string {
	return c.GetString(accessTokenKey)
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
