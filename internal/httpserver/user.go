package httpserver

import (
	"errors"
	"net/http"

	"storefront/internal/service/auth"
	usersvc "storefront/internal/service/user"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// loginHandler authenticates a credential pair. On success the token
// travels back in the Authorization response header with an empty
// body; failures are a bare 401 with no hint about which field was
// wrong.
func loginHandler(svc authService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.Status(http.StatusUnauthorized)
			return
		}
		token, err := svc.Login(c.Request.Context(), req.Username, req.Password)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidCredentials) {
				c.Status(http.StatusUnauthorized)
				return
			}
			c.Status(http.StatusInternalServerError)
			return
		}
		c.Header("Authorization", bearerPrefix+token)
		c.Status(http.StatusOK)
	}
}

func createUserHandler(svc userService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req usersvc.SignupInput
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		u, err := svc.Signup(c.Request.Context(), req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, u)
	}
}

func getUserByUsernameHandler(svc userService) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, err := svc.GetByUsername(c.Request.Context(), c.Param("username"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, u)
	}
}

func getUserByIDHandler(svc userService) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, err := svc.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, u)
	}
}
