package devserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/filebox/filebox/internal/common"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type authResponse struct {
	AccessToken string       `json:"accessToken"`
	User        userResponse `json:"user"`
}

func (s *Server) handleRegister(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Malformed request body")
		return
	}

	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		respondError(c, http.StatusBadRequest, "A valid email is required")
		return
	}
	if len(req.Password) < 6 {
		respondError(c, http.StatusBadRequest, "Password must be at least 6 characters")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Hashing failed")
		return
	}

	u, err := s.store.createUser(req.Email, hash)
	if err != nil {
		if err == common.ErrAlreadyExists {
			respondError(c, http.StatusConflict, "Email already registered")
			return
		}
		respondError(c, http.StatusInternalServerError, "Could not create user")
		return
	}

	s.issueToken(c, u, http.StatusCreated)
}

func (s *Server) handleLogin(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Malformed request body")
		return
	}

	u, err := s.store.userByEmail(strings.TrimSpace(strings.ToLower(req.Email)))
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(req.Password)) != nil {
		respondError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	s.issueToken(c, u, http.StatusOK)
}

func (s *Server) issueToken(c *gin.Context, u *user, status int) {
	token, err := generateToken(u.ID, []byte(s.cfg.JWTSecret), s.cfg.TokenTTL)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Could not issue token")
		return
	}

	respond(c, status, authResponse{
		AccessToken: token,
		User:        userResponse{ID: u.ID, Email: u.Email},
	})
}

func (s *Server) handleCurrentUser(c *gin.Context) {
	u, err := s.store.userByID(c.GetString(userIDKey))
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Invalid token")
		return
	}
	respond(c, http.StatusOK, userResponse{ID: u.ID, Email: u.Email})
}

func (s *Server) handleHealth(c *gin.Context) {
	respond(c, http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
