package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/raghul07102002/holofolio/internal/content"
	"github.com/raghul07102002/holofolio/internal/models"
	"github.com/raghul07102002/holofolio/internal/nav"
)

func (s *Server) currentView(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"view": s.nav.Current()})
}

func (s *Server) activate(c *gin.Context) {
	s.nav.Activate()
	c.JSON(http.StatusOK, gin.H{"view": s.nav.Current()})
}

func (s *Server) openView(c *gin.Context) {
	v := nav.View(c.Param("view"))
	if !v.IsDetail() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown view: " + c.Param("view")})
		return
	}
	s.nav.Open(v)
	c.JSON(http.StatusOK, gin.H{"view": s.nav.Current()})
}

func (s *Server) closeView(c *gin.Context) {
	s.nav.Close()
	c.JSON(http.StatusOK, gin.H{"view": s.nav.Current()})
}

func (s *Server) logout(c *gin.Context) {
	s.store.Logout()
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

func (s *Server) menu(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"cards": content.MenuCards()})
}

func (s *Server) projects(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sections": content.Projects()})
}

func (s *Server) learnings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sections": content.Learnings()})
}

func (s *Server) getProfile(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.Profile())
}

// profileRequest carries a partial profile edit plus the admin password.
type profileRequest struct {
	Password string  `json:"password"`
	Name     *string `json:"name"`
	Role     *string `json:"role"`
	Bio      *string `json:"bio"`
	Email    *string `json:"email"`
	Linkedin *string `json:"linkedin"`
	Github   *string `json:"github"`
}

func (s *Server) updateProfile(c *gin.Context) {
	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if !s.authenticate(c, req.Password) {
		return
	}

	u := models.ProfileUpdate{
		Name:     req.Name,
		Role:     req.Role,
		Bio:      req.Bio,
		Email:    req.Email,
		Linkedin: req.Linkedin,
		Github:   req.Github,
	}
	if err := s.store.UpdateProfile(c.Request.Context(), u); err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully!",
		"profile": s.store.Profile(),
	})
}
