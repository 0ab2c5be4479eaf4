package handlers

import (
	"net/http"

	"bluerobins/middleware"
	"bluerobins/models"
	"bluerobins/services/mentor"
	"bluerobins/utils"

	"github.com/gin-gonic/gin"
)

// MentorHandler exposes mentor profiles, availability and project
// listings.
type MentorHandler struct {
	mentors mentor.MentorService
}

func NewMentorHandler(svc mentor.MentorService) *MentorHandler {
	return &MentorHandler{mentors: svc}
}

func (h *MentorHandler) List(c *gin.Context) {
	profiles, err := h.mentors.ListMentors()
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profiles)
}

func (h *MentorHandler) Get(c *gin.Context) {
	profile, err := h.mentors.GetProfile(c.Param("mentorId"))
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// SaveProfile upserts the caller's own mentor profile.
func (h *MentorHandler) SaveProfile(c *gin.Context) {
	id, _ := middleware.Identity(c)

	var profile models.MentorProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	saved, err := h.mentors.SaveProfile(id, profile)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

// SaveAvailability replaces the caller's weekly availability.
func (h *MentorHandler) SaveAvailability(c *gin.Context) {
	id, _ := middleware.Identity(c)

	var availability models.WeeklyAvailability
	if err := c.ShouldBindJSON(&availability); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.mentors.SaveAvailability(id, availability); err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "saved"})
}

func (h *MentorHandler) ListAllProjects(c *gin.Context) {
	projects, err := h.mentors.ListAllProjects()
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (h *MentorHandler) ListProjects(c *gin.Context) {
	projects, err := h.mentors.ListProjects(c.Param("mentorId"))
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (h *MentorHandler) CreateProject(c *gin.Context) {
	id, _ := middleware.Identity(c)

	var input models.ProjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	project, err := h.mentors.CreateProject(id, input)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, project)
}

func (h *MentorHandler) UpdateProject(c *gin.Context) {
	id, _ := middleware.Identity(c)

	var input models.ProjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	project, err := h.mentors.UpdateProject(id, c.Param("projectId"), input)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *MentorHandler) DeleteProject(c *gin.Context) {
	id, _ := middleware.Identity(c)

	if err := h.mentors.DeleteProject(id, c.Param("projectId")); err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
