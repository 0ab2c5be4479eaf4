package handlers

import (
	"net/http"

	"bluerobins/middleware"
	"bluerobins/models"
	"bluerobins/services/notes"
	"bluerobins/utils"

	"github.com/gin-gonic/gin"
)

// NoteHandler exposes weekly progress notes.
type NoteHandler struct {
	notes notes.NoteService
}

func NewNoteHandler(svc notes.NoteService) *NoteHandler {
	return &NoteHandler{notes: svc}
}

// Save upserts this week's note for a student. Mentor only.
func (h *NoteHandler) Save(c *gin.Context) {
	id, _ := middleware.Identity(c)

	var input models.ProgressNoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	note, err := h.notes.Save(id, input)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, note)
}

// ListMine returns the caller's notes: authored for mentors, received
// for students.
func (h *NoteHandler) ListMine(c *gin.Context) {
	id, _ := middleware.Identity(c)

	var (
		found []models.ProgressNote
		err   error
	)
	if id.Role == models.RoleMentor {
		found, err = h.notes.ListForMentor(id.UserID)
	} else {
		found, err = h.notes.ListForStudent(id.UserID)
	}
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, found)
}

// ListForStudent returns one student's notes, for parents checking in
// on a linked student account.
func (h *NoteHandler) ListForStudent(c *gin.Context) {
	found, err := h.notes.ListForStudent(c.Param("studentId"))
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, found)
}
