package api

import (
	"context"
	"errors"
	"net/http"

	domwr "vetclinic-scheduling/internal/domain/waitingroom"
	reqdto "vetclinic-scheduling/internal/handler/dto/request"
	resdto "vetclinic-scheduling/internal/handler/dto/response"
	"vetclinic-scheduling/internal/handler/middleware"
	"vetclinic-scheduling/internal/usecase/commands"
	"vetclinic-scheduling/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type WaitingRoomHandler struct {
	commands commands.WaitingRoomCommands
	queries  queries.WaitingRoomQueries
}

func NewWaitingRoomHandler(cmds commands.WaitingRoomCommands, qrys queries.WaitingRoomQueries) *WaitingRoomHandler {
	return &WaitingRoomHandler{
		commands: cmds,
		queries:  qrys,
	}
}

// CheckIn opens a waiting room entry for a scheduled appointment.
func (h *WaitingRoomHandler) CheckIn(c *gin.Context) {
	appointmentID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req reqdto.CheckInRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	input, err := req.ToInput(appointmentID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid arrival mode",
		})
		return
	}

	id, err := h.commands.CreateFromAppointment(c.Request.Context(), input)
	if err != nil {
		h.respondCommandError(c, err)
		return
	}
	c.Header("Location", "/api/waiting-room/entries/"+id.String())
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

func (h *WaitingRoomHandler) WalkIn(c *gin.Context) {
	var req reqdto.WalkInRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	input, err := req.ToInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid arrival mode",
		})
		return
	}

	id, err := h.commands.CreateWalkIn(c.Request.Context(), input)
	if err != nil {
		h.respondCommandError(c, err)
		return
	}
	c.Header("Location", "/api/waiting-room/entries/"+id.String())
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

func (h *WaitingRoomHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		respondQueryError(c, err, "Waiting room entry not found")
		return
	}
	c.JSON(http.StatusOK, resdto.FromWaitingRoomEntryView(view))
}

// TriageBoard returns a clinic's active entries in call order.
func (h *WaitingRoomHandler) TriageBoard(c *gin.Context) {
	clinicID, ok := parseIDParam(c)
	if !ok {
		return
	}

	rows, err := h.queries.TriageBoard(c.Request.Context(), clinicID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.TriageBoardRowResponse, len(rows))
	for i, row := range rows {
		response[i] = resdto.FromTriageBoardRow(row)
	}
	c.JSON(http.StatusOK, response)
}

func (h *WaitingRoomHandler) Call(c *gin.Context) {
	h.actorTransition(c, h.commands.Call)
}

func (h *WaitingRoomHandler) StartService(c *gin.Context) {
	h.actorTransition(c, h.commands.StartService)
}

// EnsureInService is invoked by the clinical-care context when a
// consultation starts; the id parameter is the appointment id.
func (h *WaitingRoomHandler) EnsureInService(c *gin.Context) {
	h.actorTransition(c, h.commands.EnsureInService)
}

func (h *WaitingRoomHandler) Close(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	if err := h.commands.Close(c.Request.Context(), id, &userID); err != nil {
		h.respondCommandError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *WaitingRoomHandler) Reassess(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req reqdto.ReassessRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.commands.Reassess(c.Request.Context(), id, req.Priority, req.TriageNotes); err != nil {
		h.respondCommandError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *WaitingRoomHandler) actorTransition(c *gin.Context, fn func(ctx context.Context, entryID, byUserID uuid.UUID) error) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	if err := fn(c.Request.Context(), id, userID); err != nil {
		h.respondCommandError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *WaitingRoomHandler) respondCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrEntryNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Waiting room entry not found",
		})
	case errors.Is(err, commands.ErrAppointmentNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Appointment not found",
		})
	case errors.Is(err, commands.ErrUnknownOwner):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Owner not found",
		})
	case errors.Is(err, commands.ErrUnknownAnimal):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Animal not found",
		})
	case errors.Is(err, commands.ErrDuplicateActiveEntry):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Appointment already has an active waiting room entry",
		})
	case errors.Is(err, domwr.ErrEntryClosed):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Waiting room entry is closed",
		})
	case errors.Is(err, domwr.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Entry status does not allow this transition",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
