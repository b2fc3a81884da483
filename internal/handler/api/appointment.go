package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	domappt "vetclinic-scheduling/internal/domain/appointment"
	reqdto "vetclinic-scheduling/internal/handler/dto/request"
	resdto "vetclinic-scheduling/internal/handler/dto/response"
	"vetclinic-scheduling/internal/usecase/commands"
	"vetclinic-scheduling/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AppointmentHandler struct {
	commands commands.AppointmentCommands
	queries  queries.AppointmentQueries
}

func NewAppointmentHandler(cmds commands.AppointmentCommands, qrys queries.AppointmentQueries) *AppointmentHandler {
	return &AppointmentHandler{
		commands: cmds,
		queries:  qrys,
	}
}

// Schedule books a new appointment and returns its id with a Location header.
func (h *AppointmentHandler) Schedule(c *gin.Context) {
	var req reqdto.ScheduleAppointmentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.commands.Schedule(c.Request.Context(), req.ToInput())
	if err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.Header("Location", "/api/appointments/"+id.String())
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		respondQueryError(c, err, "Appointment not found")
		return
	}

	c.JSON(http.StatusOK, resdto.FromAppointmentView(view))
}

// List returns a clinic's appointments within a [from, to) window.
func (h *AppointmentHandler) List(c *gin.Context) {
	clinicID, err := uuid.Parse(c.Query("clinic_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid clinic_id format",
		})
		return
	}

	from, err := time.Parse(time.RFC3339, c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid from timestamp",
		})
		return
	}
	to, err := time.Parse(time.RFC3339, c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid to timestamp",
		})
		return
	}

	views, err := h.queries.ListByClinicBetween(c.Request.Context(), clinicID, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.AppointmentResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromAppointmentView(v)
	}
	c.JSON(http.StatusOK, response)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	h.transition(c, h.commands.Cancel)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	h.transition(c, h.commands.Complete)
}

func (h *AppointmentHandler) MarkNoShow(c *gin.Context) {
	h.transition(c, h.commands.MarkNoShow)
}

func (h *AppointmentHandler) StartService(c *gin.Context) {
	h.transition(c, h.commands.StartService)
}

func (h *AppointmentHandler) transition(c *gin.Context, fn func(ctx context.Context, id uuid.UUID) error) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := fn(c.Request.Context(), id); err != nil {
		h.respondCommandError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AppointmentHandler) respondCommandError(c *gin.Context, err error) {
	switch {
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
	case errors.Is(err, domappt.ErrInvalidDuration):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Duration must be positive",
		})
	case errors.Is(err, commands.ErrPractitionerNotEligible):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Practitioner is not eligible for this clinic",
		})
	case errors.Is(err, commands.ErrPractitionerDoubleBooked):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Practitioner is already booked for this slot",
		})
	case errors.Is(err, commands.ErrPractitionerAgendaBusy):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Practitioner agenda is busy, retry shortly",
		})
	case errors.Is(err, domappt.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Appointment status does not allow this transition",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
