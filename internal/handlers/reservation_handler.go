package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/jihedaidrive/razor-spark-book/internal/domain/reservation"
	"github.com/jihedaidrive/razor-spark-book/internal/httperr"
	"github.com/jihedaidrive/razor-spark-book/internal/httpresp"
	"github.com/jihedaidrive/razor-spark-book/internal/middleware"
	ucReservation "github.com/jihedaidrive/razor-spark-book/internal/usecase/reservation"
)

// ======================================================
// HANDLER
// ======================================================

type ReservationHandler struct {
	createUC *ucReservation.CreateReservation
	listUC   *ucReservation.ListReservations
	statusUC *ucReservation.UpdateReservationStatus
	deleteUC *ucReservation.DeleteReservation
}

func NewReservationHandler(
	createUC *ucReservation.CreateReservation,
	listUC *ucReservation.ListReservations,
	statusUC *ucReservation.UpdateReservationStatus,
	deleteUC *ucReservation.DeleteReservation,
) *ReservationHandler {
	return &ReservationHandler{
		createUC: createUC,
		listUC:   listUC,
		statusUC: statusUC,
		deleteUC: deleteUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateReservationRequest struct {
	BarberName string   `json:"barber_name" binding:"required"`
	Date       string   `json:"date" binding:"required"`
	StartTime  string   `json:"start_time" binding:"required"`
	ServiceID  string   `json:"service_id"`
	ServiceIDs []string `json:"service_ids"`
	Notes      string   `json:"notes"`
	// end_time is intentionally not bound: it is always recomputed.
}

type UpdateReservationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// ERROR MAPPING
// ======================================================

var businessStatus = map[string]int{
	"unauthenticated":       401,
	"not_authorized":        403,
	"reservation_not_found": 404,
	"time_conflict":         409,
	"invalid_transition":    409,
}

var businessMessage = map[string]string{
	"invalid_barber":        "Unknown barber.",
	"past_date":             "The date is in the past.",
	"no_service_specified":  "At least one service is required.",
	"invalid_service":       "One or more services could not be found.",
	"service_inactive":      "One or more services are no longer offered.",
	"degenerate_time_range": "The reservation has no duration.",
	"time_past_midnight":    "The reservation does not fit in the day.",
	"time_conflict":         "The slot is already taken.",
	"invalid_transition":    "The status change is not allowed.",
	"reservation_not_found": "Reservation not found.",
	"not_authorized":        "Not authorized.",
	"unauthenticated":       "Authentication required.",
}

func writeReservationError(c *gin.Context, err error) {
	code := httperr.BusinessCode(err)
	if code == "" {
		httperr.Internal(c, "internal_error", "Something went wrong.")
		return
	}

	status, ok := businessStatus[code]
	if !ok {
		status = 400
	}
	msg, ok := businessMessage[code]
	if !ok {
		msg = "Invalid request."
	}
	httperr.Write(c, status, code, msg)
}

// ======================================================
// CREATE
// ======================================================

func (h *ReservationHandler) Create(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	res, err := h.createUC.Execute(c.Request.Context(), ucReservation.CreateReservationInput{
		BarberName: req.BarberName,
		Date:       req.Date,
		StartTime:  req.StartTime,
		ServiceID:  req.ServiceID,
		ServiceIDs: req.ServiceIDs,
		Notes:      req.Notes,
	}, middleware.ActorFromContext(c))
	if err != nil {
		writeReservationError(c, err)
		return
	}

	httpresp.Created(c, res)
}

// ======================================================
// LIST
// ======================================================

func (h *ReservationHandler) List(c *gin.Context) {
	filter := domain.ListFilter{
		BarberName: c.Query("barber_name"),
		ClientID:   c.Query("client_id"),
		Date:       c.Query("date"),
		Status:     c.Query("status"),
	}

	reservations, err := h.listUC.Execute(
		c.Request.Context(),
		filter,
		middleware.ActorFromContext(c),
	)
	if err != nil {
		writeReservationError(c, err)
		return
	}

	httpresp.List(c, reservations)
}

// ======================================================
// STATUS
// ======================================================

func (h *ReservationHandler) UpdateStatus(c *gin.Context) {
	var req UpdateReservationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	res, err := h.statusUC.Execute(
		c.Request.Context(),
		c.Param("id"),
		req.Status,
		middleware.ActorFromContext(c),
	)
	if err != nil {
		writeReservationError(c, err)
		return
	}

	httpresp.OK(c, res)
}

// ======================================================
// DELETE
// ======================================================

func (h *ReservationHandler) Delete(c *gin.Context) {
	err := h.deleteUC.Execute(
		c.Request.Context(),
		c.Param("id"),
		middleware.ActorFromContext(c),
	)
	if err != nil {
		writeReservationError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"deleted": true})
}
