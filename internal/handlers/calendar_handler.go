package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/jihedaidrive/razor-spark-book/internal/httperr"
	"github.com/jihedaidrive/razor-spark-book/internal/httpresp"
	ucReservation "github.com/jihedaidrive/razor-spark-book/internal/usecase/reservation"
)

type CalendarHandler struct {
	calendarUC *ucReservation.GetCalendar
}

func NewCalendarHandler(calendarUC *ucReservation.GetCalendar) *CalendarHandler {
	return &CalendarHandler{calendarUC: calendarUC}
}

// Day serves the booking grid for one barber and date. The grid is
// recomputed on every request; clients poll or refetch on their own cadence.
func (h *CalendarHandler) Day(c *gin.Context) {
	barberName := c.Query("barber_name")
	date := c.Query("date")

	if barberName == "" || date == "" {
		httperr.BadRequest(c, "missing_barber_or_date", "barber_name and date are required.")
		return
	}

	cells, err := h.calendarUC.Execute(c.Request.Context(), barberName, date)
	if err != nil {
		writeReservationError(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"barber_name": barberName,
		"date":        date,
		"slots":       cells,
	})
}
