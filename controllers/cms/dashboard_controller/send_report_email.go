package dashboard_controller

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/Sarujan100/best-wishes-final-sub001/config"
	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/Sarujan100/best-wishes-final-sub001/services"
	"github.com/gin-gonic/gin"
)

const (
	defaultReportDays = 30
	maxReportDays     = 366
)

// reportRange turns inclusive YYYY-MM-DD dates into [from, to). Missing dates default to
// the defaultReportDays ending today.
func reportRange(rawFrom, rawTo string, now time.Time) (time.Time, time.Time, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	to := today.AddDate(0, 0, 1)
	if rawTo != "" {
		t, err := time.Parse("2006-01-02", rawTo)
		if err != nil {
			return time.Time{}, time.Time{}, errors.New("to must be a YYYY-MM-DD date")
		}
		to = t.AddDate(0, 0, 1)
	}
	from := to.AddDate(0, 0, -defaultReportDays)
	if rawFrom != "" {
		t, err := time.Parse("2006-01-02", rawFrom)
		if err != nil {
			return time.Time{}, time.Time{}, errors.New("from must be a YYYY-MM-DD date")
		}
		from = t
	}

	if !from.Before(to) {
		return time.Time{}, time.Time{}, errors.New("from must not be after to")
	}
	if to.Sub(from) > maxReportDays*24*time.Hour {
		return time.Time{}, time.Time{}, errors.New("a report covers at most one year")
	}
	return from, to, nil
}

// SendReportEmail godoc
// @Summary Email the sales report
// @Description Builds the sales report for a date range and mails it with a PDF copy attached.
// @Tags Dashboard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body models.ReportEmailRequest true "Recipient and date range"
// @Success 200 {object} models.ApiResponse{data=services.AnalyticsReport}
// @Failure 400 {object} models.ApiResponse
// @Failure 502 {object} models.ApiResponse "Mail provider rejected the message"
// @Failure 503 {object} models.ApiResponse "Email delivery is not configured"
// @Router /dashboard/reports/email [post]
func SendReportEmail(c *gin.Context) {
	var req models.ReportEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, services.ValidationMessages(err)))
		return
	}
	from, to, err := reportRange(req.From, req.To, time.Now())
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	mailer := services.GetMailer()
	if mailer == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, services.ErrMailerUnavailable.Error()))
		return
	}

	ctx, cancel := config.WithCustomTimeout(45 * time.Second)
	defer cancel()

	report, err := services.BuildAnalyticsReport(ctx, from, to)
	if err != nil {
		log.Printf("[dashboard.report] ❌ %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to build report"))
		return
	}
	pdf, err := services.GenerateAnalyticsReportPDF(report)
	if err != nil {
		log.Printf("[dashboard.report] ⚠️ sending without PDF: %v", err)
	}
	if err := mailer.SendAnalyticsReport(ctx, req.Email, report, pdf); err != nil {
		log.Printf("[dashboard.report] ❌ %v", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to send report email"))
		return
	}

	log.Printf("[dashboard.report] ✅ %s sent to %s", report.Period(), req.Email)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Report sent to "+req.Email, report))
}
