package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"go-hotel/internal/booking"
	"go-hotel/internal/service"
)

// ExportBookings streams an xlsx report of every booking to the admin.
func ExportBookings(bookings *service.BookingService, logger *zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		all, err := bookings.All()
		if err != nil {
			c.String(http.StatusInternalServerError, "export failed")
			return
		}

		f, err := bookingsWorkbook(all)
		if err != nil {
			logger.Error().Err(err).Msg("build bookings workbook")
			c.String(http.StatusInternalServerError, "export failed")
			return
		}
		defer f.Close()

		fileName := fmt.Sprintf("bookings_%s.xlsx", time.Now().Format("2006-01-02"))
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		if err := f.Write(c.Writer); err != nil {
			logger.Error().Err(err).Msg("write bookings workbook")
		}
	}
}

func bookingsWorkbook(all []booking.Booking) (*excelize.File, error) {
	f := excelize.NewFile()

	sheetName := "Bookings"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headers := []string{"ID", "User", "Room", "Check-in", "Check-out", "Status"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheetName, cell, h)
	}
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	_ = f.SetCellStyle(sheetName, "A1", "F1", style)

	for row, b := range all {
		values := []interface{}{
			b.ID,
			b.User.Username,
			b.Room.Type,
			time.Time(b.CheckIn).Format("2006-01-02"),
			time.Time(b.CheckOut).Format("2006-01-02"),
			b.Status,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			_ = f.SetCellValue(sheetName, cell, v)
		}
	}
	_ = f.SetColWidth(sheetName, "A", "F", 16)
	_ = f.DeleteSheet("Sheet1")
	return f, nil
}
