package report

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/asistencia-qr/attendance-backend-go/internal/domain/attendance"
	"github.com/asistencia-qr/attendance-backend-go/internal/domain/report"
)

var excelHeaders = []string{
	"DAY",
	"MORNING IN", "MORNING OUT", "MORNING TOTAL",
	"AFTERNOON IN", "AFTERNOON OUT", "AFTERNOON TOTAL",
	"DAY TOTAL", "NORMAL HOURS", "OVERTIME HOURS",
}

// MonthlyExcel implements report.ReportService. One block per employee: a
// merged title row, the header row, one row per calendar day of the month
// (blank cells for missing slots), and a totals row.
func (s *ReportServiceImpl) MonthlyExcel(ctx context.Context, req *report.MonthlyReportRequest) ([]byte, string, error) {
	if err := req.Validate(); err != nil {
		return nil, "", err
	}

	co, err := s.companyRepo.GetByID(ctx, req.CompanyID)
	if err != nil {
		return nil, "", err
	}
	employees, err := s.employeeRepo.GetByCompanyID(ctx, req.CompanyID)
	if err != nil {
		return nil, "", err
	}

	first, last := monthBounds(req.Year, req.Month)
	records, err := s.attendanceRepo.GetByCompanyAndRange(ctx, req.CompanyID, first, last)
	if err != nil {
		return nil, "", err
	}
	byEmployee := groupByEmployee(records)

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Asistencia"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 10},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	totalsStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})

	f.SetColWidth(sheet, "A", "A", 12)
	f.SetColWidth(sheet, "B", "J", 14)

	row := 1
	for _, emp := range employees {
		empRecords := byEmployee[emp.ID]
		byDate := make(map[string]attendance.Attendance, len(empRecords))
		for _, rec := range empRecords {
			byDate[rec.Date.Format("2006-01-02")] = rec
		}

		title := fmt.Sprintf("%s - DNI %s", emp.FullName, emp.DNI)
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), title)
		f.MergeCell(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("J%d", row))
		f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("J%d", row), titleStyle)
		f.SetRowHeight(sheet, row, 22)
		row++

		for col, header := range excelHeaders {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(sheet, cell, header)
		}
		f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("J%d", row), headerStyle)
		row++

		var monthWorked, monthNormal, monthOvertime int
		for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
			f.SetCellValue(sheet, fmt.Sprintf("A%d", row), day.Format("2006-01-02"))

			if rec, ok := byDate[day.Format("2006-01-02")]; ok {
				morning := slotSpanMinutes(rec.MorningIn, rec.MorningOut)
				afternoon := slotSpanMinutes(rec.AfternoonIn, rec.AfternoonOut)

				setClockCell(f, sheet, "B", row, rec.MorningIn)
				setClockCell(f, sheet, "C", row, rec.MorningOut)
				setSpanCell(f, sheet, "D", row, morning)
				setClockCell(f, sheet, "E", row, rec.AfternoonIn)
				setClockCell(f, sheet, "F", row, rec.AfternoonOut)
				setSpanCell(f, sheet, "G", row, afternoon)
				f.SetCellValue(sheet, fmt.Sprintf("H%d", row), minutesToHHMM(rec.WorkedMinutes))
				f.SetCellValue(sheet, fmt.Sprintf("I%d", row), minutesToHHMM(rec.NormalMinutes))
				f.SetCellValue(sheet, fmt.Sprintf("J%d", row), minutesToHHMM(rec.OvertimeMinutes))

				monthWorked += rec.WorkedMinutes
				monthNormal += rec.NormalMinutes
				monthOvertime += rec.OvertimeMinutes
			}
			row++
		}

		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "TOTAL")
		f.SetCellValue(sheet, fmt.Sprintf("H%d", row), minutesToHHMM(monthWorked))
		f.SetCellValue(sheet, fmt.Sprintf("I%d", row), minutesToHHMM(monthNormal))
		f.SetCellValue(sheet, fmt.Sprintf("J%d", row), minutesToHHMM(monthOvertime))
		f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("J%d", row), totalsStyle)
		row += 2
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to render workbook: %w", err)
	}

	filename := fmt.Sprintf("asistencia_%s_%04d-%02d.xlsx", co.Code, req.Year, req.Month)
	return buf.Bytes(), filename, nil
}

func slotSpanMinutes(in, out *time.Time) int {
	if in == nil || out == nil {
		return 0
	}
	minutes := int(out.Sub(*in).Minutes())
	if minutes < 0 {
		return 0
	}
	return minutes
}

func setClockCell(f *excelize.File, sheet, col string, row int, t *time.Time) {
	if t == nil {
		return
	}
	f.SetCellValue(sheet, fmt.Sprintf("%s%d", col, row), t.Format("15:04:05"))
}

func setSpanCell(f *excelize.File, sheet, col string, row int, minutes int) {
	if minutes == 0 {
		return
	}
	f.SetCellValue(sheet, fmt.Sprintf("%s%d", col, row), minutesToHHMM(minutes))
}
