package adminreview

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/spcool555/leav-managment-fe/internal/gateway"
)

const exportSheet = "Attendance"

var exportHeaders = []string{
	"Employee ID",
	"Employee Name",
	"Date",
	"Check In",
	"Check Out",
	"Office Time",
	"Status",
	"Location",
}

// BuildAttendanceWorkbook merender log absensi yang sudah di-fetch menjadi
// workbook xlsx di sisi portal, sebagai alternatif passthrough export backend.
func BuildAttendanceWorkbook(logs []gateway.AttendanceLog) (*bytes.Buffer, string, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, "", err
	}

	for i, h := range exportHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, "", err
		}
		if err := f.SetCellValue(exportSheet, cell, h); err != nil {
			return nil, "", err
		}
	}

	for r, log := range logs {
		values := []string{
			log.EmployeeID,
			log.EmployeeName,
			log.Date,
			log.CheckInTime,
			log.CheckOutTime,
			log.OfficeTime,
			log.Status,
			log.Location,
		}
		for cIdx, v := range values {
			cell, err := excelize.CoordinatesToCellName(cIdx+1, r+2)
			if err != nil {
				return nil, "", err
			}
			if err := f.SetCellValue(exportSheet, cell, v); err != nil {
				return nil, "", err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}
	name := fmt.Sprintf("attendance_%s.xlsx", time.Now().Format("20060102"))
	return buf, name, nil
}
