package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/junyi-w/patrol/internal/model"
)

const (
	inspectionSheet = "Inspection"
	opticalSheet    = "Optical"
)

var inspectionHeader = []any{
	"LogFileName", "NetworkZone", "Vendor", "Device", "SN",
	"CPU_Usage(%)", "CPU_Max(%)", "MemUsed(KB)", "MemUsage(%)",
	"OpticalPorts", "ReadError",
}

var opticalHeader = []any{
	"LogFileName", "NetworkZone", "Vendor", "Device", "Port",
	"TX_Power(dBm)", "RX_Power(dBm)", "Status",
}

// Excel accumulates device records and writes a two-sheet workbook on Close:
// one row per device on the inspection sheet, one row per port reading on the
// optical sheet.
type Excel struct {
	path    string
	records []model.DeviceRecord
}

// NewExcel creates an Excel sink that will write to path.
func NewExcel(path string) *Excel {
	return &Excel{path: path}
}

// Write buffers one record. The workbook is laid out and saved in Close so
// row order always matches input order.
func (x *Excel) Write(rec model.DeviceRecord) error {
	x.records = append(x.records, rec)
	return nil
}

// Close lays out both sheets and saves the workbook.
func (x *Excel) Close() error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName(f.GetSheetName(0), inspectionSheet)
	if err := f.SetSheetRow(inspectionSheet, "A1", &inspectionHeader); err != nil {
		return fmt.Errorf("report: write header: %w", err)
	}
	for i, rec := range x.records {
		row := []any{
			rec.SourceFile, string(rec.Zone), string(rec.Vendor), rec.Device, rec.Serial,
			optFloat(rec.Hardware.CPUUsagePercent), optFloat(rec.Hardware.CPUMaxPercent),
			optInt(rec.Hardware.MemoryUsedKB), optFloat(rec.Hardware.MemoryUsagePercent),
			len(rec.Optical), rec.ReadErr,
		}
		if err := x.setRow(f, inspectionSheet, i+2, row); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet(opticalSheet); err != nil {
		return fmt.Errorf("report: add sheet: %w", err)
	}
	if err := f.SetSheetRow(opticalSheet, "A1", &opticalHeader); err != nil {
		return fmt.Errorf("report: write header: %w", err)
	}
	rowNum := 2
	for _, rec := range x.records {
		for _, r := range rec.Optical {
			row := []any{
				rec.SourceFile, string(rec.Zone), string(rec.Vendor), rec.Device,
				r.Port, optFloat(r.TxPowerDBm), optFloat(r.RxPowerDBm), r.Status,
			}
			if err := x.setRow(f, opticalSheet, rowNum, row); err != nil {
				return err
			}
			rowNum++
		}
	}

	if err := f.SaveAs(x.path); err != nil {
		return fmt.Errorf("report: save %s: %w", x.path, err)
	}
	return nil
}

func (x *Excel) setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("report: cell name: %w", err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("report: write row %d: %w", row, err)
	}
	return nil
}

// Absent metrics render as blank cells, keeping absence distinct from zero.
func optFloat(p *float64) any {
	if p == nil {
		return ""
	}
	return *p
}

func optInt(p *int64) any {
	if p == nil {
		return ""
	}
	return *p
}
