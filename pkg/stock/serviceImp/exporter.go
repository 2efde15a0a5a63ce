package serviceImp

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ExportMouvements renders the full ledger of a stock item as a workbook,
// one row per movement, raw values only.
func (s *stockSvc) ExportMouvements(stockID uint) (*excelize.File, error) {
	item, err := s.Get(stockID)
	if err != nil {
		return nil, err
	}
	mvs, err := s.r.Mouvements(stockID)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := "Mouvements"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Date", "Type", "Quantite", "Unite", "Note"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}
	for row, mv := range mvs {
		values := []any{mv.Date.Format("2006-01-02"), mv.Type, mv.Quantite, mv.Unite, mv.Note}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}
	if err := f.SetCellValue(sheet, "G1", fmt.Sprintf("%s (%s)", item.Nom, item.Unite)); err != nil {
		return nil, err
	}
	return f, nil
}
