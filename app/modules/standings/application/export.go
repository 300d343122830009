package standingsservice

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ExportLeaderboardXLSX renders the window's leaderboard as a spreadsheet.
func (s *StandingsService) ExportLeaderboardXLSX(ctx context.Context, opts Options) ([]byte, error) {
	entries, err := s.Leaderboard(ctx, opts)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Leaderboard"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Rank", "Player", "Points", "Games"}
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to build header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	for i, entry := range entries {
		row := i + 2
		values := []interface{}{i + 1, entry.Name, entry.TotalScore, entry.GamesPlayed}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, fmt.Errorf("failed to build cell name: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, fmt.Errorf("failed to write leaderboard row: %w", err)
			}
		}
	}

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize spreadsheet: %w", err)
	}
	return buffer.Bytes(), nil
}
