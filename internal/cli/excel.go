package cli

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/hyperjump/erabu/internal/models"
)

// rankingSheet is the single sheet a workbook export writes.
const rankingSheet = "Ranking"

var workbookHeader = []string{
	"Rank", "Channel", "Channel ID", "URL",
	"Videos", "Subscribers", "Sentiment", "Similarity",
	"Videos Rank", "Subscribers Rank", "Sentiment Rank", "Similarity Rank",
}

// WriteWorkbook saves the ranking as an Excel workbook at path, one row
// per channel under a frozen header row.
func WriteWorkbook(path string, response *models.QueryResponse) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", rankingSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	for i, header := range workbookHeader {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(rankingSheet, cell, header); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}

	for i, channel := range response.Channels {
		row := i + 2
		values := []interface{}{
			channel.AverageRank, channel.Title, channel.ChannelID, channel.URL,
			countCell(channel.VideoCount), countCell(channel.SubscriberCount),
			channel.Score, channel.Similarity,
			channel.VideosRank, channel.SubscribersRank, channel.ScoreRank, channel.SimilarityRank,
		}
		for j, value := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(rankingSheet, cell, value); err != nil {
				return fmt.Errorf("failed to write row %d: %w", row, err)
			}
		}
	}

	if err := f.SetPanes(rankingSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("failed to freeze header: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// countCell maps hidden statistics to an empty cell instead of a zero.
func countCell(count *int64) interface{} {
	if count == nil {
		return ""
	}
	return *count
}
