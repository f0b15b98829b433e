package message

import (
	"bytes"
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

const exportSheet = "Messages"

var exportHeaders = []string{"ID", "Posted At", "Author", "Content", "Public"}

// Export renders every message into an xlsx workbook
func (s *service) Export(ctx context.Context) ([]byte, error) {
	ctx, span := tracer.Start(ctx, "Message.Service.Export")
	defer span.End()

	messages, err := s.repository.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, errors.Wrap(err, "failed to name sheet")
	}

	header := make([]any, len(exportHeaders))
	for i, h := range exportHeaders {
		header[i] = h
	}
	if err := f.SetSheetRow(exportSheet, "A1", &header); err != nil {
		return nil, errors.Wrap(err, "failed to write header")
	}

	for i, message := range messages {
		author := ""
		if message.Author != nil {
			author = *message.Author
		}
		public := "No"
		if message.IsPublic {
			public = "Yes"
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []any{
			message.ID,
			message.CreatedAt.UTC().Format(time.RFC3339),
			author,
			message.Content,
			public,
		}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return nil, errors.Wrapf(err, "failed to write row %d", i+2)
		}
	}

	if err := f.SetColWidth(exportSheet, "D", "D", 80); err != nil {
		return nil, err
	}
	if err := f.SetPanes(exportSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, errors.Wrap(err, "failed to write workbook")
	}

	return buf.Bytes(), nil
}
