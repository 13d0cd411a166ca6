package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/sutefu23/report/internal/domain"
	"github.com/sutefu23/report/internal/repository"
)

// ExportService 日報の Excel エクスポート窓口。
// 生成した Excel は bytes.Buffer で返し、レスポンスヘッダの設定と
// 書き出しはハンドラ側が行う。
type ExportService interface {
	// ExportMonthly 指定ユーザーの月次日報を Excel (.xlsx) で出力する
	ExportMonthly(ctx context.Context, userID string, year int, month time.Month) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService ExportService を生成する
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

var statusLabels = map[string]string{
	"draft":     "下書き",
	"submitted": "提出済み",
	"approved":  "承認済み",
	"rejected":  "差し戻し",
}

func (s *exportService) ExportMonthly(ctx context.Context, userID string, year int, month time.Month) (*bytes.Buffer, string, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)

	reports, err := s.repo.DailyReport.ListByUserAndPeriod(ctx, userID, from, to)
	if err != nil {
		s.logger.Error("日報の取得に失敗", zap.Error(err))
		return nil, "", err
	}
	if len(reports) == 0 {
		return nil, "", domain.NotFound("指定された月の日報がありません")
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := fmt.Sprintf("%d年%d月", year, int(month))
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"日付", "状態", "作業時間合計", "タスク", "課題", "翌日予定", "フィードバック"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"DDEBF7"}, Pattern: 1},
	})
	f.SetCellStyle(sheet, "A1", "G1", headerStyle)

	for i := range reports {
		r := &reports[i]
		row := i + 2

		var tasks bytes.Buffer
		for j, t := range r.Tasks {
			if j > 0 {
				tasks.WriteString("\n")
			}
			fmt.Fprintf(&tasks, "%s (%.1fh, %d%%)", t.Description, t.HoursSpent, t.Progress)
		}

		feedback := ""
		if r.Feedback != nil {
			feedback = *r.Feedback
		}

		values := []interface{}{
			r.Date.Format("2006-01-02"),
			statusLabels[string(r.Status)],
			r.TotalHours(),
			tasks.String(),
			r.Challenges,
			r.NextDayPlan,
			feedback,
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, row)
			f.SetCellValue(sheet, cell, v)
		}
	}

	f.SetColWidth(sheet, "A", "A", 12)
	f.SetColWidth(sheet, "D", "G", 40)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		s.logger.Error("Excel の生成に失敗", zap.Error(err))
		return nil, "", err
	}

	filename := fmt.Sprintf("daily_reports_%d%02d.xlsx", year, int(month))
	return &buf, filename, nil
}
