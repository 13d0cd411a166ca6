package notification

import (
	"context"

	"go.uber.org/zap"

	"github.com/sutefu23/report/internal/domain"
)

// Notifier 日報イベントの通知ポート。
// 実装はログ通知のみ。メール・チャット連携はここに実装を追加する。
type Notifier interface {
	ReportSubmitted(ctx context.Context, report *domain.DailyReport)
	ReportApproved(ctx context.Context, report *domain.DailyReport)
	ReportRejected(ctx context.Context, report *domain.DailyReport)
}

// logNotifier ログ出力のみの Notifier 実装
type logNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier ログ出力の Notifier を生成する
func NewLogNotifier(logger *zap.Logger) Notifier {
	return &logNotifier{logger: logger}
}

func (n *logNotifier) ReportSubmitted(ctx context.Context, report *domain.DailyReport) {
	n.logger.Info("日報が提出されました",
		zap.String("reportId", report.ID.String()),
		zap.String("userId", report.UserID.String()),
	)
}

func (n *logNotifier) ReportApproved(ctx context.Context, report *domain.DailyReport) {
	approver := ""
	if report.ApprovedBy != nil {
		approver = report.ApprovedBy.String()
	}
	n.logger.Info("日報が承認されました",
		zap.String("reportId", report.ID.String()),
		zap.String("userId", report.UserID.String()),
		zap.String("approvedBy", approver),
	)
}

func (n *logNotifier) ReportRejected(ctx context.Context, report *domain.DailyReport) {
	n.logger.Info("日報が差し戻されました",
		zap.String("reportId", report.ID.String()),
		zap.String("userId", report.UserID.String()),
	)
}
