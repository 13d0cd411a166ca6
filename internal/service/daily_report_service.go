package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/sutefu23/report/internal/domain"
	"github.com/sutefu23/report/internal/dto"
	"github.com/sutefu23/report/internal/notification"
	"github.com/sutefu23/report/internal/repository"
)

// DailyReportService 日報のユースケース窓口。
// 業務エラーは *domain.Error をそのまま error として返し、
// ハンドラ側で HTTP ステータスへ写像する。
type DailyReportService interface {
	Create(ctx context.Context, callerID string, req *dto.CreateDailyReportRequest) (*dto.DailyReportResponse, error)
	Get(ctx context.Context, id, callerID, callerRole string) (*dto.DailyReportResponse, error)
	List(ctx context.Context, req *dto.DailyReportListRequest, callerID, callerRole string) (*dto.PageResponse, error)
	Update(ctx context.Context, id, callerID string, req *dto.UpdateDailyReportRequest) (*dto.DailyReportResponse, error)
	Submit(ctx context.Context, id, callerID string) (*dto.DailyReportResponse, error)
	Approve(ctx context.Context, id, callerID string, req *dto.ApproveDailyReportRequest) (*dto.DailyReportResponse, error)
	Reject(ctx context.Context, id, callerID string, req *dto.RejectDailyReportRequest) (*dto.DailyReportResponse, error)
}

type dailyReportService struct {
	workflow *domain.DailyReportWorkflow
	repo     *repository.Repository
	notifier notification.Notifier
	logger   *zap.Logger
}

// NewDailyReportService DailyReportService を生成する
func NewDailyReportService(
	workflow *domain.DailyReportWorkflow,
	repo *repository.Repository,
	notifier notification.Notifier,
	logger *zap.Logger,
) DailyReportService {
	return &dailyReportService{workflow: workflow, repo: repo, notifier: notifier, logger: logger}
}

const dateLayout = "2006-01-02"

func parseDate(s string) (time.Time, *domain.Error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, domain.ValidationError("日付は YYYY-MM-DD 形式で指定してください")
	}
	return t, nil
}

func parseReportID(s string) (domain.DailyReportID, *domain.Error) {
	id, err := domain.ParseDailyReportID(s)
	if err != nil {
		return "", domain.ValidationError("日報 ID の形式が正しくありません")
	}
	return id, nil
}

func toDomainTasks(reqs []dto.TaskRequest) []domain.Task {
	if reqs == nil {
		return nil
	}
	tasks := make([]domain.Task, 0, len(reqs))
	for _, t := range reqs {
		tasks = append(tasks, domain.Task{
			ProjectID:   domain.ProjectID(t.ProjectID),
			Description: t.Description,
			HoursSpent:  t.HoursSpent,
			Progress:    t.Progress,
		})
	}
	return tasks
}

func (s *dailyReportService) Create(ctx context.Context, callerID string, req *dto.CreateDailyReportRequest) (*dto.DailyReportResponse, error) {
	date, derr := parseDate(req.Date)
	if derr != nil {
		return nil, derr
	}

	result, err := s.workflow.Create(ctx, domain.CreateDailyReportInput{
		UserID:      domain.UserID(callerID),
		Date:        date,
		Tasks:       toDomainTasks(req.Tasks),
		Challenges:  req.Challenges,
		NextDayPlan: req.NextDayPlan,
	})
	if err != nil {
		return nil, err
	}
	if result.IsLeft() {
		return nil, result.Left()
	}

	report := result.Right()
	s.logger.Info("日報を作成しました",
		zap.String("reportId", report.ID.String()),
		zap.String("userId", callerID),
	)
	return toReportResponse(report), nil
}

func (s *dailyReportService) Get(ctx context.Context, id, callerID, callerRole string) (*dto.DailyReportResponse, error) {
	reportID, derr := parseReportID(id)
	if derr != nil {
		return nil, derr
	}

	report, err := s.repo.DailyReport.FindByID(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, domain.NotFound("日報が見つかりません").WithCode(domain.CodeDailyReportNotFound)
	}

	// 本人と承認権限者のみ閲覧可
	if report.UserID.String() != callerID && !domain.UserRole(callerRole).CanApprove() {
		return nil, domain.Forbidden("他のユーザーの日報は閲覧できません")
	}

	return toReportResponse(report), nil
}

func (s *dailyReportService) List(ctx context.Context, req *dto.DailyReportListRequest, callerID, callerRole string) (*dto.PageResponse, error) {
	filter := repository.DailyReportFilter{
		UserID: req.UserID,
		Status: req.Status,
		Offset: req.Offset(),
		Limit:  req.GetPageSize(),
	}

	// 一般社員は自分の日報しか参照できない
	if !domain.UserRole(callerRole).CanApprove() {
		filter.UserID = callerID
	}

	if req.From != "" {
		from, derr := parseDate(req.From)
		if derr != nil {
			return nil, derr
		}
		filter.From = &from
	}
	if req.To != "" {
		to, derr := parseDate(req.To)
		if derr != nil {
			return nil, derr
		}
		filter.To = &to
	}

	reports, total, err := s.repo.DailyReport.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]dto.DailyReportResponse, 0, len(reports))
	for i := range reports {
		items = append(items, *toReportResponse(&reports[i]))
	}
	return &dto.PageResponse{
		Items:    items,
		Total:    total,
		Page:     req.GetPage(),
		PageSize: req.GetPageSize(),
	}, nil
}

func (s *dailyReportService) Update(ctx context.Context, id, callerID string, req *dto.UpdateDailyReportRequest) (*dto.DailyReportResponse, error) {
	reportID, derr := parseReportID(id)
	if derr != nil {
		return nil, derr
	}

	result, err := s.workflow.Update(ctx, domain.UpdateDailyReportInput{
		ID:          reportID,
		UserID:      domain.UserID(callerID),
		Tasks:       toDomainTasks(req.Tasks),
		Challenges:  req.Challenges,
		NextDayPlan: req.NextDayPlan,
	})
	if err != nil {
		return nil, err
	}
	if result.IsLeft() {
		return nil, result.Left()
	}
	return toReportResponse(result.Right()), nil
}

func (s *dailyReportService) Submit(ctx context.Context, id, callerID string) (*dto.DailyReportResponse, error) {
	reportID, derr := parseReportID(id)
	if derr != nil {
		return nil, derr
	}

	result, err := s.workflow.Submit(ctx, domain.SubmitDailyReportInput{
		ID:     reportID,
		UserID: domain.UserID(callerID),
	})
	if err != nil {
		return nil, err
	}
	if result.IsLeft() {
		return nil, result.Left()
	}

	report := result.Right()
	s.notifier.ReportSubmitted(ctx, report)
	return toReportResponse(report), nil
}

func (s *dailyReportService) Approve(ctx context.Context, id, callerID string, req *dto.ApproveDailyReportRequest) (*dto.DailyReportResponse, error) {
	reportID, derr := parseReportID(id)
	if derr != nil {
		return nil, derr
	}

	result, err := s.workflow.Approve(ctx, domain.ApproveDailyReportInput{
		ID:         reportID,
		ApproverID: domain.UserID(callerID),
		Feedback:   req.Feedback,
	})
	if err != nil {
		return nil, err
	}
	if result.IsLeft() {
		return nil, result.Left()
	}

	report := result.Right()
	s.notifier.ReportApproved(ctx, report)
	return toReportResponse(report), nil
}

func (s *dailyReportService) Reject(ctx context.Context, id, callerID string, req *dto.RejectDailyReportRequest) (*dto.DailyReportResponse, error) {
	reportID, derr := parseReportID(id)
	if derr != nil {
		return nil, derr
	}

	result, err := s.workflow.Reject(ctx, domain.RejectDailyReportInput{
		ID:         reportID,
		ApproverID: domain.UserID(callerID),
		Feedback:   req.Feedback,
	})
	if err != nil {
		return nil, err
	}
	if result.IsLeft() {
		return nil, result.Left()
	}

	report := result.Right()
	s.notifier.ReportRejected(ctx, report)
	return toReportResponse(report), nil
}

// ── dto 変換 ──

func toReportResponse(r *domain.DailyReport) *dto.DailyReportResponse {
	resp := &dto.DailyReportResponse{
		ID:          r.ID.String(),
		UserID:      r.UserID.String(),
		Date:        r.Date.Format(dateLayout),
		Tasks:       make([]dto.TaskResponse, 0, len(r.Tasks)),
		Challenges:  r.Challenges,
		NextDayPlan: r.NextDayPlan,
		Status:      string(r.Status),
		TotalHours:  r.TotalHours(),
		CreatedAt:   r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   r.UpdatedAt.Format(time.RFC3339),
		Feedback:    r.Feedback,
	}
	for _, t := range r.Tasks {
		resp.Tasks = append(resp.Tasks, dto.TaskResponse{
			ProjectID:   t.ProjectID.String(),
			Description: t.Description,
			HoursSpent:  t.HoursSpent,
			Progress:    t.Progress,
		})
	}
	if r.SubmittedAt != nil {
		s := r.SubmittedAt.Format(time.RFC3339)
		resp.SubmittedAt = &s
	}
	if r.ApprovedAt != nil {
		s := r.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &s
	}
	if r.ApprovedBy != nil {
		s := r.ApprovedBy.String()
		resp.ApprovedBy = &s
	}
	return resp
}
