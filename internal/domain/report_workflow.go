package domain

import (
	"context"
	"errors"
	"time"

	"github.com/sutefu23/report/pkg/either"
)

// ReportResult は日報ワークフローの戻り値型。
// Left は想定内の業務エラー、Right は更新後の日報。
type ReportResult = either.Either[*Error, *DailyReport]

// DailyReportWorkflow は日報のユースケースを実装する状態機械の中核。
// リポジトリポートをコンストラクタで注入し、内部に可変状態を持たない。
// 想定内の失敗は Either の Left で返し、インフラ障害のみ error で返す。
type DailyReportWorkflow struct {
	reports   DailyReportRepository
	approvers ApproverRepository
}

// NewDailyReportWorkflow は DailyReportWorkflow を生成する。
func NewDailyReportWorkflow(reports DailyReportRepository, approvers ApproverRepository) *DailyReportWorkflow {
	return &DailyReportWorkflow{reports: reports, approvers: approvers}
}

func reportLeft(e *Error) ReportResult          { return either.Left[*Error, *DailyReport](e) }
func reportRight(r *DailyReport) ReportResult   { return either.Right[*Error, *DailyReport](r) }
func reportFail(err error) (ReportResult, error) { return ReportResult{}, err }

// Create は日報を draft 状態で新規作成する。
// 検証 → ユーザー存在確認 → (userId, date) の重複確認 → 採番・保存。
func (w *DailyReportWorkflow) Create(ctx context.Context, input CreateDailyReportInput) (ReportResult, error) {
	if verr := ValidateTasks(input.Tasks); verr != nil {
		return reportLeft(verr), nil
	}

	user, err := w.approvers.FindApprover(ctx, input.UserID)
	if err != nil {
		return reportFail(err)
	}
	if user == nil {
		return reportLeft(NotFound("ユーザーが見つかりません")), nil
	}

	existing, err := w.reports.FindByUserAndDate(ctx, input.UserID, input.Date)
	if err != nil {
		return reportFail(err)
	}
	if existing != nil {
		return reportLeft(BusinessRuleViolation("指定された日付の日報は既に存在します").
			WithCode(CodeDailyReportAlreadyExists)), nil
	}

	now := time.Now()
	report := &DailyReport{
		ID:          NewDailyReportID(),
		UserID:      input.UserID,
		Date:        input.Date,
		Tasks:       input.Tasks,
		Challenges:  input.Challenges,
		NextDayPlan: input.NextDayPlan,
		Status:      StatusDraft,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := w.reports.Create(ctx, report)
	if err != nil {
		// 事前チェックは find-then-create でありアトミックではない。
		// 同一キーへの同時作成はストアの一意制約で弾かれ、ここに現れる。
		if errors.Is(err, ErrConflict) {
			return reportLeft(BusinessRuleViolation("指定された日付の日報は既に存在します").
				WithCode(CodeDailyReportAlreadyExists)), nil
		}
		return reportFail(err)
	}
	return reportRight(created), nil
}

// Update は draft / rejected 状態の日報を部分更新する。
// 所有者以外の更新は FORBIDDEN。タスクを差し替える場合は再検証する。
func (w *DailyReportWorkflow) Update(ctx context.Context, input UpdateDailyReportInput) (ReportResult, error) {
	report, err := w.reports.FindByID(ctx, input.ID)
	if err != nil {
		return reportFail(err)
	}
	if report == nil {
		return reportLeft(NotFound("日報が見つかりません").
			WithCode(CodeDailyReportNotFound)), nil
	}

	if input.UserID != "" && report.UserID != input.UserID {
		return reportLeft(Forbidden("他のユーザーの日報は編集できません")), nil
	}

	if !report.Status.Editable() {
		return reportLeft(BusinessRuleViolation("提出済みまたは承認済みの日報は編集できません")), nil
	}

	updated := *report
	if input.Tasks != nil {
		if verr := ValidateTasks(input.Tasks); verr != nil {
			return reportLeft(verr), nil
		}
		updated.Tasks = input.Tasks
	}
	if input.Challenges != nil {
		updated.Challenges = *input.Challenges
	}
	if input.NextDayPlan != nil {
		updated.NextDayPlan = *input.NextDayPlan
	}
	updated.UpdatedAt = time.Now()

	result, err := w.reports.Update(ctx, &updated)
	if err != nil {
		return reportFail(err)
	}
	return reportRight(result), nil
}

// Submit は日報を submitted 状態へ遷移させ、SubmittedAt を記録する。
// 所有者本人のみ提出でき、提出済み・承認済みの日報は再提出できない。
func (w *DailyReportWorkflow) Submit(ctx context.Context, input SubmitDailyReportInput) (ReportResult, error) {
	report, err := w.reports.FindByID(ctx, input.ID)
	if err != nil {
		return reportFail(err)
	}
	if report == nil {
		return reportLeft(NotFound("日報が見つかりません").
			WithCode(CodeDailyReportNotFound)), nil
	}

	if report.UserID != input.UserID {
		return reportLeft(Forbidden("他のユーザーの日報を提出することはできません")), nil
	}

	if report.Status == StatusSubmitted || report.Status == StatusApproved {
		return reportLeft(BusinessRuleViolation("既に提出済みまたは承認済みの日報です")), nil
	}

	now := time.Now()
	updated := *report
	updated.Status = StatusSubmitted
	updated.SubmittedAt = &now
	updated.UpdatedAt = now

	result, err := w.reports.Update(ctx, &updated)
	if err != nil {
		return reportFail(err)
	}
	return reportRight(result), nil
}

// Approve は submitted 状態の日報を承認する（終端状態）。
// 承認者は manager または admin でなければならない。
func (w *DailyReportWorkflow) Approve(ctx context.Context, input ApproveDailyReportInput) (ReportResult, error) {
	approver, err := w.approvers.FindApprover(ctx, input.ApproverID)
	if err != nil {
		return reportFail(err)
	}
	if approver == nil {
		return reportLeft(NotFound("承認者が見つかりません")), nil
	}
	if !approver.Role.CanApprove() {
		return reportLeft(Forbidden("マネージャーまたは管理者のみが日報を承認できます")), nil
	}

	report, err := w.reports.FindByID(ctx, input.ID)
	if err != nil {
		return reportFail(err)
	}
	if report == nil {
		return reportLeft(NotFound("日報が見つかりません").
			WithCode(CodeDailyReportNotFound)), nil
	}

	if report.Status != StatusSubmitted {
		return reportLeft(BusinessRuleViolation("提出された日報のみ承認できます").
			WithCode(CodeInvalidStatusTransition)), nil
	}

	now := time.Now()
	updated := *report
	updated.Status = StatusApproved
	updated.ApprovedAt = &now
	updated.ApprovedBy = &input.ApproverID
	updated.Feedback = input.Feedback
	updated.UpdatedAt = now

	result, err := w.reports.Update(ctx, &updated)
	if err != nil {
		return reportFail(err)
	}
	return reportRight(result), nil
}

// Reject は submitted 状態の日報を差し戻す。差し戻し理由は必須。
// ApprovedAt は記録しない。差し戻し後は編集→再提出が可能。
func (w *DailyReportWorkflow) Reject(ctx context.Context, input RejectDailyReportInput) (ReportResult, error) {
	approver, err := w.approvers.FindApprover(ctx, input.ApproverID)
	if err != nil {
		return reportFail(err)
	}
	if approver == nil {
		return reportLeft(NotFound("承認者が見つかりません")), nil
	}
	if !approver.Role.CanApprove() {
		return reportLeft(Forbidden("マネージャーまたは管理者のみが日報を差し戻せます")), nil
	}

	report, err := w.reports.FindByID(ctx, input.ID)
	if err != nil {
		return reportFail(err)
	}
	if report == nil {
		return reportLeft(NotFound("日報が見つかりません").
			WithCode(CodeDailyReportNotFound)), nil
	}

	if report.Status != StatusSubmitted {
		return reportLeft(BusinessRuleViolation("提出された日報のみ差し戻せます").
			WithCode(CodeInvalidStatusTransition)), nil
	}

	if verr := ValidateFeedback(input.Feedback); verr != nil {
		return reportLeft(verr), nil
	}

	now := time.Now()
	updated := *report
	updated.Status = StatusRejected
	updated.Feedback = &input.Feedback
	updated.UpdatedAt = now

	result, err := w.reports.Update(ctx, &updated)
	if err != nil {
		return reportFail(err)
	}
	return reportRight(result), nil
}
