package domain

import (
	"context"
	"testing"
	"time"
)

// ── テスト補助 ──

func setupReportWorkflow() (*DailyReportWorkflow, *mockReportRepo, *mockApproverRepo) {
	reports := newMockReportRepo()
	approvers := newMockApproverRepo()
	return NewDailyReportWorkflow(reports, approvers), reports, approvers
}

func validTasks() []Task {
	return []Task{
		{ProjectID: NewProjectID(), Description: "API 実装", HoursSpent: 5.5, Progress: 60},
		{ProjectID: NewProjectID(), Description: "コードレビュー", HoursSpent: 2, Progress: 100},
	}
}

func reportDate() time.Time {
	return time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
}

func mustCreate(t *testing.T, w *DailyReportWorkflow, userID UserID) *DailyReport {
	t.Helper()
	result, err := w.Create(context.Background(), CreateDailyReportInput{
		UserID:      userID,
		Date:        reportDate(),
		Tasks:       validTasks(),
		Challenges:  "特になし",
		NextDayPlan: "結合テスト",
	})
	if err != nil {
		t.Fatalf("Create がインフラエラー: %v", err)
	}
	if result.IsLeft() {
		t.Fatalf("Create が業務エラー: %v", result.Left())
	}
	return result.Right()
}

// ── Create ──

func TestCreate_Success(t *testing.T) {
	w, _, approvers := setupReportWorkflow()
	userID := NewUserID()
	approvers.add(userID, RoleEmployee)

	report := mustCreate(t, w, userID)

	if report.Status != StatusDraft {
		t.Errorf("作成直後は draft であるべき、実際=%s", report.Status)
	}
	if report.ID == "" {
		t.Error("ID が採番されているべき")
	}
	if report.SubmittedAt != nil || report.ApprovedAt != nil {
		t.Error("作成直後に提出・承認時刻は設定されないべき")
	}
}

func TestCreate_EmptyTasks(t *testing.T) {
	w, _, approvers := setupReportWorkflow()
	userID := NewUserID()
	approvers.add(userID, RoleEmployee)

	result, err := w.Create(context.Background(), CreateDailyReportInput{
		UserID: userID,
		Date:   reportDate(),
		Tasks:  []Task{},
	})
	if err != nil {
		t.Fatalf("インフラエラーは想定外: %v", err)
	}
	if !result.IsLeft() {
		t.Fatal("タスク0件は業務エラーであるべき")
	}
	if result.Left().Kind != KindValidationError {
		t.Errorf("期待 VALIDATION_ERROR、実際=%s", result.Left().Kind)
	}
}

func TestCreate_TotalHoursOver24(t *testing.T) {
	w, reports, approvers := setupReportWorkflow()
	userID := NewUserID()
	approvers.add(userID, RoleEmployee)

	// 12 + 13 = 25 時間
	result, err := w.Create(context.Background(), CreateDailyReportInput{
		UserID: userID,
		Date:   reportDate(),
		Tasks: []Task{
			{ProjectID: NewProjectID(), HoursSpent: 12, Progress: 50},
			{ProjectID: NewProjectID(), HoursSpent: 13, Progress: 50},
		},
	})
	if err != nil {
		t.Fatalf("インフラエラーは想定外: %v", err)
	}
	if !result.IsLeft() {
		t.Fatal("合計25時間は業務エラーであるべき")
	}
	if result.Left().Code != CodeInvalidTaskHours {
		t.Errorf("期待 INVALID_TASK_HOURS、実際=%s", result.Left().Code)
	}
	if len(reports.reports) != 0 {
		t.Error("検証エラー時に日報が永続化されてはならない")
	}
}

func TestCreate_ProgressOutOfRange(t *testing.T) {
	w, _, approvers := setupReportWorkflow()
	userID := NewUserID()
	approvers.add(userID, RoleEmployee)

	result, err := w.Create(context.Background(), CreateDailyReportInput{
		UserID: userID,
		Date:   reportDate(),
		Tasks:  []Task{{ProjectID: NewProjectID(), HoursSpent: 1, Progress: 150}},
	})
	if err != nil {
		t.Fatalf("インフラエラーは想定外: %v", err)
	}
	if !result.IsLeft() || result.Left().Code != CodeInvalidProgressValue {
		t.Errorf("期待 INVALID_PROGRESS_VALUE、実際=%+v", result)
	}
}

func TestCreate_UserNotFound(t *testing.T) {
	w, _, _ := setupReportWorkflow()

	result, err := w.Create(context.Background(), CreateDailyReportInput{
		UserID: NewUserID(), // 未登録
		Date:   reportDate(),
		Tasks:  validTasks(),
	})
	if err != nil {
		t.Fatalf("インフラエラーは想定外: %v", err)
	}
	if !result.IsLeft() || result.Left().Kind != KindNotFound {
		t.Errorf("期待 NOT_FOUND、実際=%+v", result)
	}
}

func TestCreate_DuplicateDate(t *testing.T) {
	w, _, approvers := setupReportWorkflow()
	userID := NewUserID()
	approvers.add(userID, RoleEmployee)
	mustCreate(t, w, userID)

	// タスク内容が違っても同一 (userId, date) は拒否される
	result, err := w.Create(context.Background(), CreateDailyReportInput{
		UserID: userID,
		Date:   reportDate(),
		Tasks:  []Task{{ProjectID: NewProjectID(), HoursSpent: 1, Progress: 10}},
	})
	if err != nil {
		t.Fatalf("インフラエラーは想定外: %v", err)
	}
	if !result.IsLeft() {
		t.Fatal("重複作成は業務エラーであるべき")
	}
	left := result.Left()
	if left.Kind != KindBusinessRuleViolation || left.Code != CodeDailyReportAlreadyExists {
		t.Errorf("期待 DAILY_REPORT_ALREADY_EXISTS、実際 kind=%s code=%s", left.Kind, left.Code)
	}
}

func TestCreate_StoreConflictTranslated(t *testing.T) {
	// 事前チェックをすり抜けた同時作成は、ストアの一意制約違反
	// (ErrConflict) として返り、同じ ALREADY_EXISTS 系へ変換される。
	w, reports, approvers := setupReportWorkflow()
	userID := NewUserID()
	approvers.add(userID, RoleEmployee)
	reports.createErr = ErrConflict

	result, err := w.Create(context.Background(), CreateDailyReportInput{
		UserID: userID,
		Date:   reportDate(),
		Tasks:  validTasks(),
	})
	if err != nil {
		t.Fatalf("ErrConflict は業務エラーへ変換されるべき: %v", err)
	}
	if !result.IsLeft() || result.Left().Code != CodeDailyReportAlreadyExists {
		t.Errorf("期待 DAILY_REPORT_ALREADY_EXISTS、実際=%+v", result)
	}
}

// ── Update ──

func TestUpdate_Draft(t *testing.T) {
	w, _, approvers := setupReportWorkflow()
	userID := NewUserID()
	approvers.add(userID, RoleEmployee)
	report := mustCreate(t, w, userID)

	challenges := "DB 接続が不安定"
	result, err := w.Update(context.Background(), UpdateDailyReportInput{
		ID:         report.ID,
		UserID:     userID,
		Challenges: &challenges,
	})
	if err != nil {
		t.Fatalf("インフラエラーは想定外: %v", err)
	}
	if result.IsLeft() {
		t.Fatalf("draft の更新は成功すべき: %v", result.Left())
	}
	updated := result.Right()
	if updated.Challenges != challenges {
		t.Errorf("Challenges が更新されていない: %s", updated.Challenges)
	}
	if updated.NextDayPlan != report.NextDayPlan {
		t.Error("未指定フィールドは据え置かれるべき")
	}
	if !updated.UpdatedAt.After(report.UpdatedAt) && !updated.UpdatedAt.Equal(report.UpdatedAt) {
		t.Error("UpdatedAt が繰り上がるべき")
	}
}

func TestUpdate_NotFound(t *testing.T) {
	w, _, _ := setupReportWorkflow()

	result, err := w.Update(context.Background(), UpdateDailyReportInput{ID: NewDailyReportID()})
	if err != nil {
		t.Fatalf("インフラエラーは想定外: %v", err)
	}
	if !result.IsLeft() || result.Left().Kind != KindNotFound {
		t.Errorf("期待 NOT_FOUND、実際=%+v", result)
	}
}

func TestUpdate_OtherUserForbidden(t *testing.T) {
	w, _, approvers := setupReportWorkflow()
	owner := NewUserID()
	approvers.add(owner, RoleEmployee)
	report := mustCreate(t, w, owner)

	result, err := w.Update(context.Background(), UpdateDailyReportInput{
		ID:     report.ID,
		UserID: NewUserID(), // 所有者ではない
	})
	if err != nil {
		t.Fatalf("インフラエラーは想定外: %v", err)
	}
	if !result.IsLeft() || result.Left().Kind != KindForbidden {
		t.Errorf("期待 FORBIDDEN、実際=%+v", result)
	}
}

func TestUpdate_SubmittedRejected(t *testing.T) {
	w, _, approvers := setupReportWorkflow()
	userID := NewUserID()
	approvers.add(userID, RoleEmployee)
	report := mustCreate(t, w, userID)

	if res, err := w.Submit(context.Background(), SubmitDailyReportInput{ID: report.ID, UserID: userID}); err != nil || res.IsLeft() {
		t.Fatalf("Submit が失敗: %v %v", err, res.Left())
	}

	result, err := w.Update(context.Background(), UpdateDailyReportInput{ID: report.ID, UserID: userID})
	if err != nil {
		t.Fatalf("インフラエラーは想定外: %v", err)
	}
	if !result.IsLeft() || result.Left().Kind != KindBusinessRuleViolation {
		t.Errorf("submitted の編集は BUSINESS_RULE_VIOLATION であるべき、実際=%+v", result)
	}
}

func TestUpdate_TasksRevalidated(t *testing.T) {
	w, _, approvers := setupReportWorkflow()
	userID := NewUserID()
	approvers.add(userID, RoleEmployee)
	report := mustCreate(t, w, userID)

	result, err := w.Update(context.Background(), UpdateDailyReportInput{
		ID:     report.ID,
		UserID: userID,
		Tasks:  []Task{{ProjectID: NewProjectID(), HoursSpent: 25, Progress: 10}},
	})
	if err != nil {
		t.Fatalf("インフラエラーは想定外: %v", err)
	}
	if !result.IsLeft() || result.Left().Code != CodeInvalidTaskHours {
		t.Errorf("タスク差し替え時も時間上限を検証すべき、実際=%+v", result)
	}
}

// ── Submit ──

func TestSubmit_Success(t *testing.T) {
	w, _, approvers := setupReportWorkflow()
	userID := NewUserID()
	approvers.add(userID, RoleEmployee)
	report := mustCreate(t, w, userID)

	result, err := w.Submit(context.Background(), SubmitDailyReportInput{ID: report.ID, UserID: userID})
	if err != nil {
		t.Fatalf("インフラエラーは想定外: %v", err)
	}
	if result.IsLeft() {
		t.Fatalf("提出は成功すべき: %v", result.Left())
	}
	submitted := result.Right()
	if submitted.Status != StatusSubmitted {
		t.Errorf("期待 submitted、実際=%s", submitted.Status)
	}
	if submitted.SubmittedAt == nil {
		t.Error("SubmittedAt が記録されるべき")
	}
}

func TestSubmit_Twice(t *testing.T) {
	w, _, approvers := setupReportWorkflow()
	userID := NewUserID()
	approvers.add(userID, RoleEmployee)
	report := mustCreate(t, w, userID)

	first, err := w.Submit(context.Background(), SubmitDailyReportInput{ID: report.ID, UserID: userID})
	if err != nil || first.IsLeft() {
		t.Fatalf("1回目の提出は成功すべき: %v %v", err, first.Left())
	}

	second, err := w.Submit(context.Background(), SubmitDailyReportInput{ID: report.ID, UserID: userID})
	if err != nil {
		t.Fatalf("インフラエラーは想定外: %v", err)
	}
	if !second.IsLeft() || second.Left().Kind != KindBusinessRuleViolation {
		t.Errorf("2回目の提出は BUSINESS_RULE_VIOLATION であるべき、実際=%+v", second)
	}
}

func TestSubmit_OtherUserForbidden(t *testing.T) {
	w, _, approvers := setupReportWorkflow()
	owner := NewUserID()
	approvers.add(owner, RoleEmployee)
	report := mustCreate(t, w, owner)

	result, err := w.Submit(context.Background(), SubmitDailyReportInput{ID: report.ID, UserID: NewUserID()})
	if err != nil {
		t.Fatalf("インフラエラーは想定外: %v", err)
	}
	if !result.IsLeft() || result.Left().Kind != KindForbidden {
		t.Errorf("他人の日報提出は FORBIDDEN であるべき、実際=%+v", result)
	}
}

// ── Approve / Reject ──

func submitReport(t *testing.T, w *DailyReportWorkflow, userID UserID) *DailyReport {
	t.Helper()
	report := mustCreate(t, w, userID)
	result, err := w.Submit(context.Background(), SubmitDailyReportInput{ID: report.ID, UserID: userID})
	if err != nil || result.IsLeft() {
		t.Fatalf("Submit が失敗: %v %v", err, result.Left())
	}
	return result.Right()
}

func TestApprove_Success(t *testing.T) {
	w, _, approvers := setupReportWorkflow()
	userID := NewUserID()
	managerID := NewUserID()
	approvers.add(userID, RoleEmployee)
	approvers.add(managerID, RoleManager)
	report := submitReport(t, w, userID)

	feedback := "お疲れさまでした"
	result, err := w.Approve(context.Background(), ApproveDailyReportInput{
		ID:         report.ID,
		ApproverID: managerID,
		Feedback:   &feedback,
	})
	if err != nil {
		t.Fatalf("インフラエラーは想定外: %v", err)
	}
	if result.IsLeft() {
		t.Fatalf("承認は成功すべき: %v", result.Left())
	}
	approved := result.Right()
	if approved.Status != StatusApproved {
		t.Errorf("期待 approved、実際=%s", approved.Status)
	}
	if approved.SubmittedAt == nil || approved.ApprovedAt == nil {
		t.Error("SubmittedAt / ApprovedAt の双方が設定されるべき")
	}
	if approved.ApprovedBy == nil || *approved.ApprovedBy != managerID {
		t.Errorf("ApprovedBy は承認者 ID であるべき: %v", approved.ApprovedBy)
	}
}

func TestApprove_EmployeeForbidden(t *testing.T) {
	w, _, approvers := setupReportWorkflow()
	userID := NewUserID()
	peer := NewUserID()
	approvers.add(userID, RoleEmployee)
	approvers.add(peer, RoleEmployee)
	report := submitReport(t, w, userID)

	result, err := w.Approve(context.Background(), ApproveDailyReportInput{ID: report.ID, ApproverID: peer})
	if err != nil {
		t.Fatalf("インフラエラーは想定外: %v", err)
	}
	if !result.IsLeft() || result.Left().Kind != KindForbidden {
		t.Errorf("employee の承認は FORBIDDEN であるべき、実際=%+v", result)
	}
}

func TestApprove_ApproverNotFound(t *testing.T) {
	w, _, approvers := setupReportWorkflow()
	userID := NewUserID()
	approvers.add(userID, RoleEmployee)
	report := submitReport(t, w, userID)

	result, err := w.Approve(context.Background(), ApproveDailyReportInput{ID: report.ID, ApproverID: NewUserID()})
	if err != nil {
		t.Fatalf("インフラエラーは想定外: %v", err)
	}
	if !result.IsLeft() || result.Left().Kind != KindNotFound {
		t.Errorf("未登録の承認者は NOT_FOUND であるべき、実際=%+v", result)
	}
}

func TestApprove_DraftInvalidTransition(t *testing.T) {
	w, _, approvers := setupReportWorkflow()
	userID := NewUserID()
	adminID := NewUserID()
	approvers.add(userID, RoleEmployee)
	approvers.add(adminID, RoleAdmin)
	report := mustCreate(t, w, userID) // draft のまま

	result, err := w.Approve(context.Background(), ApproveDailyReportInput{ID: report.ID, ApproverID: adminID})
	if err != nil {
		t.Fatalf("インフラエラーは想定外: %v", err)
	}
	if !result.IsLeft() || result.Left().Code != CodeInvalidStatusTransition {
		t.Errorf("draft の承認は INVALID_STATUS_TRANSITION であるべき、実際=%+v", result)
	}
}

func TestApprove_AlreadyApproved(t *testing.T) {
	w, _, approvers := setupReportWorkflow()
	userID := NewUserID()
	managerID := NewUserID()
	approvers.add(userID, RoleEmployee)
	approvers.add(managerID, RoleManager)
	report := submitReport(t, w, userID)

	first, err := w.Approve(context.Background(), ApproveDailyReportInput{ID: report.ID, ApproverID: managerID})
	if err != nil || first.IsLeft() {
		t.Fatalf("1回目の承認は成功すべき: %v %v", err, first.Left())
	}

	second, err := w.Approve(context.Background(), ApproveDailyReportInput{ID: report.ID, ApproverID: managerID})
	if err != nil {
		t.Fatalf("インフラエラーは想定外: %v", err)
	}
	if !second.IsLeft() || second.Left().Code != CodeInvalidStatusTransition {
		t.Errorf("approved は終端状態であるべき、実際=%+v", second)
	}
}

func TestReject_Success(t *testing.T) {
	w, _, approvers := setupReportWorkflow()
	userID := NewUserID()
	managerID := NewUserID()
	approvers.add(userID, RoleEmployee)
	approvers.add(managerID, RoleManager)
	report := submitReport(t, w, userID)

	result, err := w.Reject(context.Background(), RejectDailyReportInput{
		ID:         report.ID,
		ApproverID: managerID,
		Feedback:   "工数の内訳を見直してください",
	})
	if err != nil {
		t.Fatalf("インフラエラーは想定外: %v", err)
	}
	if result.IsLeft() {
		t.Fatalf("差し戻しは成功すべき: %v", result.Left())
	}
	rejected := result.Right()
	if rejected.Status != StatusRejected {
		t.Errorf("期待 rejected、実際=%s", rejected.Status)
	}
	if rejected.Feedback == nil || *rejected.Feedback == "" {
		t.Error("Feedback が記録されるべき")
	}
	if rejected.ApprovedAt != nil {
		t.Error("差し戻しで ApprovedAt は設定されないべき")
	}
}

func TestReject_EmptyFeedback(t *testing.T) {
	w, _, approvers := setupReportWorkflow()
	userID := NewUserID()
	managerID := NewUserID()
	approvers.add(userID, RoleEmployee)
	approvers.add(managerID, RoleManager)
	report := submitReport(t, w, userID)

	for _, feedback := range []string{"", "   ", "\t\n"} {
		result, err := w.Reject(context.Background(), RejectDailyReportInput{
			ID:         report.ID,
			ApproverID: managerID,
			Feedback:   feedback,
		})
		if err != nil {
			t.Fatalf("インフラエラーは想定外: %v", err)
		}
		if !result.IsLeft() || result.Left().Kind != KindValidationError {
			t.Errorf("空の差し戻し理由(%q)は VALIDATION_ERROR であるべき、実際=%+v", feedback, result)
		}
	}
}

func TestReject_DraftInvalidTransition(t *testing.T) {
	w, _, approvers := setupReportWorkflow()
	userID := NewUserID()
	managerID := NewUserID()
	approvers.add(userID, RoleEmployee)
	approvers.add(managerID, RoleManager)
	report := mustCreate(t, w, userID)

	result, err := w.Reject(context.Background(), RejectDailyReportInput{
		ID:         report.ID,
		ApproverID: managerID,
		Feedback:   "理由",
	})
	if err != nil {
		t.Fatalf("インフラエラーは想定外: %v", err)
	}
	if !result.IsLeft() || result.Left().Code != CodeInvalidStatusTransition {
		t.Errorf("draft の差し戻しは INVALID_STATUS_TRANSITION であるべき、実際=%+v", result)
	}
}

// ── 再提出サイクル ──

func TestRejectedCycle_UpdateThenResubmit(t *testing.T) {
	w, _, approvers := setupReportWorkflow()
	userID := NewUserID()
	managerID := NewUserID()
	approvers.add(userID, RoleEmployee)
	approvers.add(managerID, RoleManager)
	report := submitReport(t, w, userID)

	if res, err := w.Reject(context.Background(), RejectDailyReportInput{
		ID: report.ID, ApproverID: managerID, Feedback: "修正してください",
	}); err != nil || res.IsLeft() {
		t.Fatalf("Reject が失敗: %v %v", err, res.Left())
	}

	// rejected は編集可能
	plan := "指摘事項を修正して再提出"
	upd, err := w.Update(context.Background(), UpdateDailyReportInput{
		ID: report.ID, UserID: userID, NextDayPlan: &plan,
	})
	if err != nil || upd.IsLeft() {
		t.Fatalf("rejected の更新は成功すべき: %v %v", err, upd.Left())
	}

	// 再提出 → 再承認まで通る
	resub, err := w.Submit(context.Background(), SubmitDailyReportInput{ID: report.ID, UserID: userID})
	if err != nil || resub.IsLeft() {
		t.Fatalf("再提出は成功すべき: %v %v", err, resub.Left())
	}
	appr, err := w.Approve(context.Background(), ApproveDailyReportInput{ID: report.ID, ApproverID: managerID})
	if err != nil || appr.IsLeft() {
		t.Fatalf("再提出後の承認は成功すべき: %v %v", err, appr.Left())
	}
	if appr.Right().Status != StatusApproved {
		t.Errorf("期待 approved、実際=%s", appr.Right().Status)
	}
}

// ── インフラ障害の伝播 ──

func TestInfraErrorPropagates(t *testing.T) {
	w, reports, approvers := setupReportWorkflow()
	userID := NewUserID()
	approvers.add(userID, RoleEmployee)
	reports.findErr = context.DeadlineExceeded // 接続断の代用

	_, err := w.Submit(context.Background(), SubmitDailyReportInput{ID: NewDailyReportID(), UserID: userID})
	if err == nil {
		t.Fatal("インフラ障害は error として伝播すべき")
	}
}
