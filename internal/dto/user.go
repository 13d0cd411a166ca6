package dto

// ── ユーザー DTO ──

// CreateUserRequest ユーザー作成要求
type CreateUserRequest struct {
	Email        string `json:"email"        binding:"required"`
	Password     string `json:"password"     binding:"required"`
	Name         string `json:"name"         binding:"required,min=1,max=100"`
	Role         string `json:"role"         binding:"required,oneof=admin manager employee"`
	DepartmentID string `json:"departmentId" binding:"required"`
}

// UpdateUserRequest ユーザー更新要求。nil のフィールドは変更しない
type UpdateUserRequest struct {
	Name         *string `json:"name"         binding:"omitempty,min=1,max=100"`
	Role         *string `json:"role"         binding:"omitempty,oneof=admin manager employee"`
	DepartmentID *string `json:"departmentId"`
	IsActive     *bool   `json:"isActive"`
}

// UserListRequest ユーザー一覧の検索条件
type UserListRequest struct {
	PaginationRequest
	DepartmentID string `form:"departmentId"`
	Role         string `form:"role" binding:"omitempty,oneof=admin manager employee"`
}

// UserResponse ユーザー情報応答（パスワードは含めない）
type UserResponse struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	DepartmentID string `json:"departmentId"`
	IsActive     bool   `json:"isActive"`
	CreatedAt    string `json:"createdAt"`
}
