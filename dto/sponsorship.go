// file: dto/sponsorship.go
package dto

import "strings"

// ========== 请求 DTO ==========

type SubmitSponsorshipReq struct {
	// 规范字段（snake_case）
	Name          string `json:"name"`
	Email         string `json:"email"`
	Company       string `json:"company"`
	Website       string `json:"website"`
	InterestLevel string `json:"interest_level"`
	Message       string `json:"message"`

	// 仅用于兼容旧客户端（camelCase 变体），别名与上面 tag 不重复
	InterestLevelCamel string `json:"interestLevel"`
}

// Normalize 将 camelCase 别名归一化到 snake_case，并做轻量清洗。
// 这里只是边缘层的整理，必填校验由 Submission Service 再做一次，
// 不依赖任何客户端检查。
func (r *SubmitSponsorshipReq) Normalize() {
	if r.InterestLevel == "" && r.InterestLevelCamel != "" {
		r.InterestLevel = r.InterestLevelCamel
	}

	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Company = strings.TrimSpace(r.Company)
	r.Website = strings.TrimSpace(r.Website)
	r.InterestLevel = strings.TrimSpace(r.InterestLevel)
	r.Message = strings.TrimSpace(r.Message)
}

type UpdateStatusReq struct {
	Status string `json:"status" binding:"required"`
}

// ========== 响应 DTO ==========

// AdminSponsorshipItemResp 后台列表单行
type AdminSponsorshipItemResp struct {
	ID            uint64 `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Company       string `json:"company"`
	Website       string `json:"website,omitempty"`
	InterestLevel string `json:"interest_level,omitempty"`
	Message       string `json:"message,omitempty"`
	Status        string `json:"status"`
	CreatedAt     string `json:"created_at"`
}
