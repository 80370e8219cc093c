// file: dto/application.go
package dto

import "strings"

// SubmitApplicationReq 求职申请表单。通过 multipart 提交，
// resume 文件单独经 FormFile 读取，且永远不会被持久化。
type SubmitApplicationReq struct {
	FullName string `form:"full_name" json:"full_name" binding:"required"`
	Email    string `form:"email" json:"email" binding:"required,email"`
	Position string `form:"position" json:"position" binding:"required"`
}

func (r *SubmitApplicationReq) Normalize() {
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = strings.TrimSpace(r.Email)
	r.Position = strings.ToLower(strings.TrimSpace(r.Position))
}
