// file: services/sponsorship_service.go
package services

import (
	"SponsorPortal/database"
	"SponsorPortal/metrics"
	"SponsorPortal/models"
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
)

// TransitionOutcome 区分状态变更的三种结局：
// 成功更新了一行 / 没有匹配行（零行更新不再伪装成成功）/ 出错。
type TransitionOutcome int

const (
	TransitionApplied TransitionOutcome = iota
	TransitionNoMatch
)

// SubmitSponsorship 校验并插入一条赞助请求。
// 必填校验在这里权威执行一次，不信任任何边缘层的检查。
// 插入时省略 status 与 created_at，让数据库默认值生效（Pending / 当前时间）。
// 失败不重试：要么恰好落一行，要么一行不落。
func SubmitSponsorship(req models.SponsorshipRequest) error {
	const op = "services.SubmitSponsorship"

	if strings.TrimSpace(req.Name) == "" ||
		strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.Company) == "" {
		metrics.SubmissionsTotal.WithLabelValues("invalid").Inc()
		return &ValidationError{Message: "Missing required fields (name, email, company)."}
	}
	if req.InterestLevel != "" && !req.InterestLevel.Valid() {
		metrics.SubmissionsTotal.WithLabelValues("invalid").Inc()
		return &ValidationError{Message: "Unknown interest level."}
	}

	if err := database.DB.Omit("Status", "CreatedAt").Create(&req).Error; err != nil {
		metrics.SubmissionsTotal.WithLabelValues("error").Inc()
		return &PersistenceError{Op: op, Err: err}
	}

	metrics.SubmissionsTotal.WithLabelValues("ok").Inc()
	notifySubmitted(req)
	return nil
}

// ListSponsorships 全量读取，created_at 倒序（最新在前）。
// 读失败与空列表是两种可观察结果，调用方必须分开渲染。
func ListSponsorships() ([]models.SponsorshipRequest, error) {
	const op = "services.ListSponsorships"

	var requests []models.SponsorshipRequest
	if err := database.DB.Order("created_at desc").Find(&requests).Error; err != nil {
		return nil, &PersistenceError{Op: op, Err: err}
	}
	return requests, nil
}

// TransitionStatus 把 id 对应行的 status 改为 newStatus，只动这一列。
// 状态集 {Pending,Reviewed,Hired} 内任意迁移都允许（包括自迁移），
// 不强加线性流程。权限被策略层拒绝时返回 AuthorizationError 并保留原始文案。
func TransitionStatus(id uint64, newStatus models.RequestStatus) (TransitionOutcome, error) {
	const op = "services.TransitionStatus"

	if !newStatus.Valid() {
		metrics.TransitionsTotal.WithLabelValues("invalid").Inc()
		return TransitionNoMatch, &ValidationError{Message: "Status must be one of Pending, Reviewed, Hired."}
	}

	tx := database.DB.Model(&models.SponsorshipRequest{}).
		Where("id = ?", id).
		Update("status", newStatus)
	if tx.Error != nil {
		if authErr := classifyAuthError(tx.Error); authErr != nil {
			metrics.TransitionsTotal.WithLabelValues("denied").Inc()
			return TransitionNoMatch, authErr
		}
		metrics.TransitionsTotal.WithLabelValues("error").Inc()
		return TransitionNoMatch, &PersistenceError{Op: op, Err: tx.Error}
	}

	if tx.RowsAffected == 0 {
		metrics.TransitionsTotal.WithLabelValues("no_match").Inc()
		return TransitionNoMatch, nil
	}

	metrics.TransitionsTotal.WithLabelValues("applied").Inc()
	return TransitionApplied, nil
}

// classifyAuthError 识别 MySQL 权限类错误（相当于托管库的行级安全拒绝），
// 保留服务端自己的报错文案。其余错误交给调用方按持久化错误处理。
func classifyAuthError(err error) error {
	var mysqlErr *mysql.MySQLError
	if !errors.As(err, &mysqlErr) {
		return nil
	}
	switch mysqlErr.Number {
	case 1142, 1143, 1227: // command denied / column denied / 权限不足
		return &AuthorizationError{Message: mysqlErr.Message}
	}
	return nil
}
