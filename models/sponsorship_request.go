// file: models/sponsorship_request.go
package models

import (
	"time"
)

// 自定义请求状态与赞助级别类型
type RequestStatus string
type InterestLevel string

const (
	StatusPending  RequestStatus = "Pending"
	StatusReviewed RequestStatus = "Reviewed"
	StatusHired    RequestStatus = "Hired"

	LevelBronze InterestLevel = "Bronze"
	LevelSilver InterestLevel = "Silver"
	LevelGold   InterestLevel = "Gold"
	LevelCustom InterestLevel = "Custom"
)

// Valid 判断 s 是否为三个可持久化状态之一
func (s RequestStatus) Valid() bool {
	switch s {
	case StatusPending, StatusReviewed, StatusHired:
		return true
	}
	return false
}

// Valid 判断 l 是否为已知的赞助级别。该列可选，空值由调用方处理。
func (l InterestLevel) Valid() bool {
	switch l {
	case LevelBronze, LevelSilver, LevelGold, LevelCustom:
		return true
	}
	return false
}

// SponsorshipRequest 对应 portal_sponsorship_requests 表。
// status 和 created_at 的默认值由数据库负责填充，应用层在插入时省略这两列。
type SponsorshipRequest struct {
	ID            uint64        `gorm:"primarykey" json:"id"`
	Name          string        `gorm:"size:100;not null" json:"name"`
	Email         string        `gorm:"size:255;not null" json:"email"`
	Company       string        `gorm:"size:100;not null" json:"company"`
	Website       string        `gorm:"size:255" json:"website,omitempty"`
	InterestLevel InterestLevel `gorm:"size:20" json:"interest_level,omitempty"`
	Message       string        `gorm:"type:text" json:"message,omitempty"`
	Status        RequestStatus `gorm:"size:20;not null;default:'Pending'" json:"status"`
	CreatedAt     time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP;index" json:"created_at"`
}

func (SponsorshipRequest) TableName() string {
	return "portal_sponsorship_requests"
}
