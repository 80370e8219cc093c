// file: services/admin_view.go
package services

import (
	"SponsorPortal/models"
	"sync"
)

// FilterAll 是恒等过滤器，其余合法过滤值就是三个状态本身
const FilterAll = "All"

// ValidFilter 判断 filter 是否为 All/Pending/Reviewed/Hired 之一
func ValidFilter(filter string) bool {
	return filter == FilterAll || models.RequestStatus(filter).Valid()
}

// TransitionFunc 是视图发起状态变更时调用的远端操作
type TransitionFunc func(id uint64, newStatus models.RequestStatus) (TransitionOutcome, error)

// AdminView 管理后台的会话级缓存：激活时用列表结果播种一次，
// 之后只靠成功的状态变更打本地补丁，不自动刷新。
// 每个会话独占一份，绝不跨会话共享；过滤是纯本地操作，不改动缓存本身。
type AdminView struct {
	mu       sync.Mutex
	seeded   bool
	requests []models.SponsorshipRequest
	inFlight *uint64
}

func NewAdminView() *AdminView {
	return &AdminView{}
}

// Seed 播种（或显式刷新）缓存。持有传入切片的私有拷贝。
func (v *AdminView) Seed(rows []models.SponsorshipRequest) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.requests = make([]models.SponsorshipRequest, len(rows))
	copy(v.requests, rows)
	v.seeded = true
}

// Seeded 返回缓存是否已播种过
func (v *AdminView) Seeded() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.seeded
}

// Size 返回未过滤缓存的行数
func (v *AdminView) Size() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.requests)
}

// Filtered 返回过滤后的视图，保持相对顺序。
// FilterAll 原样返回全部缓存行；返回的是拷贝，调用方改不到缓存。
func (v *AdminView) Filtered(filter string) []models.SponsorshipRequest {
	v.mu.Lock()
	defer v.mu.Unlock()

	out := make([]models.SponsorshipRequest, 0, len(v.requests))
	for _, req := range v.requests {
		if filter == FilterAll || string(req.Status) == filter {
			out = append(out, req)
		}
	}
	return out
}

// Transition 经由视图发起一次状态变更：
//   - 同一会话同时只允许一笔变更在途，第二笔在本地直接拒绝，不会触达数据库；
//   - apply 返回 nil 错误后才对缓存打补丁（确认成功后的乐观本地更新），
//     失败则缓存保持原样；
//   - apply 在锁外执行，它是一次挂起的远端调用。
func (v *AdminView) Transition(id uint64, newStatus models.RequestStatus, apply TransitionFunc) (TransitionOutcome, error) {
	v.mu.Lock()
	if v.inFlight != nil {
		v.mu.Unlock()
		return TransitionNoMatch, ErrTransitionInFlight
	}
	v.inFlight = &id
	v.mu.Unlock()

	outcome, err := apply(id, newStatus)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.inFlight = nil

	if err != nil {
		return outcome, err
	}

	// 无匹配行时补丁自然落空，这与原始客户端“无错误即打补丁”的行为一致，
	// outcome 让调用方仍能区分两种情况。
	for i := range v.requests {
		if v.requests[i].ID == id {
			v.requests[i].Status = newStatus
		}
	}
	return outcome, nil
}
