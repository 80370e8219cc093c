// file: services/admin_view_test.go
package services

import (
	"SponsorPortal/models"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededView(rows ...models.SponsorshipRequest) *AdminView {
	v := NewAdminView()
	v.Seed(rows)
	return v
}

func alwaysApplied(id uint64, newStatus models.RequestStatus) (TransitionOutcome, error) {
	return TransitionApplied, nil
}

func TestAdminViewFilterIdentityAndSubset(t *testing.T) {
	rows := []models.SponsorshipRequest{
		{ID: 3, Status: models.StatusReviewed},
		{ID: 2, Status: models.StatusPending},
		{ID: 1, Status: models.StatusReviewed},
	}
	v := seededView(rows...)

	all := v.Filtered(FilterAll)
	assert.Equal(t, rows, all)

	reviewed := v.Filtered("Reviewed")
	require.Len(t, reviewed, 2)
	// 相对顺序保持不变
	assert.EqualValues(t, 3, reviewed[0].ID)
	assert.EqualValues(t, 1, reviewed[1].ID)
}

func TestAdminViewFilteredReturnsCopy(t *testing.T) {
	v := seededView(models.SponsorshipRequest{ID: 1, Status: models.StatusPending})

	out := v.Filtered(FilterAll)
	out[0].Status = models.StatusHired

	// 过滤只影响展示，不动底层缓存
	assert.Equal(t, models.StatusPending, v.Filtered(FilterAll)[0].Status)
}

// 对应场景：Pending 过滤下成功迁移后，仍生效的过滤器让视图变空，
// 但未过滤缓存完好且已打上补丁。
func TestAdminViewTransitionThenStaleFilter(t *testing.T) {
	v := seededView(
		models.SponsorshipRequest{ID: 1, Status: models.StatusPending},
		models.SponsorshipRequest{ID: 2, Status: models.StatusHired},
	)

	view := v.Filtered("Pending")
	require.Len(t, view, 1)
	assert.EqualValues(t, 1, view[0].ID)

	outcome, err := v.Transition(1, models.StatusReviewed, alwaysApplied)
	require.NoError(t, err)
	assert.Equal(t, TransitionApplied, outcome)

	assert.Empty(t, v.Filtered("Pending"))
	all := v.Filtered(FilterAll)
	require.Len(t, all, 2)
	assert.Equal(t, models.StatusReviewed, all[0].Status)
	assert.Equal(t, models.StatusHired, all[1].Status)
	assert.Equal(t, 2, v.Size())
}

func TestAdminViewFailureLeavesCacheUntouched(t *testing.T) {
	v := seededView(models.SponsorshipRequest{ID: 1, Status: models.StatusPending})

	failing := func(id uint64, newStatus models.RequestStatus) (TransitionOutcome, error) {
		return TransitionNoMatch, &AuthorizationError{Message: "row-level policy rejected the write"}
	}
	_, err := v.Transition(1, models.StatusHired, failing)
	var authErr *AuthorizationError
	require.ErrorAs(t, err, &authErr)

	// 失败前绝不预先打补丁
	assert.Equal(t, models.StatusPending, v.Filtered(FilterAll)[0].Status)
}

func TestAdminViewNoMatchPatchIsNoOp(t *testing.T) {
	v := seededView(models.SponsorshipRequest{ID: 1, Status: models.StatusPending})

	noMatch := func(id uint64, newStatus models.RequestStatus) (TransitionOutcome, error) {
		return TransitionNoMatch, nil
	}
	outcome, err := v.Transition(42, models.StatusHired, noMatch)
	require.NoError(t, err)
	assert.Equal(t, TransitionNoMatch, outcome)
	assert.Equal(t, models.StatusPending, v.Filtered(FilterAll)[0].Status)
}

func TestAdminViewSingleTransitionInFlight(t *testing.T) {
	v := seededView(
		models.SponsorshipRequest{ID: 1, Status: models.StatusPending},
		models.SponsorshipRequest{ID: 2, Status: models.StatusPending},
	)

	started := make(chan struct{})
	release := make(chan struct{})
	slow := func(id uint64, newStatus models.RequestStatus) (TransitionOutcome, error) {
		close(started)
		<-release
		return TransitionApplied, nil
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		outcome, err := v.Transition(1, models.StatusReviewed, slow)
		assert.NoError(t, err)
		assert.Equal(t, TransitionApplied, outcome)
	}()
	<-started

	// 第二笔在本地被拒，apply 根本不会被调用
	_, err := v.Transition(2, models.StatusHired, func(id uint64, newStatus models.RequestStatus) (TransitionOutcome, error) {
		t.Error("second transition must not reach the datastore")
		return TransitionNoMatch, nil
	})
	require.ErrorIs(t, err, ErrTransitionInFlight)

	close(release)
	wg.Wait()

	// 第一笔完成后保护解除
	outcome, err := v.Transition(2, models.StatusHired, alwaysApplied)
	require.NoError(t, err)
	assert.Equal(t, TransitionApplied, outcome)

	all := v.Filtered(FilterAll)
	assert.Equal(t, models.StatusReviewed, all[0].Status)
	assert.Equal(t, models.StatusHired, all[1].Status)
}

func TestValidFilter(t *testing.T) {
	for _, ok := range []string{"All", "Pending", "Reviewed", "Hired"} {
		assert.True(t, ValidFilter(ok))
	}
	for _, bad := range []string{"", "all", "Archived"} {
		assert.False(t, ValidFilter(bad))
	}
}
