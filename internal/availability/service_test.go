package availability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ghpham11a/xp-scheduler-sub000/internal/schedule"
)

// memRepository is an in-memory Repository for service tests.
type memRepository struct {
	slots map[string][]schedule.TimeSlot
}

func newMemRepository() *memRepository {
	return &memRepository{slots: make(map[string][]schedule.TimeSlot)}
}

func (r *memRepository) ListAll(ctx context.Context) ([]*Availability, error) {
	var out []*Availability
	for userID, slots := range r.slots {
		out = append(out, &Availability{UserID: userID, Slots: slots})
	}
	return out, nil
}

func (r *memRepository) GetSlots(ctx context.Context, userID string) ([]schedule.TimeSlot, error) {
	return append([]schedule.TimeSlot{}, r.slots[userID]...), nil
}

func (r *memRepository) ReplaceSlots(ctx context.Context, userID string, slots []schedule.TimeSlot) error {
	r.slots[userID] = append([]schedule.TimeSlot{}, slots...)
	return nil
}

func TestReplaceSlotsMergesBeforePersisting(t *testing.T) {
	repo := newMemRepository()
	svc := NewService(repo)

	a, err := svc.ReplaceSlots(context.Background(), "user-1", []schedule.TimeSlot{
		{Date: "2025-06-02", StartHour: 9, EndHour: 10},
		{Date: "2025-06-02", StartHour: 10, EndHour: 11.5},
	})
	require.NoError(t, err)
	require.Equal(t, []schedule.TimeSlot{{Date: "2025-06-02", StartHour: 9, EndHour: 11.5}}, a.Slots)
	require.Equal(t, a.Slots, repo.slots["user-1"], "stored list must be the merged list")
}

func TestReplaceSlotsRejectsMalformedInput(t *testing.T) {
	svc := NewService(newMemRepository())

	_, err := svc.ReplaceSlots(context.Background(), "user-1", []schedule.TimeSlot{
		{Date: "2025-06-02", StartHour: 12, EndHour: 9},
	})
	require.ErrorIs(t, err, schedule.ErrInvalidHours)

	_, err = svc.ReplaceSlots(context.Background(), "user-1", []schedule.TimeSlot{
		{Date: "bad-date", StartHour: 9, EndHour: 10},
	})
	require.ErrorIs(t, err, schedule.ErrInvalidDate)
}

func TestGetByUserWithoutAvailability(t *testing.T) {
	svc := NewService(newMemRepository())

	a, err := svc.GetByUser(context.Background(), "user-9")
	require.NoError(t, err)
	require.Equal(t, "user-9", a.UserID)
	require.Empty(t, a.Slots)
}

func TestToggleBlock(t *testing.T) {
	repo := newMemRepository()
	svc := NewService(repo)
	ctx := context.Background()

	// Toggle on: block appears
	a, err := svc.ToggleBlock(ctx, "user-1", "2025-06-02", 9)
	require.NoError(t, err)
	require.Equal(t, []schedule.TimeSlot{{Date: "2025-06-02", StartHour: 9, EndHour: 9.5}}, a.Slots)

	// Adjacent toggle merges
	a, err = svc.ToggleBlock(ctx, "user-1", "2025-06-02", 9.5)
	require.NoError(t, err)
	require.Equal(t, []schedule.TimeSlot{{Date: "2025-06-02", StartHour: 9, EndHour: 10}}, a.Slots)

	// Toggle off: block is carved back out
	a, err = svc.ToggleBlock(ctx, "user-1", "2025-06-02", 9)
	require.NoError(t, err)
	require.Equal(t, []schedule.TimeSlot{{Date: "2025-06-02", StartHour: 9.5, EndHour: 10}}, a.Slots)
}

func TestToggleBlockRejectsUnalignedHour(t *testing.T) {
	svc := NewService(newMemRepository())

	_, err := svc.ToggleBlock(context.Background(), "user-1", "2025-06-02", 9.25)
	require.ErrorIs(t, err, ErrInvalidBlockHour)
}

func TestApplyPreset(t *testing.T) {
	repo := newMemRepository()
	svc := NewService(repo)
	ctx := context.Background()

	a, err := svc.ApplyPreset(ctx, "user-1", "2025-06-02", schedule.PresetMorning)
	require.NoError(t, err)
	require.Equal(t, []schedule.TimeSlot{{Date: "2025-06-02", StartHour: 6, EndHour: 12}}, a.Slots)

	a, err = svc.ApplyPreset(ctx, "user-1", "2025-06-02", schedule.PresetClear)
	require.NoError(t, err)
	require.Empty(t, a.Slots)

	_, err = svc.ApplyPreset(ctx, "user-1", "2025-06-02", schedule.Preset("nonsense"))
	require.ErrorIs(t, err, schedule.ErrUnknownPreset)
}

func TestSummary(t *testing.T) {
	repo := newMemRepository()
	svc := NewService(repo)
	ctx := context.Background()

	_, err := svc.ReplaceSlots(ctx, "user-1", []schedule.TimeSlot{
		{Date: "2025-06-02", StartHour: 9, EndHour: 12},
		{Date: "2025-06-03", StartHour: 14, EndHour: 15.5},
	})
	require.NoError(t, err)

	s, err := svc.Summary(ctx, "user-1")
	require.NoError(t, err)
	require.Equal(t, 4.5, s.TotalHours)
	require.Equal(t, 2, s.DaysWithAvailability)
}
