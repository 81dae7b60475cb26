package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to HearingStatus
		want     bool
	}{
		{StatusPending, StatusApproved, true},
		{StatusPending, StatusRejected, true},
		{StatusPending, StatusCancelled, true},
		{StatusApproved, StatusCancelled, true},
		{StatusApproved, StatusRejected, false},
		{StatusApproved, StatusPending, false},
		{StatusApproved, StatusApproved, false},
		{StatusPending, StatusPending, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CanTransition(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestCheckTransition_FromTerminalStates(t *testing.T) {
	all := []HearingStatus{StatusPending, StatusApproved, StatusRejected, StatusCancelled}

	for _, from := range []HearingStatus{StatusRejected, StatusCancelled} {
		require.True(t, from.IsTerminal())
		for _, to := range all {
			err := CheckTransition(from, to)
			assert.ErrorIs(t, err, ErrInvalidTransition, "%s -> %s", from, to)
		}
	}
}

func TestFormatCaseNumber(t *testing.T) {
	assert.Equal(t, "CASO-1001-2025", FormatCaseNumber(1001, 2025))
}

func TestHearingRequest_Window(t *testing.T) {
	start := time.Date(2025, time.January, 7, 10, 0, 0, 0, time.UTC)
	h := &HearingRequest{HearingDateTime: start}

	w := h.Window(DefaultHearingDuration)
	assert.Equal(t, start, w.Start)
	assert.Equal(t, start.Add(2*time.Hour), w.End)
}

func TestWindow_Overlaps(t *testing.T) {
	base := time.Date(2025, time.January, 7, 10, 0, 0, 0, time.UTC)
	w := WindowFrom(base, 2*time.Hour)

	assert.True(t, w.Overlaps(WindowFrom(base.Add(time.Hour), 2*time.Hour)))
	assert.True(t, w.Overlaps(WindowFrom(base.Add(-time.Hour), 2*time.Hour)))
	assert.True(t, w.Overlaps(WindowFrom(base.Add(30*time.Minute), 30*time.Minute)))
	// соприкосновение границами - не пересечение
	assert.False(t, w.Overlaps(WindowFrom(base.Add(2*time.Hour), time.Hour)))
	assert.False(t, w.Overlaps(WindowFrom(base.Add(-time.Hour), time.Hour)))
}

func TestNewWindow(t *testing.T) {
	base := time.Date(2025, time.January, 7, 10, 0, 0, 0, time.UTC)

	_, err := NewWindow(base, base)
	assert.ErrorIs(t, err, ErrInvalidWindow)

	w, err := NewWindow(base, base.Add(time.Minute))
	require.NoError(t, err)
	assert.True(t, w.Contains(base))
	assert.False(t, w.Contains(base.Add(time.Minute)))
}

func TestPrincipal_CanAccess(t *testing.T) {
	h := &HearingRequest{RequestedBy: 7}

	assert.True(t, Principal{UserID: 7, Roles: NewRoleSet("REQUESTS")}.CanAccess(h))
	assert.True(t, Principal{UserID: 1, Roles: NewRoleSet("ADMIN")}.CanAccess(h))
	assert.False(t, Principal{UserID: 1, Roles: NewRoleSet("RECEPTIONIST")}.CanAccess(h))
}

func TestRoleSet(t *testing.T) {
	roles := NewRoleSet("CONCILIATOR", "ARCHIVE")

	assert.True(t, roles.Has(UserRoleConciliator))
	assert.False(t, roles.Has(UserRoleAdmin))
	assert.True(t, roles.HasAny(UserRoleAdmin, UserRoleArchive))
	assert.False(t, roles.HasAny())
	assert.True(t, Principal{Roles: roles}.CanWriteDocuments())
	assert.False(t, Principal{Roles: NewRoleSet("ARCHIVE")}.CanWriteDocuments())
}
