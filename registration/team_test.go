package registration

import (
	"testing"

	"github.com/shivamGupta-25/Webster.Shivaji/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eventWithTeamSize(min, max int) events.Event {
	return events.Event{
		ID:                 "test-event",
		Name:               "Test Event",
		TeamSize:           events.Range{Min: min, Max: max},
		RegistrationStatus: events.STATUS_OPEN,
	}
}

func TestTeamFormSelectEvent(t *testing.T) {
	t.Run("solo event suppresses the member section", func(t *testing.T) {
		form := NewTeamForm()
		form.SelectEvent(eventWithTeamSize(1, 1))
		assert.Equal(t, 0, form.MemberCount())
		assert.False(t, form.AddMember())
	})

	t.Run("pre-populates the required minimum", func(t *testing.T) {
		form := NewTeamForm()
		form.SelectEvent(eventWithTeamSize(3, 5))
		assert.Equal(t, 2, form.MemberCount())
	})

	t.Run("shows at least one slot even when min is one", func(t *testing.T) {
		form := NewTeamForm()
		form.SelectEvent(eventWithTeamSize(1, 3))
		assert.Equal(t, 1, form.MemberCount())
	})

	t.Run("reselecting rebinds the bounds", func(t *testing.T) {
		form := NewTeamForm()
		form.SelectEvent(eventWithTeamSize(3, 5))
		form.SelectEvent(eventWithTeamSize(1, 1))
		assert.Equal(t, 0, form.MemberCount())
	})
}

func TestTeamFormAddRemove(t *testing.T) {
	t.Run("count never leaves the allowed range", func(t *testing.T) {
		form := NewTeamForm()
		form.SelectEvent(eventWithTeamSize(2, 4))

		// floor is 1, ceiling is 3
		assert.Equal(t, 1, form.MemberCount())

		assert.True(t, form.AddMember())
		assert.True(t, form.AddMember())
		assert.Equal(t, 3, form.MemberCount())

		// at the ceiling, adds are no-ops
		assert.False(t, form.AddMember())
		assert.Equal(t, 3, form.MemberCount())

		assert.True(t, form.RemoveMember())
		assert.True(t, form.RemoveMember())
		assert.Equal(t, 1, form.MemberCount())

		// at the floor, removes are no-ops
		assert.False(t, form.RemoveMember())
		assert.Equal(t, 1, form.MemberCount())
	})

	t.Run("min of one allows removing down to zero members", func(t *testing.T) {
		form := NewTeamForm()
		form.SelectEvent(eventWithTeamSize(1, 2))
		assert.Equal(t, 1, form.MemberCount())
		assert.True(t, form.RemoveMember())
		assert.Equal(t, 0, form.MemberCount())
	})

	t.Run("removed member data does not resurface", func(t *testing.T) {
		form := NewTeamForm()
		form.SelectEvent(eventWithTeamSize(1, 3))

		require.True(t, form.AddMember())
		stale := validPerson()
		stale.Name = "Stale Member"
		require.NoError(t, form.SetMember(1, stale))

		require.True(t, form.RemoveMember())
		require.True(t, form.AddMember())

		members := form.Members()
		require.Len(t, members, 2)
		assert.Empty(t, members[1].Name)
	})
}

func TestTeamFormValidate(t *testing.T) {
	t.Run("solo event validates no members", func(t *testing.T) {
		form := NewTeamForm()
		form.SelectEvent(eventWithTeamSize(1, 1))
		assert.NoError(t, form.Validate())
	})

	t.Run("failure names the slot", func(t *testing.T) {
		form := NewTeamForm()
		form.SelectEvent(eventWithTeamSize(2, 3))

		bad := validPerson()
		bad.Phone = "12345"
		require.NoError(t, form.SetMember(0, bad))

		regErr := requireValidationFailure(t, form.Validate())
		assert.Equal(t, "Phone", regErr.Field)
		assert.Contains(t, regErr.Message, "Team member 1:")
	})

	t.Run("set member out of range", func(t *testing.T) {
		form := NewTeamForm()
		form.SelectEvent(eventWithTeamSize(1, 2))
		assert.Error(t, form.SetMember(5, validPerson()))
	})
}
