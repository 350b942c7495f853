package registration

import (
	"errors"
	"fmt"

	"github.com/shivamGupta-25/Webster.Shivaji/events"
)

// TeamForm is the team-size-driven state machine behind the registration
// form: a variable-length list of team-member slots whose length is bounded
// by the selected event's team size. The registrant always occupies one
// slot, so an event allowing teams of Min..Max people solicits between
// max(0, Min-1) and Max-1 team members here.
type TeamForm struct {
	event    events.Event
	selected bool
	members  []PersonInfo
}

func NewTeamForm() *TeamForm {
	return &TeamForm{}
}

// SelectEvent rebinds the form to an event. Solo events suppress the
// team-member section entirely; otherwise the slot count is pre-populated
// with the minimum required beyond the registrant, but never less than one
// so the section is visible.
func (f *TeamForm) SelectEvent(event events.Event) {
	f.event = event
	f.selected = true

	if event.TeamSize.Solo() {
		f.members = nil
		return
	}

	min, max := event.TeamSize.MemberBounds()
	count := min
	if count < 1 {
		count = 1
	}
	if count > max {
		count = max
	}
	f.resize(count)
}

// AddMember opens one more slot. Returns false without changing anything
// once the ceiling (Max-1 members) is reached.
func (f *TeamForm) AddMember() bool {
	if !f.selected || f.event.TeamSize.Solo() {
		return false
	}

	_, max := f.event.TeamSize.MemberBounds()
	if len(f.members) >= max {
		return false
	}
	f.resize(len(f.members) + 1)
	return true
}

// RemoveMember drops the highest-indexed slot, data included, so stale
// entries cannot resurface if the count grows again. Returns false at the
// floor (max(0, Min-1) members).
func (f *TeamForm) RemoveMember() bool {
	if !f.selected || f.event.TeamSize.Solo() {
		return false
	}

	min, _ := f.event.TeamSize.MemberBounds()
	if len(f.members) <= min {
		return false
	}
	f.resize(len(f.members) - 1)
	return true
}

func (f *TeamForm) SetMember(i int, p PersonInfo) error {
	if i < 0 || i >= len(f.members) {
		return fmt.Errorf("no team member slot at index %d", i)
	}
	f.members[i] = p
	return nil
}

func (f *TeamForm) MemberCount() int {
	return len(f.members)
}

// Members returns a copy of the current slots.
func (f *TeamForm) Members() []PersonInfo {
	out := make([]PersonInfo, len(f.members))
	copy(out, f.members)
	return out
}

// Validate checks every open slot against the shared person schema and
// surfaces the first failure, prefixed with the slot number.
func (f *TeamForm) Validate() error {
	for i := range f.members {
		if err := f.members[i].Validate(); err != nil {
			var regErr *Error
			if errors.As(err, &regErr) {
				return NewValidationFailedError(regErr.Field,
					fmt.Sprintf("Team member %d: %s", i+1, regErr.Message))
			}
			return err
		}
	}
	return nil
}

// resize reallocates instead of reslicing: a shrink followed by a grow must
// produce zeroed slots, not the previously removed member's data.
func (f *TeamForm) resize(n int) {
	next := make([]PersonInfo, n)
	copy(next, f.members)
	f.members = next
}
