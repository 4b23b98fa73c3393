package assignment

import "time"

// Reversal compensates an assignment by returning its cartons to stock.
// At most one exists per assignment.
type Reversal struct {
	id           uint
	assignmentID uint
	reversedBy   uint
	reason       string
	reversedAt   time.Time
}

func ReconstructReversal(id, assignmentID, reversedBy uint, reason string, reversedAt time.Time) *Reversal {
	return &Reversal{
		id:           id,
		assignmentID: assignmentID,
		reversedBy:   reversedBy,
		reason:       reason,
		reversedAt:   reversedAt,
	}
}

func (r *Reversal) ID() uint              { return r.id }
func (r *Reversal) AssignmentID() uint    { return r.assignmentID }
func (r *Reversal) ReversedBy() uint      { return r.reversedBy }
func (r *Reversal) Reason() string        { return r.reason }
func (r *Reversal) ReversedAt() time.Time { return r.reversedAt }

// SetID sets the reversal ID (only for persistence layer use)
func (r *Reversal) SetID(id uint) {
	r.id = id
}
