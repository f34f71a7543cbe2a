package repositories

import "github.com/alumconnect/backend/internal/app/models"

// Slot arithmetic for project positions. The transactions in
// ApplicationRepository and ProjectRepository read the position row under
// FOR UPDATE and write back what these functions decide, so the rules stay
// testable without a database.

// consumesSlot reports whether accepting an application moves it into a slot.
// Re-accepting an already accepted application must not double-count.
func consumesSlot(prior models.ApplicationStatus) bool {
	return prior != models.StatusAccepted
}

// freesSlot reports whether moving an application out of its current status
// gives a slot back. Only accepted applications hold one.
func freesSlot(current models.ApplicationStatus) bool {
	return current == models.StatusAccepted
}

// hasOpenSlot reports whether the position can take one more member
func hasOpenSlot(filled, count int) bool {
	return filled < count
}

// fillSlot consumes one slot, returning the new fill level and whether the
// position keeps recruiting.
func fillSlot(filled, count int) (int, bool) {
	filled++
	return filled, filled < count
}

// releaseSlot frees one slot and reopens the position. The floor keeps a
// stray release from driving the count negative.
func releaseSlot(filled int) (int, bool) {
	if filled > 0 {
		filled--
	}
	return filled, true
}
