package typing

// Roster is the ordered enemy list for one playthrough. It only grows once,
// when the boss is appended; after that the index never wraps.
type Roster struct {
	enemies  []*Enemy
	index    int
	bossMode bool
}

// NewRoster creates a roster positioned at the first enemy.
// An empty roster is a data error and the session must not start.
func NewRoster(enemies []*Enemy) (*Roster, error) {
	if len(enemies) == 0 {
		return nil, &DataError{Source: "roster", Err: ErrEmptyRoster}
	}
	list := make([]*Enemy, 0, len(enemies))
	for _, e := range enemies {
		if e != nil {
			list = append(list, e)
		}
	}
	if len(list) == 0 {
		return nil, &DataError{Source: "roster", Err: ErrEmptyRoster}
	}
	return &Roster{enemies: list}, nil
}

// Current returns the enemy being fought.
func (r *Roster) Current() *Enemy {
	return r.enemies[r.index]
}

// Index returns the current enemy index.
func (r *Roster) Index() int {
	return r.index
}

// Len returns the number of enemies, including an injected boss.
func (r *Roster) Len() int {
	return len(r.enemies)
}

// At returns the enemy at i, or nil if out of range.
func (r *Roster) At(i int) *Enemy {
	if i < 0 || i >= len(r.enemies) {
		return nil
	}
	return r.enemies[i]
}

// BossMode reports whether the boss has been injected.
func (r *Roster) BossMode() bool {
	return r.bossMode
}

// injectBoss appends the boss and enters boss mode. Only the first call has
// an effect.
func (r *Roster) injectBoss(boss *Enemy) bool {
	if r.bossMode || boss == nil {
		return false
	}
	r.enemies = append(r.enemies, boss)
	r.bossMode = true
	return true
}

// step moves the pointer past the current enemy without wrapping.
func (r *Roster) step() {
	r.index++
}

// settle wraps an overflowed index back to 0 outside boss mode. In boss mode
// the index is clamped to the last enemy instead.
func (r *Roster) settle() {
	if r.index < len(r.enemies) {
		return
	}
	if r.bossMode {
		r.index = len(r.enemies) - 1
		return
	}
	r.index = 0
}
