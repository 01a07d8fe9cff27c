package game

// Snapshot is a read-only view of a sector session for transport to the
// client. It never leaks correctness flags before the reveal.
type Snapshot struct {
	ID         string      `json:"id"`
	VillageID  int64       `json:"villageId"`
	Sector     Sector      `json:"sector"`
	ActiveGame Kind        `json:"activeGame,omitempty"`
	Completed  []Kind      `json:"completed"`
	Score      SectorScore `json:"score"`
	Finished   bool        `json:"finished"`

	Allocation *AllocationView `json:"allocation,omitempty"`
	Challenge  *ChallengeView  `json:"challenge,omitempty"`
	Quiz       *QuizView       `json:"quiz,omitempty"`
}

type AllocationView struct {
	Phase            AllocationPhase `json:"phase"`
	Available        []ResourceItem  `json:"available"`
	Prioritized      []ResourceItem  `json:"prioritized"`
	RemainingSeconds int             `json:"remainingSeconds"`
	Score            int             `json:"score,omitempty"`
}

type ChallengeView struct {
	Index            int       `json:"index"`
	Total            int       `json:"total"`
	Current          Challenge `json:"current"`
	SelectedOption   *int      `json:"selectedOption,omitempty"`
	RemainingSeconds int       `json:"remainingSeconds"`
	Score            int       `json:"score"`
}

type QuizView struct {
	Index            int          `json:"index"`
	Total            int          `json:"total"`
	Current          QuizQuestion `json:"current"`
	SelectedOption   string       `json:"selectedOption,omitempty"`
	CorrectOption    string       `json:"correctOption,omitempty"`
	Explanation      string       `json:"explanation,omitempty"`
	RemainingSeconds int          `json:"remainingSeconds"`
	Score            int          `json:"score"`
}

// State builds a transport snapshot of the session.
func (s *SectorSession) State() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		ID:         s.ID,
		VillageID:  s.VillageID,
		Sector:     s.Sector,
		ActiveGame: s.active,
		Completed:  make([]Kind, 0, len(s.completed)),
		Score:      s.score,
		Finished:   s.finished,
	}
	for _, k := range foldOrder {
		if s.completed[k] {
			snap.Completed = append(snap.Completed, k)
		}
	}

	now := s.now()

	if g := s.allocation; g != nil {
		// Copy the item slices: Prioritize and Reorder shuffle the
		// game's backing arrays in place, and the snapshot is read
		// after the lock is released.
		v := &AllocationView{
			Phase:            g.Phase(),
			Available:        append([]ResourceItem(nil), g.Available()...),
			Prioritized:      append([]ResourceItem(nil), g.Prioritized()...),
			RemainingSeconds: g.Countdown().RemainingSeconds(now),
		}
		if g.Terminal() {
			v.Score = g.score
		}
		snap.Allocation = v
	}

	if g := s.challenge; g != nil && !g.Terminal() {
		v := &ChallengeView{
			Index:            g.Index(),
			Total:            g.Total(),
			Current:          g.Current(),
			RemainingSeconds: g.Countdown().RemainingSeconds(now),
			Score:            g.Score(),
		}
		if id, ok := g.SelectedOption(); ok {
			v.SelectedOption = &id
		}
		snap.Challenge = v
	}

	if g := s.quiz; g != nil && !g.Terminal() {
		cur := g.Current()
		v := &QuizView{
			Index:            g.Index(),
			Total:            g.Total(),
			Current:          cur,
			RemainingSeconds: g.Countdown().RemainingSeconds(now),
			Score:            g.Score(),
		}
		if id, ok := g.Answer(g.Index()); ok {
			v.SelectedOption = id
			v.Explanation = cur.Explanation
			for _, opt := range cur.Options {
				if opt.Correct {
					v.CorrectOption = opt.ID
				}
			}
		}
		snap.Quiz = v
	}

	return snap
}
