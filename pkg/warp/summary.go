package warp

// Summary accumulates classification counts across a batch run. Skipped
// events are counted separately and excluded from Total.
type Summary struct {
	Total    int `json:"total"`
	Doors    int `json:"doors"`
	Carpets  int `json:"carpets"`
	DestWarp int `json:"dest_warp"`
	Edge     int `json:"edge"`
	Skipped  int `json:"skipped,omitempty"`
}

// Add records one classified warp.
func (s *Summary) Add(r Result) {
	s.Total++
	switch r.Kind {
	case Door:
		s.Doors++
	case Carpet:
		s.Carpets++
	}
	switch r.Method {
	case ByDestWarp:
		s.DestWarp++
	case ByEdge:
		s.Edge++
	}
}

// Skip records one warp dropped due to a resolution error.
func (s *Summary) Skip() {
	s.Skipped++
}
