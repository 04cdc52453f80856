package imagery

// PreloadSet collects URLs for <link rel="preload"> hints in first-added
// order, without duplicates.
type PreloadSet struct {
	seen map[string]struct{}
	urls []string
}

// Add records the URL of res unless it is empty or already present.
func (s *PreloadSet) Add(res Resolution) {
	if res.URL == "" {
		return
	}
	if s.seen == nil {
		s.seen = make(map[string]struct{})
	}
	if _, ok := s.seen[res.URL]; ok {
		return
	}
	s.seen[res.URL] = struct{}{}
	s.urls = append(s.urls, res.URL)
}

// URLs returns the collected URLs.
func (s *PreloadSet) URLs() []string {
	return s.urls
}
