package centerline

// cleanup drops deactivated and too-short centerlines, merges duplicates by
// canonical key, and returns the final list in creation order.
func (r *run) cleanup() []Centerline {
	byKey := make(map[string]*Centerline)
	var kept []*Centerline

	for _, c := range r.lines {
		if !c.active || c.Length() < r.cfg.MinLength {
			continue
		}
		if prev, ok := byKey[c.Key()]; ok {
			prev.addSources(c.SourceIDs)
			continue
		}
		byKey[c.Key()] = c
		kept = append(kept, c)
	}

	out := make([]Centerline, 0, len(kept))
	for _, c := range kept {
		out = append(out, *c)
	}
	return out
}
