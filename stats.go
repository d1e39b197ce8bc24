package hookbook

// TypeHours aggregates logged hours for one piece type.
type TypeHours struct {
	TotalHours   float64
	Count        int
	AverageHours float64
}

// CatalogStats is an overall view of time spent across the catalog.
type CatalogStats struct {
	// TotalHours is every logged hour, regardless of status or archival.
	TotalHours float64

	PiecesCompleted  int
	PiecesInProgress int

	// ByType aggregates completed pieces with logged hours, per type.
	ByType map[PieceType]TypeHours
}

// Stats summarizes logged work across the whole snapshot, archived
// pieces included.
func Stats(snap Snapshot) CatalogStats {
	stats := CatalogStats{ByType: make(map[PieceType]TypeHours)}

	for _, p := range AllIncludingArchived(snap.Pieces) {
		hours := p.HoursLogged()
		stats.TotalHours += hours

		switch {
		case p.Completed():
			stats.PiecesCompleted++
		case p.WorkStatus == WorkInProgress:
			stats.PiecesInProgress++
		}

		if p.Completed() && hours > 0 {
			th := stats.ByType[p.Type]
			th.TotalHours += hours
			th.Count++
			stats.ByType[p.Type] = th
		}
	}

	for pieceType, th := range stats.ByType {
		th.AverageHours = th.TotalHours / float64(th.Count)
		stats.ByType[pieceType] = th
	}

	return stats
}
