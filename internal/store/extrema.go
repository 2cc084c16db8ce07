package store

// Extrema is the running minimum and maximum of every weight in a log.
// Valid is false exactly when the log is empty.
type Extrema struct {
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Valid bool    `json:"-"`
}

// UpdateExtrema folds w into e.
func UpdateExtrema(e Extrema, w float64) Extrema {
	if !e.Valid {
		return Extrema{Min: w, Max: w, Valid: true}
	}
	return Extrema{Min: min(e.Min, w), Max: max(e.Max, w), Valid: true}
}
