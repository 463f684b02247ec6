package state

// SongsPlayed returns the all-time count of tracks played to completion.
func (m *Manager) SongsPlayed() (int, error) {
	row := m.db.QueryRow(`SELECT songs_played FROM play_stats WHERE id = 1`)

	var count int
	if err := row.Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// IncrementSongsPlayed bumps the completed-tracks counter and returns the new
// value.
func (m *Manager) IncrementSongsPlayed() (int, error) {
	_, err := m.db.Exec(`
		UPDATE play_stats SET songs_played = songs_played + 1 WHERE id = 1
	`)
	if err != nil {
		return 0, err
	}
	return m.SongsPlayed()
}
