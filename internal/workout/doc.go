package workout

// Package workout holds the workout session: the fixed list of exercises, the
// set highlighted in each row, and the rest timer they share. Views read state
// through snapshots and re-render when a subscriber callback fires.
