package models

// Verdict is the oracle's structured judgment of a guess. UserGuess is the
// oracle-normalized (singular, lowercase) form of the player's guess and
// becomes the next subject when Beats is true.
type Verdict struct {
	UserGuess      string `json:"user_guess"`
	Beats          bool   `json:"beats"`
	Reason         string `json:"reason"`
	UserGuessEmoji string `json:"user_guess_emoji"`
	IsRepeatGuess  bool   `json:"is_repeat_guess"`
}
