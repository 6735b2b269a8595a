package poll

type VoteInput struct {
	OptionIDs []string `json:"optionIds" binding:"required,min=1"`
}

type OptionResult struct {
	OptionID string `json:"optionId"`
	Text     string `json:"text"`
	Votes    int64  `json:"votes"`
}

// Results is the tally shape returned by the results endpoint and pushed to
// live subscribers after each accepted vote.
type Results struct {
	PollID     string         `json:"pollId"`
	TotalVotes int64          `json:"totalVotes"`
	Options    []OptionResult `json:"options"`
}
