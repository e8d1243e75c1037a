package user

type ProfileResponse struct {
	ID                   int64  `json:"id"`
	Nickname             string `json:"nickname,omitempty"`
	Balance              int    `json:"balance"`                // Накопленный выигрыш
	Tickets              int    `json:"tickets"`                // Доступные прокруты
	ReferralCount        int    `json:"referral_count"`         // Количество приглашенных
	ReferralBonusTickets int    `json:"referral_bonus_tickets"` // Билеты за рефералов
}

type UpdateNicknameRequest struct {
	Nickname string `json:"nickname"`
}

type LeaderEntry struct {
	Position int    `json:"position"`
	Name     string `json:"name"`
	Balance  int    `json:"balance"`
}

type LeadersResponse struct {
	Leaders []LeaderEntry `json:"leaders"`
}

type ReferralEntry struct {
	Name     string `json:"name"`
	JoinedAt string `json:"joined_at"` // RFC3339
}

type ReferralsResponse struct {
	Referrals []ReferralEntry `json:"referrals"`
}
