package converter

import (
	"time"

	dto "wheel_backend/internal/api/dto/user"
	"wheel_backend/internal/model"
)

func ToProfileResponse(u model.User) dto.ProfileResponse {
	return dto.ProfileResponse{
		ID:                   u.ID,
		Nickname:             u.Nickname,
		Balance:              u.Balance,
		Tickets:              u.Tickets,
		ReferralCount:        u.ReferralCount,
		ReferralBonusTickets: u.ReferralBonusTickets,
	}
}

func ToLeadersResponse(leaders []model.LeaderboardEntry) dto.LeadersResponse {
	result := dto.LeadersResponse{
		Leaders: make([]dto.LeaderEntry, 0, len(leaders)),
	}
	for _, l := range leaders {
		result.Leaders = append(result.Leaders, dto.LeaderEntry{
			Position: l.Position,
			Name:     l.Name,
			Balance:  l.Balance,
		})
	}
	return result
}

func ToReferralsResponse(referrals []model.ReferralInfo) dto.ReferralsResponse {
	result := dto.ReferralsResponse{
		Referrals: make([]dto.ReferralEntry, 0, len(referrals)),
	}
	for _, r := range referrals {
		result.Referrals = append(result.Referrals, dto.ReferralEntry{
			Name:     r.Name,
			JoinedAt: r.JoinedAt.Format(time.RFC3339),
		})
	}
	return result
}
