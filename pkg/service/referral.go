package service

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/mahimamj/bdspro/models"
	"github.com/mahimamj/bdspro/pkg/repository"
)

// Commission rates per referral level.
var (
	level1Rate = decimal.NewFromFloat(0.05)
	level2Rate = decimal.NewFromFloat(0.02)
)

type ReferralService struct {
	repos   repository.Referrals
	users   repository.Authorization
	baseURL string
}

func NewReferralService(repos repository.Referrals, users repository.Authorization, baseURL string) *ReferralService {
	return &ReferralService{
		repos:   repos,
		users:   users,
		baseURL: baseURL,
	}
}

// Summary aggregates the two referral levels for a user and derives the
// commission totals. Lookup failures surface as errors so callers can tell
// "no referrals" from "query failed".
func (s *ReferralService) Summary(ctx context.Context, userID int64) (models.ReferralSummary, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return models.ReferralSummary{}, err
	}

	referrerName, err := s.repos.ReferrerName(ctx, userID)
	if err != nil {
		return models.ReferralSummary{}, err
	}

	level1, err := s.repos.Level1Referrals(ctx, userID)
	if err != nil {
		return models.ReferralSummary{}, errors.Wrap(err, "aggregate level 1")
	}
	level2, err := s.repos.Level2Referrals(ctx, userID)
	if err != nil {
		return models.ReferralSummary{}, errors.Wrap(err, "aggregate level 2")
	}

	level1Total := sumInvested(level1)
	level2Total := sumInvested(level2)
	level1Commission := level1Total.Mul(level1Rate)
	level2Commission := level2Total.Mul(level2Rate)

	summary := models.ReferralSummary{
		User: models.ReferralUser{
			ID:           user.ID,
			Name:         user.Name,
			Email:        user.Email,
			ReferralCode: user.ReferralCode,
			ReferralLink: fmt.Sprintf("%s/signup?ref=%s", s.baseURL, user.ReferralCode),
			ReferrerName: referrerName,
		},
		Statistics: models.ReferralStatistics{
			Level1Count:      len(level1),
			Level2Count:      len(level2),
			Level1Total:      level1Total.StringFixed(2),
			Level2Total:      level2Total.StringFixed(2),
			Level1Commission: level1Commission.StringFixed(2),
			Level2Commission: level2Commission.StringFixed(2),
			TotalCommission:  level1Commission.Add(level2Commission).StringFixed(2),
		},
	}
	summary.Referrals.Level1 = formatReferrals(level1, 1)
	summary.Referrals.Level2 = formatReferrals(level2, 2)
	return summary, nil
}

func sumInvested(rows []models.ReferralRow) decimal.Decimal {
	total := decimal.Zero
	for _, row := range rows {
		total = total.Add(decimal.NewFromFloat(row.TotalInvested))
	}
	return total
}

func formatReferrals(rows []models.ReferralRow, level int) []models.ReferralEntry {
	entries := make([]models.ReferralEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, models.ReferralEntry{
			ID:                 row.UserID,
			Name:               row.Name,
			Email:              row.Email,
			JoinedDate:         row.CreatedAt.Format("1/2/2006"),
			TotalInvested:      decimal.NewFromFloat(row.TotalInvested).StringFixed(2),
			DepositCount:       row.DepositCount,
			Level:              level,
			Level1ReferralName: row.Level1ReferralName,
		})
	}
	return entries
}
