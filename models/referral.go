package models

import "time"

// ReferralRow is one referred user with their deposit totals, as selected
// by the level 1 / level 2 aggregation queries.
type ReferralRow struct {
	UserID             int64     `db:"user_id"`
	Name               string    `db:"name"`
	Email              string    `db:"email"`
	CreatedAt          time.Time `db:"created_at"`
	TotalInvested      float64   `db:"total_invested"`
	DepositCount       int64     `db:"deposit_count"`
	Level1ReferralName *string   `db:"level1_referral_name"`
}

type ReferralEntry struct {
	ID                 int64   `json:"id"`
	Name               string  `json:"name"`
	Email              string  `json:"email"`
	JoinedDate         string  `json:"joinedDate"`
	TotalInvested      string  `json:"totalInvested"`
	DepositCount       int64   `json:"depositCount"`
	Level              int     `json:"level"`
	Level1ReferralName *string `json:"level1ReferralName"`
}

type ReferralStatistics struct {
	Level1Count      int    `json:"level1Count"`
	Level2Count      int    `json:"level2Count"`
	Level1Total      string `json:"level1Total"`
	Level2Total      string `json:"level2Total"`
	Level1Commission string `json:"level1Commission"`
	Level2Commission string `json:"level2Commission"`
	TotalCommission  string `json:"totalCommission"`
}

type ReferralUser struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	ReferralCode string  `json:"referralCode"`
	ReferralLink string  `json:"referralLink"`
	ReferrerName *string `json:"referrerName"`
}

type ReferralSummary struct {
	User      ReferralUser `json:"user"`
	Referrals struct {
		Level1 []ReferralEntry `json:"level1"`
		Level2 []ReferralEntry `json:"level2"`
	} `json:"referrals"`
	Statistics ReferralStatistics `json:"statistics"`
}
