package service

import (
	"context"

	"dashboard/internal/client"
	"dashboard/internal/format"
	"dashboard/internal/models"
)

// Jackpot constants
const (
	// JackpotShare is the fraction of the pot paid out, in percent
	JackpotShare = 90
	// RecentWinnerCount caps the winners shown on the panel
	RecentWinnerCount = 4
)

// lotteryService implements LotteryService
type lotteryService struct {
	api client.LotteryAPI
}

// NewLotteryService creates a new lottery view service
func NewLotteryService(api client.LotteryAPI) LotteryService {
	return &lotteryService{api: api}
}

// Overview fetches the current standings and derives the panel view:
// the advertised jackpot is 90% of the pot, and only the most recent
// winners are listed
func (s *lotteryService) Overview(ctx context.Context) (*models.LotteryOverview, error) {
	stats, err := s.api.GetLotteryStats(ctx)
	if err != nil {
		return nil, err
	}

	jackpot := stats.CurrentPot * JackpotShare / 100

	recent := stats.PastWinners
	if len(recent) > RecentWinnerCount {
		recent = recent[:RecentWinnerCount]
	}

	return &models.LotteryOverview{
		Jackpot:        jackpot,
		JackpotDisplay: format.FormatCoins(jackpot),
		EntriesCount:   stats.CurrentEntriesCount,
		RecentWinners:  recent,
	}, nil
}
