package service

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"dashboard/internal/client"
	"dashboard/internal/format"
	"dashboard/internal/models"
)

// guildService implements GuildService over an in-memory snapshot of
// the guild list. Every successful fetch replaces the snapshot
// wholesale; nothing is mutated in place.
type guildService struct {
	api    client.GuildsAPI
	logger *logrus.Logger

	mu     sync.RWMutex
	guilds []*models.Guild
}

// NewGuildService creates a new guild data service
func NewGuildService(api client.GuildsAPI, logger *logrus.Logger) GuildService {
	return &guildService{
		api:    api,
		logger: logger,
	}
}

// FetchGuilds loads the guild list from the backend in a single
// attempt and replaces the cached snapshot. Errors are returned to the
// caller to surface; there is no retry.
func (s *guildService) FetchGuilds(ctx context.Context, forceRefresh bool) ([]*models.Guild, error) {
	guilds, err := s.api.GetGuilds(ctx, forceRefresh)
	if err != nil {
		s.logger.WithError(err).Error("Failed to fetch guild data")
		return nil, err
	}

	s.mu.Lock()
	s.guilds = guilds
	s.mu.Unlock()

	s.logger.WithFields(logrus.Fields{
		"guild_count":   len(guilds),
		"force_refresh": forceRefresh,
	}).Info("Guild data refreshed")

	return guilds, nil
}

// Guilds returns the cached guild snapshot
func (s *guildService) Guilds() []*models.Guild {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.guilds
}

// Guild returns one cached guild by id
func (s *guildService) Guild(id string) (*models.Guild, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, guild := range s.guilds {
		if guild.ID == id {
			return guild, nil
		}
	}
	return nil, models.ErrGuildNotFound
}

// SortedMembers returns the guild roster filtered by rank and search
// term, sorted by rank order then name. Members with the sentinel
// invited rank always sort last, ties among them broken by name.
func (s *guildService) SortedMembers(guildID string, query models.MembersQuery) (*models.MembersPage, error) {
	guild, err := s.Guild(guildID)
	if err != nil {
		return nil, err
	}

	search := strings.ToLower(query.Search)
	members := make([]models.GuildMember, 0, len(guild.Members))
	for _, member := range guild.Members {
		if query.Rank != "" && member.Rank != query.Rank {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(member.Name), search) &&
			!strings.Contains(strings.ToLower(member.FullName), search) {
			continue
		}
		members = append(members, member)
	}

	sort.SliceStable(members, func(i, j int) bool {
		a, b := members[i], members[j]
		aInvited := a.Rank == models.RankInvited
		bInvited := b.Rank == models.RankInvited
		if aInvited != bInvited {
			return bInvited
		}
		if aInvited {
			return a.Name < b.Name
		}
		orderA := guild.RankOrder(a.Rank)
		orderB := guild.RankOrder(b.Rank)
		if orderA != orderB {
			return orderA < orderB
		}
		return a.Name < b.Name
	})

	return &models.MembersPage{Members: members, Total: len(members)}, nil
}

// Summaries returns the dashboard tiles for every cached guild
func (s *guildService) Summaries() []*models.GuildSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summaries := make([]*models.GuildSummary, 0, len(s.guilds))
	for _, guild := range s.guilds {
		summaries = append(summaries, &models.GuildSummary{
			ID:          guild.ID,
			Name:        guild.Name,
			Tag:         guild.Tag,
			Level:       guild.Level,
			MemberCount: len(guild.Members),
			RankCount:   len(guild.Ranks),
			Influence:   guild.Influence,
			Aetherium:   guild.Aetherium,
			Resonance:   guild.Resonance,
			Favor:       guild.Favor,
			LastUpdated: guild.LastUpdated,
		})
	}
	return summaries
}

// ParsedMOTD returns the structured form of one guild's MOTD
func (s *guildService) ParsedMOTD(guildID string) (*models.ParsedMOTD, error) {
	guild, err := s.Guild(guildID)
	if err != nil {
		return nil, err
	}
	return format.ParseMOTD(guild.MOTD), nil
}
