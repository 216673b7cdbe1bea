package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/sahilm/fuzzy"

	"github.com/voidcrew/startrack/startrack/database/models"
	"github.com/voidcrew/startrack/startrack/database/repositories"
)

// playerNames implements fuzzy.Source over the id->name map.
type playerNames struct {
	ids   []int64
	names []string
}

func (p playerNames) Len() int            { return len(p.names) }
func (p playerNames) String(i int) string { return p.names[i] }

// SearchService resolves free-form player names typed into commands.
type SearchService struct {
	playerRepo repositories.PlayerRepository
}

func NewSearchService(playerRepo repositories.PlayerRepository) *SearchService {
	return &SearchService{playerRepo: playerRepo}
}

// ResolvePlayer finds the player best matching query: exact (case-insensitive)
// first, fuzzy as fallback.
func (s *SearchService) ResolvePlayer(ctx context.Context, query string) (*models.PlayerWithAlliance, error) {
	if player, err := s.playerRepo.GetByName(ctx, query); err == nil {
		return player, nil
	}

	names, err := s.playerRepo.GetNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load player names: %w", err)
	}

	source := playerNames{
		ids:   make([]int64, 0, len(names)),
		names: make([]string, 0, len(names)),
	}
	// Stable iteration so equally scored matches resolve the same way twice.
	ids := make([]int64, 0, len(names))
	for id := range names {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		source.ids = append(source.ids, id)
		source.names = append(source.names, names[id])
	}

	matches := fuzzy.FindFrom(query, source)
	if len(matches) == 0 {
		return nil, fmt.Errorf("no player matching %q", query)
	}
	return s.playerRepo.GetByID(ctx, source.ids[matches[0].Index])
}
