package service

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"dashboard/internal/client"
	"dashboard/internal/config"
	"dashboard/internal/models"
)

// itemService implements ItemService. Records are cached by id for the
// lifetime of the service; concurrent fetches for the same missing id
// set are coalesced into a single flight.
type itemService struct {
	api         client.ItemsAPI
	batchSize   int
	searchLimit int
	logger      *logrus.Logger

	mu    sync.RWMutex
	cache map[int]*models.Item

	flights singleflight.Group
}

// NewItemService creates a new item lookup service
func NewItemService(api client.ItemsAPI, cfg *config.Config, logger *logrus.Logger) ItemService {
	return &itemService{
		api:         api,
		batchSize:   cfg.Backend.ItemBatchSize,
		searchLimit: cfg.Backend.SearchLimit,
		logger:      logger,
		cache:       make(map[int]*models.Item),
	}
}

// GetItem returns the cached record for one id, fetching it on a miss
func (s *itemService) GetItem(ctx context.Context, id int) (*models.Item, error) {
	s.mu.RLock()
	item, ok := s.cache[id]
	s.mu.RUnlock()
	if ok {
		itemCacheHits.Inc()
		return item, nil
	}
	itemCacheMisses.Inc()

	item, err := s.api.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.cache[id] = item
	s.mu.Unlock()
	return item, nil
}

// GetItems resolves a set of item ids, order-independent. Cached ids
// are served locally; the missing set is fetched in batches of at most
// the backend cap, one concurrent request per batch. The missing set
// keys a single flight, so a second caller with the same set joins the
// in-flight fetch instead of issuing new requests. The key is released
// when the flight finishes, success or failure, so failed sets can be
// retried on the next pass.
func (s *itemService) GetItems(ctx context.Context, ids []int) ([]*models.Item, error) {
	unique := dedupeIDs(ids)
	missing := s.missingIDs(unique)

	if len(missing) > 0 {
		_, err, _ := s.flights.Do(flightKey(missing), func() (interface{}, error) {
			return nil, s.fetchMissing(ctx, missing)
		})
		if err != nil {
			return nil, err
		}
	}

	items := make([]*models.Item, 0, len(unique))
	s.mu.RLock()
	for _, id := range unique {
		if item, ok := s.cache[id]; ok {
			items = append(items, item)
		}
	}
	s.mu.RUnlock()
	return items, nil
}

// SearchItems runs a free-text search; results are not cached because
// the backend caps and ranks them itself
func (s *itemService) SearchItems(ctx context.Context, query string) ([]*models.Item, error) {
	return s.api.SearchItems(ctx, query, s.searchLimit)
}

// fetchMissing fetches the given ids in concurrent batches and merges
// the results into the cache, last writer wins
func (s *itemService) fetchMissing(ctx context.Context, missing []int) error {
	g, gctx := errgroup.WithContext(ctx)

	for start := 0; start < len(missing); start += s.batchSize {
		end := start + s.batchSize
		if end > len(missing) {
			end = len(missing)
		}
		batch := missing[start:end]

		g.Go(func() error {
			itemBatchRequests.Inc()
			items, err := s.api.GetItems(gctx, batch)
			if err != nil {
				return err
			}
			s.mu.Lock()
			for _, item := range items {
				s.cache[item.ID] = item
			}
			s.mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		s.logger.WithError(err).WithField("missing", len(missing)).Warn("Item batch fetch failed")
		return err
	}
	return nil
}

// missingIDs returns the sorted subset of ids not yet cached
func (s *itemService) missingIDs(ids []int) []int {
	missing := make([]int, 0, len(ids))
	s.mu.RLock()
	for _, id := range ids {
		if _, ok := s.cache[id]; !ok {
			missing = append(missing, id)
		}
	}
	s.mu.RUnlock()
	sort.Ints(missing)
	return missing
}

// flightKey serializes a sorted id set into its canonical coalescing
// key, independent of discovery order
func flightKey(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}

func dedupeIDs(ids []int) []int {
	seen := make(map[int]struct{}, len(ids))
	unique := make([]int, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}
