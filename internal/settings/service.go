package settings

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/dmoreira/workshop-backend/pkg/db"
	"github.com/dmoreira/workshop-backend/pkg/db/models"
	dbtypes "github.com/dmoreira/workshop-backend/pkg/db/types"
	"github.com/dmoreira/workshop-backend/pkg/logger"
	"github.com/google/uuid"
)

// DefaultLowStockThreshold applies when the stored value is absent or
// not a number.
const DefaultLowStockThreshold = 5

const cacheTTL = 5 * time.Minute

// Cache is the optional read cache for the flattened settings map.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
	CacheKey(parts ...string) string
}

// Service exposes the workshop settings operations.
type Service interface {
	GetAll(ctx context.Context) (map[string]dbtypes.JSONValue, error)
	Set(ctx context.Context, key string, value dbtypes.JSONValue) error
	LowStockThreshold(ctx context.Context) (int, error)
	EnsureDefaults(ctx context.Context) error
}

type service struct {
	repo  *Repository
	cache Cache
	logg  *logger.Logger
}

// NewService builds the settings service. cache may be nil, in which
// case every read hits the database.
func NewService(repo *Repository, cache Cache, logg *logger.Logger) Service {
	return &service{repo: repo, cache: cache, logg: logg}
}

func (s *service) GetAll(ctx context.Context) (map[string]dbtypes.JSONValue, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, s.cache.CacheKey("settings")); err == nil {
			var flat map[string]dbtypes.JSONValue
			if err := json.Unmarshal([]byte(cached), &flat); err == nil {
				return flat, nil
			}
		}
	}

	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	flat := make(map[string]dbtypes.JSONValue, len(rows))
	for _, row := range rows {
		flat[row.Key] = row.Value
	}

	if s.cache != nil {
		if encoded, err := json.Marshal(flat); err == nil {
			if err := s.cache.Set(ctx, s.cache.CacheKey("settings"), string(encoded), cacheTTL); err != nil && s.logg != nil {
				s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "failed to cache settings")
			}
		}
	}
	return flat, nil
}

// Set upserts a single setting and invalidates the cached map.
func (s *service) Set(ctx context.Context, key string, value dbtypes.JSONValue) error {
	_, err := s.repo.FindByKey(ctx, key)
	switch {
	case err == nil:
		if err := s.repo.UpdateValue(ctx, key, value); err != nil {
			return err
		}
	case db.IsNotFound(err):
		setting := &models.Setting{ID: uuid.New(), Key: key, Value: value}
		if err := s.repo.Create(ctx, setting); err != nil {
			return err
		}
	default:
		return err
	}

	if s.cache != nil {
		if err := s.cache.Del(ctx, s.cache.CacheKey("settings")); err != nil && s.logg != nil {
			s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "failed to invalidate settings cache")
		}
	}
	return nil
}

func (s *service) LowStockThreshold(ctx context.Context) (int, error) {
	row, err := s.repo.FindByKey(ctx, "low_stock_threshold")
	if err != nil {
		if db.IsNotFound(err) {
			return DefaultLowStockThreshold, nil
		}
		return 0, err
	}
	if n, ok := parseIntValue(row.Value); ok {
		return n, nil
	}
	return DefaultLowStockThreshold, nil
}

func parseIntValue(value dbtypes.JSONValue) (int, bool) {
	var n int
	if err := json.Unmarshal(value, &n); err == nil {
		return n, true
	}
	// tolerate values stored as quoted numbers
	var s string
	if err := json.Unmarshal(value, &s); err == nil {
		if n, err := strconv.Atoi(s); err == nil {
			return n, true
		}
	}
	return 0, false
}

func defaultSettings() map[string]any {
	return map[string]any{
		"low_stock_threshold": DefaultLowStockThreshold,
		"workshop_name":       "Oficina Mecânica",
		"workshop_address":    "Endereço da Oficina",
		"workshop_phone":      "Telefone da Oficina",
		"workshop_logo":       "",
	}
}

// EnsureDefaults seeds the well-known keys that the frontend expects,
// creating only the ones that do not exist yet.
func (s *service) EnsureDefaults(ctx context.Context) error {
	for key, val := range defaultSettings() {
		_, err := s.repo.FindByKey(ctx, key)
		if err == nil {
			continue
		}
		if !db.IsNotFound(err) {
			return err
		}
		value, err := dbtypes.NewJSONValue(val)
		if err != nil {
			return err
		}
		setting := &models.Setting{ID: uuid.New(), Key: key, Value: value}
		if err := s.repo.Create(ctx, setting); err != nil {
			return err
		}
	}
	if s.cache != nil {
		if err := s.cache.Del(ctx, s.cache.CacheKey("settings")); err != nil && s.logg != nil {
			s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "failed to invalidate settings cache")
		}
	}
	return nil
}
