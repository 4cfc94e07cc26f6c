package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/incident_dashboard/internal/service"
)

// LocalState хранит клиентское durable-состояние в Redis: id собственной
// заявки гражданина, чтобы статус можно было опрашивать между визитами
type LocalState struct {
	redisClient *redis.Client
}

// NewLocalState создает хранилище клиентского состояния
func NewLocalState(redisClient *redis.Client) service.LocalStateRepository {
	return &LocalState{redisClient: redisClient}
}

func myIncidentKey(userID string) string {
	return fmt.Sprintf("my_incident:%s", userID)
}

// SaveMyIncidentID записывает id заявки пользователя. Без TTL: запись
// должна переживать перезапуски и возвраты пользователя.
func (r *LocalState) SaveMyIncidentID(ctx context.Context, userID, incidentID string) error {
	if err := r.redisClient.Set(ctx, myIncidentKey(userID), incidentID, 0).Err(); err != nil {
		return fmt.Errorf("repository: failed to save incident id: %w", err)
	}
	return nil
}

// MyIncidentID возвращает id последней заявки пользователя
func (r *LocalState) MyIncidentID(ctx context.Context, userID string) (string, error) {
	val, err := r.redisClient.Get(ctx, myIncidentKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", service.ErrNoReport
		}
		return "", fmt.Errorf("repository: failed to get incident id: %w", err)
	}
	return val, nil
}
