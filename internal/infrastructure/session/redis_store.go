// Package session implementa el registro de sesiones de empleados (Redis o memoria).
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Pixoll/db-uni-project-api/internal/domain/entity"
	"github.com/Pixoll/db-uni-project-api/internal/domain/repository"
	"github.com/Pixoll/db-uni-project-api/pkg/config"
)

var _ repository.SessionStore = (*RedisStore)(nil)

// RedisStore sesiones en Redis con TTL igual a la expiración del token.
type RedisStore struct {
	rdb *redis.Client
}

// NewRedisStore conecta y verifica el servidor con PING.
func NewRedisStore(ctx context.Context, cfg config.RedisConfig) (*RedisStore, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &RedisStore{rdb: rdb}, nil
}

// Save registra la sesión y la marca como vigente para el empleado.
func (s *RedisStore) Save(ctx context.Context, sess entity.Session, ttl time.Duration) error {
	b, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	_, err = s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, sessionKey(sess.ID), b, ttl)
		pipe.Set(ctx, employeeKey(sess.Role, sess.Rut), sess.ID, ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Get (nil, nil) si la sesión no existe o expiró.
func (s *RedisStore) Get(ctx context.Context, id string) (*entity.Session, error) {
	b, err := s.rdb.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	var sess entity.Session
	if err := json.Unmarshal(b, &sess); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &sess, nil
}

// Revoke elimina la sesión y, si era la vigente del empleado, también el índice.
func (s *RedisStore) Revoke(ctx context.Context, id string) error {
	sess, err := s.Get(ctx, id)
	if err != nil || sess == nil {
		return err
	}
	ekey := employeeKey(sess.Role, sess.Rut)
	current, err := s.rdb.Get(ctx, ekey).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("get employee session: %w", err)
	}
	keys := []string{sessionKey(id)}
	if current == id {
		keys = append(keys, ekey)
	}
	if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

// RevokeEmployee revoca la sesión vigente del empleado, si la hay.
func (s *RedisStore) RevokeEmployee(ctx context.Context, role, rut string) error {
	ekey := employeeKey(role, rut)
	id, err := s.rdb.Get(ctx, ekey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil
		}
		return fmt.Errorf("get employee session: %w", err)
	}
	if err := s.rdb.Del(ctx, sessionKey(id), ekey).Err(); err != nil {
		return fmt.Errorf("revoke employee session: %w", err)
	}
	return nil
}

// Close cierra la conexión.
func (s *RedisStore) Close() error {
	return s.rdb.Close()
}
