package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"campus-clinic-scheduler/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ErrSlotFull is returned when a slot already holds its maximum number of appointments
var ErrSlotFull = errors.New("slot is fully booked")

// incrWithCapScript is a package-level Lua script.
// Redis Go client automatically uses EVALSHA (send SHA hash only) after the first call,
// instead of EVAL (send full script text every time). This matters under concurrent booking.
//
// Logic:
// 1. INCR booked counter for the slot
// 2. If result > cap (ARGV[1]) → DECR back (rollback) and return -1 (slot full)
// 3. Otherwise set TTL (ARGV[2] seconds) and return the new count
var incrWithCapScript = redis.NewScript(`
	local booked = redis.call('INCR', KEYS[1])
	if booked > tonumber(ARGV[1]) then
		redis.call('DECR', KEYS[1])
		return -1
	end
	redis.call('EXPIRE', KEYS[1], ARGV[2])
	return booked
`)

// decrFloorZeroScript releases a reservation without letting the counter go negative.
var decrFloorZeroScript = redis.NewScript(`
	local booked = tonumber(redis.call('GET', KEYS[1]) or '0')
	if booked <= 0 then
		return 0
	end
	return redis.call('DECR', KEYS[1])
`)

const (
	// Redis key prefix for per-slot booked counters
	RedisSlotKeyPrefix = "slot:booked:"

	// Batch size for startup sync
	syncBatchSize = 500

	// Interval for cleaning up stale mutexes
	mutexCleanupInterval = 10 * time.Minute

	// How long a mutex must be unused before cleanup
	mutexStaleThreshold = 10 * time.Minute
)

// SlotCapacityService keeps a Redis booked-counter per (campus, date, start time) slot
// so concurrent bookings reserve capacity in Redis instead of contending on DB locks.
//
// Lock Ordering (to prevent deadlocks):
// 1. Acquire slot mutex FIRST
// 2. Then perform DB/Redis operations
type SlotCapacityService struct {
	db          *gorm.DB
	redisClient *redis.Client
	log         *logrus.Logger

	// Per-slot mutex for sync operations
	slotMu sync.Map // map[string]*mutexWithTimestamp

	// Graceful shutdown
	stopChan chan struct{}
	wg       sync.WaitGroup
	stopped  atomic.Bool
}

// mutexWithTimestamp tracks mutex usage for cleanup
type mutexWithTimestamp struct {
	mu       sync.Mutex
	lastUsed atomic.Int64 // Unix timestamp
}

// NewSlotCapacityService creates a new SlotCapacityService.
// Starts background goroutine for mutex cleanup.
// Call Stop() during graceful shutdown.
func NewSlotCapacityService(db *gorm.DB, redisClient *redis.Client, log *logrus.Logger) *SlotCapacityService {
	svc := &SlotCapacityService{
		db:          db,
		redisClient: redisClient,
		log:         log,
		stopChan:    make(chan struct{}),
	}

	svc.wg.Add(1)
	go svc.cleanupMutexMapLoop()

	return svc
}

// Stop gracefully shuts down the service.
// Safe to call multiple times.
func (s *SlotCapacityService) Stop() {
	if s.stopped.CompareAndSwap(false, true) {
		close(s.stopChan)
		s.wg.Wait()
		s.log.Info("SlotCapacityService stopped")
	}
}

// SlotKey builds the Redis key for a slot's booked counter.
func SlotKey(campusID uuid.UUID, date time.Time, startTime string) string {
	return fmt.Sprintf("%s%s:%s:%s", RedisSlotKeyPrefix, campusID, date.Format("2006-01-02"), startTime)
}

// Reserve atomically claims one unit of slot capacity.
// Returns ErrSlotFull when the counter already equals maxPerSlot.
//
// NO MUTEX NEEDED: the Lua script executes atomically in Redis (single-threaded).
// An in-app mutex would serialize all requests per slot, becoming a bottleneck.
func (s *SlotCapacityService) Reserve(ctx context.Context, campusID uuid.UUID, date time.Time, startTime string, maxPerSlot int) (int, error) {
	key := SlotKey(campusID, date, startTime)
	ttlSeconds := int(s.calculateTTL(date).Seconds())

	result, err := incrWithCapScript.Run(ctx, s.redisClient, []string{key}, maxPerSlot, ttlSeconds).Int()
	if err != nil {
		s.log.Warnf("Failed Lua slot reservation for %s: %+v", key, err)
		return 0, fmt.Errorf("lua slot reserve %s: %w", key, err)
	}

	if result == -1 {
		return 0, ErrSlotFull
	}

	s.log.Debugf("Reserved slot %s: booked=%d", key, result)
	return result, nil
}

// Release returns one unit of slot capacity after a cancellation or a failed DB insert.
// The counter never goes below zero.
func (s *SlotCapacityService) Release(ctx context.Context, campusID uuid.UUID, date time.Time, startTime string) error {
	key := SlotKey(campusID, date, startTime)

	if err := decrFloorZeroScript.Run(ctx, s.redisClient, []string{key}).Err(); err != nil {
		s.log.Warnf("Failed to release slot %s: %+v", key, err)
		return fmt.Errorf("release slot %s: %w", key, err)
	}

	s.log.Debugf("Released slot %s", key)
	return nil
}

// SyncOnStartup rebuilds all booked counters for today and future dates from PostgreSQL.
//
// - Processes records in batches of 500
// - Creates and executes a NEW pipeline INSIDE each batch loop to bound memory
//
// Should be called BEFORE accepting traffic (during startup/disaster recovery).
func (s *SlotCapacityService) SyncOnStartup(ctx context.Context) error {
	s.log.Info("Starting Redis slot counter re-sync from database...")
	startTime := time.Now()

	if err := s.redisClient.Ping(ctx).Err(); err != nil {
		s.log.Warnf("Redis is not available, skipping sync: %+v", err)
		return fmt.Errorf("redis ping failed: %w", err)
	}

	type slotCount struct {
		CampusID        uuid.UUID
		AppointmentDate time.Time
		StartTime       string
		Booked          int
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	offset := 0
	totalSynced := 0

	for {
		var results []slotCount

		err := s.db.Model(&entity.Appointment{}).
			Select("campus_id, appointment_date, start_time, COUNT(*) as booked").
			Where("appointment_date >= ?", today.Format("2006-01-02")).
			Where("status = ?", entity.AppointmentStatusScheduled).
			Group("campus_id, appointment_date, start_time").
			Order("campus_id, appointment_date, start_time").
			Limit(syncBatchSize).
			Offset(offset).
			Scan(&results).Error

		if err != nil {
			s.log.Errorf("Failed to query slot counts at offset %d: %+v", offset, err)
			return fmt.Errorf("query slot counts at offset %d: %w", offset, err)
		}

		if len(results) == 0 {
			if offset == 0 {
				s.log.Info("No scheduled appointments found for sync")
			}
			break
		}

		// New pipeline per batch so memory does not accumulate across batches
		pipe := s.redisClient.TxPipeline()

		for _, result := range results {
			key := SlotKey(result.CampusID, result.AppointmentDate, result.StartTime)
			pipe.Set(ctx, key, result.Booked, s.calculateTTL(result.AppointmentDate))
		}

		if _, err := pipe.Exec(ctx); err != nil {
			s.log.Errorf("Failed to execute pipeline for batch at offset %d: %+v", offset, err)
			return fmt.Errorf("pipeline exec at offset %d: %w", offset, err)
		}

		totalSynced += len(results)
		s.log.Debugf("Synced batch: %d slot counters", len(results))

		if len(results) < syncBatchSize {
			break
		}

		offset += syncBatchSize

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
	}

	elapsed := time.Since(startTime)
	s.log.Infof("Redis slot re-sync completed: %d counters synced in %v", totalSynced, elapsed)

	return nil
}

// SyncSlot recounts one slot's booked counter from the appointments table.
// Called after redistribution rewrites slot assignments for a day.
func (s *SlotCapacityService) SyncSlot(ctx context.Context, campusID uuid.UUID, date time.Time, slotStart, slotEnd string) error {
	key := SlotKey(campusID, date, slotStart)

	mt := s.getSlotMutex(key)
	mt.mu.Lock()
	defer mt.mu.Unlock()

	today := time.Now().UTC().Truncate(24 * time.Hour)
	if date.Before(today) {
		s.log.Debugf("Skipping sync for past slot %s", key)
		return nil
	}

	var booked int64
	err := s.db.WithContext(ctx).Model(&entity.Appointment{}).
		Where("campus_id = ?", campusID).
		Where("appointment_date = ?", date.Format("2006-01-02")).
		Where("start_time >= ? AND start_time < ?", slotStart, slotEnd).
		Where("status = ?", entity.AppointmentStatusScheduled).
		Count(&booked).Error
	if err != nil {
		s.log.Warnf("Failed to count appointments for slot %s: %+v", key, err)
		return fmt.Errorf("count appointments for slot %s: %w", key, err)
	}

	if err := s.redisClient.Set(ctx, key, booked, s.calculateTTL(date)).Err(); err != nil {
		s.log.Warnf("Failed to sync slot %s: %+v", key, err)
		return fmt.Errorf("redis sync slot %s: %w", key, err)
	}

	s.log.Debugf("Synced slot %s: booked=%d", key, booked)
	return nil
}

// DropDayCounters removes every counter tracked for a campus day.
// Called after a day is marked as a holiday and its appointments are moved off it.
func (s *SlotCapacityService) DropDayCounters(ctx context.Context, campusID uuid.UUID, date time.Time) error {
	pattern := fmt.Sprintf("%s%s:%s:*", RedisSlotKeyPrefix, campusID, date.Format("2006-01-02"))

	iter := s.redisClient.Scan(ctx, 0, pattern, 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		s.log.Warnf("Failed to scan slot keys for %s: %+v", pattern, err)
		return fmt.Errorf("scan slot keys %s: %w", pattern, err)
	}

	if len(keys) == 0 {
		return nil
	}

	if err := s.redisClient.Del(ctx, keys...).Err(); err != nil {
		s.log.Warnf("Failed to delete %d slot keys for %s: %+v", len(keys), pattern, err)
		return fmt.Errorf("delete slot keys %s: %w", pattern, err)
	}

	s.log.Debugf("Dropped %d slot counters for %s", len(keys), pattern)
	return nil
}

// getSlotMutex returns the mutex for a specific slot key
func (s *SlotCapacityService) getSlotMutex(key string) *mutexWithTimestamp {
	mt, _ := s.slotMu.LoadOrStore(key, &mutexWithTimestamp{})
	result := mt.(*mutexWithTimestamp)
	result.lastUsed.Store(time.Now().Unix())
	return result
}

// cleanupMutexMapLoop runs in background to clean stale mutexes
func (s *SlotCapacityService) cleanupMutexMapLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(mutexCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			s.log.Debug("Mutex cleanup goroutine stopping")
			return
		case <-ticker.C:
			s.cleanupStaleMutexes()
		}
	}
}

// cleanupStaleMutexes removes unused mutexes using TryLock for safety.
// The lastUsed check happens inside the lock so a concurrent user cannot
// refresh the timestamp between our check and the delete.
func (s *SlotCapacityService) cleanupStaleMutexes() {
	cutoffTime := time.Now().Add(-mutexStaleThreshold).Unix()
	var cleaned int

	s.slotMu.Range(func(key, value any) bool {
		slotKey, ok := key.(string)
		if !ok {
			return true
		}

		mt, ok := value.(*mutexWithTimestamp)
		if !ok {
			return true
		}

		if mt.mu.TryLock() {
			if mt.lastUsed.Load() < cutoffTime {
				s.slotMu.Delete(slotKey)
				cleaned++
			}
			mt.mu.Unlock()
		}
		return true
	})

	if cleaned > 0 {
		s.log.Debugf("Cleaned up %d stale slot mutexes", cleaned)
	}
}

// calculateTTL returns TTL: 24 hours after the slot's date
func (s *SlotCapacityService) calculateTTL(date time.Time) time.Duration {
	expireAt := date.AddDate(0, 0, 1)
	ttl := time.Until(expireAt)

	if ttl <= 0 {
		// Past date - short TTL for cleanup
		return 1 * time.Minute
	}

	return ttl
}
