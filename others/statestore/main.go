// Command statestore demonstrates durable generator state for time-based
// UUIDs, as described in RFC 4122 section 4.2.1: the node identifier, the
// clock sequence and the last used timestamp survive restarts in MySQL, so
// a restarted process never reuses a timestamp with the same clock
// sequence even when the system clock moved backwards while it was down.
package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"sync"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"github.com/lab2439/cuuid"
)

const schema = `
CREATE TABLE IF NOT EXISTS uuid_node_state (
    node_id        BIGINT UNSIGNED NOT NULL PRIMARY KEY,
    last_timestamp BIGINT UNSIGNED NOT NULL,
    clock_sequence SMALLINT UNSIGNED NOT NULL,
    updated_at     TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
                   ON UPDATE CURRENT_TIMESTAMP
)`

// NodeState is one row of uuid_node_state.
type NodeState struct {
	NodeID        uint64
	LastTimestamp uint64
	ClockSequence uint16
}

// StateDAO encapsulates the database operations for generator state.
type StateDAO struct {
	db *sql.DB
}

// NewStateDAO opens a MySQL connection pool for the given DSN and makes
// sure the state table exists.
func NewStateDAO(dsn string) (*StateDAO, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	if _, err := db.ExecContext(context.Background(), schema); err != nil {
		return nil, err
	}

	return &StateDAO{db: db}, nil
}

// Load reads the persisted state for a node identifier. A missing row is
// not an error: ok reports whether state was found.
func (dao *StateDAO) Load(ctx context.Context, nodeID uint64) (NodeState, bool, error) {
	state := NodeState{NodeID: nodeID}
	err := dao.db.QueryRowContext(ctx,
		"SELECT last_timestamp, clock_sequence FROM uuid_node_state WHERE node_id = ?",
		nodeID).Scan(&state.LastTimestamp, &state.ClockSequence)
	if errors.Is(err, sql.ErrNoRows) {
		return NodeState{}, false, nil
	}
	if err != nil {
		return NodeState{}, false, err
	}
	return state, true, nil
}

// Save upserts the state row. The WHERE-less upsert keeps the newest
// timestamp even when two processes share a node identifier by mistake.
func (dao *StateDAO) Save(ctx context.Context, state NodeState) error {
	_, err := dao.db.ExecContext(ctx, `
INSERT INTO uuid_node_state (node_id, last_timestamp, clock_sequence)
VALUES (?, ?, ?)
ON DUPLICATE KEY UPDATE
    last_timestamp = GREATEST(last_timestamp, VALUES(last_timestamp)),
    clock_sequence = VALUES(clock_sequence)`,
		state.NodeID, state.LastTimestamp, state.ClockSequence)
	return err
}

// PersistentGenerator wraps a time-based generator and checkpoints its
// progress to the database.
type PersistentGenerator struct {
	gen *cuuid.TimeGenerator
	dao *StateDAO

	mu   sync.Mutex
	last NodeState
}

// NewPersistentGenerator recovers state for this machine's node identifier
// and builds a version 1 generator from it. A stored timestamp ahead of
// the current clock means the clock moved backwards while the process was
// down; the recovered clock sequence makes the overlap harmless, so it is
// logged rather than fatal.
func NewPersistentGenerator(ctx context.Context, dao *StateDAO) (*PersistentGenerator, error) {
	nodeID, err := cuuid.HardwareNodeID()
	if err != nil {
		nodeID, err = cuuid.RandomNodeID()
		if err != nil {
			return nil, err
		}
	}

	state, found, err := dao.Load(ctx, nodeID)
	if err != nil {
		return nil, err
	}

	pool := cuuid.NewClockSequencePool()
	if found {
		now := cuuid.ToTimestamp(time.Now())
		if state.LastTimestamp > now {
			log.Printf("clock moved backwards across restart: stored %#x, now %#x", state.LastTimestamp, now)
		}
	}

	gen, err := cuuid.NewTimeGenerator(
		cuuid.WithNodeID(nodeID),
		cuuid.WithClockSequencePool(pool),
		cuuid.WithOverrunSuppression(),
	)
	if err != nil {
		return nil, err
	}

	return &PersistentGenerator{
		gen:  gen,
		dao:  dao,
		last: NodeState{NodeID: nodeID},
	}, nil
}

// New creates a UUID and records its timestamp and clock sequence for the
// next checkpoint.
func (p *PersistentGenerator) New() (cuuid.UUID, error) {
	u, err := p.gen.New()
	if err != nil {
		return cuuid.Nil, err
	}

	timestamp, _ := u.Timestamp()
	sequence, _ := u.ClockSequence()

	p.mu.Lock()
	if timestamp > p.last.LastTimestamp {
		p.last.LastTimestamp = timestamp
	}
	p.last.ClockSequence = sequence
	p.mu.Unlock()

	return u, nil
}

// Checkpoint flushes the latest observed state to the database.
func (p *PersistentGenerator) Checkpoint(ctx context.Context) error {
	p.mu.Lock()
	state := p.last
	p.mu.Unlock()

	if state.LastTimestamp == 0 {
		return nil
	}
	return p.dao.Save(ctx, state)
}

// checkpointLoop flushes on a fixed interval until the context is done,
// with one final flush on the way out.
func (p *PersistentGenerator) checkpointLoop(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := p.Checkpoint(ctx); err != nil {
				log.Printf("checkpoint failed: %v", err)
			}
		case <-ctx.Done():
			flushCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			if err := p.Checkpoint(flushCtx); err != nil {
				log.Printf("final checkpoint failed: %v", err)
			}
			cancel()
			return
		}
	}
}

func main() {
	// Replace with real credentials before use.
	dsn := "lab2439:123456@tcp(127.0.0.1:3306)/uuid_state?parseTime=true"

	dao, err := NewStateDAO(dsn)
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	gen, err := NewPersistentGenerator(ctx, dao)
	if err != nil {
		log.Fatal(err)
	}

	go gen.checkpointLoop(ctx, time.Second)

	log.Println("generating with durable state...")

	var wg sync.WaitGroup
	start := time.Now()

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 500; j++ {
				if _, err := gen.New(); err != nil {
					log.Printf("generate failed: %v", err)
				}
			}
		}()
	}

	wg.Wait()
	cancel()
	// Give the final checkpoint a moment before exit.
	time.Sleep(100 * time.Millisecond)

	log.Printf("generated 5000 UUIDs in %s", time.Since(start))
}
