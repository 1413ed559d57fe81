// Command zknode coordinates node identifiers for time-based UUIDs through
// ZooKeeper. Every instance claims a distinct 48-bit node identifier under
// a shared path, so a fleet of generators never stamps the same node field,
// and each instance heartbeats its last seen timestamp so a clock rollback
// across restarts is caught before any UUID is issued.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/go-zookeeper/zk"

	"github.com/lab2439/cuuid"
)

const (
	zkRootPath        = "/uuid_nodes"
	heartbeatInterval = 3 * time.Second
)

// NodeInfo is the registration record kept per instance, both in ZooKeeper
// and in a local cache file for recovery when ZooKeeper is unreachable.
type NodeInfo struct {
	NodeID     uint64 `json:"node_id"`
	LastTime   int64  `json:"last_time"`
	CreateTime int64  `json:"create_time"`
}

// NodeRegistry allocates and maintains this instance's node identifier.
type NodeRegistry struct {
	conn    *zk.Conn
	service string
	port    int

	mu     sync.Mutex
	nodeID uint64
}

// NewNodeRegistry connects to ZooKeeper and registers this instance,
// recovering a previously claimed node identifier when one exists.
func NewNodeRegistry(servers []string, service string, port int) (*NodeRegistry, error) {
	conn, _, err := zk.Connect(servers, 5*time.Second)
	if err != nil {
		return nil, fmt.Errorf("connect zookeeper: %w", err)
	}

	r := &NodeRegistry{
		conn:    conn,
		service: service,
		port:    port,
	}

	if err := r.registerOrRecover(); err != nil {
		conn.Close()
		return nil, err
	}

	go r.heartbeatLoop()
	return r, nil
}

// NodeID returns the claimed 48-bit node identifier.
func (r *NodeRegistry) NodeID() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.nodeID
}

func (r *NodeRegistry) nodeKey() string {
	return fmt.Sprintf("%s/%s/node-%d", zkRootPath, r.service, r.port)
}

func (r *NodeRegistry) cacheFile() string {
	return fmt.Sprintf(".uuid_node_cache_%d", r.port)
}

// registerOrRecover claims this instance's node identifier: from ZooKeeper
// when a registration exists, from the local cache file when ZooKeeper has
// none, and freshly random otherwise. A last seen timestamp ahead of the
// current clock means the clock moved backwards and registration fails.
func (r *NodeRegistry) registerOrRecover() error {
	if err := r.ensurePath(fmt.Sprintf("%s/%s", zkRootPath, r.service)); err != nil {
		return err
	}

	nodeKey := r.nodeKey()
	now := time.Now().UnixMilli()

	var info NodeInfo

	exists, _, err := r.conn.Exists(nodeKey)
	if err != nil {
		return fmt.Errorf("check registration: %w", err)
	}

	switch {
	case exists:
		data, _, err := r.conn.Get(nodeKey)
		if err != nil {
			return fmt.Errorf("read registration: %w", err)
		}
		if err := json.Unmarshal(data, &info); err != nil {
			return fmt.Errorf("decode registration: %w", err)
		}
		if now < info.LastTime {
			return fmt.Errorf("clock moved backwards: now %d, registered %d", now, info.LastTime)
		}
		log.Printf("recovered node identifier %#012x from zookeeper", info.NodeID)

	default:
		cached, err := r.loadLocalCache()
		if err == nil {
			if now < cached.LastTime {
				return fmt.Errorf("clock moved backwards: now %d, cached %d", now, cached.LastTime)
			}
			info = cached
			log.Printf("recovered node identifier %#012x from local cache", info.NodeID)
		} else {
			nodeID, err := cuuid.RandomNodeID()
			if err != nil {
				return fmt.Errorf("allocate node identifier: %w", err)
			}
			info = NodeInfo{NodeID: nodeID, CreateTime: now}
			log.Printf("claimed new node identifier %#012x", nodeID)
		}
	}

	info.LastTime = now
	data, err := json.Marshal(info)
	if err != nil {
		return err
	}

	if exists {
		_, err = r.conn.Set(nodeKey, data, -1)
	} else {
		_, err = r.conn.Create(nodeKey, data, 0, zk.WorldACL(zk.PermAll))
	}
	if err != nil {
		return fmt.Errorf("write registration: %w", err)
	}

	r.saveLocalCache(info)

	r.mu.Lock()
	r.nodeID = info.NodeID
	r.mu.Unlock()
	return nil
}

// heartbeatLoop periodically refreshes the last seen timestamp in
// ZooKeeper and the local cache. ZooKeeper write failures are tolerated;
// the local cache still advances.
func (r *NodeRegistry) heartbeatLoop() {
	ticker := time.NewTicker(heartbeatInterval)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now().UnixMilli()

		info := NodeInfo{NodeID: r.NodeID(), LastTime: now}
		data, _ := json.Marshal(info)

		if _, err := r.conn.Set(r.nodeKey(), data, -1); err != nil {
			log.Printf("heartbeat write to zookeeper failed: %v", err)
		}
		r.saveLocalCache(info)
	}
}

// ensurePath creates each missing segment of a ZooKeeper path.
func (r *NodeRegistry) ensurePath(path string) error {
	var current string
	for _, segment := range strings.Split(strings.Trim(path, "/"), "/") {
		current += "/" + segment
		exists, _, err := r.conn.Exists(current)
		if err != nil {
			return err
		}
		if !exists {
			_, err := r.conn.Create(current, []byte{}, 0, zk.WorldACL(zk.PermAll))
			if err != nil && err != zk.ErrNodeExists {
				return err
			}
		}
	}
	return nil
}

func (r *NodeRegistry) saveLocalCache(info NodeInfo) {
	data, _ := json.Marshal(info)
	if err := os.WriteFile(r.cacheFile(), data, 0o644); err != nil {
		log.Printf("write local cache failed: %v", err)
	}
}

func (r *NodeRegistry) loadLocalCache() (NodeInfo, error) {
	data, err := os.ReadFile(r.cacheFile())
	if err != nil {
		return NodeInfo{}, err
	}
	var info NodeInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return NodeInfo{}, err
	}
	return info, nil
}

func main() {
	// Requires a local ZooKeeper, e.g.:
	// docker run --name some-zookeeper -p 2181:2181 -d zookeeper
	zkServers := []string{"127.0.0.1:2181"}

	registry, err := NewNodeRegistry(zkServers, "order-service", 8080)
	if err != nil {
		log.Fatalf("node registration failed: %v", err)
	}

	gen, err := cuuid.NewTimeOrderedGenerator(
		cuuid.WithNodeID(registry.NodeID()),
		cuuid.WithOverrunSuppression(),
	)
	if err != nil {
		log.Fatalf("generator init failed: %v", err)
	}

	log.Printf("generating version 6 UUIDs with node %#012x...", registry.NodeID())

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				u, err := gen.New()
				if err != nil {
					log.Println(err)
					continue
				}
				fmt.Println(u)
			}
		}()
	}
	wg.Wait()
	log.Println("done")
}
