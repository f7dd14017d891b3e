package snowflake

import (
	"strconv"
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	mu   sync.Mutex
	node *snowflake.Node
)

// Init initializes the snowflake node with the given node ID.
// Node ID should be unique across all instances (0-1023).
func Init(nodeID int64) error {
	n, err := snowflake.NewNode(nodeID)
	if err != nil {
		return err
	}
	mu.Lock()
	node = n
	mu.Unlock()
	return nil
}

// NextID generates a new unique snowflake ID.
// Falls back to node 0 when Init was never called (tests, CLI tools).
func NextID() int64 {
	mu.Lock()
	if node == nil {
		node, _ = snowflake.NewNode(0)
	}
	n := node
	mu.Unlock()
	return n.Generate().Int64()
}

// Format renders an ID the way it is exposed over JSON.
func Format(id int64) string {
	return strconv.FormatInt(id, 10)
}

// Parse reads an ID previously produced by Format.
func Parse(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}
