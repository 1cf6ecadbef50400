package snowflake

import (
	"errors"
	"strconv"
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	node *snowflake.Node
	once sync.Once

	errInvalidMachineID    = errors.New("invalid snowflake machine id")
	errInvalidDataCenterID = errors.New("invalid snowflake datacenter id")
	errGeneratorUninitial  = errors.New("snowflake generator is not initialized")
)

// Init 初始化全局节点，server / worker / scheduler 应使用不同的 machineID
func Init(machineID, dataCenterID int64) error {
	var initErr error

	once.Do(func() {
		if machineID < 0 || machineID > 31 {
			initErr = errInvalidMachineID
			return
		}
		if dataCenterID < 0 || dataCenterID > 31 {
			initErr = errInvalidDataCenterID
			return
		}
		nodeID := (dataCenterID << 5) | machineID

		var err error
		node, err = snowflake.NewNode(nodeID)
		if err != nil {
			initErr = err
			return
		}
	})

	return initErr
}

func NextID() (int64, error) {
	if node == nil {
		return 0, errGeneratorUninitial
	}

	return node.Generate().Int64(), nil
}

// Tagged 带前缀的字符串 id，用作消息 id 和分布式锁的持有者标识
func Tagged(prefix string) (string, error) {
	id, err := NextID()
	if err != nil {
		return "", err
	}
	return prefix + "_" + strconv.FormatInt(id, 10), nil
}
