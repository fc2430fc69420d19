package redis

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/redis/go-redis/v9"
)

// memStore 在 ProcessHook 中直接应答命令，不建立网络连接
type memStore struct {
	mu   sync.Mutex
	data map[string]string
	ttls map[string]string
}

func (m *memStore) DialHook(next redis.DialHook) redis.DialHook {
	return next
}

func (m *memStore) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return next
}

func (m *memStore) ProcessHook(_ redis.ProcessHook) redis.ProcessHook {
	return func(_ context.Context, cmd redis.Cmder) error {
		m.mu.Lock()
		defer m.mu.Unlock()

		args := cmd.Args()
		switch c := cmd.(type) {
		case *redis.StatusCmd:
			key := fmt.Sprint(args[1])
			m.data[key] = toString(args[2])
			m.ttls[key] = ttlArg(args)
			c.SetVal("OK")
		case *redis.BoolCmd:
			key := fmt.Sprint(args[1])
			if _, ok := m.data[key]; ok {
				c.SetVal(false)
				return nil
			}
			m.data[key] = toString(args[2])
			m.ttls[key] = ttlArg(args)
			c.SetVal(true)
		case *redis.StringCmd:
			v, ok := m.data[fmt.Sprint(args[1])]
			if !ok {
				c.SetErr(redis.Nil)
				return redis.Nil
			}
			c.SetVal(v)
		case *redis.IntCmd:
			var n int64
			for _, k := range args[1:] {
				if _, ok := m.data[fmt.Sprint(k)]; ok {
					delete(m.data, fmt.Sprint(k))
					n++
				}
			}
			c.SetVal(n)
		case *redis.ScanCmd:
			prefix := ""
			for i := 0; i+1 < len(args); i++ {
				if strings.EqualFold(fmt.Sprint(args[i]), "match") {
					prefix = strings.TrimSuffix(fmt.Sprint(args[i+1]), "*")
				}
			}
			keys := make([]string, 0)
			for k := range m.data {
				if strings.HasPrefix(k, prefix) {
					keys = append(keys, k)
				}
			}
			c.SetVal(keys, 0)
		default:
			err := fmt.Errorf("unexpected command %v", args)
			cmd.SetErr(err)
			return err
		}
		return nil
	}
}

func (m *memStore) get(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok
}

func toString(v interface{}) string {
	switch x := v.(type) {
	case []byte:
		return string(x)
	case string:
		return x
	default:
		return fmt.Sprint(x)
	}
}

// ttlArg SET 命令中 ex/px 之后的过期参数
func ttlArg(args []interface{}) string {
	for i := 3; i+1 < len(args); i++ {
		switch strings.ToLower(fmt.Sprint(args[i])) {
		case "ex", "px":
			return fmt.Sprint(args[i]) + " " + fmt.Sprint(args[i+1])
		}
	}
	return ""
}

// useMemStore 替换全局客户端，测试结束后恢复为未启用
func useMemStore(t *testing.T) *memStore {
	t.Helper()
	store := &memStore{data: map[string]string{}, ttls: map[string]string{}}
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	client.AddHook(store)
	Rdb = client
	t.Cleanup(func() {
		_ = client.Close()
		Rdb = nil
	})
	return store
}
