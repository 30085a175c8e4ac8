package mem

import (
	"encoding/json"
	"sync"
	"time"
)

type St struct {
	data map[string]itemSt
	mu   sync.RWMutex
}

type itemSt struct {
	value    []byte
	expireAt time.Time
}

func New() *St {
	return &St{
		data: map[string]itemSt{},
	}
}

func (c *St) Get(key string) ([]byte, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, ok := c.data[key]
	if !ok {
		return nil, false, nil
	}

	if !item.expireAt.IsZero() && time.Now().After(item.expireAt) {
		return nil, false, nil
	}

	return item.value, true, nil
}

func (c *St) GetJsonObj(key string, dst any) (bool, error) {
	dataRaw, ok, err := c.Get(key)
	if err != nil || !ok {
		return ok, err
	}

	err = json.Unmarshal(dataRaw, dst)
	if err != nil {
		return false, err
	}

	return true, nil
}

func (c *St) Set(key string, value []byte, expiration time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	item := itemSt{value: value}
	if expiration > 0 {
		item.expireAt = time.Now().Add(expiration)
	}

	c.data[key] = item

	return nil
}

func (c *St) SetJsonObj(key string, value any, expiration time.Duration) error {
	dataRaw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return c.Set(key, dataRaw, expiration)
}

func (c *St) Del(key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.data, key)

	return nil
}

func (c *St) Clean() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.data = map[string]itemSt{}
}
