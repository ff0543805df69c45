package cache

import (
	"github.com/gomodule/redigo/redis"
)

// List helpers used for per-session chat history. Keys follow the
// "<session>.messages" convention.

func RPush(key string, value interface{}, conn redis.Conn) error {
	_, err := conn.Do("RPUSH", key, value)
	return err
}

func LLen(key string, conn redis.Conn) (int, error) {
	num, err := redis.Int(conn.Do("LLEN", key))
	if err != nil {
		return -1, err
	}
	return num, nil
}

func LRange(key string, conn redis.Conn) ([]string, error) {
	values, err := redis.Strings(conn.Do("LRANGE", key, 0, -1))
	if err != nil {
		return nil, err
	}
	return values, nil
}

func Del(key string, conn redis.Conn) error {
	_, err := conn.Do("DEL", key)
	return err
}
