package cache

import "errors"

var (
	// ErrCacheMiss возвращается, когда ключа нет в кеше
	ErrCacheMiss = errors.New("cache: key not found")

	// ErrCacheUnavailable возвращается при ошибке обращения к redis
	ErrCacheUnavailable = errors.New("cache: redis unavailable")
)
