package debugui

import (
	"reflect"
	"sync"
)

type fieldInfo struct {
	name      string
	index     int
	isPointer bool
}

// reflectionCache memoizes exported struct fields per type so the inspector
// does not re-walk reflect metadata every frame.
type reflectionCache struct {
	mu     sync.RWMutex
	fields map[reflect.Type][]fieldInfo
}

func newReflectionCache() *reflectionCache {
	return &reflectionCache{
		fields: make(map[reflect.Type][]fieldInfo),
	}
}

func (rc *reflectionCache) fieldsFor(t reflect.Type) ([]fieldInfo, bool) {
	rc.mu.RLock()
	defer rc.mu.RUnlock()
	cached, ok := rc.fields[t]
	return cached, ok
}

func (rc *reflectionCache) fields(t reflect.Type) []fieldInfo {
	if cached, ok := rc.fieldsFor(t); ok {
		return cached
	}

	rc.mu.Lock()
	defer rc.mu.Unlock()

	if cached, ok := rc.fields[t]; ok {
		return cached
	}

	var fields []fieldInfo
	if t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}

			fields = append(fields, fieldInfo{
				name:      field.Name,
				index:     i,
				isPointer: field.Type.Kind() == reflect.Ptr,
			})
		}
	}

	rc.fields[t] = fields
	return fields
}
