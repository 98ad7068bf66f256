// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package storage

import (
	"context"
	"fmt"
	"io"
	"sync"
)

// MemoryStorage 本地开发和测试用
type MemoryStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
	baseURL string
	// 设置之后对应操作返回错误
	UploadErr error
	DeleteErr error
}

func NewMemoryStorage(baseURL string) *MemoryStorage {
	return &MemoryStorage{
		objects: make(map[string][]byte),
		baseURL: baseURL,
	}
}

func (m *MemoryStorage) Upload(ctx context.Context, key, contentType string, content io.Reader, size int64) (string, error) {
	if m.UploadErr != nil {
		return "", fmt.Errorf("%w: %w", ErrStorage, m.UploadErr)
	}
	data, err := io.ReadAll(io.LimitReader(content, size))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrStorage, err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = data
	return m.URL(key), nil
}

func (m *MemoryStorage) Delete(ctx context.Context, key string) error {
	if m.DeleteErr != nil {
		return fmt.Errorf("%w: %w", ErrStorage, m.DeleteErr)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, key)
	return nil
}

func (m *MemoryStorage) URL(key string) string {
	return m.baseURL + "/" + key
}

func (m *MemoryStorage) Exists(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.objects[key]
	return ok
}

func (m *MemoryStorage) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.objects)
}
