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
	"errors"
	"io"
)

var (
	ErrStorage               = errors.New("图床操作失败")
	ErrCredentialUnavailable = errors.New("未配置图床，无法直传")
)

//go:generate mockgen -source=./types.go -package=storagemocks -destination=mocks/storage.mock.go ImageStorage
type ImageStorage interface {
	// Upload 上传成功后返回可以公开访问的 URL
	Upload(ctx context.Context, key, contentType string, content io.Reader, size int64) (string, error)
	// Delete 对象不存在也视为成功
	Delete(ctx context.Context, key string) error
	URL(key string) string
}

// Credential 前端直传图床用的临时密钥
type Credential struct {
	SecretID     string
	SecretKey    string
	SessionToken string
	StartTime    int64
	ExpiredTime  int64
	Bucket       string
	Region       string
	KeyPrefix    string
}

type CredentialIssuer interface {
	Issue(prefix, contentType string) (Credential, error)
}

// UnavailableIssuer 没有配置 COS 的时候使用
type UnavailableIssuer struct{}

func (UnavailableIssuer) Issue(prefix, contentType string) (Credential, error) {
	return Credential{}, ErrCredentialUnavailable
}
