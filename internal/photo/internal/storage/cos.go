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
	"net/http"
	"net/url"
	"strings"

	"github.com/tencentyun/cos-go-sdk-v5"
)

type COSConfig struct {
	SecretID  string `yaml:"secretID"`
	SecretKey string `yaml:"secretKey"`
	AppID     string `yaml:"appID"`
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
	// CDNDomain 公开访问的域名，为空时使用存储桶域名
	CDNDomain string `yaml:"cdnDomain"`
}

func (c COSConfig) BucketURL() string {
	return fmt.Sprintf("https://%s-%s.cos.%s.myqcloud.com", c.Bucket, c.AppID, c.Region)
}

type COSStorage struct {
	client  *cos.Client
	baseURL string
}

func NewCOSStorage(cfg COSConfig) (*COSStorage, error) {
	u, err := url.Parse(cfg.BucketURL())
	if err != nil {
		return nil, err
	}
	client := cos.NewClient(&cos.BaseURL{BucketURL: u}, &http.Client{
		Transport: &cos.AuthorizationTransport{
			SecretID:  cfg.SecretID,
			SecretKey: cfg.SecretKey,
		},
	})
	base := cfg.CDNDomain
	if base == "" {
		base = cfg.BucketURL()
	}
	return &COSStorage{
		client:  client,
		baseURL: strings.TrimSuffix(base, "/"),
	}, nil
}

func (c *COSStorage) Upload(ctx context.Context, key, contentType string, content io.Reader, size int64) (string, error) {
	_, err := c.client.Object.Put(ctx, key, content, &cos.ObjectPutOptions{
		ObjectPutHeaderOptions: &cos.ObjectPutHeaderOptions{
			ContentType:   contentType,
			ContentLength: size,
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: 上传 %s: %w", ErrStorage, key, err)
	}
	return c.URL(key), nil
}

func (c *COSStorage) Delete(ctx context.Context, key string) error {
	resp, err := c.client.Object.Delete(ctx, key)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil
		}
		return fmt.Errorf("%w: 删除 %s: %w", ErrStorage, key, err)
	}
	return nil
}

func (c *COSStorage) URL(key string) string {
	return c.baseURL + "/" + strings.TrimPrefix(key, "/")
}
