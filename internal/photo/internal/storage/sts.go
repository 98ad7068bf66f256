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
	"fmt"
	"net/http"
	"time"

	sts "github.com/tencentyun/qcloud-cos-sts-sdk/go"
)

// STSIssuer 签发只能写入指定目录的临时密钥
type STSIssuer struct {
	client   *sts.Client
	cfg      COSConfig
	duration time.Duration
	// 临时密钥的权限
	actions []string
}

func NewSTSIssuer(cfg COSConfig) *STSIssuer {
	return &STSIssuer{
		client:   sts.NewClient(cfg.SecretID, cfg.SecretKey, http.DefaultClient),
		cfg:      cfg,
		duration: 30 * time.Minute,
		actions: []string{
			"name/cos:PostObject",
			"name/cos:PutObject",
		},
	}
}

func (c *STSIssuer) Issue(prefix, contentType string) (Credential, error) {
	// 存储桶的命名格式为 BucketName-APPID
	resource := fmt.Sprintf("qcs::cos:%s:uid/%s:%s-%s/%s*",
		c.cfg.Region, c.cfg.AppID, c.cfg.Bucket, c.cfg.AppID, prefix)
	res, err := c.client.GetCredential(&sts.CredentialOptions{
		DurationSeconds: int64(c.duration.Seconds()),
		Region:          c.cfg.Region,
		Policy: &sts.CredentialPolicy{
			Statement: []sts.CredentialPolicyStatement{
				{
					Action:   c.actions,
					Effect:   "allow",
					Resource: []string{resource},
					Condition: map[string]map[string]interface{}{
						"string_equal": {
							"cos:content-type": contentType,
						},
						"numeric_less_than_equal": {
							"cos:content-length": maxContentLength,
						},
					},
				},
			},
		},
	})
	if err != nil {
		return Credential{}, fmt.Errorf("%w: 签发临时密钥: %w", ErrStorage, err)
	}
	return Credential{
		SecretID:     res.Credentials.TmpSecretID,
		SecretKey:    res.Credentials.TmpSecretKey,
		SessionToken: res.Credentials.SessionToken,
		StartTime:    int64(res.StartTime),
		ExpiredTime:  int64(res.ExpiredTime),
		Bucket:       c.cfg.Bucket + "-" + c.cfg.AppID,
		Region:       c.cfg.Region,
		KeyPrefix:    prefix,
	}, nil
}

const maxContentLength = 10 << 20
