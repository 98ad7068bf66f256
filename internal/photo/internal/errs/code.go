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

package errs

var (
	SystemError        = ErrorCode{Code: 513001, Msg: "系统错误"}
	InvalidFile        = ErrorCode{Code: 513002, Msg: "图片必须是 JPEG、PNG 或 WebP 格式，且不超过 10MB"}
	PhotoLimitExceeded = ErrorCode{Code: 513003, Msg: "每件商品最多 5 张图片"}
	InvalidOrder       = ErrorCode{Code: 513004, Msg: "排序必须包含商品当前的全部图片"}
	PhotoNotFound      = ErrorCode{Code: 513005, Msg: "图片不存在"}
	ItemNotFound       = ErrorCode{Code: 513006, Msg: "商品不存在"}
	StorageError       = ErrorCode{Code: 513007, Msg: "图床服务异常，请稍后重试"}
	InvalidAssetKey    = ErrorCode{Code: 513008, Msg: "图片路径不属于该商品"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
