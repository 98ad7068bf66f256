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

package domain

import "errors"

var (
	ErrTitleRequired   = errors.New("商品标题不能为空")
	ErrInvalidCategory = errors.New("商品分类不合法")
	ErrInvalidPrice    = errors.New("价格不能为负数")
	ErrInvalidGrade    = errors.New("成色等级不合法")
	ErrInvalidBattery  = errors.New("电池状态不合法")
	ErrInvalidStatus   = errors.New("商品状态不合法")
	ErrSoldViaUpdate   = errors.New("商品售出必须通过销售记录")
)
