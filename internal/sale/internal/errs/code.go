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
	SystemError     = ErrorCode{Code: 512001, Msg: "系统错误"}
	InvalidSale     = ErrorCode{Code: 512002, Msg: "销售信息不合法"}
	ItemNotFound    = ErrorCode{Code: 512003, Msg: "商品不存在"}
	ItemAlreadySold = ErrorCode{Code: 512004, Msg: "商品已经售出"}
	ItemNotSellable = ErrorCode{Code: 512005, Msg: "商品当前状态不能销售"}
	ReceiptNumber   = ErrorCode{Code: 512006, Msg: "生成收据号失败，请重试"}
	SaleNotFound    = ErrorCode{Code: 512007, Msg: "销售记录不存在"}
	ReceiptAttached = ErrorCode{Code: 512008, Msg: "收据文件已经上传过"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
