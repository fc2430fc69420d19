package service

import (
	"errors"
)

const (
	BadRequest          = 400
	NotFound            = 404
	InternalServerError = 500
	ServiceUnavailable  = 503
)

var (
	ErrParamInvalid       = errors.New("参数错误")
	ErrPostNotFound       = errors.New("帖子不存在")
	ErrDatasetUnavailable = errors.New("数据集暂不可用")
	ErrDatasetMalformed   = errors.New("数据集格式错误")
	UnExpectedError       = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:       BadRequest,
	ErrPostNotFound:       NotFound,
	ErrDatasetUnavailable: ServiceUnavailable,
	ErrDatasetMalformed:   InternalServerError,
	UnExpectedError:       InternalServerError,
}

// CodeOf 业务错误码，包装过的哨兵错误同样可以识别
func CodeOf(err error) (int, bool) {
	if code, ok := ErrorMap[err]; ok {
		return code, true
	}
	for sentinel, code := range ErrorMap {
		if errors.Is(err, sentinel) {
			return code, true
		}
	}
	return 0, false
}
