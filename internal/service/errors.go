package service

import "errors"

// 业务错误哨兵，controller 层负责映射到 HTTP 状态码
// 注意：别人的资源和不存在的资源必须长得一模一样（都映射 404），避免泄露存在性
var (
	ErrNotFound           = errors.New("resource not found")
	ErrDuplicate          = errors.New("resource already exists")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
