package utils

import "github.com/google/uuid"

// NewID 全局唯一、不复用
func NewID() string { return uuid.NewString() }
