// Package customer 管理客户端本地的客户与单位列表，不与服务端交互
package customer

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// Service 客户列表，并发安全
type Service struct {
	mu        sync.RWMutex
	customers []Customer
	units     []Unit
}

// fileData 本地 JSON 文件结构
type fileData struct {
	Customers []Customer `json:"customers"`
	Units     []Unit     `json:"units"`
}

// NewService 创建空的客户列表
func NewService() *Service {
	return &Service{}
}

// LoadFile 从 JSON 文件载入客户与单位
func LoadFile(path string) (*Service, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取客户文件失败: %w", err)
	}

	var data fileData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("解析客户文件失败: %w", err)
	}

	s := NewService()
	for _, c := range data.Customers {
		s.AddCustomer(c)
	}
	for _, u := range data.Units {
		s.AddUnit(u)
	}
	return s, nil
}

// Customers 返回客户列表副本
func (s *Service) Customers() []Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Customer(nil), s.customers...)
}

// AddCustomer 追加客户
func (s *Service) AddCustomer(c Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers = append(s.customers, c)
}

// Units 返回单位列表副本
func (s *Service) Units() []Unit {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Unit(nil), s.units...)
}

// AddUnit 追加单位
func (s *Service) AddUnit(u Unit) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.units = append(s.units, u)
}
