package service

import (
	"errors"
	"sort"
	"strings"
)

// error หลักของ business rule — handler แปลงเป็น status code เอง
var (
	ErrNotFound            = errors.New("not found")
	ErrCourseFull          = errors.New("course is full")
	ErrDuplicateEnrollment = errors.New("already enrolled in this course")
)

// ValidationError รวม field ที่ขาด/ผิดรูปแบบ ให้ FE แสดงรายช่องได้
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return "invalid fields: " + strings.Join(keys, ", ")
}

func newValidationError() *ValidationError {
	return &ValidationError{Fields: map[string]string{}}
}
