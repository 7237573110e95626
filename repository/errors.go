package repository

import "errors"

// ErrCourseFull คืนจาก CreateReserving เมื่อที่นั่งเต็มแล้ว ณ ตอน insert
var ErrCourseFull = errors.New("course is full")
